package noise

// Cache memoizes its single source's most recently computed value,
// skipping re-evaluation when called again at the exact same
// coordinates. It is not thread-safe: wrapping a source that is shared
// across goroutines in a Cache reintroduces a data race, which is why
// BuildParallel refuses to walk a graph containing one.
type Cache struct {
	base
	hasValue bool
	lastX, lastY, lastZ float64
	lastValue float64
}

// NewCache creates a Cache wrapper.
func NewCache() *Cache { return &Cache{base: newBase(1)} }

func (c *Cache) GetSourceModule(i int) Module { return c.getSource("Cache", i) }

// SetSourceModule invalidates the cached value in addition to wiring the
// new source, since the old cached sample no longer corresponds to the
// module that will answer future queries.
func (c *Cache) SetSourceModule(i int, src Module) {
	c.base.SetSourceModule(i, src)
	c.hasValue = false
}

func (c *Cache) Value(x, y, z float64) float64 {
	c.requireAll("Cache")
	if c.hasValue && x == c.lastX && y == c.lastY && z == c.lastZ {
		return c.lastValue
	}
	v := c.sources[0].Value(x, y, z)
	c.lastX, c.lastY, c.lastZ = x, y, z
	c.lastValue = v
	c.hasValue = true
	return v
}

package noise

import "sort"

// CurveControlPoint is one (input, output) pair in a Curve's spline.
type CurveControlPoint struct {
	Input  float64
	Output float64
}

// Curve remaps its single source's output through a cubic spline defined
// by control points sorted by Input. At least 4 points are required before
// Value can be called.
type Curve struct {
	base
	points []CurveControlPoint
}

// NewCurve creates an empty Curve; call AddControlPoint at least 4 times
// before evaluating it.
func NewCurve() *Curve {
	return &Curve{base: newBase(1)}
}

func (c *Curve) GetSourceModule(i int) Module { return c.getSource("Curve", i) }

// AddControlPoint inserts a (input, output) pair, keeping points sorted by
// input. It returns ErrInvalidParameter if input duplicates an existing
// point.
func (c *Curve) AddControlPoint(input, output float64) error {
	idx := sort.Search(len(c.points), func(i int) bool { return c.points[i].Input >= input })
	if idx < len(c.points) && c.points[idx].Input == input {
		return invalidParam("Curve", "duplicate control point input")
	}
	c.points = append(c.points, CurveControlPoint{})
	copy(c.points[idx+1:], c.points[idx:])
	c.points[idx] = CurveControlPoint{Input: input, Output: output}
	return nil
}

// ClearControlPoints removes all control points.
func (c *Curve) ClearControlPoints() { c.points = nil }

// ControlPointCount returns the number of control points currently set.
func (c *Curve) ControlPointCount() int { return len(c.points) }

func (c *Curve) Value(x, y, z float64) float64 {
	c.requireAll("Curve")
	if len(c.points) < 4 {
		panic(&ModuleError{Module: "Curve", Slot: -1, Err: invalidParam("Curve", "fewer than 4 control points")})
	}

	v := c.sources[0].Value(x, y, z)

	// Binary-locate the bracketing interval [i1,i2].
	rawI2 := sort.Search(len(c.points), func(i int) bool { return c.points[i].Input >= v })
	aboveRange := rawI2 >= len(c.points)
	i2 := rawI2
	if i2 >= len(c.points) {
		i2 = len(c.points) - 1
	}
	i1 := i2 - 1
	if i1 < 0 {
		i1 = 0
	}
	if i1 == i2 && i2 > 0 {
		i1 = i2 - 1
	}
	if aboveRange {
		// v is beyond the highest control point's input: clamp flat
		// instead of extrapolating the cubic past its last segment.
		i1 = i2
	}

	i0 := i1 - 1
	if i0 < 0 {
		i0 = 0
	}
	i3 := i2 + 1
	if i3 >= len(c.points) {
		i3 = len(c.points) - 1
	}

	if i1 == i2 {
		return c.points[i1].Output
	}

	span := c.points[i2].Input - c.points[i1].Input
	var a float64
	if span != 0 {
		a = (v - c.points[i1].Input) / span
	}

	return cubicInterp(
		c.points[i0].Output,
		c.points[i1].Output,
		c.points[i2].Output,
		c.points[i3].Output,
		a,
	)
}

package noise

import "sort"

// Terrace remaps its single source's output into flat "steps" between
// control point values, optionally inverted to flatten the upper rather
// than lower half of each step. At least 2 control points are required.
type Terrace struct {
	base
	Invert bool
	points []float64
}

// NewTerrace creates an empty Terrace; call AddControlPoint at least twice
// before evaluating it.
func NewTerrace() *Terrace {
	return &Terrace{base: newBase(1)}
}

func (t *Terrace) GetSourceModule(i int) Module { return t.getSource("Terrace", i) }

// AddControlPoint inserts a value, keeping points sorted ascending. It
// returns ErrInvalidParameter if value duplicates an existing point.
func (t *Terrace) AddControlPoint(value float64) error {
	idx := sort.SearchFloat64s(t.points, value)
	if idx < len(t.points) && t.points[idx] == value {
		return invalidParam("Terrace", "duplicate control point value")
	}
	t.points = append(t.points, 0)
	copy(t.points[idx+1:], t.points[idx:])
	t.points[idx] = value
	return nil
}

// ClearControlPoints removes all control points.
func (t *Terrace) ClearControlPoints() { t.points = nil }

// ControlPointCount returns the number of control points currently set.
func (t *Terrace) ControlPointCount() int { return len(t.points) }

func (t *Terrace) Value(x, y, z float64) float64 {
	t.requireAll("Terrace")
	if len(t.points) < 2 {
		panic(&ModuleError{Module: "Terrace", Slot: -1, Err: invalidParam("Terrace", "fewer than 2 control points")})
	}

	v := t.sources[0].Value(x, y, z)

	if v <= t.points[0] {
		return t.points[0]
	}
	if v >= t.points[len(t.points)-1] {
		return t.points[len(t.points)-1]
	}

	idx := sort.SearchFloat64s(t.points, v)
	if idx < len(t.points) && t.points[idx] == v {
		return v
	}
	i1 := idx - 1
	i2 := idx

	value0 := t.points[i1]
	value1 := t.points[i2]
	alpha := (v - value0) / (value1 - value0)

	if t.Invert {
		alpha = 1.0 - alpha
		value0, value1 = value1, value0
	}
	alpha *= alpha

	return linearInterp(value0, value1, alpha)
}

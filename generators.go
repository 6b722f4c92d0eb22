package noise

import "math"

// Const is a zero-source generator that always returns the same value.
type Const struct {
	base
	Value_ float64
}

// NewConst creates a constant generator producing value everywhere.
func NewConst(value float64) *Const {
	return &Const{base: newBase(0), Value_: value}
}

func (c *Const) GetSourceModule(i int) Module { return c.getSource("Const", i) }
func (c *Const) Value(x, y, z float64) float64 { return c.Value_ }

// Checkerboard is a zero-source, non-coherent generator returning +1 or -1
// in an alternating 3D lattice pattern. Intended as a test input, not for
// production textures.
type Checkerboard struct {
	base
}

// NewCheckerboard creates a checkerboard generator.
func NewCheckerboard() *Checkerboard {
	return &Checkerboard{base: newBase(0)}
}

func (c *Checkerboard) GetSourceModule(i int) Module { return c.getSource("Checkerboard", i) }

func (c *Checkerboard) Value(x, y, z float64) float64 {
	ix := int64(math.Floor(x))
	iy := int64(math.Floor(y))
	iz := int64(math.Floor(z))
	if (ix+iy+iz)&1 == 0 {
		return 1.0
	}
	return -1.0
}

// Cylinders is a zero-source generator producing concentric cylinders
// (rings when viewed on the xz-plane) centered on the y axis.
type Cylinders struct {
	base
	Frequency float64
}

// NewCylinders creates a cylinder generator with the given ring frequency.
func NewCylinders(frequency float64) *Cylinders {
	return &Cylinders{base: newBase(0), Frequency: frequency}
}

func (c *Cylinders) GetSourceModule(i int) Module { return c.getSource("Cylinders", i) }

func (c *Cylinders) Value(x, y, z float64) float64 {
	x *= c.Frequency
	z *= c.Frequency
	d := math.Sqrt(x*x + z*z)
	dCenter := d - math.Floor(d)
	dNearest := minF(dCenter, 1.0-dCenter)
	return 1.0 - 4.0*dNearest
}

// Spheres is a zero-source generator producing concentric spheres centered
// on the origin, the 3D analogue of Cylinders.
type Spheres struct {
	base
	Frequency float64
}

// NewSpheres creates a sphere generator with the given shell frequency.
func NewSpheres(frequency float64) *Spheres {
	return &Spheres{base: newBase(0), Frequency: frequency}
}

func (s *Spheres) GetSourceModule(i int) Module { return s.getSource("Spheres", i) }

func (s *Spheres) Value(x, y, z float64) float64 {
	x *= s.Frequency
	y *= s.Frequency
	z *= s.Frequency
	d := math.Sqrt(x*x + y*y + z*z)
	dCenter := d - math.Floor(d)
	dNearest := minF(dCenter, 1.0-dCenter)
	return 1.0 - 4.0*dNearest
}

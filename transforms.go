package noise

import "math"

// TranslatePoint offsets the input coordinates before sampling its
// single source.
type TranslatePoint struct {
	base
	XOffset, YOffset, ZOffset float64
}

// NewTranslatePoint creates a TranslatePoint transform with the given
// per-axis offsets.
func NewTranslatePoint(xOffset, yOffset, zOffset float64) *TranslatePoint {
	return &TranslatePoint{base: newBase(1), XOffset: xOffset, YOffset: yOffset, ZOffset: zOffset}
}

func (t *TranslatePoint) GetSourceModule(i int) Module { return t.getSource("TranslatePoint", i) }

func (t *TranslatePoint) Value(x, y, z float64) float64 {
	t.requireAll("TranslatePoint")
	return t.sources[0].Value(x+t.XOffset, y+t.YOffset, z+t.ZOffset)
}

// ScalePoint scales the input coordinates before sampling its single
// source.
type ScalePoint struct {
	base
	XScale, YScale, ZScale float64
}

// NewScalePoint creates a ScalePoint transform with the given per-axis
// scales.
func NewScalePoint(xScale, yScale, zScale float64) *ScalePoint {
	return &ScalePoint{base: newBase(1), XScale: xScale, YScale: yScale, ZScale: zScale}
}

func (s *ScalePoint) GetSourceModule(i int) Module { return s.getSource("ScalePoint", i) }

func (s *ScalePoint) Value(x, y, z float64) float64 {
	s.requireAll("ScalePoint")
	return s.sources[0].Value(x*s.XScale, y*s.YScale, z*s.ZScale)
}

// RotatePoint rotates the input coordinates by Euler angles (degrees,
// applied as Rz*Ry*Rx) before sampling its single source.
type RotatePoint struct {
	base
	XAngle, YAngle, ZAngle float64
}

// NewRotatePoint creates a RotatePoint transform with the given
// rotation angles in degrees about each axis.
func NewRotatePoint(xAngle, yAngle, zAngle float64) *RotatePoint {
	return &RotatePoint{base: newBase(1), XAngle: xAngle, YAngle: yAngle, ZAngle: zAngle}
}

func (r *RotatePoint) GetSourceModule(i int) Module { return r.getSource("RotatePoint", i) }

func (r *RotatePoint) Value(x, y, z float64) float64 {
	r.requireAll("RotatePoint")

	xr := degToRad(r.XAngle)
	yr := degToRad(r.YAngle)
	zr := degToRad(r.ZAngle)

	sx, cx := math.Sin(xr), math.Cos(xr)
	sy, cy := math.Sin(yr), math.Cos(yr)
	sz, cz := math.Sin(zr), math.Cos(zr)

	// M = Rz * Ry * Rx
	m00 := cy * cz
	m01 := sx*sy*cz - cx*sz
	m02 := cx*sy*cz + sx*sz
	m10 := cy * sz
	m11 := sx*sy*sz + cx*cz
	m12 := cx*sy*sz - sx*cz
	m20 := -sy
	m21 := sx * cy
	m22 := cx * cy

	nx := m00*x + m01*y + m02*z
	ny := m10*x + m11*y + m12*z
	nz := m20*x + m21*y + m22*z

	return r.sources[0].Value(nx, ny, nz)
}

// Displace perturbs its primary source's input coordinates by the
// outputs of three displacement sources (slots 1-3), each evaluated at
// the same untransformed (x,y,z).
type Displace struct{ base }

// NewDisplace creates a Displace transform. Wire the module to remap
// into slot 0 and the x/y/z displacement modules into slots 1-3.
func NewDisplace() *Displace { return &Displace{base: newBase(4)} }

func (d *Displace) GetSourceModule(i int) Module { return d.getSource("Displace", i) }

func (d *Displace) Value(x, y, z float64) float64 {
	d.requireAll("Displace")
	dx := x + d.sources[1].Value(x, y, z)
	dy := y + d.sources[2].Value(x, y, z)
	dz := z + d.sources[3].Value(x, y, z)
	return d.sources[0].Value(dx, dy, dz)
}

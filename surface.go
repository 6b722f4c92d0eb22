package noise

import "math"

// PlaneModel samples a Module over the XZ plane at y=0.
type PlaneModel struct {
	Source Module
}

// NewPlaneModel creates a PlaneModel wrapping source.
func NewPlaneModel(source Module) *PlaneModel {
	return &PlaneModel{Source: source}
}

// GetValue returns the source's value at (x, 0, z).
func (m *PlaneModel) GetValue(x, z float64) float64 {
	return m.Source.Value(x, 0, z)
}

// CylinderModel samples a Module around the surface of a unit cylinder
// whose axis is the y-axis: angle wraps around the circumference,
// height runs along the axis.
type CylinderModel struct {
	Source Module
}

// NewCylinderModel creates a CylinderModel wrapping source.
func NewCylinderModel(source Module) *CylinderModel {
	return &CylinderModel{Source: source}
}

// GetValue returns the source's value at the point on the unit cylinder
// given by angle (degrees, wraps seamlessly) and height.
func (m *CylinderModel) GetValue(angle, height float64) float64 {
	rad := degToRad(angle)
	x := math.Cos(rad)
	z := math.Sin(rad)
	return m.Source.Value(x, height, z)
}

// SphereModel samples a Module over the surface of a unit sphere using
// latitude/longitude in degrees.
type SphereModel struct {
	Source Module
}

// NewSphereModel creates a SphereModel wrapping source.
func NewSphereModel(source Module) *SphereModel {
	return &SphereModel{Source: source}
}

// GetValue returns the source's value at the point on the unit sphere
// given by latitude and longitude in degrees.
func (m *SphereModel) GetValue(lat, lon float64) float64 {
	x, y, z := latLonToXYZ(lat, lon)
	return m.Source.Value(x, y, z)
}

package noise

// CylinderMapBuilder samples a module over the surface of a unit
// cylinder: columns span an angle range (degrees, wraps seamlessly by
// construction since CylinderModel uses sin/cos), rows span a height
// range along the cylinder's axis.
type CylinderMapBuilder struct {
	mapBuilder
	lowerAngleBound, upperAngleBound   float64
	lowerHeightBound, upperHeightBound float64
}

// NewCylinderMapBuilder creates a CylinderMapBuilder with no bounds,
// source, or destination set.
func NewCylinderMapBuilder() *CylinderMapBuilder {
	return &CylinderMapBuilder{}
}

// SetBounds sets the angle (degrees) and height ranges to sample.
func (b *CylinderMapBuilder) SetBounds(lowerAngle, upperAngle, lowerHeight, upperHeight float64) error {
	if lowerAngle >= upperAngle || lowerHeight >= upperHeight {
		return invalidParam("CylinderMapBuilder", "bounds must be ordered lower < upper")
	}
	b.lowerAngleBound, b.upperAngleBound = lowerAngle, upperAngle
	b.lowerHeightBound, b.upperHeightBound = lowerHeight, upperHeight
	return nil
}

// Build samples the source module onto the destination map.
func (b *CylinderMapBuilder) Build() error {
	if err := b.validate("CylinderMapBuilder"); err != nil {
		return err
	}
	start := logBuildStart("CylinderMapBuilder", b.destWidth, b.destHeight)

	b.destMap.SetSize(b.destWidth, b.destHeight)

	model := NewCylinderModel(b.sourceModule)
	angleExtent := b.upperAngleBound - b.lowerAngleBound
	heightExtent := b.upperHeightBound - b.lowerHeightBound
	angleDelta := angleExtent / float64(b.destWidth)
	heightDelta := heightExtent / float64(b.destHeight)

	for yi := 0; yi < b.destHeight; yi++ {
		curHeight := b.lowerHeightBound + heightDelta*float64(yi)
		for xi := 0; xi < b.destWidth; xi++ {
			curAngle := b.lowerAngleBound + angleDelta*float64(xi)
			b.destMap.SetValue(xi, yi, model.GetValue(curAngle, curHeight))
		}
	}

	logBuildDone("CylinderMapBuilder", start, nil)
	return nil
}

package noise

// SphereMapBuilder samples a module over the surface of a unit sphere
// using a latitude/longitude grid, in degrees.
type SphereMapBuilder struct {
	mapBuilder
	southLatBound, northLatBound float64
	westLonBound, eastLonBound   float64
}

// NewSphereMapBuilder creates a SphereMapBuilder with no bounds, source,
// or destination set.
func NewSphereMapBuilder() *SphereMapBuilder {
	return &SphereMapBuilder{}
}

// SetBounds sets the latitude and longitude ranges to sample, in
// degrees.
func (b *SphereMapBuilder) SetBounds(southLat, northLat, westLon, eastLon float64) error {
	if southLat >= northLat || westLon >= eastLon {
		return invalidParam("SphereMapBuilder", "bounds must be ordered lower < upper")
	}
	b.southLatBound, b.northLatBound = southLat, northLat
	b.westLonBound, b.eastLonBound = westLon, eastLon
	return nil
}

// Build samples the source module onto the destination map.
func (b *SphereMapBuilder) Build() error {
	if err := b.validate("SphereMapBuilder"); err != nil {
		return err
	}
	start := logBuildStart("SphereMapBuilder", b.destWidth, b.destHeight)

	b.destMap.SetSize(b.destWidth, b.destHeight)

	model := NewSphereModel(b.sourceModule)
	lonExtent := b.eastLonBound - b.westLonBound
	latExtent := b.northLatBound - b.southLatBound
	lonDelta := lonExtent / float64(b.destWidth)
	latDelta := latExtent / float64(b.destHeight)

	for yi := 0; yi < b.destHeight; yi++ {
		curLat := b.southLatBound + latDelta*float64(yi)
		for xi := 0; xi < b.destWidth; xi++ {
			curLon := b.westLonBound + lonDelta*float64(xi)
			b.destMap.SetValue(xi, yi, model.GetValue(curLat, curLon))
		}
	}

	logBuildDone("SphereMapBuilder", start, nil)
	return nil
}

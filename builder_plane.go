package noise

// PlaneMapBuilder samples a module over a rectangular region of the XZ
// plane onto a 2D grid.
type PlaneMapBuilder struct {
	mapBuilder
	lowerXBound, upperXBound float64
	lowerZBound, upperZBound float64
	seamless                 bool
}

// NewPlaneMapBuilder creates a PlaneMapBuilder with no bounds, source, or
// destination set.
func NewPlaneMapBuilder() *PlaneMapBuilder {
	return &PlaneMapBuilder{}
}

// SetBounds sets the rectangular sampling region in the source module's
// input space.
func (b *PlaneMapBuilder) SetBounds(lowerX, upperX, lowerZ, upperZ float64) error {
	if lowerX >= upperX || lowerZ >= upperZ {
		return invalidParam("PlaneMapBuilder", "bounds must be ordered lower < upper")
	}
	b.lowerXBound, b.upperXBound = lowerX, upperX
	b.lowerZBound, b.upperZBound = lowerZ, upperZ
	return nil
}

// EnableSeamless turns on corner blending so the output tiles edge to
// edge without a visible seam.
func (b *PlaneMapBuilder) EnableSeamless(enabled bool) { b.seamless = enabled }

// Build samples the source module onto the destination map. It returns
// the first configuration error found, before the destination map is
// touched. It does not recover panics: a panic raised while sampling (for
// example a *ModuleError from an unwired source deeper in the graph)
// propagates out of Build and leaves the destination map resized but
// partially written.
func (b *PlaneMapBuilder) Build() error {
	if err := b.validate("PlaneMapBuilder"); err != nil {
		return err
	}
	start := logBuildStart("PlaneMapBuilder", b.destWidth, b.destHeight)

	b.destMap.SetSize(b.destWidth, b.destHeight)

	xExtent := b.upperXBound - b.lowerXBound
	zExtent := b.upperZBound - b.lowerZBound
	xDelta := xExtent / float64(b.destWidth)
	zDelta := zExtent / float64(b.destHeight)

	for zi := 0; zi < b.destHeight; zi++ {
		zCur := b.lowerZBound + zDelta*float64(zi)
		for xi := 0; xi < b.destWidth; xi++ {
			xCur := b.lowerXBound + xDelta*float64(xi)

			var finalValue float64
			if b.seamless {
				swValue := b.sourceModule.Value(xCur, 0, zCur)
				seValue := b.sourceModule.Value(xCur+xExtent, 0, zCur)
				nwValue := b.sourceModule.Value(xCur, 0, zCur+zExtent)
				neValue := b.sourceModule.Value(xCur+xExtent, 0, zCur+zExtent)

				xBlend := 1.0 - (xCur-b.lowerXBound)/xExtent
				zBlend := 1.0 - (zCur-b.lowerZBound)/zExtent

				z0 := linearInterp(swValue, seValue, xBlend)
				z1 := linearInterp(nwValue, neValue, xBlend)
				finalValue = linearInterp(z0, z1, zBlend)
			} else {
				finalValue = b.sourceModule.Value(xCur, 0, zCur)
			}
			b.destMap.SetValue(xi, zi, finalValue)
		}
	}

	logBuildDone("PlaneMapBuilder", start, nil)
	return nil
}

package noise

// A NoiseMap is this package's boundary artifact: the last thing it
// produces and the first thing a caller's own rendering, terrain, or
// export code consumes. This package deliberately stops at the grid of
// float64 values — turning a NoiseMap into an image, a heightfield mesh,
// or a tile set belongs to the caller, not here.
//
// Values returns the grid's backing row-major slice itself, not a copy,
// for callers that want to walk it without going through GetValue's
// per-cell bounds check. Writes through the returned slice change the
// map.
func (m *NoiseMap) Values() []float64 {
	return m.data
}

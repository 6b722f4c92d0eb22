package noise

// Select chooses between its first two sources based on the third
// (control) source's output relative to [LowerBound, UpperBound], with
// an optional smoothed transition zone of width EdgeFalloff around each
// bound. EdgeFalloff is clamped so the two falloff zones never overlap.
type Select struct {
	base
	LowerBound  float64
	UpperBound  float64
	EdgeFalloff float64
}

// NewSelect creates a Select selector with the given bounds and no
// edge falloff.
func NewSelect(lowerBound, upperBound float64) *Select {
	return &Select{base: newBase(3), LowerBound: lowerBound, UpperBound: upperBound}
}

func (s *Select) GetSourceModule(i int) Module { return s.getSource("Select", i) }

// SetEdgeFalloff sets the falloff width, clamping it to at most half the
// span between LowerBound and UpperBound so the two transition zones
// never overlap.
func (s *Select) SetEdgeFalloff(falloff float64) {
	boundSize := s.UpperBound - s.LowerBound
	half := boundSize / 2.0
	if falloff > half {
		falloff = half
	}
	if falloff < 0 {
		falloff = 0
	}
	s.EdgeFalloff = falloff
}

func (s *Select) Value(x, y, z float64) float64 {
	s.requireAll("Select")
	control := s.sources[2].Value(x, y, z)

	if s.EdgeFalloff > 0.0 {
		switch {
		case control < s.LowerBound-s.EdgeFalloff:
			return s.sources[0].Value(x, y, z)
		case control < s.LowerBound+s.EdgeFalloff:
			lower := s.LowerBound - s.EdgeFalloff
			upper := s.LowerBound + s.EdgeFalloff
			alpha := sCurve3((control - lower) / (upper - lower))
			return linearInterp(s.sources[0].Value(x, y, z), s.sources[1].Value(x, y, z), alpha)
		case control < s.UpperBound-s.EdgeFalloff:
			return s.sources[1].Value(x, y, z)
		case control < s.UpperBound+s.EdgeFalloff:
			lower := s.UpperBound - s.EdgeFalloff
			upper := s.UpperBound + s.EdgeFalloff
			alpha := sCurve3((control - lower) / (upper - lower))
			return linearInterp(s.sources[1].Value(x, y, z), s.sources[0].Value(x, y, z), alpha)
		default:
			return s.sources[0].Value(x, y, z)
		}
	}

	if control < s.LowerBound || control > s.UpperBound {
		return s.sources[0].Value(x, y, z)
	}
	return s.sources[1].Value(x, y, z)
}

// Blend linearly interpolates between its first two sources using its
// third (control) source, mapped from [-1,1] into the [0,1] blend
// fraction.
type Blend struct{ base }

// NewBlend creates a Blend selector.
func NewBlend() *Blend { return &Blend{base: newBase(3)} }

func (b *Blend) GetSourceModule(i int) Module { return b.getSource("Blend", i) }

func (b *Blend) Value(x, y, z float64) float64 {
	b.requireAll("Blend")
	alpha := (b.sources[2].Value(x, y, z) + 1.0) / 2.0
	return linearInterp(b.sources[0].Value(x, y, z), b.sources[1].Value(x, y, z), alpha)
}

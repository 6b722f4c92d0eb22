package noise

// Turbulence perturbs its single source's input coordinates using three
// internal Perlin generators (one per axis, seeded Seed, Seed+1 and
// Seed+2) scaled by Power, producing a warped, organic distortion.
type Turbulence struct {
	base
	Power float64

	xDistort *Perlin
	yDistort *Perlin
	zDistort *Perlin
}

// NewTurbulence creates a Turbulence transform with the given seed,
// frequency, roughness (octave count) and displacement power.
func NewTurbulence(seed int32, frequency float64, roughness int, power float64) *Turbulence {
	t := &Turbulence{
		base:     newBase(1),
		Power:    power,
		xDistort: NewPerlin(seed),
		yDistort: NewPerlin(seed + 1),
		zDistort: NewPerlin(seed + 2),
	}
	for _, p := range []*Perlin{t.xDistort, t.yDistort, t.zDistort} {
		p.Frequency = frequency
		_ = p.SetOctaveCount(roughness)
	}
	// Each axis samples a distinct region of the same distortion fields so
	// the three displacements are decorrelated despite sharing frequency
	// and roughness.
	return t
}

func (t *Turbulence) GetSourceModule(i int) Module { return t.getSource("Turbulence", i) }

func (t *Turbulence) Value(x, y, z float64) float64 {
	t.requireAll("Turbulence")

	const (
		xOff0, yOff0, zOff0 = 12414.0 / 65536.0, 65124.0 / 65536.0, 31337.0 / 65536.0
		xOff1, yOff1, zOff1 = 26519.0 / 65536.0, 18128.0 / 65536.0, 60493.0 / 65536.0
		xOff2, yOff2, zOff2 = 53820.0 / 65536.0, 11213.0 / 65536.0, 44845.0 / 65536.0
	)

	dx := x + t.xDistort.Value(x+xOff0, y+yOff0, z+zOff0)*t.Power
	dy := y + t.yDistort.Value(x+xOff1, y+yOff1, z+zOff1)*t.Power
	dz := z + t.zDistort.Value(x+xOff2, y+yOff2, z+zOff2)*t.Power

	return t.sources[0].Value(dx, dy, dz)
}

package noise

import "math"

// MinOctaves and MaxOctaves bound the fractal octave count (SPEC_FULL.md
// §3: octaveCount ∈ [1,30]).
const (
	MinOctaves = 1
	MaxOctaves = 30
)

// Perlin is a zero-source fractal generator summing octaves of
// gradient-coherent noise at geometrically increasing frequency and
// decreasing amplitude.
type Perlin struct {
	base
	Seed        int32
	Frequency   float64
	Lacunarity  float64
	Persistence float64
	OctaveCount int
	Quality     NoiseQuality
}

// NewPerlin creates a Perlin generator with libnoise's conventional
// defaults: frequency 1, lacunarity 2, persistence 0.5, 6 octaves, standard
// quality.
func NewPerlin(seed int32) *Perlin {
	return &Perlin{
		base:        newBase(0),
		Seed:        seed,
		Frequency:   1.0,
		Lacunarity:  2.0,
		Persistence: 0.5,
		OctaveCount: 6,
		Quality:     QualityStandard,
	}
}

func (p *Perlin) GetSourceModule(i int) Module { return p.getSource("Perlin", i) }

// SetOctaveCount validates and sets the octave count; it returns
// ErrInvalidParameter if n is outside [MinOctaves, MaxOctaves].
func (p *Perlin) SetOctaveCount(n int) error {
	if n < MinOctaves || n > MaxOctaves {
		return invalidParam("Perlin", "octave count out of [1,30]")
	}
	p.OctaveCount = n
	return nil
}

func (p *Perlin) Value(x, y, z float64) float64 {
	var value, curPersistence float64
	curPersistence = 1.0
	x *= p.Frequency
	y *= p.Frequency
	z *= p.Frequency

	for i := 0; i < p.OctaveCount; i++ {
		seed := (p.Seed + int32(i)) & 0x7fffffff
		signal := gradientCoherentNoise3D(makeInt32Range(x), makeInt32Range(y), makeInt32Range(z), seed, p.Quality)
		value += signal * curPersistence

		x *= p.Lacunarity
		y *= p.Lacunarity
		z *= p.Lacunarity
		curPersistence *= p.Persistence
	}
	return value
}

// Billow is a zero-source fractal generator like Perlin, but each octave's
// signal is folded through 2|s|-1 before accumulation, producing puffy,
// cloud-like output biased positive.
type Billow struct {
	base
	Seed        int32
	Frequency   float64
	Lacunarity  float64
	Persistence float64
	OctaveCount int
	Quality     NoiseQuality
}

// NewBillow creates a Billow generator with conventional defaults.
func NewBillow(seed int32) *Billow {
	return &Billow{
		base:        newBase(0),
		Seed:        seed,
		Frequency:   1.0,
		Lacunarity:  2.0,
		Persistence: 0.5,
		OctaveCount: 6,
		Quality:     QualityStandard,
	}
}

func (b *Billow) GetSourceModule(i int) Module { return b.getSource("Billow", i) }

// SetOctaveCount validates and sets the octave count.
func (b *Billow) SetOctaveCount(n int) error {
	if n < MinOctaves || n > MaxOctaves {
		return invalidParam("Billow", "octave count out of [1,30]")
	}
	b.OctaveCount = n
	return nil
}

func (b *Billow) Value(x, y, z float64) float64 {
	var value, curPersistence float64
	curPersistence = 1.0
	x *= b.Frequency
	y *= b.Frequency
	z *= b.Frequency

	for i := 0; i < b.OctaveCount; i++ {
		seed := (b.Seed + int32(i)) & 0x7fffffff
		signal := gradientCoherentNoise3D(makeInt32Range(x), makeInt32Range(y), makeInt32Range(z), seed, b.Quality)
		signal = 2.0*math.Abs(signal) - 1.0
		value += signal * curPersistence

		x *= b.Lacunarity
		y *= b.Lacunarity
		z *= b.Lacunarity
		curPersistence *= b.Persistence
	}
	return value + 0.5
}

// RidgedMulti is a zero-source fractal generator that emphasizes sharp
// ridges by squaring an inverted absolute-value signal and weighting
// successive octaves by how strong the previous one was.
type RidgedMulti struct {
	base
	Seed        int32
	Frequency   float64
	Lacunarity  float64
	OctaveCount int
	Quality     NoiseQuality
	Gain        float64
	Offset      float64

	spectralWeights []float64
	weightsFor      float64 // lacunarity the cached weights were built for
}

// NewRidgedMulti creates a RidgedMulti generator with defaults gain=2,
// offset=1, per SPEC_FULL.md §13(a).
func NewRidgedMulti(seed int32) *RidgedMulti {
	r := &RidgedMulti{
		base:        newBase(0),
		Seed:        seed,
		Frequency:   1.0,
		Lacunarity:  2.0,
		OctaveCount: 6,
		Quality:     QualityStandard,
		Gain:        2.0,
		Offset:      1.0,
	}
	r.buildSpectralWeights()
	return r
}

func (r *RidgedMulti) GetSourceModule(i int) Module { return r.getSource("RidgedMulti", i) }

// SetOctaveCount validates and sets the octave count.
func (r *RidgedMulti) SetOctaveCount(n int) error {
	if n < MinOctaves || n > MaxOctaves {
		return invalidParam("RidgedMulti", "octave count out of [1,30]")
	}
	r.OctaveCount = n
	return nil
}

// SetLacunarity sets the lacunarity and invalidates the cached spectral
// weight table so it is rebuilt for the new value on next evaluation.
func (r *RidgedMulti) SetLacunarity(l float64) {
	r.Lacunarity = l
}

func (r *RidgedMulti) buildSpectralWeights() {
	const h = 1.0
	r.spectralWeights = make([]float64, MaxOctaves)
	freq := 1.0
	for i := 0; i < MaxOctaves; i++ {
		r.spectralWeights[i] = math.Pow(freq, -h)
		freq *= r.Lacunarity
	}
	r.weightsFor = r.Lacunarity
}

func (r *RidgedMulti) Value(x, y, z float64) float64 {
	if r.spectralWeights == nil || r.weightsFor != r.Lacunarity {
		r.buildSpectralWeights()
	}

	x *= r.Frequency
	y *= r.Frequency
	z *= r.Frequency

	var value, weight float64
	weight = 1.0

	for i := 0; i < r.OctaveCount; i++ {
		seed := (r.Seed + int32(i)) & 0x7fffffff
		signal := gradientCoherentNoise3D(makeInt32Range(x), makeInt32Range(y), makeInt32Range(z), seed, r.Quality)

		signal = r.Offset - math.Abs(signal)
		signal *= signal
		signal *= weight

		weight = clampF(signal*r.Gain, 0.0, 1.0)

		value += signal * r.spectralWeights[i]

		x *= r.Lacunarity
		y *= r.Lacunarity
		z *= r.Lacunarity
	}

	return value*1.25 - 1.0
}

package noise

import perlin "github.com/aquilax/go-perlin"

// ClassicPerlin is a zero-source generator delegating to the upstream
// github.com/aquilax/go-perlin library — a traditional permutation-table
// Perlin implementation, grounded directly on the teacher's own use of that
// package (examples/Voxel/gocraft.go: perlin.NewPerlin(alpha, beta, n,
// seed)).
//
// It is NOT bit-exact with Perlin/Billow/RidgedMulti: go-perlin uses its
// own hash/permutation scheme, not the 1619/31337/6971/1013 lattice hash
// SPEC_FULL.md §6 fixes for this package's own generators. Use it only when
// the caller explicitly wants a classic-look noise source and does not
// require reproducibility against the rest of this library's bit-exact
// contract.
type ClassicPerlin struct {
	base
	impl *perlin.Perlin
}

// NewClassicPerlin creates a ClassicPerlin generator. alpha and beta are
// go-perlin's amplitude/frequency multipliers per octave and n is its
// octave count, mirroring the upstream constructor signature.
func NewClassicPerlin(alpha, beta float64, n int32, seed int64) *ClassicPerlin {
	return &ClassicPerlin{
		base: newBase(0),
		impl: perlin.NewPerlin(alpha, beta, n, seed),
	}
}

func (c *ClassicPerlin) GetSourceModule(i int) Module { return c.getSource("ClassicPerlin", i) }

func (c *ClassicPerlin) Value(x, y, z float64) float64 {
	return c.impl.Noise3D(x, y, z)
}

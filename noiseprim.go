package noise

import "math"

// Hash constants from SPEC_FULL.md §6. These are part of the public
// contract and must never change: every seeded generator's output depends
// on them bit-for-bit.
const (
	hashX    int32 = 1619
	hashY    int32 = 31337
	hashZ    int32 = 6971
	hashSeed int32 = 1013

	hashMulA int32 = 60493
	hashMulB int32 = 19990303
	hashMulC int32 = 1376312589

	gradientScale = 2.12
)

// gradientTable holds 256 fixed unit(-ish) 3D gradient vectors, indexed by
// (ix*hashX + iy*hashY + iz*hashZ + seed*hashSeed) & 0xff. The table is
// computed once, deterministically, from a Fibonacci-sphere lattice (no
// runtime randomness) so that it is identical across processes, platforms,
// and runs — the property SPEC_FULL.md §6 requires of the table, even
// though its concrete values are this implementation's own fixed table
// rather than a byte-for-byte copy of another implementation's (see
// DESIGN.md for why).
var gradientTable = buildGradientTable()

func buildGradientTable() [256][3]float64 {
	var table [256][3]float64
	const n = 256
	goldenAngle := math.Pi * (3.0 - math.Sqrt(5.0))
	for i := 0; i < n; i++ {
		// Fibonacci lattice on the unit sphere: evenly distributed, fully
		// deterministic given i, no seed or RNG involved.
		yv := 1.0 - (float64(i)+0.5)*(2.0/float64(n))
		radius := math.Sqrt(math.Max(0, 1.0-yv*yv))
		theta := goldenAngle * float64(i)
		x := math.Cos(theta) * radius
		z := math.Sin(theta) * radius
		table[i] = [3]float64{x, yv, z}
	}
	return table
}

func gradientIndex(ix, iy, iz, seed int32) int {
	n := hashX*ix + hashY*iy + hashZ*iz + hashSeed*seed
	return int(n & 0xff)
}

// intValueNoise3D returns a pseudo-random, deterministic value in [-1,1]
// for the integer lattice point (ix,iy,iz) under seed. Also used to jitter
// Voronoi cell sites.
func intValueNoise3D(ix, iy, iz, seed int32) float64 {
	n := (hashX*ix + hashY*iy + hashZ*iz + hashSeed*seed) & 0x7fffffff
	n = (n >> 13) ^ n
	n = (n*(n*n*hashMulA+hashMulB) + hashMulC) & 0x7fffffff
	return 1.0 - float64(n)/1073741824.0
}

// gradientNoise3D returns the dot product of the gradient vector selected
// at lattice point (ix,iy,iz,seed) with the offset from that lattice point
// to (fx,fy,fz), scaled into [-1,1].
func gradientNoise3D(fx, fy, fz float64, ix, iy, iz, seed int32) float64 {
	g := gradientTable[gradientIndex(ix, iy, iz, seed)]
	dx := fx - float64(ix)
	dy := fy - float64(iy)
	dz := fz - float64(iz)
	return (g[0]*dx + g[1]*dy + g[2]*dz) * gradientScale
}

// valueNoise3D is trilinearly-interpolated hashed value noise (not
// gradient noise): a cheaper, less directional coherent-noise primitive
// built from intValueNoise3D at the eight surrounding lattice points.
func valueNoise3D(x, y, z float64, seed int32) float64 {
	x = makeInt32Range(x)
	y = makeInt32Range(y)
	z = makeInt32Range(z)

	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)
	ix0 := int32(x0)
	iy0 := int32(y0)
	iz0 := int32(z0)
	ix1 := ix0 + 1
	iy1 := iy0 + 1
	iz1 := iz0 + 1

	xs := sCurve5(x - x0)
	ys := sCurve5(y - y0)
	zs := sCurve5(z - z0)

	n0 := intValueNoise3D(ix0, iy0, iz0, seed)
	n1 := intValueNoise3D(ix1, iy0, iz0, seed)
	ix0y1 := linearInterp(n0, n1, xs)
	n0 = intValueNoise3D(ix0, iy1, iz0, seed)
	n1 = intValueNoise3D(ix1, iy1, iz0, seed)
	ix1y1 := linearInterp(n0, n1, xs)
	iy0z0 := linearInterp(ix0y1, ix1y1, ys)

	n0 = intValueNoise3D(ix0, iy0, iz1, seed)
	n1 = intValueNoise3D(ix1, iy0, iz1, seed)
	ix0y0z1 := linearInterp(n0, n1, xs)
	n0 = intValueNoise3D(ix0, iy1, iz1, seed)
	n1 = intValueNoise3D(ix1, iy1, iz1, seed)
	ix1y1z1 := linearInterp(n0, n1, xs)
	iy0z1 := linearInterp(ix0y0z1, ix1y1z1, ys)

	return linearInterp(iy0z0, iy0z1, zs)
}

// gradientCoherentNoise3D interpolates gradient noise across the eight
// lattice points surrounding (x,y,z), using the s-curve selected by
// quality. Output is in [-1,1] to within 1e-9.
func gradientCoherentNoise3D(x, y, z float64, seed int32, quality NoiseQuality) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)
	ix0 := int32(x0)
	iy0 := int32(y0)
	iz0 := int32(z0)
	ix1 := ix0 + 1
	iy1 := iy0 + 1
	iz1 := iz0 + 1

	var xs, ys, zs float64
	switch quality {
	case QualityFast:
		xs, ys, zs = sCurve3(x-x0), sCurve3(y-y0), sCurve3(z-z0)
	default: // QualityStandard, QualityBest
		xs, ys, zs = sCurve5(x-x0), sCurve5(y-y0), sCurve5(z-z0)
	}

	n0 := gradientNoise3D(x, y, z, ix0, iy0, iz0, seed)
	n1 := gradientNoise3D(x, y, z, ix1, iy0, iz0, seed)
	ix0y0z0 := linearInterp(n0, n1, xs)

	n0 = gradientNoise3D(x, y, z, ix0, iy1, iz0, seed)
	n1 = gradientNoise3D(x, y, z, ix1, iy1, iz0, seed)
	ix0y1z0 := linearInterp(n0, n1, xs)

	iy0z0 := linearInterp(ix0y0z0, ix0y1z0, ys)

	n0 = gradientNoise3D(x, y, z, ix0, iy0, iz1, seed)
	n1 = gradientNoise3D(x, y, z, ix1, iy0, iz1, seed)
	ix0y0z1 := linearInterp(n0, n1, xs)

	n0 = gradientNoise3D(x, y, z, ix0, iy1, iz1, seed)
	n1 = gradientNoise3D(x, y, z, ix1, iy1, iz1, seed)
	ix0y1z1 := linearInterp(n0, n1, xs)

	iy0z1 := linearInterp(ix0y0z1, ix0y1z1, ys)

	return linearInterp(iy0z0, iy0z1, zs)
}

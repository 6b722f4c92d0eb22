package noise

import "math"

// DistanceFunction selects how Voronoi measures distance to candidate
// cell sites.
type DistanceFunction int

const (
	DistanceEuclid DistanceFunction = iota
	DistanceEuclidSq
	DistanceManhattan
	DistanceChebyshev
	DistanceQuadratic
)

func measureDistance(fn DistanceFunction, dx, dy, dz float64) float64 {
	switch fn {
	case DistanceEuclidSq:
		return dx*dx + dy*dy + dz*dz
	case DistanceManhattan:
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz)
	case DistanceChebyshev:
		return maxF(math.Abs(dx), maxF(math.Abs(dy), math.Abs(dz)))
	case DistanceQuadratic:
		return dx*dx + dy*dy + dz*dz + dx*dy + dy*dz + dx*dz
	default: // DistanceEuclid
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
}

// Voronoi is a zero-source generator partitioning space into cells around
// jittered lattice sites. Each cell's value is derived from a hash of its
// site, optionally biased by distance to the nearest site so that cell
// boundaries approach +1.
type Voronoi struct {
	base
	Seed             int32
	Frequency        float64
	Displacement     float64
	EnableDistance   bool
	DistanceFunction DistanceFunction
}

// NewVoronoi creates a Voronoi generator with displacement 1 and distance
// coloring disabled.
func NewVoronoi(seed int32) *Voronoi {
	return &Voronoi{
		base:             newBase(0),
		Seed:             seed,
		Frequency:        1.0,
		Displacement:     1.0,
		EnableDistance:   false,
		DistanceFunction: DistanceEuclid,
	}
}

func (v *Voronoi) GetSourceModule(i int) Module { return v.getSource("Voronoi", i) }

func (v *Voronoi) Value(x, y, z float64) float64 {
	x *= v.Frequency
	y *= v.Frequency
	z *= v.Frequency

	xi := int32(math.Floor(x))
	yi := int32(math.Floor(y))
	zi := int32(math.Floor(z))

	minDist := math.MaxFloat64
	var nearestX, nearestY, nearestZ float64

	for zc := zi - 1; zc <= zi+1; zc++ {
		for yc := yi - 1; yc <= yi+1; yc++ {
			for xc := xi - 1; xc <= xi+1; xc++ {
				siteX := float64(xc) + intValueNoise3D(xc, yc, zc, v.Seed)
				siteY := float64(yc) + intValueNoise3D(xc, yc, zc, v.Seed+1)
				siteZ := float64(zc) + intValueNoise3D(xc, yc, zc, v.Seed+2)

				dist := measureDistance(v.DistanceFunction, siteX-x, siteY-y, siteZ-z)
				if dist < minDist {
					minDist = dist
					nearestX, nearestY, nearestZ = siteX, siteY, siteZ
				}
			}
		}
	}

	value := intValueNoise3D(
		int32(math.Floor(nearestX)),
		int32(math.Floor(nearestY)),
		int32(math.Floor(nearestZ)),
		v.Seed,
	) * v.Displacement

	if v.EnableDistance {
		value += math.Sqrt(minDist) * (math.Sqrt(3.0) - 1.0)
	}
	return value
}

// Package noise implements a coherent-noise synthesis library: a toolkit of
// composable value-producing nodes ("modules") over 3D space, used to build
// procedural textures and terrain-like heightmaps.
//
// A Module is a pure function f: (x, y, z) -> float64 that may recursively
// evaluate zero or more source modules. Complex effects are expressed by
// wiring many small modules (generators, modifiers, combiners, selectors,
// transforms) into a directed acyclic graph and handing the root to one of
// the NoiseMapBuilder types, which samples it onto a 2D grid.
package noise

// NoiseQuality selects the smoothing function used by gradient-coherent
// noise.
type NoiseQuality int

const (
	// QualityFast uses the cubic s-curve (3t^2 - 2t^3).
	QualityFast NoiseQuality = iota
	// QualityStandard uses the quintic s-curve (6t^5 - 15t^4 + 10t^3).
	QualityStandard
	// QualityBest uses the same quintic s-curve and the same gradient
	// blending as QualityStandard, so both produce identical output.
	QualityBest
)

func (q NoiseQuality) String() string {
	switch q {
	case QualityFast:
		return "fast"
	case QualityStandard:
		return "standard"
	case QualityBest:
		return "best"
	default:
		return "unknown"
	}
}

// Module is the single interface every noise-graph node implements. Source
// slots are assigned by reference and do not transfer ownership; the DAG
// root held by the caller must outlive every evaluation that walks it.
type Module interface {
	// SourceModuleCount returns the fixed arity of this module type.
	SourceModuleCount() int

	// GetSourceModule returns the module wired into slot i. It panics with
	// a *ModuleError wrapping ErrNoSourceModule if the slot is empty or out
	// of range — by spec this is a programmer error, not a recoverable
	// condition (see SPEC_FULL.md §7).
	GetSourceModule(i int) Module

	// SetSourceModule wires src into slot i. It panics if i is out of
	// range for this module's arity.
	SetSourceModule(i int, src Module)

	// Value evaluates the module at (x, y, z). It panics with a
	// *ModuleError wrapping ErrNoSourceModule if any required source slot
	// is empty.
	Value(x, y, z float64) float64
}

// base implements the source-slot bookkeeping shared by every module type.
// Embedding it gives a module SourceModuleCount/GetSourceModule/
// SetSourceModule for free; the embedding type supplies its own Value and
// a GetSourceModule that passes its type name to getSource (base has no
// notion of its own concrete type name, so callers of missingSource pass
// it explicitly).
type base struct {
	sources []Module
}

func newBase(arity int) base {
	return base{sources: make([]Module, arity)}
}

func (b *base) SourceModuleCount() int { return len(b.sources) }

func (b *base) getSource(name string, i int) Module {
	if i < 0 || i >= len(b.sources) || b.sources[i] == nil {
		panic(missingSource(name, i))
	}
	return b.sources[i]
}

func (b *base) SetSourceModule(i int, src Module) {
	b.sources[i] = src
}

// GetSourceModule implements Module using a generic type name; modules with
// a more specific panic message override this method.
func (b *base) GetSourceModule(i int) Module {
	return b.getSource("Module", i)
}

// requireAll panics with the given module's name if any source slot is
// unpopulated. Used by Value implementations that need every slot before
// evaluating, matching invariant I1 in SPEC_FULL.md §3.
func (b *base) requireAll(name string) {
	for i, s := range b.sources {
		if s == nil {
			panic(missingSource(name, i))
		}
	}
}

package noise

import "math"

// Abs returns the absolute value of its single source's output.
type Abs struct{ base }

// NewAbs creates an Abs modifier.
func NewAbs() *Abs { return &Abs{base: newBase(1)} }

func (m *Abs) GetSourceModule(i int) Module { return m.getSource("Abs", i) }

func (m *Abs) Value(x, y, z float64) float64 {
	m.requireAll("Abs")
	return math.Abs(m.sources[0].Value(x, y, z))
}

// Invert negates its single source's output.
type Invert struct{ base }

// NewInvert creates an Invert modifier.
func NewInvert() *Invert { return &Invert{base: newBase(1)} }

func (m *Invert) GetSourceModule(i int) Module { return m.getSource("Invert", i) }

func (m *Invert) Value(x, y, z float64) float64 {
	m.requireAll("Invert")
	return -m.sources[0].Value(x, y, z)
}

// ScaleBias applies v*Scale + Bias to its single source's output.
type ScaleBias struct {
	base
	Scale float64
	Bias  float64
}

// NewScaleBias creates a ScaleBias modifier.
func NewScaleBias(scale, bias float64) *ScaleBias {
	return &ScaleBias{base: newBase(1), Scale: scale, Bias: bias}
}

func (m *ScaleBias) GetSourceModule(i int) Module { return m.getSource("ScaleBias", i) }

func (m *ScaleBias) Value(x, y, z float64) float64 {
	m.requireAll("ScaleBias")
	return m.sources[0].Value(x, y, z)*m.Scale + m.Bias
}

// Clamp restricts its single source's output to [Lower, Upper].
type Clamp struct {
	base
	Lower float64
	Upper float64
}

// NewClamp creates a Clamp modifier.
func NewClamp(lower, upper float64) *Clamp {
	return &Clamp{base: newBase(1), Lower: lower, Upper: upper}
}

func (m *Clamp) GetSourceModule(i int) Module { return m.getSource("Clamp", i) }

func (m *Clamp) Value(x, y, z float64) float64 {
	m.requireAll("Clamp")
	return clampF(m.sources[0].Value(x, y, z), m.Lower, m.Upper)
}

// Exponent raises its single source's normalized output to a power,
// re-expanding the result back into [-1,1].
type Exponent struct {
	base
	ExponentValue float64
}

// NewExponent creates an Exponent modifier.
func NewExponent(exponent float64) *Exponent {
	return &Exponent{base: newBase(1), ExponentValue: exponent}
}

func (m *Exponent) GetSourceModule(i int) Module { return m.getSource("Exponent", i) }

func (m *Exponent) Value(x, y, z float64) float64 {
	m.requireAll("Exponent")
	v := m.sources[0].Value(x, y, z)
	return math.Pow(math.Abs((v+1.0)/2.0), m.ExponentValue)*2.0 - 1.0
}

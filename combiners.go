package noise

import "math"

// Add outputs the sum of its two sources.
type Add struct{ base }

// NewAdd creates an Add combiner.
func NewAdd() *Add { return &Add{base: newBase(2)} }

func (m *Add) GetSourceModule(i int) Module { return m.getSource("Add", i) }

func (m *Add) Value(x, y, z float64) float64 {
	m.requireAll("Add")
	return m.sources[0].Value(x, y, z) + m.sources[1].Value(x, y, z)
}

// Multiply outputs the product of its two sources.
type Multiply struct{ base }

// NewMultiply creates a Multiply combiner.
func NewMultiply() *Multiply { return &Multiply{base: newBase(2)} }

func (m *Multiply) GetSourceModule(i int) Module { return m.getSource("Multiply", i) }

func (m *Multiply) Value(x, y, z float64) float64 {
	m.requireAll("Multiply")
	return m.sources[0].Value(x, y, z) * m.sources[1].Value(x, y, z)
}

// Min outputs the smaller of its two sources.
type Min struct{ base }

// NewMin creates a Min combiner.
func NewMin() *Min { return &Min{base: newBase(2)} }

func (m *Min) GetSourceModule(i int) Module { return m.getSource("Min", i) }

func (m *Min) Value(x, y, z float64) float64 {
	m.requireAll("Min")
	return minF(m.sources[0].Value(x, y, z), m.sources[1].Value(x, y, z))
}

// Max outputs the larger of its two sources.
type Max struct{ base }

// NewMax creates a Max combiner.
func NewMax() *Max { return &Max{base: newBase(2)} }

func (m *Max) GetSourceModule(i int) Module { return m.getSource("Max", i) }

func (m *Max) Value(x, y, z float64) float64 {
	m.requireAll("Max")
	return maxF(m.sources[0].Value(x, y, z), m.sources[1].Value(x, y, z))
}

// Power raises the first source to the power of the second.
type Power struct{ base }

// NewPower creates a Power combiner.
func NewPower() *Power { return &Power{base: newBase(2)} }

func (m *Power) GetSourceModule(i int) Module { return m.getSource("Power", i) }

func (m *Power) Value(x, y, z float64) float64 {
	m.requireAll("Power")
	return math.Pow(m.sources[0].Value(x, y, z), m.sources[1].Value(x, y, z))
}

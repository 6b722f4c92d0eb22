package noise

import "testing"

func TestNoiseMapGetSetValue(t *testing.T) {
	m := NewNoiseMap(4, 3)
	m.SetValue(1, 2, 7.5)
	if got := m.GetValue(1, 2); got != 7.5 {
		t.Errorf("GetValue(1,2) = %v, want 7.5", got)
	}
}

func TestNoiseMapDimensions(t *testing.T) {
	m := NewNoiseMap(5, 9)
	if m.Width() != 5 || m.Height() != 9 {
		t.Errorf("Width/Height = %d/%d, want 5/9", m.Width(), m.Height())
	}
}

func TestNoiseMapOutOfRangeReturnsBorderValue(t *testing.T) {
	m := NewNoiseMap(2, 2)
	m.SetBorderValue(-9.0)
	if got := m.GetValue(-1, 0); got != -9.0 {
		t.Errorf("GetValue out of range = %v, want border value -9", got)
	}
	if got := m.GetValue(0, 99); got != -9.0 {
		t.Errorf("GetValue out of range = %v, want border value -9", got)
	}
}

func TestNoiseMapSetValueOutOfRangeIgnored(t *testing.T) {
	m := NewNoiseMap(2, 2)
	m.SetValue(-1, 0, 5.0) // should not panic or corrupt the grid
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if m.GetValue(x, y) != 0.0 {
				t.Fatalf("GetValue(%d,%d) = %v after an out-of-range SetValue, want 0", x, y, m.GetValue(x, y))
			}
		}
	}
}

func TestNoiseMapSetSizeResets(t *testing.T) {
	m := NewNoiseMap(2, 2)
	m.SetValue(0, 0, 3.0)
	m.SetSize(3, 3)
	if m.Width() != 3 || m.Height() != 3 {
		t.Errorf("dimensions after SetSize = %d/%d, want 3/3", m.Width(), m.Height())
	}
	if got := m.GetValue(0, 0); got != 0.0 {
		t.Errorf("GetValue(0,0) after SetSize = %v, want 0 (cleared)", got)
	}
}

func TestNoiseMapClear(t *testing.T) {
	m := NewNoiseMap(2, 2)
	m.Clear(4.0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := m.GetValue(x, y); got != 4.0 {
				t.Fatalf("GetValue(%d,%d) after Clear(4) = %v, want 4", x, y, got)
			}
		}
	}
}

func TestNoiseMapValuesExposesBackingData(t *testing.T) {
	m := NewNoiseMap(2, 1)
	m.SetValue(0, 0, 1.0)
	m.SetValue(1, 0, 2.0)
	vals := m.Values()
	if len(vals) != 2 || vals[0] != 1.0 || vals[1] != 2.0 {
		t.Errorf("Values() = %v, want [1 2]", vals)
	}
}

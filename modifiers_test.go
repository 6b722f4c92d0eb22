package noise

import "testing"

func TestAbsValue(t *testing.T) {
	a := NewAbs()
	a.SetSourceModule(0, NewConst(-3.0))
	if got := a.Value(0, 0, 0); got != 3.0 {
		t.Errorf("Abs(Const(-3)).Value() = %v, want 3", got)
	}
}

func TestInvertValue(t *testing.T) {
	inv := NewInvert()
	inv.SetSourceModule(0, NewConst(2.0))
	if got := inv.Value(0, 0, 0); got != -2.0 {
		t.Errorf("Invert(Const(2)).Value() = %v, want -2", got)
	}
}

func TestScaleBiasValue(t *testing.T) {
	sb := NewScaleBias(2.0, 1.0)
	sb.SetSourceModule(0, NewConst(3.0))
	if got := sb.Value(0, 0, 0); got != 7.0 {
		t.Errorf("ScaleBias(2,1)(Const(3)).Value() = %v, want 7", got)
	}
}

func TestClampValue(t *testing.T) {
	c := NewClamp(-1.0, 1.0)
	c.SetSourceModule(0, NewConst(5.0))
	if got := c.Value(0, 0, 0); got != 1.0 {
		t.Errorf("Clamp(-1,1)(Const(5)).Value() = %v, want 1", got)
	}
	c.SetSourceModule(0, NewConst(-5.0))
	if got := c.Value(0, 0, 0); got != -1.0 {
		t.Errorf("Clamp(-1,1)(Const(-5)).Value() = %v, want -1", got)
	}
}

func TestExponentIdentityAtOne(t *testing.T) {
	e := NewExponent(1.0)
	e.SetSourceModule(0, NewConst(0.4))
	got := e.Value(0, 0, 0)
	if diff := got - 0.4; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Exponent(1)(Const(0.4)).Value() = %v, want ~0.4", got)
	}
}

func TestExponentPullsMidRangeValuesDown(t *testing.T) {
	e := NewExponent(3.0)
	e.SetSourceModule(0, NewConst(0.9))
	got := e.Value(0, 0, 0)
	if got >= 0.9 {
		t.Errorf("Exponent(3) of 0.9 should pull it below 0.9 (sharper peaks, flatter valleys), got %v", got)
	}
}

func TestExponentFixedAtExtremes(t *testing.T) {
	e := NewExponent(5.0)
	e.SetSourceModule(0, NewConst(1.0))
	if got := e.Value(0, 0, 0); got < 0.999 {
		t.Errorf("Exponent(5)(Const(1)).Value() = %v, want ~1", got)
	}
}

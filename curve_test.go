package noise

import "testing"

func TestCurveRequiresFourPoints(t *testing.T) {
	c := NewCurve()
	c.SetSourceModule(0, NewConst(0.5))
	_ = c.AddControlPoint(0.0, 0.0)
	_ = c.AddControlPoint(1.0, 1.0)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic evaluating Curve with fewer than 4 control points")
		}
	}()
	c.Value(0, 0, 0)
}

func TestCurveRejectsDuplicateInput(t *testing.T) {
	c := NewCurve()
	if err := c.AddControlPoint(0.5, 1.0); err != nil {
		t.Fatalf("first AddControlPoint(0.5,...) failed: %v", err)
	}
	if err := c.AddControlPoint(0.5, 2.0); err == nil {
		t.Error("AddControlPoint with a duplicate input should be rejected")
	}
}

func TestCurvePassesThroughControlPoints(t *testing.T) {
	c := NewCurve()
	c.SetSourceModule(0, NewConst(0.0))
	_ = c.AddControlPoint(-1.0, -1.0)
	_ = c.AddControlPoint(0.0, 0.2)
	_ = c.AddControlPoint(0.5, 0.6)
	_ = c.AddControlPoint(1.0, 1.0)

	got := c.Value(0, 0, 0)
	if diff := got - 0.2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Curve at an exact control point input = %v, want ~0.2", got)
	}
}

func TestCurveClampsOutsideRange(t *testing.T) {
	c := NewCurve()
	src := NewConst(0.0)
	c.SetSourceModule(0, src)
	_ = c.AddControlPoint(-1.0, -1.0)
	_ = c.AddControlPoint(0.0, 0.2)
	_ = c.AddControlPoint(0.5, 0.6)
	_ = c.AddControlPoint(1.0, 1.0)

	src.Value_ = -5.0
	if got := c.Value(0, 0, 0); got != -1.0 {
		t.Errorf("Curve below range = %v, want clamped to -1.0 (lowest control point output)", got)
	}

	src.Value_ = 5.0
	if got := c.Value(0, 0, 0); got != 1.0 {
		t.Errorf("Curve above range = %v, want clamped to 1.0 (highest control point output), not extrapolated", got)
	}
}

func TestCurveControlPointCount(t *testing.T) {
	c := NewCurve()
	_ = c.AddControlPoint(0.0, 0.0)
	_ = c.AddControlPoint(1.0, 1.0)
	if c.ControlPointCount() != 2 {
		t.Errorf("ControlPointCount() = %d, want 2", c.ControlPointCount())
	}
	c.ClearControlPoints()
	if c.ControlPointCount() != 0 {
		t.Errorf("ControlPointCount() after Clear = %d, want 0", c.ControlPointCount())
	}
}

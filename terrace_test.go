package noise

import "testing"

func TestTerraceRequiresTwoPoints(t *testing.T) {
	tr := NewTerrace()
	tr.SetSourceModule(0, NewConst(0.5))
	_ = tr.AddControlPoint(0.0)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic evaluating Terrace with fewer than 2 control points")
		}
	}()
	tr.Value(0, 0, 0)
}

func TestTerraceClampsOutsideRange(t *testing.T) {
	tr := NewTerrace()
	_ = tr.AddControlPoint(-1.0)
	_ = tr.AddControlPoint(1.0)

	tr.SetSourceModule(0, NewConst(5.0))
	if got := tr.Value(0, 0, 0); got != 1.0 {
		t.Errorf("Terrace above the top control point = %v, want 1", got)
	}
	tr.SetSourceModule(0, NewConst(-5.0))
	if got := tr.Value(0, 0, 0); got != -1.0 {
		t.Errorf("Terrace below the bottom control point = %v, want -1", got)
	}
}

func TestTerraceMidpointIsPulledBelowLinear(t *testing.T) {
	tr := NewTerrace()
	_ = tr.AddControlPoint(0.0)
	_ = tr.AddControlPoint(1.0)
	tr.SetSourceModule(0, NewConst(0.5))

	got := tr.Value(0, 0, 0)
	// alpha^2 at alpha=0.5 is 0.25, below the linear midpoint of 0.5.
	if got >= 0.5 {
		t.Errorf("Terrace midpoint = %v, want pulled below the linear 0.5 by the alpha^2 step", got)
	}
}

func TestTerraceInvertSwapsStepDirection(t *testing.T) {
	plain := NewTerrace()
	_ = plain.AddControlPoint(0.0)
	_ = plain.AddControlPoint(1.0)
	plain.SetSourceModule(0, NewConst(0.5))

	inverted := NewTerrace()
	inverted.Invert = true
	_ = inverted.AddControlPoint(0.0)
	_ = inverted.AddControlPoint(1.0)
	inverted.SetSourceModule(0, NewConst(0.5))

	if plain.Value(0, 0, 0) == inverted.Value(0, 0, 0) {
		t.Error("Invert had no effect on Terrace output at the midpoint")
	}
}

func TestTerraceControlPointCount(t *testing.T) {
	tr := NewTerrace()
	_ = tr.AddControlPoint(0.0)
	_ = tr.AddControlPoint(1.0)
	if tr.ControlPointCount() != 2 {
		t.Errorf("ControlPointCount() = %d, want 2", tr.ControlPointCount())
	}
	tr.ClearControlPoints()
	if tr.ControlPointCount() != 0 {
		t.Errorf("ControlPointCount() after Clear = %d, want 0", tr.ControlPointCount())
	}
}

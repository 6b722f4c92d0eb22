package noise

import (
	"errors"
	"testing"
)

func TestPlaneMapBuilderRequiresSourceModule(t *testing.T) {
	b := NewPlaneMapBuilder()
	_ = b.SetBounds(0, 1, 0, 1)
	b.SetDestNoiseMap(NewNoiseMap(1, 1))
	b.SetDestSize(4, 4)

	if err := b.Build(); !errors.Is(err, ErrNoSourceModule) {
		t.Errorf("Build() with no source module = %v, want ErrNoSourceModule", err)
	}
}

func TestPlaneMapBuilderRequiresDestMap(t *testing.T) {
	b := NewPlaneMapBuilder()
	_ = b.SetBounds(0, 1, 0, 1)
	b.SetSourceModule(NewConst(1.0))
	b.SetDestSize(4, 4)

	if err := b.Build(); !errors.Is(err, ErrNoDestNoiseMap) {
		t.Errorf("Build() with no dest map = %v, want ErrNoDestNoiseMap", err)
	}
}

func TestPlaneMapBuilderRejectsBadBounds(t *testing.T) {
	b := NewPlaneMapBuilder()
	if err := b.SetBounds(1, 0, 0, 1); err == nil {
		t.Error("SetBounds with lowerX > upperX should be rejected")
	}
}

func TestPlaneMapBuilderFillsDestMap(t *testing.T) {
	b := NewPlaneMapBuilder()
	_ = b.SetBounds(0, 2, 0, 2)
	b.SetSourceModule(NewConst(3.0))
	dest := NewNoiseMap(1, 1)
	b.SetDestNoiseMap(dest)
	b.SetDestSize(4, 4)

	if err := b.Build(); err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}
	if dest.Width() != 4 || dest.Height() != 4 {
		t.Fatalf("dest map resized to %dx%d, want 4x4", dest.Width(), dest.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := dest.GetValue(x, y); got != 3.0 {
				t.Fatalf("GetValue(%d,%d) = %v, want 3 for a constant source", x, y, got)
			}
		}
	}
}

func TestPlaneMapBuilderSeamlessMatchesBlendInvariant(t *testing.T) {
	// The seamless corner-blend is constructed so that the value it
	// produces at the grid's first column (x=lowerXBound) equals the
	// source's raw value at the opposite edge (x=upperXBound): at
	// xCur=lowerXBound, xBlend=1 selects the "east" corner sample outright.
	source := NewPerlin(7)
	b := NewPlaneMapBuilder()
	_ = b.SetBounds(0, 4, 0, 4)
	b.SetSourceModule(source)
	b.EnableSeamless(true)
	dest := NewNoiseMap(1, 1)
	b.SetDestNoiseMap(dest)
	b.SetDestSize(8, 1)

	if err := b.Build(); err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}

	// Row 0 sits at z=lowerZBound=0, so zBlend=1 too and the whole seamless
	// formula collapses to the source's raw value at the far corner.
	got := dest.GetValue(0, 0)
	want := source.Value(4, 0, 4)
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("seamless plane corner value = %v, want %v (raw value at the opposite corner)", got, want)
	}
}

func TestPlaneMapBuilderSeamlessDiffersFromNonSeamless(t *testing.T) {
	// Bounds are offset from the integer lattice: Perlin is exactly 0 at
	// lattice points, so corners at (0,0) and (4,4) would both read 0.
	build := func(seamless bool) float64 {
		b := NewPlaneMapBuilder()
		_ = b.SetBounds(0.3, 4.3, 0.3, 4.3)
		b.SetSourceModule(NewPerlin(7))
		b.EnableSeamless(seamless)
		dest := NewNoiseMap(1, 1)
		b.SetDestNoiseMap(dest)
		b.SetDestSize(8, 8)
		if err := b.Build(); err != nil {
			t.Fatalf("Build() returned unexpected error: %v", err)
		}
		return dest.GetValue(0, 0)
	}

	if build(false) == build(true) {
		t.Error("seamless and non-seamless builds produced identical corner values; expected blending to change it")
	}
}

package mathutil

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: expected [5 7 9], got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: expected [3 3 3], got %v", got)
	}
	if got := a.Mul(b); got != (Vec3{4, 10, 18}) {
		t.Errorf("Mul: expected [4 10 18], got %v", got)
	}
	if got := b.Div(Vec3{2, 5, 3}); got != (Vec3{2, 1, 2}) {
		t.Errorf("Div: expected [2 1 2], got %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: expected [2 4 6], got %v", got)
	}
	if got := b.DivScalar(2); got != (Vec3{2, 2.5, 3}) {
		t.Errorf("DivScalar: expected [2 2.5 3], got %v", got)
	}
	if got := a.AddScalar(1); got != (Vec3{2, 3, 4}) {
		t.Errorf("AddScalar: expected [2 3 4], got %v", got)
	}
	if got := a.SubScalar(1); got != (Vec3{0, 1, 2}) {
		t.Errorf("SubScalar: expected [0 1 2], got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Fatalf("expected unit length, got %v", n.Len())
	}
	if math.Abs(n[0]-0.6) > 1e-12 || math.Abs(n[2]-0.8) > 1e-12 {
		t.Errorf("expected [0.6 0 0.8], got %v", n)
	}
}

func TestVec3NormalizeZeroIsNaN(t *testing.T) {
	n := Vec3{}.Normalize()
	for i, c := range n {
		if !math.IsNaN(c) {
			t.Errorf("component %d: expected NaN, got %v", i, c)
		}
	}
}

func TestVec3ExactComparisons(t *testing.T) {
	// Operands are variables so the sum rounds at run time.
	x, y := 0.1, 0.2
	a := Vec3{x + y, 1, 1}
	b := Vec3{0.3, 1, 1}

	if a.Equal(b) {
		t.Error("Equal must not apply an epsilon")
	}
	if !a.ApproxEqual(b, 1e-12) {
		t.Error("ApproxEqual should accept a rounding difference")
	}
	if !(Vec3{1, 2, 3}).Equal(Vec3{1, 2, 3}) {
		t.Error("identical vectors should be Equal")
	}

	if !(Vec3{0, 0, 0}).AllLess(Vec3{1, 1, 1}) {
		t.Error("AllLess: expected true")
	}
	if (Vec3{0, 1, 0}).AllLess(Vec3{1, 1, 1}) {
		t.Error("AllLess: a tie in one component must be false")
	}
	if !(Vec3{2, 2, 2}).AllGreater(Vec3{1, 1, 1}) {
		t.Error("AllGreater: expected true")
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: Vec3{1, 1, -3}, Direction: Vec3{0, 0, 40}}
	if got := r.At(0.5); got != (Vec3{1, 1, 17}) {
		t.Errorf("expected [1 1 17], got %v", got)
	}
}

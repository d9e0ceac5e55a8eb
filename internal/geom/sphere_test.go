package geom

import (
	"math"
	"testing"

	"spheretrace/internal/mathutil"
)

func TestIntersectsSmallerRoot(t *testing.T) {
	s := Sphere{Center: mathutil.Vec3{0, 0, 10}, Radius: 2}
	r := mathutil.Ray{Direction: mathutil.Vec3{0, 0, 1}}

	// b = -20, c = 96, disc = 16: roots 20∓4, not halved.
	got, ok := s.Intersects(r)
	if !ok {
		t.Fatal("expected hit")
	}
	if got != 16 {
		t.Errorf("expected t=16, got %v", got)
	}
}

func TestIntersectsTangentMisses(t *testing.T) {
	s := Sphere{Center: mathutil.Vec3{0, 0, 10}, Radius: 2}
	r := mathutil.Ray{Origin: mathutil.Vec3{2, 0, 0}, Direction: mathutil.Vec3{0, 0, 1}}

	if _, ok := s.Intersects(r); ok {
		t.Error("tangent ray should miss")
	}
	// With the epsilon removed the same ray grazes the sphere.
	got, ok := s.IntersectsEps(r, 0)
	if !ok {
		t.Fatal("zero discriminant with eps=0 should hit")
	}
	if got != 20 {
		t.Errorf("expected t=20, got %v", got)
	}
}

func TestIntersectsBehindOrigin(t *testing.T) {
	s := Sphere{Center: mathutil.Vec3{0, 0, 10}, Radius: 2}
	r := mathutil.Ray{Origin: mathutil.Vec3{0, 0, 20}, Direction: mathutil.Vec3{0, 0, 1}}

	got, ok := s.Intersects(r)
	if !ok {
		t.Fatal("hits behind the origin are still reported")
	}
	if got != -24 {
		t.Errorf("expected t=-24, got %v", got)
	}
}

func TestIntersectsMiss(t *testing.T) {
	s := Sphere{Center: mathutil.Vec3{150, 150, 40}, Radius: 30}
	r := mathutil.Ray{Origin: mathutil.Vec3{0, 0, -3}, Direction: mathutil.Vec3{0, 0, 1}}
	if _, ok := s.Intersects(r); ok {
		t.Error("expected miss")
	}
}

func TestNormalOnSurface(t *testing.T) {
	s := Sphere{Center: mathutil.Vec3{1, 2, 3}, Radius: 5}
	p := mathutil.Vec3{1, 2, 3}.Add(mathutil.Vec3{3, 0, 4})

	n := s.Normal(p)
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("expected unit normal, got length %v", n.Len())
	}
	if n.Dot(p.Sub(s.Center)) <= 0 {
		t.Errorf("normal %v should point away from the center", n)
	}
}

func TestSameCenterIgnoresRadiusAndColor(t *testing.T) {
	a := Sphere{Center: mathutil.Vec3{1, 2, 3}, Radius: 1, Color: mathutil.Vec3{255, 0, 0}}
	b := Sphere{Center: mathutil.Vec3{1, 2, 3}, Radius: 9, Color: mathutil.Vec3{0, 0, 255}, Tag: WorldTag}
	c := Sphere{Center: mathutil.Vec3{1, 2, 3.0000001}, Radius: 1}

	if !a.SameCenter(&b) {
		t.Error("expected same center")
	}
	if a.SameCenter(&c) {
		t.Error("center comparison must be exact")
	}
	if a.IsWorld() || !b.IsWorld() {
		t.Error("IsWorld should follow the tag")
	}
}

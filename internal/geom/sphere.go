package geom

import (
	"math"

	"spheretrace/internal/mathutil"
)

// WorldTag marks the backdrop sphere. Only the tag distinguishes it during shading.
const WorldTag = "world"

// DiscriminantEpsilon is the smallest discriminant counted as a hit.
// Tangent rays fall below it and miss.
const DiscriminantEpsilon = 1e-4

// Sphere is a solid-colored sphere. Color components are RGB in [0,255]
// by convention; nothing enforces it.
type Sphere struct {
	Center mathutil.Vec3 `json:"center"`
	Radius float64       `json:"radius"`
	Color  mathutil.Vec3 `json:"color"`
	Tag    string        `json:"tag,omitempty"`
}

// IsWorld reports whether s carries the backdrop tag.
func (s *Sphere) IsWorld() bool {
	return s.Tag == WorldTag
}

// Intersects tests r against s with the default discriminant epsilon.
func (s *Sphere) Intersects(r mathutil.Ray) (float64, bool) {
	return s.IntersectsEps(r, DiscriminantEpsilon)
}

// IntersectsEps returns the smaller root of the ray/sphere quadratic.
// The root is reported even when it lies behind the ray origin, and the
// quadratic is not divided through by dot(dir, dir): callers scale the
// direction to control which secondary hits are found.
func (s *Sphere) IntersectsEps(r mathutil.Ray, eps float64) (float64, bool) {
	oc := r.Origin.Sub(s.Center)
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - 4*c
	if disc < eps {
		return 0, false
	}

	disc = math.Sqrt(disc)
	t0 := -b - disc
	t1 := -b + disc
	if t0 < t1 {
		return t0, true
	}
	return t1, true
}

// Normal returns (p - center) / radius, unit length only for points on the surface.
func (s *Sphere) Normal(p mathutil.Vec3) mathutil.Vec3 {
	return p.Sub(s.Center).DivScalar(s.Radius)
}

// SameCenter reports exact center equality; radius and color are ignored.
func (s *Sphere) SameCenter(o *Sphere) bool {
	return s.Center.Equal(o.Center)
}

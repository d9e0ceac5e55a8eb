package raster

import (
	"spheretrace/internal/geom"
	"spheretrace/internal/mathutil"
)

// Trace returns the color seen along r.
//
// Every object is tested, not only the nearest: each hit recomputes the
// color from scratch, so the last intersected object in list order wins.
// The rendered look depends on that ordering.
func Trace(r mathutil.Ray, light *geom.Sphere, objects []geom.Sphere, cfg *ShadeConfig) mathutil.Vec3 {
	pix := Black

	for i := range objects {
		s := &objects[i]
		t, ok := s.IntersectsEps(r, cfg.Epsilon)
		if !ok {
			continue
		}

		p := r.At(t)
		n := s.Normal(p)
		pix = BaseColor(s, light, p, n, cfg)

		if !s.IsWorld() {
			pix = Reflection(objects, p, n, pix, cfg)
		}
		pix = Shadow(objects, p, pix, light, cfg)

		pix = Clamp(pix)
	}

	return pix
}

// BaseColor is the diffuse term for a hit at p with surface normal n.
func BaseColor(s, light *geom.Sphere, p, n mathutil.Vec3, cfg *ShadeConfig) mathutil.Vec3 {
	l := light.Center.Sub(p)
	d := l.Normalize().Dot(n.Normalize())
	return s.Color.Add(light.Color.DivScalar(2).Scale(d)).Scale(cfg.LightIntensity)
}

// Reflection casts one ray from p along n·ReflectionReach and adds the
// clamped bounce color of every object it meets.
func Reflection(objects []geom.Sphere, p, n, pix mathutil.Vec3, cfg *ShadeConfig) mathutil.Vec3 {
	ray := mathutil.Ray{Origin: p, Direction: n.Scale(cfg.ReflectionReach)}

	for i := range objects {
		b := &objects[i]
		t, ok := b.IntersectsEps(ray, cfg.Epsilon)
		if !ok {
			continue
		}
		pix = ReflectionBounce(b, p, ray.At(t), cfg).Add(pix)
	}

	return pix
}

// ReflectionBounce is the clamped contribution of secondary hit p2 on b
// seen from primary hit p.
func ReflectionBounce(b *geom.Sphere, p, p2 mathutil.Vec3, cfg *ShadeConfig) mathutil.Vec3 {
	d := p.Sub(p2).Normalize().Dot(b.Normal(p2).Normalize())
	bounce := b.Color.Scale(d).Scale(cfg.ReflectionIntensity)
	if b.IsWorld() {
		bounce = bounce.Sub(cfg.WorldDarken)
	}
	return Clamp(bounce)
}

// Shadow attenuates pix once per object met by a ray from p whose
// direction points from the light toward that object's center, scaled by
// ShadowReach. Each step subtracts a fraction of the running color, so
// the result depends on Reflection having run first.
func Shadow(objects []geom.Sphere, p, pix mathutil.Vec3, light *geom.Sphere, cfg *ShadeConfig) mathutil.Vec3 {
	tint := cfg.shadowTint()

	for i := range objects {
		b := &objects[i]
		ray := mathutil.Ray{
			Origin:    p,
			Direction: light.Normal(b.Center).Scale(cfg.ShadowReach),
		}
		t, ok := b.IntersectsEps(ray, cfg.Epsilon)
		if !ok {
			continue
		}

		p2 := ray.At(t)
		d := p.Sub(p2).Normalize().Dot(b.Normal(p2).Normalize())
		dim := Clamp(pix.Scale(d).Mul(tint))
		pix = pix.Sub(dim)
	}

	return pix
}

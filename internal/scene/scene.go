package scene

import (
	"spheretrace/internal/geom"
	"spheretrace/internal/mathutil"
	"spheretrace/internal/raster"
)

// Scene owns every sphere. Animation and input refer to spheres by index
// into Objects, never by pointer.
type Scene struct {
	Objects []geom.Sphere `json:"objects"` // shading order; index 0 is the backdrop by convention
	Light   geom.Sphere   `json:"light"`   // position and color only
	World   int           `json:"world"`   // index of the backdrop moved by zoom input
}

// Default builds the stock scene for a w×h viewport: the backdrop, then
// white, red, green and blue spheres, lit from the left.
func Default(w, h int) *Scene {
	W, H := float64(w), float64(h)
	return &Scene{
		Objects: []geom.Sphere{
			{Center: mathutil.Vec3{W * 0.5, H * 3.8, 650}, Radius: 1100, Color: mathutil.Vec3{94, 0, 182}, Tag: geom.WorldTag},
			{Center: mathutil.Vec3{W * 0.5, H * 0.5, 40}, Radius: 30, Color: raster.White},
			{Center: mathutil.Vec3{W * 0.3, H * 0.5, 20}, Radius: 15, Color: raster.Red},
			{Center: mathutil.Vec3{W * 0.25, H * 0.35, 30}, Radius: 20, Color: raster.Green},
			{Center: mathutil.Vec3{W * 0.85, H * 0.65, 40}, Radius: 35, Color: raster.Blue},
		},
		Light: geom.Sphere{Center: mathutil.Vec3{W * 0.1, H * 0.5, 0}, Radius: 40, Color: raster.White},
		World: 0,
	}
}

// At returns the sphere at index i, or nil when i is out of range.
func (s *Scene) At(i int) *geom.Sphere {
	if i < 0 || i >= len(s.Objects) {
		return nil
	}
	return &s.Objects[i]
}

// Clone returns a deep copy.
func (s *Scene) Clone() *Scene {
	c := *s
	c.Objects = append([]geom.Sphere(nil), s.Objects...)
	return &c
}

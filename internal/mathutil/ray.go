package mathutil

// Ray is an origin plus a direction. The direction is not normalized; its
// length scales the parameter t reported by intersection tests.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns Origin + Direction·t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

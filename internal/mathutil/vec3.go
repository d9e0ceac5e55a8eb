package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// It is used as a point, a direction and an RGB color alike.
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// AddScalar adds s to every component.
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v[0] + s, v[1] + s, v[2] + s}
}

// SubScalar subtracts s from every component.
func (v Vec3) SubScalar(s float64) Vec3 {
	return Vec3{v[0] - s, v[1] - s, v[2] - s}
}

// Mul is the component-wise product.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div is the component-wise quotient.
func (a Vec3) Div(b Vec3) Vec3 {
	return Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

func (v Vec3) DivScalar(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize divides by the Euclidean length. A zero vector yields NaN
// components; callers that care must check the length first.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Equal reports exact component equality.
func (a Vec3) Equal(b Vec3) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

// AllLess reports whether every component of a is strictly below b's.
func (a Vec3) AllLess(b Vec3) bool {
	return a[0] < b[0] && a[1] < b[1] && a[2] < b[2]
}

// AllGreater reports whether every component of a is strictly above b's.
func (a Vec3) AllGreater(b Vec3) bool {
	return a[0] > b[0] && a[1] > b[1] && a[2] > b[2]
}

// ApproxEqual compares components within eps. Nothing in the renderer uses
// it; Equal stays exact.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps &&
		math.Abs(a[1]-b[1]) <= eps &&
		math.Abs(a[2]-b[2]) <= eps
}

// X, Y and Z name the components when the vector is a point.
func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

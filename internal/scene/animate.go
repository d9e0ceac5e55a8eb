package scene

import "math"

// DefaultThetaStep is the per-frame angle increment.
const DefaultThetaStep = 0.1

// Animator moves four consecutive spheres starting at index First along
// closed-form paths of an accumulating angle.
type Animator struct {
	Theta  float64
	Step   float64
	First  int
	Width  float64
	Height float64
}

// NewAnimator returns an animator for a w×h viewport starting at theta 0.
func NewAnimator(w, h int) *Animator {
	return &Animator{
		Step:   DefaultThetaStep,
		First:  1,
		Width:  float64(w),
		Height: float64(h),
	}
}

// Advance applies one frame of motion to s, then steps Theta.
func (a *Animator) Advance(s *Scene) {
	th := a.Theta

	if o := s.At(a.First); o != nil {
		o.Center[0] = a.Width/2 + (a.Width/6)*math.Sin(th)
		o.Center[1] = a.Height/2.8 + (a.Height/6)*math.Cos(th/2)
	}
	if o := s.At(a.First + 1); o != nil {
		o.Center[0] += 2 * math.Sin(th)
		o.Center[1] += 2 * math.Cos(th)
	}
	if o := s.At(a.First + 2); o != nil {
		o.Center[1] += 2 * math.Sin(th)
	}
	if o := s.At(a.First + 3); o != nil {
		o.Center[1] += 2 * -math.Sin(th)
	}

	a.Theta += a.Step
}

package scene

import "fmt"

// EventKind is the kind of pointer input.
type EventKind int

const (
	Motion EventKind = iota + 1
	ScrollUp
	ScrollDown
)

func (k EventKind) String() string {
	switch k {
	case Motion:
		return "motion"
	case ScrollUp:
		return "scroll-up"
	case ScrollDown:
		return "scroll-down"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(s string) (EventKind, error) {
	switch s {
	case "motion":
		return Motion, nil
	case "scroll-up":
		return ScrollUp, nil
	case "scroll-down":
		return ScrollDown, nil
	}
	return 0, fmt.Errorf("scene: unknown event kind %q", s)
}

// Event is one pointer event. X and Y are set for Motion only.
type Event struct {
	Kind EventKind
	X, Y float64
}

// ZoomConfig bounds the backdrop depth reachable with the scroll wheel.
type ZoomConfig struct {
	MinDepth  float64 `json:"min_depth"`  // scroll up only while world z is above this
	MaxDepth  float64 `json:"max_depth"`  // scroll down only while world z is below this
	WorldStep float64 `json:"world_step"` // world y and z change per notch
	LightStep float64 `json:"light_step"` // light z change per notch
}

// DefaultZoomConfig returns the stock zoom bounds.
func DefaultZoomConfig() ZoomConfig {
	return ZoomConfig{
		MinDepth:  580,
		MaxDepth:  600,
		WorldStep: 5,
		LightStep: 30,
	}
}

// ApplyInput mutates s for one event. Motion places the light under the
// pointer; the wheel moves the backdrop and the light together in depth.
func ApplyInput(s *Scene, ev Event, zc ZoomConfig) {
	switch ev.Kind {
	case Motion:
		s.Light.Center[0] = ev.X
		s.Light.Center[1] = ev.Y
	case ScrollUp:
		w := s.At(s.World)
		if w == nil || !(w.Center[2] > zc.MinDepth) {
			return
		}
		w.Center[2] -= zc.WorldStep
		w.Center[1] -= zc.WorldStep
		s.Light.Center[2] -= zc.LightStep
	case ScrollDown:
		w := s.At(s.World)
		if w == nil || !(w.Center[2] < zc.MaxDepth) {
			return
		}
		w.Center[2] += zc.WorldStep
		w.Center[1] += zc.WorldStep
		s.Light.Center[2] += zc.LightStep
	}
}

package raster

import (
	"spheretrace/internal/geom"
	"spheretrace/internal/mathutil"
)

// ShadeConfig holds the constants of the shading composer and the camera.
type ShadeConfig struct {
	LightIntensity      float64       `json:"light_intensity"`
	ReflectionIntensity float64       `json:"reflection_intensity"`
	ReflectionReach     float64       `json:"reflection_reach"` // secondary ray = normal·reach
	WorldDarken         mathutil.Vec3 `json:"world_darken"`     // subtracted from backdrop bounces
	ShadowIntensity     float64       `json:"shadow_intensity"`
	ShadowReach         float64       `json:"shadow_reach"`
	Epsilon             float64       `json:"epsilon"` // discriminant threshold
	CameraDepth         float64       `json:"camera_depth"`
	CameraDirection     mathutil.Vec3 `json:"camera_direction"`
}

// DefaultShadeConfig returns the tuned constants the default scene is lit with.
func DefaultShadeConfig() ShadeConfig {
	return ShadeConfig{
		LightIntensity:      0.62,
		ReflectionIntensity: 2.5,
		ReflectionReach:     40,
		WorldDarken:         White.DivScalar(1.5),
		ShadowIntensity:     2.3,
		ShadowReach:         -3,
		Epsilon:             geom.DiscriminantEpsilon,
		CameraDepth:         -3,
		CameraDirection:     mathutil.Vec3{0, 0, 1},
	}
}

// PrimaryRay returns the camera ray for pixel (x, y). All primary rays are
// parallel; only the origin moves.
func (sc *ShadeConfig) PrimaryRay(x, y int) mathutil.Ray {
	return mathutil.Ray{
		Origin:    mathutil.Vec3{float64(x), float64(y), sc.CameraDepth},
		Direction: sc.CameraDirection,
	}
}

// shadowTint is the per-channel shadow strength.
func (sc *ShadeConfig) shadowTint() mathutil.Vec3 {
	return Black.AddScalar(sc.ShadowIntensity)
}

package targeting

import "github.com/go-gl/mathgl/mgl32"

// Config holds the tunables shared by all modes.
type Config struct {
	ArcSamples      int
	ArcHeightFactor float32
	MinArcHeight    float32
	CurveSamples    int
	// control points sit CurveForward*distance along the travel and CurveLift*distance above the ends
	CurveForward    float32
	CurveLift       float32
	SmoothingPasses int
	// trajectories start this far above the source's feet
	LaunchHeight      float32
	GroundProbeHeight float32

	DefaultMaxTargets      int
	DefaultChainBounces    int
	DefaultMaxWallLength   float32
	DefaultFootprintRadius float32
	DefaultConeAngle       float32
	DefaultLineWidth       float32

	JumpActionIDs      []string
	JumpCacheTolerance float32

	FallbackForward mgl32.Vec3
}

func DefaultConfig() Config {
	return Config{
		ArcSamples:        24,
		ArcHeightFactor:   0.25,
		MinArcHeight:      1.0,
		CurveSamples:      32,
		CurveForward:      0.3,
		CurveLift:         0.35,
		SmoothingPasses:   2,
		LaunchHeight:      1.5,
		GroundProbeHeight: 0.5,

		DefaultMaxTargets:      3,
		DefaultChainBounces:    2,
		DefaultMaxWallLength:   6,
		DefaultFootprintRadius: 0.5,
		DefaultConeAngle:       60,
		DefaultLineWidth:       1,

		JumpActionIDs:      []string{"jump", "leap", "long_jump"},
		JumpCacheTolerance: 0.1,

		FallbackForward: mgl32.Vec3{0, 0, 1},
	}
}

func (c Config) isJumpAction(actionID string) bool {
	for _, id := range c.JumpActionIDs {
		if id == actionID {
			return true
		}
	}
	return false
}

package game

import "github.com/go-gl/mathgl/mgl32"

// ReasonCode is the structured cause of a failed target check.
// ReasonUnspecified means only the free text Reason is available.
type ReasonCode int

const (
	ReasonUnspecified ReasonCode = iota
	ReasonNone
	ReasonNoTarget
	ReasonOutOfRange
	ReasonNoLineOfSight
	ReasonWrongFaction
	ReasonInvalidTarget
)

type Verdict struct {
	Valid  bool
	Reason string
	Code   ReasonCode
}

func Allowed() Verdict {
	return Verdict{Valid: true, Code: ReasonNone}
}

func Denied(code ReasonCode, reason string) Verdict {
	return Verdict{Valid: false, Reason: reason, Code: code}
}

// JumpPath is the result of planning a jump to a point.
type JumpPath struct {
	Waypoints     []mgl32.Vec3
	TotalLength   float32
	Success       bool
	FailureReason string
}

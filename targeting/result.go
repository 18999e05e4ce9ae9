package targeting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeExecuteTarget
	OutcomeExecutePosition
	OutcomeAdvanceStep
	OutcomeComplete
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExecuteTarget:
		return "ExecuteTarget"
	case OutcomeExecutePosition:
		return "ExecutePosition"
	case OutcomeAdvanceStep:
		return "AdvanceStep"
	case OutcomeComplete:
		return "Complete"
	}
	return "Rejected"
}

// ConfirmResult is the decision of one confirm attempt. Only the fields of the active Outcome are set.
type ConfirmResult struct {
	Outcome   Outcome
	TargetID  uint64
	Position  mgl32.Vec3
	WallStart mgl32.Vec3
	WallEnd   mgl32.Vec3
	HasWall   bool
	TargetIDs []uint64
	Reason    string
}

func Rejected(reason string) ConfirmResult {
	return ConfirmResult{Outcome: OutcomeRejected, Reason: reason}
}

func ExecuteTarget(targetID uint64) ConfirmResult {
	return ConfirmResult{Outcome: OutcomeExecuteTarget, TargetID: targetID}
}

func ExecutePosition(position mgl32.Vec3) ConfirmResult {
	return ConfirmResult{Outcome: OutcomeExecutePosition, Position: position}
}

// ExecuteWall executes at the wall's midpoint and carries both ends for rebuilding the wall.
func ExecuteWall(start, end mgl32.Vec3) ConfirmResult {
	return ConfirmResult{
		Outcome:   OutcomeExecutePosition,
		Position:  start.Add(end).Mul(0.5),
		WallStart: start,
		WallEnd:   end,
		HasWall:   true,
	}
}

func AdvanceStep() ConfirmResult {
	return ConfirmResult{Outcome: OutcomeAdvanceStep}
}

func Complete(targetIDs []uint64) ConfirmResult {
	ids := make([]uint64, len(targetIDs))
	copy(ids, targetIDs)
	return ConfirmResult{Outcome: OutcomeComplete, TargetIDs: ids}
}

func (r ConfirmResult) IsRejected() bool {
	return r.Outcome == OutcomeRejected
}

// IsFinal reports whether the action can be handed to resolution.
func (r ConfirmResult) IsFinal() bool {
	return r.Outcome == OutcomeExecuteTarget || r.Outcome == OutcomeExecutePosition || r.Outcome == OutcomeComplete
}

func (r ConfirmResult) ToString() string {
	switch r.Outcome {
	case OutcomeRejected:
		return fmt.Sprintf("Rejected(%s)", r.Reason)
	case OutcomeExecuteTarget:
		return fmt.Sprintf("ExecuteTarget(%d)", r.TargetID)
	case OutcomeExecutePosition:
		if r.HasWall {
			return fmt.Sprintf("ExecuteWall(%v -> %v)", r.WallStart, r.WallEnd)
		}
		return fmt.Sprintf("ExecutePosition(%v)", r.Position)
	case OutcomeComplete:
		return fmt.Sprintf("Complete(%v)", r.TargetIDs)
	}
	return r.Outcome.String()
}

package targeting

import (
	"github.com/memmaker/battletarget/game"
)

// NewMode builds the mode that handles an action's targeting kind.
// Unknown kinds fall back to single target selection.
func NewMode(kind game.TargetingKind, services *Services, config Config) Mode {
	switch kind {
	case game.TargetMulti:
		return NewMultiTargetMode(services, config)
	case game.TargetChain:
		return NewChainMode(services, config)
	case game.TargetCone:
		return NewConeMode(services, config)
	case game.TargetLine:
		return NewLineMode(services, config)
	case game.TargetWall:
		return NewWallMode(services, config)
	case game.TargetGround:
		return NewFreeAimGroundMode(services, config)
	case game.TargetStraight:
		return NewStraightLineMode(services, config)
	case game.TargetArc:
		return NewBallisticArcMode(services, config)
	case game.TargetCurve:
		return NewBezierCurveMode(services, config)
	case game.TargetPathfind:
		return NewPathfindMode(services, config)
	}
	return NewSingleTargetMode(services, config)
}

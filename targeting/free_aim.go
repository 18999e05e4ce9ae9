package targeting

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

// FreeAimGroundMode targets a point on the ground. Jump actions are routed
// through the jump planner instead of a plain range and sight check.
type FreeAimGroundMode struct {
	singleStep
	modeState
	jump bool

	hasCachedJump bool
	cachedQuery   mgl32.Vec3
	cachedJump    game.JumpPath
}

func NewFreeAimGroundMode(services *Services, config Config) *FreeAimGroundMode {
	return &FreeAimGroundMode{modeState: newModeState(services, config)}
}

func (m *FreeAimGroundMode) Type() ModeType {
	return ModeFreeAimGround
}

func (m *FreeAimGroundMode) Enter(action *game.ActionDefinition, source *game.Combatant, sourcePosition mgl32.Vec3) {
	m.enter(action, source, sourcePosition)
	m.jump = m.config.isJumpAction(action.ID)
	m.invalidateJumpCache()
}

func (m *FreeAimGroundMode) IsJump() bool {
	return m.jump
}

func (m *FreeAimGroundMode) invalidateJumpCache() {
	m.hasCachedJump = false
	m.cachedJump = game.JumpPath{}
}

func (m *FreeAimGroundMode) footprintRadius() float32 {
	if m.action.AreaRadius > 0 {
		return m.action.AreaRadius
	}
	return m.config.DefaultFootprintRadius
}

func (m *FreeAimGroundMode) jumpLimit() float32 {
	if m.services.JumpLimit != nil {
		if limit := m.services.JumpLimit.JumpDistanceLimit(m.source); limit > 0 {
			return limit
		}
	}
	return m.action.Range
}

// jumpPath returns the planned jump, reusing the last plan while the cursor stays
// within the cache tolerance on the ground plane.
func (m *FreeAimGroundMode) jumpPath(target mgl32.Vec3) game.JumpPath {
	tolerance := m.config.JumpCacheTolerance
	if m.hasCachedJump && util.FlatDistanceSquared(m.cachedQuery, target) <= tolerance*tolerance {
		return m.cachedJump
	}
	m.cachedJump = m.services.Jump.BuildJumpPath(m.source, target)
	m.cachedQuery = target
	m.hasCachedJump = true
	return m.cachedJump
}

// evaluate decides the validity of aiming at the hovered point and the path to draw, if any.
func (m *FreeAimGroundMode) evaluate(hover HoverData) (Validity, string, []mgl32.Vec3) {
	if !hover.Ground {
		return Invalid, ReasonInvalidLocation, nil
	}
	if m.jump {
		return m.evaluateJump(hover.Point)
	}
	if util.Distance3D(m.sourcePos, hover.Point) > m.action.Range {
		return OutOfRange, ReasonOutOfRange, nil
	}
	probe := hover.Point.Add(util.Up.Mul(m.config.GroundProbeHeight))
	if !m.services.hasLineOfSight(m.launchPoint(), probe) {
		return NoLineOfSight, ReasonNoLineOfSight, nil
	}
	return Valid, "", nil
}

func (m *FreeAimGroundMode) evaluateJump(target mgl32.Vec3) (Validity, string, []mgl32.Vec3) {
	limit := m.jumpLimit()
	if m.services.Jump == nil {
		straight := []mgl32.Vec3{m.sourcePos, target}
		if util.Distance3D(m.sourcePos, target) > limit {
			return OutOfRange, ReasonOutOfRange, straight
		}
		return Valid, "", straight
	}
	jump := m.jumpPath(target)
	if !jump.Success {
		reason := jump.FailureReason
		if reason == "" {
			reason = ReasonNoValidPath
		}
		return NoValidPath, reason, jump.Waypoints
	}
	if jump.TotalLength > limit {
		return OutOfRange, ReasonOutOfRange, jump.Waypoints
	}
	return Valid, "", jump.Waypoints
}

func (m *FreeAimGroundMode) UpdatePreview(hover HoverData, preview *Preview) *Preview {
	ringRadius := m.action.Range
	if m.jump {
		ringRadius = m.jumpLimit()
	}
	preview.AddShape(GroundShape{Kind: ShapeRangeRing, Center: m.sourcePos, Radius: ringRadius, Color: ColorRangeRing, Valid: true})

	validity, reason, path := m.evaluate(hover)
	valid := validity == Valid
	preview.AddShape(GroundShape{Kind: ShapeReticle, Center: hover.Point, Color: ValidityColor(valid), Valid: valid})
	preview.AddShape(GroundShape{Kind: ShapeFootprint, Center: hover.Point, Radius: m.footprintRadius(), Color: ValidityColor(valid), Valid: valid})
	if len(path) >= 2 {
		preview.AddPath(path, false, ValidityColor(valid))
	}
	if m.action.AreaRadius > 0 && m.services.Areas != nil {
		if highlightAffected(preview, m.source, m.resolveAffected(hover.Point, nil)) && valid {
			preview.Shapes[len(preview.Shapes)-1].Color = ColorFriendlyFire
		}
	}
	preview.SetValidity(validity, reason)
	if m.jump {
		preview.Cursor = CursorMove
	} else {
		preview.Cursor = CursorCast
	}
	if !valid {
		preview.Cursor = CursorInvalid
	}
	return preview
}

func (m *FreeAimGroundMode) TryConfirm(hover HoverData) ConfirmResult {
	validity, reason, _ := m.evaluate(hover)
	if validity != Valid {
		util.LogTargetingDebug("[FreeAimGroundMode] rejected %v: %s", hover.Point, reason)
		return Rejected(reason)
	}
	return ExecutePosition(hover.Point)
}

func (m *FreeAimGroundMode) Cancel() {
	m.invalidateJumpCache()
}

func (m *FreeAimGroundMode) Exit() {
	m.invalidateJumpCache()
	m.exit()
}

package targeting

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

// SingleTargetMode picks one combatant under the cursor.
type SingleTargetMode struct {
	singleStep
	modeState
}

func NewSingleTargetMode(services *Services, config Config) *SingleTargetMode {
	return &SingleTargetMode{modeState: newModeState(services, config)}
}

func (m *SingleTargetMode) Type() ModeType {
	return ModeSingleTarget
}

func (m *SingleTargetMode) Enter(action *game.ActionDefinition, source *game.Combatant, sourcePosition mgl32.Vec3) {
	m.enter(action, source, sourcePosition)
}

func (m *SingleTargetMode) UpdatePreview(hover HoverData, preview *Preview) *Preview {
	m.addRangeRing(preview)
	target := hover.Hovered
	if target == nil {
		preview.SetValidity(Invalid, ReasonNoValidTarget)
		return preview
	}
	verdict := m.services.validate(m.action, m.source, target)
	if !verdict.Valid {
		m.previewRejection(preview, target, verdict)
		return preview
	}
	m.previewTarget(preview, target)
	preview.SetValidity(Valid, "")
	preview.Cursor = CursorAttack
	return preview
}

func (m *SingleTargetMode) TryConfirm(hover HoverData) ConfirmResult {
	target := hover.Hovered
	if target == nil {
		return Rejected(ReasonNoValidTarget)
	}
	verdict := m.services.validate(m.action, m.source, target)
	if !verdict.Valid {
		util.LogTargetingDebug("[SingleTargetMode] %s rejected: %s", target.ToString(), verdict.Reason)
		return Rejected(verdict.Reason)
	}
	return ExecuteTarget(target.ID)
}

func (m *SingleTargetMode) Cancel() {}

func (m *SingleTargetMode) Exit() {
	m.exit()
}

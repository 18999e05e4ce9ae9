package targeting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

// MultiTargetMode picks up to maxTargets distinct combatants one click at a time.
type MultiTargetMode struct {
	modeState
	maxTargets int
	picked     []*game.Combatant
}

func NewMultiTargetMode(services *Services, config Config) *MultiTargetMode {
	return &MultiTargetMode{modeState: newModeState(services, config)}
}

func (m *MultiTargetMode) Type() ModeType {
	return ModeMultiTarget
}

func (m *MultiTargetMode) IsMultiStep() bool {
	return true
}

func (m *MultiTargetMode) CurrentStep() int {
	return len(m.picked)
}

func (m *MultiTargetMode) TotalSteps() int {
	return m.maxTargets
}

func (m *MultiTargetMode) Enter(action *game.ActionDefinition, source *game.Combatant, sourcePosition mgl32.Vec3) {
	m.enter(action, source, sourcePosition)
	m.maxTargets = action.MaxTargets
	if m.maxTargets <= 0 {
		m.maxTargets = m.config.DefaultMaxTargets
	}
	if m.maxTargets <= 0 {
		m.maxTargets = 1
	}
	m.picked = make([]*game.Combatant, 0, m.maxTargets)
}

// PickedIDs lists the selected combatants in pick order.
func (m *MultiTargetMode) PickedIDs() []uint64 {
	ids := make([]uint64, len(m.picked))
	for i, unit := range m.picked {
		ids[i] = unit.ID
	}
	return ids
}

func (m *MultiTargetMode) isPicked(id uint64) bool {
	for _, unit := range m.picked {
		if unit.ID == id {
			return true
		}
	}
	return false
}

func (m *MultiTargetMode) UpdatePreview(hover HoverData, preview *Preview) *Preview {
	m.addRangeRing(preview)
	for i, unit := range m.picked {
		preview.AddSelected(unit.ID, unit.Position, i+1)
		preview.AddText(labelPosition(unit), fmt.Sprintf("#%d", i+1), ColorTechTeal)
	}
	preview.AddText(m.sourcePos.Add(util.Up.Mul(2.4)), fmt.Sprintf("%d/%d", len(m.picked), m.maxTargets), ColorTechTeal)

	target := hover.Hovered
	if target == nil {
		preview.SetValidity(Invalid, ReasonNoValidTarget)
		return preview
	}
	if m.isPicked(target.ID) {
		preview.AddHighlight(target.ID, HighlightInvalid, NoHitChance)
		preview.SetValidity(Invalid, ReasonAlreadySelected)
		preview.Cursor = CursorInvalid
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

func (m *MultiTargetMode) TryConfirm(hover HoverData) ConfirmResult {
	target := hover.Hovered
	if target == nil {
		return Rejected(ReasonNoValidTarget)
	}
	if m.isPicked(target.ID) {
		return Rejected(ReasonAlreadySelected)
	}
	if len(m.picked) >= m.maxTargets {
		return Rejected(ReasonSelectionFull)
	}
	verdict := m.services.validate(m.action, m.source, target)
	if !verdict.Valid {
		return Rejected(verdict.Reason)
	}
	m.picked = append(m.picked, target)
	util.LogTargetingDebug("[MultiTargetMode] picked %s (%d/%d)", target.ToString(), len(m.picked), m.maxTargets)
	if len(m.picked) >= m.maxTargets {
		return Complete(m.PickedIDs())
	}
	return AdvanceStep()
}

func (m *MultiTargetMode) TryUndoLastStep() bool {
	if len(m.picked) == 0 {
		return false
	}
	m.picked = m.picked[:len(m.picked)-1]
	return true
}

func (m *MultiTargetMode) Cancel() {
	m.picked = m.picked[:0]
}

func (m *MultiTargetMode) Exit() {
	m.picked = nil
	m.exit()
}

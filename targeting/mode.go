package targeting

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

type ModeType int

const (
	ModeNone ModeType = iota
	ModeSingleTarget
	ModeMultiTarget
	ModeChain
	ModeCone
	ModeLine
	ModeWall
	ModeFreeAimGround
	ModeStraightLine
	ModeBallisticArc
	ModeBezierCurve
	ModePathfind
)

func (m ModeType) String() string {
	switch m {
	case ModeSingleTarget:
		return "SingleTarget"
	case ModeMultiTarget:
		return "MultiTarget"
	case ModeChain:
		return "Chain"
	case ModeCone:
		return "Cone"
	case ModeLine:
		return "Line"
	case ModeWall:
		return "Wall"
	case ModeFreeAimGround:
		return "FreeAimGround"
	case ModeStraightLine:
		return "StraightLine"
	case ModeBallisticArc:
		return "BallisticArc"
	case ModeBezierCurve:
		return "BezierCurve"
	case ModePathfind:
		return "Pathfind"
	}
	return "None"
}

// HoverData is one input sample: where the cursor points this frame.
type HoverData struct {
	Point    mgl32.Vec3
	Hovered  *game.Combatant
	EntityID uint64
	Ground   bool
	Normal   mgl32.Vec3
}

func (h HoverData) HoveredID() uint64 {
	if h.Hovered != nil {
		return h.Hovered.ID
	}
	return h.EntityID
}

// Mode is one target selection strategy. Exactly one mode is active per session.
// UpdatePreview only writes into the preview it is handed and into the mode's own caches;
// TryConfirm validates on its own and never relies on the last preview.
type Mode interface {
	Type() ModeType
	IsMultiStep() bool
	CurrentStep() int
	TotalSteps() int

	Enter(action *game.ActionDefinition, source *game.Combatant, sourcePosition mgl32.Vec3)
	UpdatePreview(hover HoverData, preview *Preview) *Preview
	TryConfirm(hover HoverData) ConfirmResult
	TryUndoLastStep() bool
	Cancel()
	Exit()
}

// modeState is the per-activation state every mode carries.
type modeState struct {
	services  *Services
	config    Config
	action    *game.ActionDefinition
	source    *game.Combatant
	sourcePos mgl32.Vec3
}

func newModeState(services *Services, config Config) modeState {
	if services == nil {
		services = &Services{}
	}
	return modeState{services: services, config: config}
}

func (m *modeState) enter(action *game.ActionDefinition, source *game.Combatant, sourcePosition mgl32.Vec3) {
	m.action = action
	m.source = source
	m.sourcePos = sourcePosition
}

func (m *modeState) exit() {
	m.action = nil
	m.source = nil
	m.sourcePos = mgl32.Vec3{}
}

func (m *modeState) active() bool {
	return m.action != nil && m.source != nil
}

func (m *modeState) launchPoint() mgl32.Vec3 {
	return m.sourcePos.Add(util.Up.Mul(m.config.LaunchHeight))
}

func (m *modeState) addRangeRing(preview *Preview) {
	preview.AddShape(GroundShape{
		Kind:   ShapeRangeRing,
		Center: m.sourcePos,
		Radius: m.action.Range,
		Color:  ColorRangeRing,
		Valid:  true,
	})
}

// hitChancePercent asks the rules for the chance to hit, rounded to whole percent.
func (m *modeState) hitChancePercent(target *game.Combatant) (int, bool) {
	if m.services.HitChance == nil {
		return NoHitChance, false
	}
	chance := m.services.HitChance.HitChance(m.source, target, m.action.Tags)
	return util.RoundToInt(chance), true
}

// previewTarget highlights a legal target with its hit chance and a floating label.
func (m *modeState) previewTarget(preview *Preview, target *game.Combatant) {
	chance, known := m.hitChancePercent(target)
	preview.AddHighlight(target.ID, HighlightTarget, chance)
	if known {
		preview.AddText(labelPosition(target), fmt.Sprintf("%d%%", chance), ColorTechTeal)
	}
}

// previewRejection marks a candidate the validator refused.
func (m *modeState) previewRejection(preview *Preview, target *game.Combatant, verdict game.Verdict) {
	preview.AddHighlight(target.ID, HighlightInvalid, NoHitChance)
	preview.SetValidity(ClassifyVerdict(verdict), verdict.Reason)
	preview.Cursor = CursorInvalid
}

func labelPosition(unit *game.Combatant) mgl32.Vec3 {
	return unit.Position.Add(util.Up.Mul(unit.GetHeight() + 0.3))
}

// ClassifyVerdict maps a refused verdict to a preview validity. The structured code wins;
// without one the reason text is searched for well known phrases.
func ClassifyVerdict(verdict game.Verdict) Validity {
	if verdict.Valid {
		return Valid
	}
	switch verdict.Code {
	case game.ReasonOutOfRange:
		return OutOfRange
	case game.ReasonNoLineOfSight:
		return NoLineOfSight
	case game.ReasonWrongFaction:
		return InvalidTargetType
	case game.ReasonNoTarget, game.ReasonInvalidTarget:
		return Invalid
	}
	return classifyReasonText(verdict.Reason)
}

func classifyReasonText(reason string) Validity {
	lower := strings.ToLower(reason)
	switch {
	case strings.Contains(lower, "range"):
		return OutOfRange
	case strings.Contains(lower, "line of sight"):
		return NoLineOfSight
	case strings.Contains(lower, "faction"):
		return InvalidTargetType
	}
	return Invalid
}

func highlightForRelation(relation game.Relation) HighlightKind {
	switch relation {
	case game.RelationAlly:
		return HighlightAlly
	case game.RelationNeutral:
		return HighlightNeutral
	}
	return HighlightEnemy
}

func colorForHighlight(kind HighlightKind) mgl32.Vec4 {
	switch kind {
	case HighlightAlly:
		return ColorAllyBlue
	case HighlightNeutral:
		return ColorNeutralGrey
	case HighlightWarning:
		return ColorFriendlyFire
	case HighlightInvalid:
		return ColorNegativeRed
	}
	return ColorNegativeRed
}

// singleStep implements the progress accessors of modes that finish with one click.
type singleStep struct{}

func (singleStep) IsMultiStep() bool { return false }
func (singleStep) CurrentStep() int  { return 0 }
func (singleStep) TotalSteps() int   { return 1 }
func (singleStep) TryUndoLastStep() bool {
	return false
}

package targeting

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

// directionalArea is the shared core of cone and line: a shape anchored on the
// source that only turns to follow the cursor.
type directionalArea struct {
	singleStep
	modeState
	kind ModeType
}

// ConeMode aims a cone of action.ConeAngle degrees and action.Range length.
type ConeMode struct {
	directionalArea
}

// LineMode aims a rectangle of action.LineWidth width and action.Range length.
type LineMode struct {
	directionalArea
}

func NewConeMode(services *Services, config Config) *ConeMode {
	return &ConeMode{directionalArea{modeState: newModeState(services, config), kind: ModeCone}}
}

func NewLineMode(services *Services, config Config) *LineMode {
	return &LineMode{directionalArea{modeState: newModeState(services, config), kind: ModeLine}}
}

func (m *directionalArea) Type() ModeType {
	return m.kind
}

func (m *directionalArea) Enter(action *game.ActionDefinition, source *game.Combatant, sourcePosition mgl32.Vec3) {
	m.enter(action, source, sourcePosition)
}

// Direction is the flat aim direction for a cursor point, never zero.
func (m *directionalArea) Direction(cursor mgl32.Vec3) mgl32.Vec3 {
	return util.DirectionFromSource(m.sourcePos, cursor, m.config.FallbackForward)
}

func (m *directionalArea) aimPoint(cursor mgl32.Vec3) mgl32.Vec3 {
	return m.sourcePos.Add(m.Direction(cursor).Mul(m.action.Range))
}

func (m *directionalArea) shape(cursor mgl32.Vec3) GroundShape {
	shape := GroundShape{
		Center:    m.sourcePos,
		Direction: m.Direction(cursor),
		Length:    m.action.Range,
		Color:     ColorAreaFill,
		Valid:     true,
	}
	if m.kind == ModeCone {
		shape.Kind = ShapeCone
		shape.Angle = m.action.ConeAngle
		if shape.Angle <= 0 {
			shape.Angle = m.config.DefaultConeAngle
		}
	} else {
		shape.Kind = ShapeLine
		shape.Width = m.action.LineWidth
		if shape.Width <= 0 {
			shape.Width = m.config.DefaultLineWidth
		}
	}
	return shape
}

func (m *directionalArea) UpdatePreview(hover HoverData, preview *Preview) *Preview {
	aim := m.aimPoint(hover.Point)
	affected := m.resolveAffected(aim, nil)
	shape := m.shape(hover.Point)
	if highlightAffected(preview, m.source, affected) {
		shape.Color = ColorFriendlyFire
	}
	preview.AddShape(shape)
	preview.SetValidity(Valid, "")
	preview.Cursor = CursorCast
	return preview
}

func (m *directionalArea) TryConfirm(hover HoverData) ConfirmResult {
	return ExecutePosition(m.aimPoint(hover.Point))
}

func (m *directionalArea) Cancel() {}

func (m *directionalArea) Exit() {
	m.exit()
}

func (m *modeState) resolveAffected(aim mgl32.Vec3, wallStart *mgl32.Vec3) []*game.Combatant {
	if m.services.Areas == nil {
		return nil
	}
	return m.services.Areas.ResolveArea(m.action, m.source, aim, m.services.combatants(), game.CombatantPosition, wallStart)
}

// AreaHighlight classifies a unit caught in an area effect. Units sharing the
// source's faction, the source included, are a friendly fire warning.
func AreaHighlight(source, unit *game.Combatant) HighlightKind {
	if unit.ID == source.ID || unit.Faction == source.Faction {
		return HighlightWarning
	}
	return highlightForRelation(game.RelationBetween(source, unit))
}

// highlightAffected adds a highlight per affected unit and reports whether friendly fire occurs.
func highlightAffected(preview *Preview, source *game.Combatant, affected []*game.Combatant) bool {
	friendlyFire := false
	for _, unit := range affected {
		kind := AreaHighlight(source, unit)
		if kind == HighlightWarning {
			friendlyFire = true
		}
		preview.AddHighlight(unit.ID, kind, NoHitChance)
	}
	return friendlyFire
}

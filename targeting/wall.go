package targeting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

const minWallLength = 0.1

// WallMode places a wall with two clicks: start point, then end point.
// Range and length are measured on the ground plane.
type WallMode struct {
	modeState
	step      int
	wallStart mgl32.Vec3
}

func NewWallMode(services *Services, config Config) *WallMode {
	return &WallMode{modeState: newModeState(services, config)}
}

func (m *WallMode) Type() ModeType {
	return ModeWall
}

func (m *WallMode) IsMultiStep() bool {
	return true
}

func (m *WallMode) CurrentStep() int {
	return m.step
}

func (m *WallMode) TotalSteps() int {
	return 2
}

func (m *WallMode) Enter(action *game.ActionDefinition, source *game.Combatant, sourcePosition mgl32.Vec3) {
	m.enter(action, source, sourcePosition)
	m.reset()
}

func (m *WallMode) reset() {
	m.step = 0
	m.wallStart = mgl32.Vec3{}
}

func (m *WallMode) maxLength() float32 {
	if m.action.MaxWallLength > 0 {
		return m.action.MaxWallLength
	}
	return m.config.DefaultMaxWallLength
}

func (m *WallMode) wallWidth() float32 {
	if m.action.LineWidth > 0 {
		return m.action.LineWidth
	}
	return m.config.DefaultLineWidth
}

func (m *WallMode) inRange(point mgl32.Vec3) bool {
	return util.FlatDistance(m.sourcePos, point) <= m.action.Range
}

// checkStart validates a candidate start point.
func (m *WallMode) checkStart(hover HoverData) (Validity, string) {
	if !hover.Ground {
		return Invalid, ReasonInvalidLocation
	}
	if !m.inRange(hover.Point) {
		return OutOfRange, ReasonOutOfRange
	}
	return Valid, ""
}

// checkEnd validates a candidate end point against the placed start.
func (m *WallMode) checkEnd(hover HoverData) (Validity, string) {
	if !hover.Ground {
		return Invalid, ReasonInvalidLocation
	}
	length := util.FlatDistance(m.wallStart, hover.Point)
	if length < minWallLength {
		return Invalid, ReasonWallTooShort
	}
	if length > m.maxLength() {
		return Invalid, ReasonWallTooLong
	}
	if !m.inRange(hover.Point) {
		return OutOfRange, ReasonOutOfRange
	}
	return Valid, ""
}

func (m *WallMode) UpdatePreview(hover HoverData, preview *Preview) *Preview {
	m.addRangeRing(preview)
	preview.Cursor = CursorCast
	if m.step == 0 {
		validity, reason := m.checkStart(hover)
		preview.AddShape(GroundShape{
			Kind:   ShapeWallAnchor,
			Center: hover.Point,
			Radius: m.config.DefaultFootprintRadius,
			Color:  ValidityColor(validity == Valid),
			Valid:  validity == Valid,
		})
		preview.SetValidity(validity, reason)
		return preview
	}

	validity, reason := m.checkEnd(hover)
	length := util.FlatDistance(m.wallStart, hover.Point)
	wall := GroundShape{
		Kind:   ShapeWall,
		Center: util.Midpoint(m.wallStart, hover.Point),
		Start:  m.wallStart,
		End:    hover.Point,
		Length: length,
		Width:  m.wallWidth(),
		Color:  ValidityColor(validity == Valid),
		Valid:  validity == Valid,
	}
	start := m.wallStart
	if highlightAffected(preview, m.source, m.resolveAffected(hover.Point, &start)) && validity == Valid {
		wall.Color = ColorFriendlyFire
	}
	preview.AddShape(GroundShape{Kind: ShapeWallAnchor, Center: m.wallStart, Radius: m.config.DefaultFootprintRadius, Color: ColorTechTeal, Valid: true})
	preview.AddShape(wall)
	preview.AddText(wall.Center.Add(util.Up.Mul(0.5)), fmt.Sprintf("%.1f / %.1f", length, m.maxLength()), ValidityColor(validity == Valid))
	preview.SetValidity(validity, reason)
	return preview
}

func (m *WallMode) TryConfirm(hover HoverData) ConfirmResult {
	if m.step == 0 {
		if validity, reason := m.checkStart(hover); validity != Valid {
			return Rejected(reason)
		}
		m.wallStart = hover.Point
		m.step = 1
		util.LogTargetingDebug("[WallMode] wall start placed at %v", m.wallStart)
		return AdvanceStep()
	}
	if validity, reason := m.checkEnd(hover); validity != Valid {
		return Rejected(reason)
	}
	return ExecuteWall(m.wallStart, hover.Point)
}

func (m *WallMode) TryUndoLastStep() bool {
	if m.step == 0 {
		return false
	}
	m.reset()
	return true
}

func (m *WallMode) Cancel() {
	m.reset()
}

func (m *WallMode) Exit() {
	m.reset()
	m.exit()
}

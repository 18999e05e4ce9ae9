package targeting

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

// pathSampler produces the flight path between two elevated points. ok is false when no path exists.
type pathSampler func(from, to mgl32.Vec3) (points []mgl32.Vec3, ok bool)

// trajectory is the shared core of all modes that fly something along a path
// and stop it at the first piece of static geometry in the way.
type trajectory struct {
	singleStep
	modeState
	kind    ModeType
	sample  pathSampler
	measure func(t *trace) float32
}

type trace struct {
	points      []mgl32.Vec3
	destination mgl32.Vec3
	noPath      bool
	blocked     bool
	hit         mgl32.Vec3
	open        []mgl32.Vec3
	interrupted []mgl32.Vec3
	distance    float32
	outOfRange  bool
}

type StraightLineMode struct {
	trajectory
}

type BallisticArcMode struct {
	trajectory
}

type BezierCurveMode struct {
	trajectory
}

// PathfindMode follows the navigation mesh around obstacles; range is measured along the path.
type PathfindMode struct {
	trajectory
}

func NewStraightLineMode(services *Services, config Config) *StraightLineMode {
	m := &StraightLineMode{trajectory{modeState: newModeState(services, config), kind: ModeStraightLine}}
	m.sample = func(from, to mgl32.Vec3) ([]mgl32.Vec3, bool) {
		return []mgl32.Vec3{from, to}, true
	}
	m.measure = m.directDistance
	return m
}

func NewBallisticArcMode(services *Services, config Config) *BallisticArcMode {
	m := &BallisticArcMode{trajectory{modeState: newModeState(services, config), kind: ModeBallisticArc}}
	m.sample = func(from, to mgl32.Vec3) ([]mgl32.Vec3, bool) {
		return util.ParabolicArc(from, to, m.config.ArcSamples, m.config.ArcHeightFactor, m.config.MinArcHeight), true
	}
	m.measure = m.directDistance
	return m
}

func NewBezierCurveMode(services *Services, config Config) *BezierCurveMode {
	m := &BezierCurveMode{trajectory{modeState: newModeState(services, config), kind: ModeBezierCurve}}
	m.sample = func(from, to mgl32.Vec3) ([]mgl32.Vec3, bool) {
		return util.ArcingCurve(from, to, m.config.CurveSamples, m.config.CurveForward, m.config.CurveLift), true
	}
	m.measure = m.directDistance
	return m
}

func NewPathfindMode(services *Services, config Config) *PathfindMode {
	m := &PathfindMode{trajectory{modeState: newModeState(services, config), kind: ModePathfind}}
	m.sample = func(from, to mgl32.Vec3) ([]mgl32.Vec3, bool) {
		if m.services.Nav == nil {
			return nil, false
		}
		raw := m.services.Nav.FindPath(from, to)
		if len(raw) < 2 {
			return nil, false
		}
		return util.SmoothPolyline(raw, m.config.SmoothingPasses), true
	}
	m.measure = func(t *trace) float32 {
		return util.PolylineLength(t.points)
	}
	return m
}

func (m *trajectory) Type() ModeType {
	return m.kind
}

func (m *trajectory) Enter(action *game.ActionDefinition, source *game.Combatant, sourcePosition mgl32.Vec3) {
	m.enter(action, source, sourcePosition)
}

func (m *trajectory) directDistance(t *trace) float32 {
	return util.Distance3D(m.sourcePos, t.destination)
}

// aimTarget is where the path should end: a hovered unit's center of mass or the raw cursor point.
func aimTarget(hover HoverData) mgl32.Vec3 {
	if hover.Hovered != nil {
		return hover.Hovered.CenterOfMass()
	}
	return hover.Point
}

// groundTarget is the point range is measured to.
func groundTarget(hover HoverData) mgl32.Vec3 {
	if hover.Hovered != nil {
		return hover.Hovered.Position
	}
	return hover.Point
}

func (m *trajectory) trace(hover HoverData) *trace {
	t := &trace{destination: groundTarget(hover)}
	points, ok := m.sample(m.launchPoint(), aimTarget(hover))
	if !ok || len(points) < 2 {
		t.noPath = true
		return t
	}
	t.points = points
	if m.services.Raycast != nil {
		for i := 0; i < len(points)-1; i++ {
			hit, blocked := m.services.Raycast.RaycastEnvironment(points[i], points[i+1])
			if !blocked {
				continue
			}
			t.blocked = true
			t.hit = hit
			t.open, t.interrupted = util.SplitPolylineAt(points, i, hit)
			break
		}
	}
	t.distance = m.measure(t)
	t.outOfRange = t.distance > m.action.Range
	return t
}

func (m *trajectory) UpdatePreview(hover HoverData, preview *Preview) *Preview {
	m.addRangeRing(preview)
	t := m.trace(hover)
	switch {
	case t.noPath:
		preview.SetValidity(NoValidPath, ReasonNoValidPath)
		preview.Cursor = CursorInvalid
		return preview
	case t.blocked:
		preview.AddPath(t.open, false, ColorTechTeal)
		preview.AddPath(t.interrupted, true, ColorNegativeRed)
		preview.AddImpact(t.hit, MarkerX)
		preview.SetValidity(PathInterrupted, ReasonPathBlocked)
		preview.Cursor = CursorInvalid
		return preview
	}

	verdict := game.Allowed()
	if hover.Hovered != nil && !t.outOfRange {
		verdict = m.services.validate(m.action, m.source, hover.Hovered)
	}
	preview.AddPath(t.points, false, ValidityColor(!t.outOfRange && verdict.Valid))
	preview.AddImpact(t.points[len(t.points)-1], MarkerRing)
	switch {
	case t.outOfRange:
		preview.SetValidity(OutOfRange, ReasonOutOfRange)
		preview.Cursor = CursorInvalid
		return preview
	case !verdict.Valid:
		m.previewRejection(preview, hover.Hovered, verdict)
		return preview
	}
	if hover.Hovered != nil {
		m.previewTarget(preview, hover.Hovered)
	}
	preview.SetValidity(Valid, "")
	preview.Cursor = CursorAttack
	return preview
}

func (m *trajectory) TryConfirm(hover HoverData) ConfirmResult {
	t := m.trace(hover)
	switch {
	case t.noPath:
		return Rejected(ReasonNoValidPath)
	case t.blocked:
		return Rejected(ReasonPathBlocked)
	case t.outOfRange:
		return Rejected(ReasonOutOfRange)
	}
	if hover.Hovered != nil {
		verdict := m.services.validate(m.action, m.source, hover.Hovered)
		if !verdict.Valid {
			return Rejected(verdict.Reason)
		}
		return ExecuteTarget(hover.Hovered.ID)
	}
	if hover.Ground {
		return ExecutePosition(hover.Point)
	}
	return Rejected(ReasonNoValidTarget)
}

func (m *trajectory) Cancel() {}

func (m *trajectory) Exit() {
	m.exit()
}

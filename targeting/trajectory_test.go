package targeting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

func shotAction(rangeLimit float32) *game.ActionDefinition {
	return &game.ActionDefinition{ID: "shot", Category: game.CategoryRanged, Range: rangeLimit}
}

func TestStraightLineStopsAtWall(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	mode := NewStraightLineMode(&Services{Raycast: planeBlocker{X: 5}}, DefaultConfig())
	mode.Enter(shotAction(20), source, source.Position)

	preview := mode.UpdatePreview(groundHover(10, 0), NewPreview())
	if preview.Validity != PathInterrupted || preview.Reason != ReasonPathBlocked {
		t.Fatalf("expected PATH BLOCKED, got %s '%s'", preview.Validity, preview.Reason)
	}
	blocked := preview.BlockedPaths()
	if len(blocked) != 1 {
		t.Fatalf("expected exactly one blocked segment, got %d", len(blocked))
	}
	hit := mgl32.Vec3{5, 0.75, 0}
	if !util.ApproxEqual(blocked[0].Points[0], hit, 1e-4) {
		t.Fatalf("expected the blocked segment to start at the hit, got %v", blocked[0].Points[0])
	}
	if len(preview.Impacts) != 1 || preview.Impacts[0].Kind != MarkerX || !util.ApproxEqual(preview.Impacts[0].Position, hit, 1e-4) {
		t.Fatalf("expected an X marker at the hit, got %+v", preview.Impacts)
	}
	if result := mode.TryConfirm(groundHover(10, 0)); result.Reason != ReasonPathBlocked {
		t.Fatalf("expected rejection, got %s", result.ToString())
	}
}

func TestBallisticArcMidPathHit(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	config := DefaultConfig()
	mode := NewBallisticArcMode(&Services{Raycast: planeBlocker{X: 5.2}}, config)
	mode.Enter(shotAction(20), source, source.Position)

	preview := mode.UpdatePreview(groundHover(10, 0), NewPreview())
	if preview.Validity != PathInterrupted {
		t.Fatalf("expected the arc to be interrupted, got %s", preview.Validity)
	}
	blocked := preview.BlockedPaths()
	if len(blocked) != 1 {
		t.Fatalf("expected exactly one blocked segment, got %d", len(blocked))
	}
	if blocked[0].Points[0] != preview.Impacts[0].Position {
		t.Fatalf("expected the blocked segment to start at the reported hit")
	}
	if x := blocked[0].Points[0].X(); x < 5.199 || x > 5.201 {
		t.Fatalf("expected the hit on the wall plane, got %v", x)
	}
	open := preview.Paths[0]
	if open.Blocked || open.Points[len(open.Points)-1] != blocked[0].Points[0] {
		t.Fatalf("expected the clear part to end at the hit")
	}
	if total := len(open.Points) + len(blocked[0].Points); total != config.ArcSamples+1+2 {
		t.Fatalf("expected the split to keep every sample plus the hit twice, got %d", total)
	}
}

func TestTrajectorySamples(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	config := DefaultConfig()
	hover := groundHover(8, 3)
	launch := source.Position.Add(util.Up.Mul(config.LaunchHeight))

	arc := NewBallisticArcMode(&Services{}, config)
	arc.Enter(shotAction(20), source, source.Position)
	points := arc.UpdatePreview(hover, NewPreview()).Paths[0].Points
	if len(points) != config.ArcSamples+1 || points[0] != launch || points[len(points)-1] != hover.Point {
		t.Fatalf("unexpected arc samples %d %v..%v", len(points), points[0], points[len(points)-1])
	}

	curve := NewBezierCurveMode(&Services{}, config)
	curve.Enter(shotAction(20), source, source.Position)
	preview := curve.UpdatePreview(hover, NewPreview())
	points = preview.Paths[0].Points
	if len(points) != config.CurveSamples+1 || points[0] != launch || points[len(points)-1] != hover.Point {
		t.Fatalf("unexpected curve samples %d %v..%v", len(points), points[0], points[len(points)-1])
	}
	if !preview.IsValid() || len(preview.Impacts) != 1 || preview.Impacts[0].Kind != MarkerRing || preview.Impacts[0].Position != hover.Point {
		t.Fatalf("expected a ring marker at the destination, got %+v", preview.Impacts)
	}
}

func TestStraightLineRangeAndTargets(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	enemy := newUnit(2, "red", 6, 0)
	services := &Services{Raycast: planeBlocker{X: 50}, Validator: &stubValidator{verdict: game.Allowed()}}
	mode := NewStraightLineMode(services, DefaultConfig())
	mode.Enter(shotAction(8), source, source.Position)

	if preview := mode.UpdatePreview(groundHover(10, 0), NewPreview()); preview.Validity != OutOfRange || preview.Reason != ReasonOutOfRange {
		t.Fatalf("expected out of range, got %s", preview.Validity)
	}
	if result := mode.TryConfirm(groundHover(10, 0)); result.Reason != ReasonOutOfRange {
		t.Fatalf("expected rejection for range, got %s", result.ToString())
	}
	preview := mode.UpdatePreview(unitHover(enemy), NewPreview())
	if end := preview.Paths[0].Points[1]; end != enemy.CenterOfMass() {
		t.Fatalf("expected to aim at the center of mass, got %v", end)
	}
	if result := mode.TryConfirm(unitHover(enemy)); result.Outcome != OutcomeExecuteTarget || result.TargetID != 2 {
		t.Fatalf("expected ExecuteTarget(2), got %s", result.ToString())
	}
	if result := mode.TryConfirm(groundHover(4, 4)); result.Outcome != OutcomeExecutePosition || result.Position != (mgl32.Vec3{4, 0, 4}) {
		t.Fatalf("expected ExecutePosition, got %s", result.ToString())
	}
	if result := mode.TryConfirm(airHover(4, 3, 0)); result.Reason != ReasonNoValidTarget {
		t.Fatalf("expected no valid target in the air, got %s", result.ToString())
	}

	services.Validator = &stubValidator{verdict: game.Denied(game.ReasonWrongFaction, "Target faction is friendly")}
	if result := mode.TryConfirm(unitHover(enemy)); result.Reason != "Target faction is friendly" {
		t.Fatalf("expected the validator's reason, got %s", result.ToString())
	}
	preview = mode.UpdatePreview(unitHover(enemy), NewPreview())
	if preview.Validity != InvalidTargetType || preview.Reason != "Target faction is friendly" || preview.Cursor != CursorInvalid {
		t.Fatalf("expected the preview to show the refusal, got %s '%s'", preview.Validity, preview.Reason)
	}
	if len(preview.Highlights) != 1 || preview.Highlights[0].Kind != HighlightInvalid || len(preview.Texts) != 0 {
		t.Fatalf("expected an invalid highlight without a hit chance label, got %+v %+v", preview.Highlights, preview.Texts)
	}
}

func TestBlockedPathWinsOverRange(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	mode := NewStraightLineMode(&Services{Raycast: planeBlocker{X: 5}}, DefaultConfig())
	mode.Enter(shotAction(8), source, source.Position)

	preview := mode.UpdatePreview(groundHover(10, 0), NewPreview())
	if preview.Validity != PathInterrupted || preview.Reason != ReasonPathBlocked {
		t.Fatalf("expected PATH BLOCKED beyond range, got %s '%s'", preview.Validity, preview.Reason)
	}
	if blocked := preview.BlockedPaths(); len(blocked) != 1 {
		t.Fatalf("expected exactly one blocked segment, got %d", len(blocked))
	}
	if result := mode.TryConfirm(groundHover(10, 0)); result.Reason != ReasonPathBlocked {
		t.Fatalf("expected PATH BLOCKED rather than OUT OF RANGE, got %s", result.ToString())
	}
}

func TestPathfindWithoutNavigation(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	for _, services := range []*Services{{}, {Nav: detourNav{}}} {
		mode := NewPathfindMode(services, DefaultConfig())
		mode.Enter(shotAction(12), source, source.Position)
		preview := mode.UpdatePreview(groundHover(4, 0), NewPreview())
		if preview.Validity != NoValidPath || preview.Reason != ReasonNoValidPath {
			t.Fatalf("expected NO VALID PATH, got %s '%s'", preview.Validity, preview.Reason)
		}
		if result := mode.TryConfirm(groundHover(4, 0)); result.Reason != ReasonNoValidPath {
			t.Fatalf("expected rejection, got %s", result.ToString())
		}
	}
}

func TestPathfindMeasuresAlongPath(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	config := DefaultConfig()
	launch := source.Position.Add(util.Up.Mul(config.LaunchHeight))

	short := NewPathfindMode(&Services{Nav: detourNav{via: []mgl32.Vec3{{2, 1.5, 1}}}}, config)
	short.Enter(shotAction(12), source, source.Position)
	preview := short.UpdatePreview(groundHover(4, 0), NewPreview())
	if !preview.IsValid() {
		t.Fatalf("expected a valid path, got %s", preview.Validity)
	}
	points := preview.Paths[0].Points
	if len(points) != 12 || points[0] != launch || points[len(points)-1] != (mgl32.Vec3{4, 0, 0}) {
		t.Fatalf("expected a twice smoothed path between the fixed ends, got %d points", len(points))
	}

	detour := NewPathfindMode(&Services{Nav: detourNav{via: []mgl32.Vec3{{0, 1.5, 20}, {4, 1.5, 20}}}}, config)
	detour.Enter(shotAction(12), source, source.Position)
	if preview = detour.UpdatePreview(groundHover(4, 0), NewPreview()); preview.Validity != OutOfRange {
		t.Fatalf("expected the long detour to be out of range, got %s", preview.Validity)
	}
}

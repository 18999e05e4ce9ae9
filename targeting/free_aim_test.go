package targeting

import (
	"testing"

	"github.com/memmaker/battletarget/game"
)

func TestFreeAimOutOfRange(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	mode := NewFreeAimGroundMode(&Services{LOS: fixedSight(true)}, DefaultConfig())
	mode.Enter(&game.ActionDefinition{ID: "fireball", Targeting: game.TargetGround, Range: 10}, source, source.Position)

	preview := mode.UpdatePreview(groundHover(15, 0), NewPreview())
	if preview.Validity != OutOfRange || preview.Reason != ReasonOutOfRange {
		t.Fatalf("expected OUT OF RANGE, got %s '%s'", preview.Validity, preview.Reason)
	}
	if result := mode.TryConfirm(groundHover(15, 0)); result.Reason != ReasonOutOfRange {
		t.Fatalf("expected rejection for range, got %s", result.ToString())
	}
}

func TestFreeAimValidPlacesReticleAndFootprint(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	mode := NewFreeAimGroundMode(&Services{LOS: fixedSight(true)}, DefaultConfig())
	mode.Enter(&game.ActionDefinition{ID: "fireball", Targeting: game.TargetGround, Range: 10}, source, source.Position)

	hover := groundHover(5, 0)
	preview := mode.UpdatePreview(hover, NewPreview())
	if !preview.IsValid() {
		t.Fatalf("expected valid, got %s '%s'", preview.Validity, preview.Reason)
	}
	reticles := preview.ShapesOfKind(ShapeReticle)
	footprints := preview.ShapesOfKind(ShapeFootprint)
	if len(reticles) != 1 || reticles[0].Center != hover.Point {
		t.Fatalf("expected a reticle at the cursor, got %+v", reticles)
	}
	if len(footprints) != 1 || footprints[0].Center != hover.Point || footprints[0].Radius != DefaultConfig().DefaultFootprintRadius {
		t.Fatalf("expected a footprint ring at the cursor, got %+v", footprints)
	}
	result := mode.TryConfirm(hover)
	if result.Outcome != OutcomeExecutePosition || result.Position != hover.Point {
		t.Fatalf("expected ExecutePosition at the cursor, got %s", result.ToString())
	}
}

func TestFreeAimNeedsSightAndGround(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	mode := NewFreeAimGroundMode(&Services{LOS: fixedSight(false)}, DefaultConfig())
	mode.Enter(&game.ActionDefinition{ID: "fireball", Range: 10}, source, source.Position)

	if preview := mode.UpdatePreview(groundHover(5, 0), NewPreview()); preview.Validity != NoLineOfSight || preview.Reason != ReasonNoLineOfSight {
		t.Fatalf("expected no line of sight, got %s", preview.Validity)
	}
	if result := mode.TryConfirm(airHover(5, 3, 0)); result.Reason != ReasonInvalidLocation {
		t.Fatalf("expected invalid location, got %s", result.ToString())
	}
}

func TestFreeAimAreaHighlights(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	friend := newUnit(2, "blue", 5, 1)
	services := &Services{Areas: fixedAreas{units: []*game.Combatant{friend}}}
	mode := NewFreeAimGroundMode(services, DefaultConfig())
	mode.Enter(&game.ActionDefinition{ID: "fireball", Range: 10, AreaRadius: 2}, source, source.Position)

	preview := mode.UpdatePreview(groundHover(5, 0), NewPreview())
	if len(preview.Highlights) != 1 || preview.Highlights[0].Kind != HighlightWarning {
		t.Fatalf("expected a friendly fire highlight, got %+v", preview.Highlights)
	}
	if footprints := preview.ShapesOfKind(ShapeFootprint); footprints[0].Radius != 2 || footprints[0].Color != ColorFriendlyFire {
		t.Fatalf("expected a warning coloured footprint of radius 2, got %+v", footprints)
	}
}

func TestJumpUsesCachedPath(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	jump := &countingJump{length: 3, success: true}
	services := &Services{Jump: jump, JumpLimit: fixedJumpLimit(4)}
	mode := NewFreeAimGroundMode(services, DefaultConfig())
	mode.Enter(&game.ActionDefinition{ID: "jump", Range: 1}, source, source.Position)
	if !mode.IsJump() {
		t.Fatalf("expected the jump branch")
	}

	preview := mode.UpdatePreview(groundHover(3, 0), NewPreview())
	if !preview.IsValid() || len(preview.Paths) != 1 {
		t.Fatalf("expected a valid jump arc, got %s", preview.Validity)
	}
	if rings := preview.ShapesOfKind(ShapeRangeRing); rings[0].Radius != 4 {
		t.Fatalf("expected the jump limit as ring radius, got %v", rings[0].Radius)
	}
	mode.UpdatePreview(groundHover(3.05, 0), NewPreview())
	mode.TryConfirm(groundHover(3, 0.05))
	if jump.calls != 1 {
		t.Fatalf("expected one planner call for nearby cursor points, got %d", jump.calls)
	}
	mode.UpdatePreview(groundHover(3.5, 0), NewPreview())
	if jump.calls != 2 {
		t.Fatalf("expected a new plan after moving away, got %d", jump.calls)
	}

	jump.length = 6
	mode.Cancel()
	if preview = mode.UpdatePreview(groundHover(3.5, 0), NewPreview()); preview.Validity != OutOfRange {
		t.Fatalf("expected a jump beyond the limit to be out of range, got %s", preview.Validity)
	}
}

func TestJumpFailureAndFallback(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	jump := &countingJump{success: false, reason: "Cannot land there"}
	mode := NewFreeAimGroundMode(&Services{Jump: jump}, DefaultConfig())
	mode.Enter(&game.ActionDefinition{ID: "leap", Range: 4}, source, source.Position)
	preview := mode.UpdatePreview(groundHover(2, 0), NewPreview())
	if preview.Validity != NoValidPath || preview.Reason != "Cannot land there" {
		t.Fatalf("expected the planner's failure, got %s '%s'", preview.Validity, preview.Reason)
	}

	plain := NewFreeAimGroundMode(&Services{}, DefaultConfig())
	plain.Enter(&game.ActionDefinition{ID: "jump", Range: 4}, source, source.Position)
	preview = plain.UpdatePreview(groundHover(2, 0), NewPreview())
	if !preview.IsValid() || len(preview.Paths) != 1 || len(preview.Paths[0].Points) != 2 {
		t.Fatalf("expected a straight jump preview, got %s", preview.Validity)
	}
	if preview = plain.UpdatePreview(groundHover(6, 0), NewPreview()); preview.Validity != OutOfRange {
		t.Fatalf("expected the straight jump to be range checked, got %s", preview.Validity)
	}
}

package targeting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

func TestConeAndLineUseFallbackAxis(t *testing.T) {
	source := newUnit(1, "blue", 2, 2)
	action := &game.ActionDefinition{ID: "breath", Range: 6}
	modes := []Mode{NewConeMode(&Services{}, DefaultConfig()), NewLineMode(&Services{}, DefaultConfig())}
	for _, mode := range modes {
		mode.Enter(action, source, source.Position)
		hover := groundHover(2, 2)
		preview := mode.UpdatePreview(hover, NewPreview())
		if !preview.IsValid() || len(preview.Shapes) != 1 {
			t.Fatalf("%s: expected one valid shape", mode.Type())
		}
		if preview.Shapes[0].Direction != (mgl32.Vec3{0, 0, 1}) {
			t.Fatalf("%s: expected +Z fallback, got %v", mode.Type(), preview.Shapes[0].Direction)
		}
		result := mode.TryConfirm(hover)
		if result.Outcome != OutcomeExecutePosition || !util.ApproxEqual(result.Position, mgl32.Vec3{2, 0, 8}, 1e-5) {
			t.Fatalf("%s: expected aim point at range along +Z, got %s", mode.Type(), result.ToString())
		}
	}
}

func TestConeFollowsCursorOnGroundPlane(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	mode := NewConeMode(&Services{}, DefaultConfig())
	mode.Enter(&game.ActionDefinition{ID: "breath", Range: 5, ConeAngle: 90}, source, source.Position)
	direction := mode.Direction(mgl32.Vec3{3, 7, 0})
	if !util.ApproxEqual(direction, mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Fatalf("expected +X, got %v", direction)
	}
	preview := mode.UpdatePreview(groundHover(3, 0), NewPreview())
	if preview.Shapes[0].Kind != ShapeCone || preview.Shapes[0].Angle != 90 || preview.Shapes[0].Length != 5 {
		t.Fatalf("unexpected cone shape %+v", preview.Shapes[0])
	}
}

func TestAreaFriendlyFireWarning(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	friend := newUnit(2, "blue", 0, 3)
	enemy := newUnit(3, "red", 0, 4)
	bystander := newUnit(4, game.FactionNeutral, 0, 5)
	services := &Services{Areas: fixedAreas{units: []*game.Combatant{enemy, bystander}}}
	mode := NewLineMode(services, DefaultConfig())
	mode.Enter(&game.ActionDefinition{ID: "beam", Range: 8}, source, source.Position)

	preview := mode.UpdatePreview(groundHover(0, 6), NewPreview())
	if preview.Shapes[0].Color != ColorAreaFill {
		t.Fatalf("no friendly fire expected")
	}
	if preview.Highlights[0].Kind != HighlightEnemy || preview.Highlights[1].Kind != HighlightNeutral {
		t.Fatalf("unexpected highlights %+v", preview.Highlights)
	}

	services.Areas = fixedAreas{units: []*game.Combatant{friend, enemy}}
	preview = mode.UpdatePreview(groundHover(0, 6), NewPreview())
	if preview.Shapes[0].Color != ColorFriendlyFire || preview.Highlights[0].Kind != HighlightWarning {
		t.Fatalf("expected a friendly fire warning, got %+v", preview.Highlights)
	}
	if !preview.IsValid() {
		t.Fatalf("area shapes are always valid")
	}
}

package targeting

import (
	"testing"

	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

func chainField() (source, primary *game.Combatant, units roster) {
	source = newUnit(1, "blue", 0, 0)
	primary = newUnit(2, "red", 3, 0)
	near := newUnit(3, "red", 5, 0)
	next := newUnit(4, "red", 8, 0)
	farAway := newUnit(5, "red", 5, 20)
	ally := newUnit(6, "blue", 4, 1)
	dead := newUnit(7, "red", 3, 1)
	dead.Alive = false
	return source, primary, roster{source, primary, near, next, farAway, ally, dead}
}

func TestChainBouncesToNearestLegalUnits(t *testing.T) {
	source, primary, units := chainField()
	action := &game.ActionDefinition{ID: "chain_lightning", Range: 4, MaxTargets: 3}
	mode := NewChainMode(&Services{Validator: factionValidator{}, Roster: units}, DefaultConfig())
	mode.Enter(action, source, source.Position)

	chain := mode.bounceChain(primary)
	if len(chain) != 2 || chain[0].ID != 3 || chain[1].ID != 4 {
		t.Fatalf("expected chain [3 4], got %v", chain)
	}
	previous := primary
	for _, link := range chain {
		if link.ID == source.ID || link.ID == primary.ID || !link.Alive {
			t.Fatalf("illegal link %s", link.ToString())
		}
		if util.Distance3D(previous.Position, link.Position) > action.Range {
			t.Fatalf("hop to %s exceeds range", link.ToString())
		}
		previous = link
	}

	preview := mode.UpdatePreview(unitHover(primary), NewPreview())
	if !preview.IsValid() || len(preview.Paths) != 3 || len(preview.Highlights) != 3 {
		t.Fatalf("expected three hops, got %d paths and %d highlights", len(preview.Paths), len(preview.Highlights))
	}
	if preview.Texts[2].Text != "3" {
		t.Fatalf("expected ordinal labels, got %+v", preview.Texts)
	}
	if result := mode.TryConfirm(unitHover(primary)); result.Outcome != OutcomeExecuteTarget || result.TargetID != primary.ID {
		t.Fatalf("expected ExecuteTarget on the primary, got %s", result.ToString())
	}
}

func TestChainBounceBound(t *testing.T) {
	source, primary, units := chainField()
	mode := NewChainMode(&Services{Validator: factionValidator{}, Roster: units}, DefaultConfig())

	mode.Enter(&game.ActionDefinition{ID: "zap", Range: 4, MaxTargets: 2}, source, source.Position)
	if chain := mode.bounceChain(primary); len(chain) != 1 {
		t.Fatalf("expected one bounce for two targets, got %v", chain)
	}
	mode.Enter(&game.ActionDefinition{ID: "zap", Range: 100}, source, source.Position)
	if chain := mode.bounceChain(primary); len(chain) != DefaultConfig().DefaultChainBounces {
		t.Fatalf("expected the default bounce count, got %v", chain)
	}
}

func TestChainTiesGoToLowerID(t *testing.T) {
	source := newUnit(1, "blue", 0, 0)
	primary := newUnit(2, "red", 5, 0)
	right := newUnit(9, "red", 7, 0)
	left := newUnit(8, "red", 3, 0)
	mode := NewChainMode(&Services{Roster: roster{source, primary, right, left}}, DefaultConfig())
	mode.Enter(&game.ActionDefinition{ID: "zap", Range: 4, MaxTargets: 2}, source, source.Position)
	if chain := mode.bounceChain(primary); len(chain) != 1 || chain[0].ID != 8 {
		t.Fatalf("expected the tie to go to unit 8, got %v", chain)
	}
}

func TestChainRejectsIllegalPrimary(t *testing.T) {
	source, _, units := chainField()
	mode := NewChainMode(&Services{Validator: factionValidator{}, Roster: units}, DefaultConfig())
	mode.Enter(&game.ActionDefinition{ID: "zap", Range: 4}, source, source.Position)
	ally := units[5]
	preview := mode.UpdatePreview(unitHover(ally), NewPreview())
	if preview.Validity != InvalidTargetType {
		t.Fatalf("expected invalid target type, got %s", preview.Validity)
	}
	if result := mode.TryConfirm(unitHover(ally)); !result.IsRejected() {
		t.Fatalf("expected rejection, got %s", result.ToString())
	}
	if result := mode.TryConfirm(groundHover(1, 1)); result.Reason != ReasonNoValidTarget {
		t.Fatalf("expected no valid target, got %s", result.ToString())
	}
}

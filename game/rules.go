package game

import (
	"fmt"

	"github.com/memmaker/battletarget/engine/util"
)

const (
	defaultAccuracy     = 0.75
	effectiveHitRange   = 5.0
	hitFalloffPerMeter  = 0.02
	minimumHitChance    = 5.0
	maximumHitChance    = 95.0
	preciseTagHitBonus  = 0.10
	reachMeleeTolerance = 0.25
)

// ValidateTarget checks a candidate against range, faction and line of sight of the action.
func (b *Battlefield) ValidateTarget(action *ActionDefinition, source, candidate *Combatant) Verdict {
	if candidate == nil {
		return Denied(ReasonNoTarget, "No target")
	}
	if !candidate.Alive {
		return Denied(ReasonInvalidTarget, fmt.Sprintf("%s is not a valid target", candidate.GetName()))
	}
	if candidate.ID == source.ID && !action.HasTag(TagSelf) {
		return Denied(ReasonInvalidTarget, "Cannot target yourself")
	}
	if candidate.ID != source.ID && RelationBetween(source, candidate) == RelationAlly && !action.AllowFriendly {
		return Denied(ReasonWrongFaction, "Target faction is friendly")
	}
	reach := action.Range
	if action.IsMelee() {
		reach += reachMeleeTolerance
	}
	distance := util.Distance3D(source.Position, candidate.Position)
	if distance > reach {
		return Denied(ReasonOutOfRange, fmt.Sprintf("Target out of range (%.1f > %.1f)", distance, action.Range))
	}
	if !action.IsMelee() && candidate.ID != source.ID && !b.CanSee(source, candidate) {
		return Denied(ReasonNoLineOfSight, "No line of sight to target")
	}
	return Allowed()
}

// HitChance estimates the percentage chance for source to hit target.
func (b *Battlefield) HitChance(source, target *Combatant, tags []string) float32 {
	accuracy := source.Accuracy
	if accuracy <= 0 {
		accuracy = defaultAccuracy
	}
	distance := util.Distance3D(source.Position, target.Position)
	if distance > effectiveHitRange {
		accuracy -= (distance - effectiveHitRange) * hitFalloffPerMeter
	}
	for _, tag := range tags {
		if tag == "precise" {
			accuracy += preciseTagHitBonus
		}
	}
	chance := accuracy * 100
	return util.Min(maximumHitChance, util.Max(minimumHitChance, chance))
}

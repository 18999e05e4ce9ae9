package game

// FactionNeutral never counts as an ally or an enemy of anybody else.
const FactionNeutral = "neutral"

type Relation int

const (
	RelationEnemy Relation = iota
	RelationAlly
	RelationNeutral
)

func (r Relation) String() string {
	switch r {
	case RelationAlly:
		return "ally"
	case RelationNeutral:
		return "neutral"
	}
	return "enemy"
}

// RelationBetween classifies other from the point of view of observer.
func RelationBetween(observer, other *Combatant) Relation {
	if observer == nil || other == nil {
		return RelationNeutral
	}
	if observer.Faction == other.Faction {
		return RelationAlly
	}
	if observer.Faction == FactionNeutral || other.Faction == FactionNeutral {
		return RelationNeutral
	}
	return RelationEnemy
}

package game

import (
	"strings"

	"github.com/memmaker/battletarget/engine/voxel"
)

// TargetingKind selects how an action's target is picked.
type TargetingKind string

const (
	TargetSingle   TargetingKind = "single"
	TargetMulti    TargetingKind = "multi"
	TargetChain    TargetingKind = "chain"
	TargetCone     TargetingKind = "cone"
	TargetLine     TargetingKind = "line"
	TargetWall     TargetingKind = "wall"
	TargetGround   TargetingKind = "ground"
	TargetStraight TargetingKind = "straight"
	TargetArc      TargetingKind = "arc"
	TargetCurve    TargetingKind = "curve"
	TargetPathfind TargetingKind = "pathfind"
)

type AttackCategory string

const (
	CategoryMelee  AttackCategory = "melee"
	CategoryRanged AttackCategory = "ranged"
	CategoryWeapon AttackCategory = "weapon"
	CategorySpell  AttackCategory = "spell"
)

// TagSelf marks area actions that also catch the unit using them.
const TagSelf = "self"

// ActionDefinition holds the static parameters of an action. It is never modified while targeting.
type ActionDefinition struct {
	ID            string
	Name          string
	Targeting     TargetingKind
	Category      AttackCategory
	Range         float32
	AreaRadius    float32
	ConeAngle     float32 // degrees
	LineWidth     float32
	MaxWallLength float32
	MaxTargets    int
	AllowFriendly bool
	Tags          []string
}

func (a *ActionDefinition) GetName() string {
	if a.Name == "" {
		return a.ID
	}
	return a.Name
}

func (a *ActionDefinition) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func (a *ActionDefinition) IsMelee() bool {
	return a.Category == CategoryMelee
}

// NewActionFromRecord converts a stored action. Unknown targeting kinds are kept as is
// and end up as single target selection.
func NewActionFromRecord(record voxel.ActionRecord) *ActionDefinition {
	tags := make([]string, len(record.Tags))
	copy(tags, record.Tags)
	return &ActionDefinition{
		ID:            record.ID,
		Name:          record.Name,
		Targeting:     TargetingKind(strings.ToLower(record.Targeting)),
		Category:      AttackCategory(strings.ToLower(record.Category)),
		Range:         record.Range,
		AreaRadius:    record.AreaRadius,
		ConeAngle:     record.ConeAngle,
		LineWidth:     record.LineWidth,
		MaxWallLength: record.MaxWallLength,
		MaxTargets:    int(record.MaxTargets),
		AllowFriendly: record.AllowFriendly != 0,
		Tags:          tags,
	}
}

// ToRecord is the inverse of NewActionFromRecord.
func (a *ActionDefinition) ToRecord() voxel.ActionRecord {
	record := voxel.ActionRecord{
		ID:            a.ID,
		Name:          a.Name,
		Targeting:     string(a.Targeting),
		Category:      string(a.Category),
		Range:         a.Range,
		AreaRadius:    a.AreaRadius,
		ConeAngle:     a.ConeAngle,
		LineWidth:     a.LineWidth,
		MaxWallLength: a.MaxWallLength,
		MaxTargets:    int32(a.MaxTargets),
		Tags:          a.Tags,
	}
	if a.AllowFriendly {
		record.AllowFriendly = 1
	}
	return record
}

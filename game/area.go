package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
)

const (
	defaultConeAngle = 60
	defaultLineWidth = 1.0
	defaultWallWidth = 1.0
	originTolerance  = 0.05
)

// ResolveArea lists the living combatants covered by the action's area when aimed at aimPoint.
// The shape follows action.Targeting; wallStart is only used by walls.
func (b *Battlefield) ResolveArea(action *ActionDefinition, source *Combatant, aimPoint mgl32.Vec3, all []*Combatant, positionOf func(*Combatant) mgl32.Vec3, wallStart *mgl32.Vec3) []*Combatant {
	if positionOf == nil {
		positionOf = CombatantPosition
	}
	origin := positionOf(source)
	var inside func(pos mgl32.Vec3) bool
	switch action.Targeting {
	case TargetCone:
		inside = coneContains(origin, aimPoint, action.Range, coneAngleOf(action))
	case TargetLine:
		inside = lineContains(origin, aimPoint, action.Range, lineWidthOf(action))
	case TargetWall:
		start := aimPoint
		if wallStart != nil {
			start = *wallStart
		}
		inside = wallContains(start, aimPoint, wallWidthOf(action))
	default:
		radius := action.AreaRadius
		inside = func(pos mgl32.Vec3) bool {
			return util.FlatDistance(aimPoint, pos) <= radius
		}
	}

	includeSelf := action.HasTag(TagSelf)
	var affected []*Combatant
	for _, unit := range all {
		if !unit.Alive {
			continue
		}
		if (includeSelf && unit.ID == source.ID) || inside(positionOf(unit)) {
			affected = append(affected, unit)
		}
	}
	return affected
}

func coneAngleOf(action *ActionDefinition) float32 {
	if action.ConeAngle > 0 {
		return action.ConeAngle
	}
	return defaultConeAngle
}

func lineWidthOf(action *ActionDefinition) float32 {
	if action.LineWidth > 0 {
		return action.LineWidth
	}
	return defaultLineWidth
}

func wallWidthOf(action *ActionDefinition) float32 {
	if action.LineWidth > 0 {
		return action.LineWidth
	}
	return defaultWallWidth
}

func coneContains(origin, aimPoint mgl32.Vec3, length, angleDegrees float32) func(mgl32.Vec3) bool {
	direction := util.DirectionFromSource(origin, aimPoint, util.Forward)
	cosHalf := util.Cos(mgl32.DegToRad(angleDegrees * 0.5))
	return func(pos mgl32.Vec3) bool {
		offset := util.Flatten(pos.Sub(origin))
		distance := offset.Len()
		if distance < originTolerance || distance > length {
			return false
		}
		return offset.Normalize().Dot(direction) >= cosHalf
	}
}

func lineContains(origin, aimPoint mgl32.Vec3, length, width float32) func(mgl32.Vec3) bool {
	direction := util.DirectionFromSource(origin, aimPoint, util.Forward)
	return func(pos mgl32.Vec3) bool {
		offset := util.Flatten(pos.Sub(origin))
		if offset.Len() < originTolerance {
			return false
		}
		along := offset.Dot(direction)
		if along < 0 || along > length {
			return false
		}
		across := offset.Sub(direction.Mul(along)).Len()
		return across <= width*0.5
	}
}

func wallContains(start, end mgl32.Vec3, width float32) func(mgl32.Vec3) bool {
	a := util.Flatten(start)
	b := util.Flatten(end)
	return func(pos mgl32.Vec3) bool {
		return pointSegmentDistance(util.Flatten(pos), a, b) <= width*0.5
	}
}

func pointSegmentDistance(p, a, b mgl32.Vec3) float32 {
	ab := b.Sub(a)
	lengthSquared := ab.Dot(ab)
	if lengthSquared == 0 {
		return p.Sub(a).Len()
	}
	t := mgl32.Clamp(p.Sub(a).Dot(ab)/lengthSquared, 0, 1)
	return p.Sub(a.Add(ab.Mul(t))).Len()
}

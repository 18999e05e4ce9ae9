package targeting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

func newUnit(id uint64, faction string, x, z float32) *game.Combatant {
	return &game.Combatant{
		ID:       id,
		Name:     fmt.Sprintf("unit%d", id),
		Faction:  faction,
		Position: mgl32.Vec3{x, 0, z},
		Alive:    true,
	}
}

func groundHover(x, z float32) HoverData {
	return HoverData{Point: mgl32.Vec3{x, 0, z}, Ground: true, Normal: util.Up}
}

func unitHover(unit *game.Combatant) HoverData {
	return HoverData{Point: unit.Position, Hovered: unit, EntityID: unit.ID}
}

func airHover(x, y, z float32) HoverData {
	return HoverData{Point: mgl32.Vec3{x, y, z}}
}

// stubValidator answers every query with the same verdict.
type stubValidator struct {
	verdict game.Verdict
	calls   int
}

func (s *stubValidator) ValidateTarget(action *game.ActionDefinition, source, candidate *game.Combatant) game.Verdict {
	s.calls++
	return s.verdict
}

// factionValidator refuses units of the source's own faction.
type factionValidator struct{}

func (factionValidator) ValidateTarget(action *game.ActionDefinition, source, candidate *game.Combatant) game.Verdict {
	if candidate.ID == source.ID || candidate.Faction == source.Faction {
		return game.Denied(game.ReasonWrongFaction, "Target faction is friendly")
	}
	return game.Allowed()
}

type fixedAreas struct {
	units []*game.Combatant
}

func (f fixedAreas) ResolveArea(action *game.ActionDefinition, source *game.Combatant, aimPoint mgl32.Vec3, all []*game.Combatant, positionOf func(*game.Combatant) mgl32.Vec3, wallStart *mgl32.Vec3) []*game.Combatant {
	return f.units
}

type fixedHitChance float32

func (f fixedHitChance) HitChance(source, target *game.Combatant, tags []string) float32 {
	return float32(f)
}

type fixedSight bool

func (f fixedSight) HasLineOfSight(from, to mgl32.Vec3) bool {
	return bool(f)
}

// planeBlocker is an infinite wall on the plane x = X.
type planeBlocker struct {
	X float32
}

func (p planeBlocker) RaycastEnvironment(from, to mgl32.Vec3) (mgl32.Vec3, bool) {
	if from.X() == to.X() || (from.X()-p.X)*(to.X()-p.X) > 0 {
		return mgl32.Vec3{}, false
	}
	t := (p.X - from.X()) / (to.X() - from.X())
	return util.Lerp3(from, to, t), true
}

// detourNav routes every query through the given waypoints.
type detourNav struct {
	via []mgl32.Vec3
}

func (d detourNav) FindPath(from, to mgl32.Vec3) []mgl32.Vec3 {
	if d.via == nil {
		return []mgl32.Vec3{from}
	}
	points := []mgl32.Vec3{from}
	points = append(points, d.via...)
	return append(points, to)
}

type countingJump struct {
	length  float32
	success bool
	reason  string
	calls   int
}

func (c *countingJump) BuildJumpPath(source *game.Combatant, target mgl32.Vec3) game.JumpPath {
	c.calls++
	return game.JumpPath{
		Waypoints:     util.ParabolicArc(source.Position, target, 8, 0.25, 1),
		TotalLength:   c.length,
		Success:       c.success,
		FailureReason: c.reason,
	}
}

type fixedJumpLimit float32

func (f fixedJumpLimit) JumpDistanceLimit(source *game.Combatant) float32 {
	return float32(f)
}

type roster []*game.Combatant

func (r roster) Combatants() []*game.Combatant {
	return r
}

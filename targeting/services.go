package targeting

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/game"
)

type TargetValidator interface {
	ValidateTarget(action *game.ActionDefinition, source, candidate *game.Combatant) game.Verdict
}

type AreaResolver interface {
	ResolveArea(action *game.ActionDefinition, source *game.Combatant, aimPoint mgl32.Vec3, all []*game.Combatant, positionOf func(*game.Combatant) mgl32.Vec3, wallStart *mgl32.Vec3) []*game.Combatant
}

type HitChanceProvider interface {
	HitChance(source, target *game.Combatant, tags []string) float32
}

type LineOfSight interface {
	HasLineOfSight(from, to mgl32.Vec3) bool
}

// EnvironmentRaycaster reports the first hit against static geometry. Units are transparent.
type EnvironmentRaycaster interface {
	RaycastEnvironment(from, to mgl32.Vec3) (mgl32.Vec3, bool)
}

type NavigationPather interface {
	FindPath(from, to mgl32.Vec3) []mgl32.Vec3
}

type JumpPathBuilder interface {
	BuildJumpPath(source *game.Combatant, target mgl32.Vec3) game.JumpPath
}

type JumpDistanceLimiter interface {
	JumpDistanceLimit(source *game.Combatant) float32
}

type Roster interface {
	Combatants() []*game.Combatant
}

// Services bundles the world queries the modes depend on. A nil member means
// the feature is unavailable and modes take their fallback branch.
type Services struct {
	Validator TargetValidator
	Areas     AreaResolver
	HitChance HitChanceProvider
	LOS       LineOfSight
	Raycast   EnvironmentRaycaster
	Nav       NavigationPather
	Jump      JumpPathBuilder
	JumpLimit JumpDistanceLimiter
	Roster    Roster
}

// World is implemented by a battlefield that can answer every query itself.
type World interface {
	TargetValidator
	AreaResolver
	HitChanceProvider
	LineOfSight
	EnvironmentRaycaster
	NavigationPather
	JumpPathBuilder
	JumpDistanceLimiter
	Roster
}

func ServicesFromWorld(world World) *Services {
	return &Services{
		Validator: world,
		Areas:     world,
		HitChance: world,
		LOS:       world,
		Raycast:   world,
		Nav:       world,
		Jump:      world,
		JumpLimit: world,
		Roster:    world,
	}
}

func (s *Services) validate(action *game.ActionDefinition, source, candidate *game.Combatant) game.Verdict {
	if s.Validator == nil {
		return game.Allowed()
	}
	return s.Validator.ValidateTarget(action, source, candidate)
}

func (s *Services) combatants() []*game.Combatant {
	if s.Roster == nil {
		return nil
	}
	return s.Roster.Combatants()
}

func (s *Services) hasLineOfSight(from, to mgl32.Vec3) bool {
	if s.LOS == nil {
		return true
	}
	return s.LOS.HasLineOfSight(from, to)
}

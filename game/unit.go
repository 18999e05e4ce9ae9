package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const DefaultUnitHeight = 1.8

// Combatant is a unit on the battlefield as seen by targeting. Position is the foot position.
type Combatant struct {
	ID           uint64
	Name         string
	Faction      string
	Position     mgl32.Vec3
	Height       float32
	JumpDistance float32
	Accuracy     float32
	Alive        bool
}

func (c *Combatant) UnitID() uint64 {
	return c.ID
}

func (c *Combatant) GetName() string {
	return c.Name
}

func (c *Combatant) GetHeight() float32 {
	if c.Height <= 0 {
		return DefaultUnitHeight
	}
	return c.Height
}

func (c *Combatant) GetFootPosition() mgl32.Vec3 {
	return c.Position
}

func (c *Combatant) CenterOfMass() mgl32.Vec3 {
	return c.Position.Add(mgl32.Vec3{0, c.GetHeight() * 0.5, 0})
}

func (c *Combatant) GetEyePosition() mgl32.Vec3 {
	return c.Position.Add(mgl32.Vec3{0, c.GetHeight() * 0.9, 0})
}

func (c *Combatant) IsActive() bool {
	return c.Alive
}

func (c *Combatant) ToString() string {
	return fmt.Sprintf("%s(%d)", c.Name, c.ID)
}

// CombatantPosition is the default position accessor handed to area resolution.
func CombatantPosition(c *Combatant) mgl32.Vec3 {
	return c.Position
}

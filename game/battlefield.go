package game

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/voxel"
	"github.com/pkg/errors"
)

const (
	// pathHoverHeight lifts navigation waypoints above the floor so segments clear single steps.
	pathHoverHeight = 1.0
	maxPathCost     = 256.0
	jumpArcSamples  = 12
)

// Battlefield answers the world queries of targeting on top of a voxel collision grid.
type Battlefield struct {
	grid  *voxel.Grid
	units []*Combatant
	byID  map[uint64]*Combatant
}

func NewBattlefield(grid *voxel.Grid) *Battlefield {
	return &Battlefield{
		grid: grid,
		byID: make(map[uint64]*Combatant),
	}
}

// NewBattlefieldFromFile builds the grid and roster stored in a battlefield file.
func NewBattlefieldFromFile(file *voxel.BattlefieldFile) (*Battlefield, error) {
	grid, err := file.Grid()
	if err != nil {
		return nil, errors.Wrap(err, "building battlefield grid")
	}
	b := NewBattlefield(grid)
	for _, record := range file.Units {
		if record.ID < 0 {
			return nil, errors.Errorf("unit %s has negative id %d", record.Name, record.ID)
		}
		unit := &Combatant{
			ID:           uint64(record.ID),
			Name:         record.Name,
			Faction:      record.Faction,
			Position:     mgl32.Vec3{record.X, record.Y, record.Z},
			Height:       record.Height,
			JumpDistance: record.JumpDistance,
			Accuracy:     record.Accuracy,
			Alive:        record.Dead == 0,
		}
		if err = b.AddCombatant(unit); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Battlefield) Grid() *voxel.Grid {
	return b.grid
}

func (b *Battlefield) AddCombatant(unit *Combatant) error {
	if _, exists := b.byID[unit.ID]; exists {
		return errors.Errorf("duplicate unit id %d", unit.ID)
	}
	b.byID[unit.ID] = unit
	b.units = append(b.units, unit)
	sort.Slice(b.units, func(i, j int) bool { return b.units[i].ID < b.units[j].ID })
	return nil
}

func (b *Battlefield) GetCombatant(id uint64) (*Combatant, bool) {
	unit, ok := b.byID[id]
	return unit, ok
}

// Combatants lists every unit ordered by id.
func (b *Battlefield) Combatants() []*Combatant {
	return b.units
}

// CombatantAt returns the living unit whose standing column contains the position.
func (b *Battlefield) CombatantAt(position mgl32.Vec3) (*Combatant, bool) {
	cell := voxel.PositionToGridInt3(position)
	for _, unit := range b.units {
		if !unit.Alive {
			continue
		}
		foot := voxel.PositionToGridInt3(unit.Position)
		if foot.X != cell.X || foot.Z != cell.Z {
			continue
		}
		if position.Y() >= unit.Position.Y()-0.01 && position.Y() <= unit.Position.Y()+unit.GetHeight() {
			return unit, true
		}
	}
	return nil, false
}

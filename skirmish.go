package main

import (
	"math"
	"math/rand"

	"github.com/memmaker/battletarget/engine/voxel"
	"github.com/memmaker/battletarget/game"
)

var blueNames = []string{"Aldric", "Brienne", "Cedric", "Delara", "Eldrin", "Fiona", "Gareth", "Helena", "Isadora", "Jareth"}

var redNames = []string{"Grimfang", "Vex", "Kragnar", "Shadowblade", "Malakar", "Dreadmaw", "Skorn", "Nightshade", "Razorclaw", "Hexbane"}

const (
	skirmishSize        = 16
	skirmishCoverBlocks = 6
	skirmishCenterZ     = 8
	skirmishSpreadZ     = 2
)

// randomScenario builds a two against two skirmish from a seed. Blue stands on the west
// side, red on the east side, with random stats, random cover in between and a random
// draw from the demo actions. The same seed always yields the same file.
func randomScenario(seed int64) *voxel.BattlefieldFile {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only

	grid := voxel.NewGrid(skirmishSize, 6, skirmishSize)
	grid.SetFloorAtHeight(0)
	for i := 0; i < skirmishCoverBlocks; i++ {
		x := 6 + rng.Int31n(4)
		z := 2 + rng.Int31n(12)
		height := 1 + rng.Int31n(3)
		for y := int32(1); y <= height; y++ {
			grid.SetSolid(voxel.Int3{X: x, Y: y, Z: z}, true)
		}
	}

	file := &voxel.BattlefieldFile{Source: 1}
	file.Units = append(file.Units, randomSquad(rng, 1, "blue", blueNames, 2, 4)...)
	file.Units = append(file.Units, randomSquad(rng, 3, "red", redNames, 11, 13)...)

	actions := randomLoadout(rng)
	for _, action := range actions {
		file.Actions = append(file.Actions, action.ToRecord())
	}
	file.Action = actions[rng.Intn(len(actions))].ID

	file.Cursor = append(file.Cursor, voxel.CursorRecord{X: 5.5, Y: 1, Z: randomCoordinate(rng, skirmishCenterZ-skirmishSpreadZ, skirmishCenterZ+skirmishSpreadZ)})
	for _, unit := range file.Units[2:] {
		file.Cursor = append(file.Cursor, voxel.CursorRecord{X: unit.X, Y: unit.Y, Z: unit.Z, Target: unit.ID})
	}
	target := file.Units[2+rng.Intn(2)]
	file.Cursor = append(file.Cursor, voxel.CursorRecord{X: target.X, Y: target.Y, Z: target.Z, Target: target.ID, Confirm: 1})

	file.SetGrid(grid)
	return file
}

// randomSquad places two units of one faction between minX and maxX.
func randomSquad(rng *rand.Rand, firstID int64, faction string, names []string, minX, maxX float32) []voxel.UnitRecord {
	order := rng.Perm(len(names))
	squad := make([]voxel.UnitRecord, 0, 2)
	for i := 0; i < 2; i++ {
		squad = append(squad, voxel.UnitRecord{
			ID:           firstID + int64(i),
			Name:         names[order[i]],
			Faction:      faction,
			X:            randomCoordinate(rng, minX, maxX),
			Y:            1,
			Z:            randomCoordinate(rng, skirmishCenterZ-skirmishSpreadZ, skirmishCenterZ+skirmishSpreadZ),
			JumpDistance: float32(3 + rng.Intn(3)),
			Accuracy:     randomCoordinate(rng, 0.5, 0.9),
		})
	}
	return squad
}

// randomLoadout always carries the basic aimed shot plus one to three other actions.
func randomLoadout(rng *rand.Rand) []*game.ActionDefinition {
	pool := demoActions()
	loadout := []*game.ActionDefinition{pool[0]}
	rest := pool[1:]
	extra := 1 + rng.Intn(3)
	for _, index := range rng.Perm(len(rest))[:extra] {
		loadout = append(loadout, rest[index])
	}
	return loadout
}

func randomCoordinate(rng *rand.Rand, low, high float32) float32 {
	value := float64(low) + rng.Float64()*float64(high-low)
	return float32(math.Round(value*100) / 100)
}

package main

import (
	"github.com/memmaker/battletarget/engine/voxel"
	"github.com/memmaker/battletarget/game"
)

// demoScenario is a small walled yard with two squads and one action per targeting kind.
func demoScenario() *voxel.BattlefieldFile {
	grid := voxel.NewGrid(16, 6, 16)
	grid.SetFloorAtHeight(0)
	for z := int32(3); z < 13; z++ {
		for y := int32(1); y <= 3; y++ {
			grid.SetSolid(voxel.Int3{X: 7, Y: y, Z: z}, true)
		}
	}
	grid.SetSolid(voxel.Int3{X: 4, Y: 1, Z: 9}, true)

	file := &voxel.BattlefieldFile{
		Units: []voxel.UnitRecord{
			{ID: 1, Name: "Ranger", Faction: "blue", X: 2.5, Y: 1, Z: 7.5, Accuracy: 0.8, JumpDistance: 4},
			{ID: 2, Name: "Medic", Faction: "blue", X: 3.5, Y: 1, Z: 5.5, Accuracy: 0.6},
			{ID: 3, Name: "Grunt", Faction: "red", X: 11.5, Y: 1, Z: 7.5, Accuracy: 0.7},
			{ID: 4, Name: "Scout", Faction: "red", X: 5.5, Y: 1, Z: 13.5, Accuracy: 0.7},
			{ID: 5, Name: "Brute", Faction: "red", X: 8.5, Y: 1, Z: 14.5, Accuracy: 0.5},
			{ID: 6, Name: "Trader", Faction: game.FactionNeutral, X: 1.5, Y: 1, Z: 12.5},
		},
		Source: 1,
		Action: "grenade",
		Cursor: []voxel.CursorRecord{
			{X: 5.5, Y: 1, Z: 7.5},
			{X: 11.5, Y: 1, Z: 7.5, Target: 3},
			{X: 9.5, Y: 1, Z: 14.5},
			{X: 5.5, Y: 1, Z: 13.5, Target: 4},
			{X: 5.5, Y: 1, Z: 12.5, Confirm: 1},
		},
	}
	for _, action := range demoActions() {
		file.Actions = append(file.Actions, action.ToRecord())
	}
	file.SetGrid(grid)
	return file
}

func demoActions() []*game.ActionDefinition {
	return []*game.ActionDefinition{
		{ID: "aimed_shot", Name: "Aimed Shot", Targeting: game.TargetSingle, Category: game.CategoryWeapon, Range: 12, Tags: []string{"precise"}},
		{ID: "volley", Name: "Volley", Targeting: game.TargetMulti, Category: game.CategoryRanged, Range: 14, MaxTargets: 2},
		{ID: "chain_lightning", Name: "Chain Lightning", Targeting: game.TargetChain, Category: game.CategorySpell, Range: 12, MaxTargets: 3},
		{ID: "flame_breath", Name: "Flame Breath", Targeting: game.TargetCone, Category: game.CategorySpell, Range: 5, ConeAngle: 60},
		{ID: "lance", Name: "Lance", Targeting: game.TargetLine, Category: game.CategorySpell, Range: 8, LineWidth: 1},
		{ID: "stone_wall", Name: "Stone Wall", Targeting: game.TargetWall, Category: game.CategorySpell, Range: 8, MaxWallLength: 5, LineWidth: 1},
		{ID: "fireball", Name: "Fireball", Targeting: game.TargetGround, Category: game.CategorySpell, Range: 10, AreaRadius: 2},
		{ID: "jump", Name: "Jump", Targeting: game.TargetGround, Range: 4},
		{ID: "rifle", Name: "Rifle", Targeting: game.TargetStraight, Category: game.CategoryWeapon, Range: 16},
		{ID: "grenade", Name: "Grenade", Targeting: game.TargetArc, Category: game.CategoryRanged, Range: 12, AreaRadius: 2},
		{ID: "homing_bolt", Name: "Homing Bolt", Targeting: game.TargetCurve, Category: game.CategorySpell, Range: 14},
		{ID: "seeker", Name: "Seeker", Targeting: game.TargetPathfind, Category: game.CategorySpell, Range: 24},
		{ID: "strike", Name: "Strike", Targeting: game.TargetSingle, Category: game.CategoryMelee, Range: 1.5},
	}
}

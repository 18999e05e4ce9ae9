package voxel

import "testing"

func TestGridGroundAndStanding(t *testing.T) {
	grid := NewGrid(4, 4, 4)
	grid.SetFloorAtHeight(0)
	grid.SetSolid(Int3{2, 1, 2}, true)

	if ground := grid.GetGroundPosition(Int3{1, 3, 1}); ground != (Int3{1, 1, 1}) {
		t.Fatalf("expected ground at (1, 1, 1), got %s", ground.ToString())
	}
	if ground := grid.GetGroundPosition(Int3{2, 3, 2}); ground != (Int3{2, 2, 2}) {
		t.Fatalf("expected ground on top of the block, got %s", ground.ToString())
	}
	if grid.IsStandable(Int3{2, 1, 2}) {
		t.Fatalf("a solid block is not standable")
	}
	if !grid.IsStandable(Int3{2, 2, 2}) {
		t.Fatalf("the top of a block is standable")
	}
	if grid.IsSolidBlockAt(-1, 0, 0) {
		t.Fatalf("blocks outside the grid are empty")
	}
}

func TestGroundNeighborsClimbOneBlock(t *testing.T) {
	grid := NewGrid(3, 4, 1)
	grid.SetFloorAtHeight(0)
	grid.SetSolid(Int3{1, 1, 0}, true)

	all := func(Int3) bool { return true }
	neighbors := grid.GetNeighborsForGroundMovement(Int3{0, 1, 0}, all)
	if len(neighbors) != 1 || neighbors[0] != (Int3{1, 2, 0}) {
		t.Fatalf("expected to climb onto (1, 2, 0), got %v", neighbors)
	}
	down := grid.GetNeighborsForGroundMovement(Int3{1, 2, 0}, all)
	if len(down) != 2 {
		t.Fatalf("expected to drop down on both sides, got %v", down)
	}
}

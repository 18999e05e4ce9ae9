package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/path"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/engine/voxel"
)

type VoxelPather struct {
	grid *voxel.Grid
}

func (v *VoxelPather) GetNeighbors(node voxel.Int3) []voxel.Int3 {
	return v.grid.GetNeighborsForGroundMovement(node, v.isWalkable)
}

func (v *VoxelPather) isWalkable(neighbor voxel.Int3) bool {
	above := neighbor.Add(voxel.Int3{Y: 1})
	return !v.grid.IsSolidBlockAt(above.X, above.Y, above.Z)
}

func (v *VoxelPather) GetCost(currentNode, neighbor voxel.Int3) float64 {
	return float64(util.Distance3D(currentNode.ToBlockCenterVec3(), neighbor.ToBlockCenterVec3()))
}

func NewPather(grid *voxel.Grid) *VoxelPather {
	return &VoxelPather{grid: grid}
}

func (b *Battlefield) groundCell(position mgl32.Vec3) voxel.Int3 {
	cell := voxel.PositionToGridInt3(position)
	if b.grid.IsSolidBlockAt(cell.X, cell.Y, cell.Z) {
		cell = cell.Add(voxel.Int3{Y: 1})
	}
	return b.grid.GetGroundPosition(cell)
}

// FindPath walks the ground grid between the blocks below from and to. The returned polyline
// starts at from, ends at to and hovers above the floor in between. It is nil when no walk exists.
func (b *Battlefield) FindPath(from, to mgl32.Vec3) []mgl32.Vec3 {
	start := b.groundCell(from)
	goal := b.groundCell(to)
	if !b.grid.IsStandable(start) || !b.grid.IsStandable(goal) {
		util.LogPathingDebug("[Battlefield] no standable cell for path %s -> %s", start.ToString(), goal.ToString())
		return nil
	}
	cells := path.ShortestPath(start, goal, maxPathCost, NewPather(b.grid))
	if cells == nil {
		util.LogPathingDebug("[Battlefield] no path %s -> %s", start.ToString(), goal.ToString())
		return nil
	}
	points := make([]mgl32.Vec3, 0, len(cells)+2)
	points = append(points, from)
	for i := 1; i < len(cells)-1; i++ {
		points = append(points, cells[i].ToBlockCenterVec3().Add(mgl32.Vec3{0, pathHoverHeight, 0}))
	}
	points = append(points, to)
	return points
}

// BuildJumpPath plans a ballistic jump from the source's feet to the ground below target.
func (b *Battlefield) BuildJumpPath(source *Combatant, target mgl32.Vec3) JumpPath {
	landingCell := b.groundCell(target)
	if !b.grid.IsStandable(landingCell) {
		return JumpPath{Success: false, FailureReason: "Cannot land there"}
	}
	landing := mgl32.Vec3{target.X(), float32(landingCell.Y), target.Z()}
	lift := mgl32.Vec3{0, 0.1, 0}
	waypoints := util.ParabolicArc(source.Position.Add(lift), landing.Add(lift), jumpArcSamples, 0.25, 1.0)
	for i := 1; i < len(waypoints); i++ {
		if _, blocked := b.RaycastEnvironment(waypoints[i-1], waypoints[i]); blocked {
			return JumpPath{Waypoints: waypoints, Success: false, FailureReason: "Jump path blocked"}
		}
	}
	climb := util.Max(0, landing.Y()-source.Position.Y())
	return JumpPath{
		Waypoints:   waypoints,
		TotalLength: util.FlatDistance(source.Position, landing) + climb,
		Success:     true,
	}
}

// JumpDistanceLimit is the unit's own jump stat; zero means unknown.
func (b *Battlefield) JumpDistanceLimit(source *Combatant) float32 {
	return source.JumpDistance
}

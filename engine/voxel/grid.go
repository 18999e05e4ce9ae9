package voxel

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) Sub(tr Int3) Int3 {
	return Int3{i.X - tr.X, i.Y - tr.Y, i.Z - tr.Z}
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

// ToBlockCenterVec3 is the center of the block's floor, where a unit standing in it has its feet.
func (i Int3) ToBlockCenterVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X) + 0.5, float32(i.Y), float32(i.Z) + 0.5}
}

func (i Int3) ToString() string {
	return fmt.Sprintf("(%d, %d, %d)", i.X, i.Y, i.Z)
}

func PositionToGridInt3(pos mgl32.Vec3) Int3 {
	return Int3{int32(math.Floor(float64(pos.X()))), int32(math.Floor(float64(pos.Y()))), int32(math.Floor(float64(pos.Z())))}
}

func ManhattanDistance2(a, b Int3) int32 {
	return Abs(a.X-b.X) + Abs(a.Z-b.Z)
}

func Abs(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}

var groundDirections = [4]Int3{{X: 1}, {X: -1}, {Z: 1}, {Z: -1}}

// Grid is the collision volume of a battlefield: one solid flag per block.
type Grid struct {
	width  int32
	height int32
	depth  int32
	solid  []bool
}

func NewGrid(width, height, depth int32) *Grid {
	return &Grid{
		width:  width,
		height: height,
		depth:  depth,
		solid:  make([]bool, width*height*depth),
	}
}

func (m *Grid) Size() Int3 {
	return Int3{m.width, m.height, m.depth}
}

func (m *Grid) index(x, y, z int32) int32 {
	return x + z*m.width + y*m.width*m.depth
}

func (m *Grid) Contains(x int32, y int32, z int32) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height && z >= 0 && z < m.depth
}

func (m *Grid) ContainsGrid(position Int3) bool {
	return m.Contains(position.X, position.Y, position.Z)
}

func (m *Grid) IsSolidBlockAt(x int32, y int32, z int32) bool {
	if !m.Contains(x, y, z) {
		return false
	}
	return m.solid[m.index(x, y, z)]
}

func (m *Grid) SetSolid(position Int3, solid bool) {
	if !m.ContainsGrid(position) {
		return
	}
	m.solid[m.index(position.X, position.Y, position.Z)] = solid
}

// SetFloorAtHeight fills a full layer with solid blocks.
func (m *Grid) SetFloorAtHeight(yLevel int32) {
	for x := int32(0); x < m.width; x++ {
		for z := int32(0); z < m.depth; z++ {
			m.SetSolid(Int3{x, yLevel, z}, true)
		}
	}
}

// IsStandable reports whether a unit can have its feet in this block.
func (m *Grid) IsStandable(position Int3) bool {
	if !m.ContainsGrid(position) || m.IsSolidBlockAt(position.X, position.Y, position.Z) {
		return false
	}
	below := position.Add(Int3{Y: -1})
	return !m.ContainsGrid(below) || m.IsSolidBlockAt(below.X, below.Y, below.Z)
}

// GetGroundPosition drops down from startBlock until the block below is solid or outside the grid.
func (m *Grid) GetGroundPosition(startBlock Int3) Int3 {
	for y := startBlock.Y; y >= 1; y-- {
		if m.IsSolidBlockAt(startBlock.X, y-1, startBlock.Z) || !m.Contains(startBlock.X, y-1, startBlock.Z) {
			return Int3{startBlock.X, y, startBlock.Z}
		}
	}
	return Int3{startBlock.X, 0, startBlock.Z}
}

// GetNeighborsForGroundMovement returns the four cardinal neighbours a walking unit can reach.
// Climbing one block up is allowed, dropping down any distance is allowed.
func (m *Grid) GetNeighborsForGroundMovement(block Int3, keepPredicate func(neighbor Int3) bool) []Int3 {
	neighbors := make([]Int3, 0, 4)
	for _, dir := range groundDirections {
		next := block.Add(dir)
		if !m.ContainsGrid(next) {
			continue
		}
		if m.IsSolidBlockAt(next.X, next.Y, next.Z) {
			next = next.Add(Int3{Y: 1})
		} else {
			next = m.GetGroundPosition(next)
		}
		if m.ContainsGrid(next) && m.IsStandable(next) && keepPredicate(next) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// SolidBytes packs the solid flags in index order, one byte per block.
func (m *Grid) SolidBytes() []byte {
	packed := make([]byte, len(m.solid))
	for i, s := range m.solid {
		if s {
			packed[i] = 1
		}
	}
	return packed
}

func (m *Grid) setSolidBytes(packed []byte) {
	for i := range m.solid {
		m.solid[i] = i < len(packed) && packed[i] != 0
	}
}

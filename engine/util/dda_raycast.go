package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/voxel"
)

type CubeSide int

const (
	Front CubeSide = iota
	Back
	Left
	Right
	Top
	Bottom
)

type HitInfo3D struct {
	Distance               float64
	Side                   CubeSide
	CollisionWorldPosition mgl32.Vec3
	PreviousGridPosition   voxel.Int3
	CollisionGridPosition  voxel.Int3
	Hit                    bool
}

// axisWalk tracks the stepping state of one axis while traversing the grid.
type axisWalk struct {
	step  int32
	delta float64
	next  float64
}

func newAxisWalk(start float32, cell int32, dir float32) axisWalk {
	w := axisWalk{step: -1, delta: math.Inf(1), next: math.Inf(1)}
	if dir > 0 {
		w.step = 1
	}
	if dir == 0 {
		return w
	}
	w.delta = math.Abs(1.0 / float64(dir))
	dist := float64(start) - float64(cell)
	if w.step > 0 {
		dist = float64(cell+1) - float64(start)
	}
	w.next = w.delta * dist
	return w
}

// DDARaycast walks every grid cell touched by the segment rayStart -> rayEnd and
// stops at the first cell for which stopRay returns true.
// adapted from: https://github.com/fenomas/fast-voxel-raycast/blob/master/index.js
func DDARaycast(rayStart, rayEnd mgl32.Vec3, stopRay func(x, y, z int32) bool) HitInfo3D {
	ray := rayEnd.Sub(rayStart)
	maxRayLength := float64(ray.Len())
	cell := voxel.PositionToGridInt3(rayStart)
	if maxRayLength == 0 {
		if stopRay(cell.X, cell.Y, cell.Z) {
			return HitInfo3D{Hit: true, CollisionWorldPosition: rayStart, PreviousGridPosition: cell, CollisionGridPosition: cell}
		}
		return HitInfo3D{Hit: false}
	}
	rayDir := ray.Normalize()

	walks := [3]axisWalk{
		newAxisWalk(rayStart.X(), cell.X, rayDir.X()),
		newAxisWalk(rayStart.Y(), cell.Y, rayDir.Y()),
		newAxisWalk(rayStart.Z(), cell.Z, rayDir.Z()),
	}

	t := 0.0
	steppedAxis := -1
	previous := cell
	for t <= maxRayLength {
		if stopRay(cell.X, cell.Y, cell.Z) {
			return HitInfo3D{
				Hit:                    true,
				Distance:               t,
				Side:                   sideForStep(steppedAxis, walks),
				CollisionWorldPosition: rayStart.Add(rayDir.Mul(float32(t))),
				PreviousGridPosition:   previous,
				CollisionGridPosition:  cell,
			}
		}
		previous = cell

		axis := 0
		if walks[1].next < walks[axis].next {
			axis = 1
		}
		if walks[2].next < walks[axis].next {
			axis = 2
		}
		switch axis {
		case 0:
			cell.X += walks[0].step
		case 1:
			cell.Y += walks[1].step
		case 2:
			cell.Z += walks[2].step
		}
		t = walks[axis].next
		walks[axis].next += walks[axis].delta
		steppedAxis = axis
	}

	return HitInfo3D{Hit: false}
}

func sideForStep(axis int, walks [3]axisWalk) CubeSide {
	switch axis {
	case 0:
		if walks[0].step > 0 {
			return Left
		}
		return Right
	case 1:
		if walks[1].step > 0 {
			return Bottom
		}
		return Top
	case 2:
		if walks[2].step > 0 {
			return Back
		}
		return Front
	}
	return Front
}

package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
)

// surfaceContact is how close to its end a ray may touch a block without counting as blocked.
// Rays aimed at a point on the floor end exactly on the floor block's top face.
const surfaceContact = 0.05

func (b *Battlefield) isBlocking(x, y, z int32) bool {
	return b.grid.IsSolidBlockAt(x, y, z)
}

func (b *Battlefield) raycast(from, to mgl32.Vec3) util.HitInfo3D {
	hitInfo := util.DDARaycast(from, to, b.isBlocking)
	if hitInfo.Hit && hitInfo.Distance >= float64(to.Sub(from).Len())-surfaceContact {
		return util.HitInfo3D{Hit: false}
	}
	return hitInfo
}

// HasLineOfSight checks the segment between two points against solid blocks only.
func (b *Battlefield) HasLineOfSight(from, to mgl32.Vec3) bool {
	return !b.raycast(from, to).Hit
}

// CanSee checks from the observer's eyes to the target's center and head.
func (b *Battlefield) CanSee(observer, target *Combatant) bool {
	if observer == target {
		return true
	}
	eye := observer.GetEyePosition()
	if b.HasLineOfSight(eye, target.GetEyePosition()) {
		return true
	}
	return b.HasLineOfSight(eye, target.CenterOfMass())
}

// RaycastEnvironment returns where the segment first enters a solid block. Units never stop the ray.
func (b *Battlefield) RaycastEnvironment(from, to mgl32.Vec3) (mgl32.Vec3, bool) {
	hitInfo := b.raycast(from, to)
	if !hitInfo.Hit {
		return mgl32.Vec3{}, false
	}
	util.LogWorldDebug("[Battlefield] environment hit at %s", hitInfo.CollisionGridPosition.ToString())
	return hitInfo.CollisionWorldPosition, true
}

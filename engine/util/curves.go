package util

import (
	"github.com/go-gl/mathgl/mgl32"
)

const degenerateDistance = 1e-4

// DirectionFromSource returns the normalized ground-plane direction from source towards target.
// When both points coincide on the ground plane the fallback axis is returned instead.
func DirectionFromSource(source, target, fallback mgl32.Vec3) mgl32.Vec3 {
	flat := Flatten(target.Sub(source))
	if flat.Len() < degenerateDistance {
		return fallback
	}
	return flat.Normalize()
}

// Direction3D is the full 3D counterpart of DirectionFromSource.
func Direction3D(from, to, fallback mgl32.Vec3) mgl32.Vec3 {
	delta := to.Sub(from)
	if delta.Len() < degenerateDistance {
		return fallback
	}
	return delta.Normalize()
}

// ParabolicArc samples a throw arc from start to end. The apex rises
// max(minHeight, distance*heightFactor) above the straight chord.
// The result always holds sampleCount+1 points.
func ParabolicArc(start, end mgl32.Vec3, sampleCount int, heightFactor, minHeight float32) []mgl32.Vec3 {
	if sampleCount < 1 {
		sampleCount = 1
	}
	apex := Max(minHeight, Distance3D(start, end)*heightFactor)
	points := make([]mgl32.Vec3, sampleCount+1)
	for i := 0; i <= sampleCount; i++ {
		t := float32(i) / float32(sampleCount)
		bump := 4 * apex * t * (1 - t)
		points[i] = Lerp3(start, end, t).Add(Up.Mul(bump))
	}
	points[0] = start
	points[sampleCount] = end
	return points
}

// CubicBezier samples the standard cubic blend of p0..p3 at sampleCount+1 evenly spaced parameters.
func CubicBezier(p0, p1, p2, p3 mgl32.Vec3, sampleCount int) []mgl32.Vec3 {
	if sampleCount < 1 {
		sampleCount = 1
	}
	points := make([]mgl32.Vec3, sampleCount+1)
	for i := 0; i <= sampleCount; i++ {
		t := float32(i) / float32(sampleCount)
		u := 1 - t
		b0 := u * u * u
		b1 := 3 * u * u * t
		b2 := 3 * u * t * t
		b3 := t * t * t
		points[i] = p0.Mul(b0).Add(p1.Mul(b1)).Add(p2.Mul(b2)).Add(p3.Mul(b3))
	}
	points[0] = p0
	points[sampleCount] = p3
	return points
}

// ArcingCurve builds a cubic curve between start and end whose control points
// lean forward/up from start and backward/up from end, both scaled by the travel distance.
func ArcingCurve(start, end mgl32.Vec3, sampleCount int, forwardFactor, liftFactor float32) []mgl32.Vec3 {
	distance := Distance3D(start, end)
	forward := Direction3D(start, end, Forward)
	lift := Up.Mul(distance * liftFactor)
	c1 := start.Add(forward.Mul(distance * forwardFactor)).Add(lift)
	c2 := end.Sub(forward.Mul(distance * forwardFactor)).Add(lift)
	return CubicBezier(start, c1, c2, end, sampleCount)
}

// SmoothPolyline applies Chaikin corner cutting. Every pass replaces each edge
// with the points at 25% and 75% along it; the first and last points never move.
func SmoothPolyline(points []mgl32.Vec3, passes int) []mgl32.Vec3 {
	if passes <= 0 || len(points) < 2 {
		return points
	}
	current := points
	for pass := 0; pass < passes; pass++ {
		next := make([]mgl32.Vec3, 0, (len(current)-1)*2+2)
		next = append(next, current[0])
		for i := 0; i < len(current)-1; i++ {
			a, b := current[i], current[i+1]
			next = append(next, Lerp3(a, b, 0.25), Lerp3(a, b, 0.75))
		}
		next = append(next, current[len(current)-1])
		current = next
	}
	return current
}

// SplitPolylineAt cuts points at the segment that starts with index segment.
// The first part ends at cut, the second starts at cut and keeps the remaining points.
func SplitPolylineAt(points []mgl32.Vec3, segment int, cut mgl32.Vec3) ([]mgl32.Vec3, []mgl32.Vec3) {
	open := make([]mgl32.Vec3, 0, segment+2)
	open = append(open, points[:segment+1]...)
	open = append(open, cut)

	blocked := make([]mgl32.Vec3, 0, len(points)-segment)
	blocked = append(blocked, cut)
	blocked = append(blocked, points[segment+1:]...)
	return open, blocked
}

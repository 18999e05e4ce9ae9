package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up axis. The battlefield ground is the XZ plane.
var Up = mgl32.Vec3{0, 1, 0}

// Forward is the fallback aim axis used when a direction cannot be derived.
var Forward = mgl32.Vec3{0, 0, 1}

func Round(x float32) float32 {
	return float32(math.Round(float64(x)))
}

func RoundToInt(x float32) int {
	return int(math.Round(float64(x)))
}

func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Mix(a, b, factor float32) float32 {
	return a*(1-factor) + factor*b
}

func Lerp3(one, two mgl32.Vec3, factor float32) mgl32.Vec3 {
	return mgl32.Vec3{Mix(one.X(), two.X(), factor), Mix(one.Y(), two.Y(), factor), Mix(one.Z(), two.Z(), factor)}
}

func Distance3D(one, two mgl32.Vec3) float32 {
	return two.Sub(one).Len()
}

// Flatten projects a point or direction onto the ground plane.
func Flatten(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

func FlatDistanceSquared(one, two mgl32.Vec3) float32 {
	dx := two.X() - one.X()
	dz := two.Z() - one.Z()
	return dx*dx + dz*dz
}

// FlatDistance ignores height differences.
func FlatDistance(one, two mgl32.Vec3) float32 {
	return Sqrt(FlatDistanceSquared(one, two))
}

func Midpoint(one, two mgl32.Vec3) mgl32.Vec3 {
	return one.Add(two).Mul(0.5)
}

// PolylineLength sums the 3D length of every segment.
func PolylineLength(points []mgl32.Vec3) float32 {
	var length float32
	for i := 1; i < len(points); i++ {
		length += Distance3D(points[i-1], points[i])
	}
	return length
}

func IsFinite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}

func ApproxEqual(one, two mgl32.Vec3, tolerance float32) bool {
	return one.Sub(two).Len() <= tolerance
}

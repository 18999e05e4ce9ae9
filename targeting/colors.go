package targeting

import "github.com/go-gl/mathgl/mgl32"

var ColorTechTeal = mgl32.Vec4{float32(47) / float32(255), float32(214) / float32(255), float32(195) / float32(255), 1.0}

var ColorPositiveGreen = mgl32.Vec4{0, 0.761, 0.298, 1.0}
var ColorNegativeRed = mgl32.Vec4{0.859, 0.161, 0, 1.0}
var ColorNeutralGrey = mgl32.Vec4{0.7, 0.7, 0.7, 1.0}
var ColorAllyBlue = mgl32.Vec4{0.2, 0.45, 0.95, 1.0}
var ColorFriendlyFire = mgl32.Vec4{1.0, 0.55, 0.0, 0.6}
var ColorAreaFill = mgl32.Vec4{0.95, 0.25, 0.2, 0.35}
var ColorRangeRing = mgl32.Vec4{1, 1, 1, 0.35}

// ValidityColor is green for placements that can be confirmed and red otherwise.
func ValidityColor(valid bool) mgl32.Vec4 {
	if valid {
		return ColorPositiveGreen
	}
	return ColorNegativeRed
}

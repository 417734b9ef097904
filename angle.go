package paint

import "math"

// NormalizeDegrees maps an angle into the range [-180, 180] degrees,
// the canonical rotation range used throughout the editor.
//
// The naive ((a+180) mod 360) - 180 formula maps an input of exactly
// +180 to -180; callers stepping a rotation slider to its end would see
// the value snap to the other extreme. An explicit correction keeps
// +180 at +180.
func NormalizeDegrees(angle float64) float64 {
	normalized := math.Mod(angle+180, 360)
	if normalized < 0 {
		normalized += 360
	}
	normalized -= 180
	if math.Abs(normalized+180) < 0.001 && math.Abs(angle-180) < 0.001 {
		return 180.0
	}
	return normalized
}

// NormalizeRadians maps an angle into the range [-π, π] radians.
func NormalizeRadians(angle float64) float64 {
	normalized := math.Mod(angle+math.Pi, 2*math.Pi)
	if normalized < 0 {
		normalized += 2 * math.Pi
	}
	return normalized - math.Pi
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

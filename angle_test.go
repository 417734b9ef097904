package paint

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		expect float64
	}{
		{"zero", 0, 0},
		{"small positive", 45, 45},
		{"small negative", -45, -45},
		{"wrap positive", 270, -90},
		{"wrap negative", -270, 90},
		{"full turn", 360, 0},
		{"beyond full turn", 540, -180},
		{"negative full turn", -360, 0},
		{"exactly 180", 180, 180},
		{"exactly -180", -180, -180},
		{"large", 1234, 154},
		{"large negative", -1234, -154},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDegrees(tt.angle)
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.angle, got, tt.expect)
			}
		})
	}
}

func TestNormalizeDegrees_Range(t *testing.T) {
	for angle := -1080.0; angle <= 1080.0; angle += 7.3 {
		got := NormalizeDegrees(angle)
		if got < -180 || got > 180 {
			t.Fatalf("NormalizeDegrees(%v) = %v, outside [-180, 180]", angle, got)
		}
	}
}

func TestNormalizeDegrees_Periodic(t *testing.T) {
	for angle := -400.0; angle <= 400.0; angle += 11.7 {
		a := NormalizeDegrees(angle)
		b := NormalizeDegrees(angle + 360)
		if math.Abs(a-b) > 1e-9 {
			t.Fatalf("NormalizeDegrees(%v) = %v but NormalizeDegrees(%v) = %v",
				angle, a, angle+360, b)
		}
	}
}

func TestNormalizeDegrees_PositiveHalfTurn(t *testing.T) {
	// +180 must stay +180, not flip to -180.
	if got := NormalizeDegrees(180); got != 180 {
		t.Errorf("NormalizeDegrees(180) = %v, want 180", got)
	}
}

func TestNormalizeRadians(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		expect float64
	}{
		{"zero", 0, 0},
		{"pi/2", math.Pi / 2, math.Pi / 2},
		{"3pi/2 wraps", 3 * math.Pi / 2, -math.Pi / 2},
		{"full turn", 2 * math.Pi, 0},
		{"negative", -3 * math.Pi / 2, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRadians(tt.angle)
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("NormalizeRadians(%v) = %v, want %v", tt.angle, got, tt.expect)
			}
		})
	}
}

func TestAngleConversions(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("DegToRad(180) = %v, want pi", got)
	}
	if got := RadToDeg(math.Pi / 4); math.Abs(got-45) > 1e-12 {
		t.Errorf("RadToDeg(pi/4) = %v, want 45", got)
	}
	for deg := -720.0; deg <= 720.0; deg += 13.1 {
		if got := RadToDeg(DegToRad(deg)); math.Abs(got-deg) > 1e-9 {
			t.Fatalf("RadToDeg(DegToRad(%v)) = %v", deg, got)
		}
	}
}

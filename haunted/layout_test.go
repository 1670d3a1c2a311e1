package haunted

import (
	"errors"
	"math"
	"testing"
)

func TestGraveLayoutBounds(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		layout, err := GenerateGraveLayout(GraveCount, GraveInnerRadius, GraveRadiusExtra, NewSeededRand(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(layout) != 31 {
			t.Fatalf("seed %d: %d placements, want 31", seed, len(layout))
		}
		for i, p := range layout {
			if p.Radius < 3 || p.Radius >= 7 {
				t.Errorf("seed %d grave %d: radius %v outside [3, 7)", seed, i, p.Radius)
			}
			if p.Angle < 0 || p.Angle >= 2*math.Pi {
				t.Errorf("seed %d grave %d: angle %v outside [0, 2π)", seed, i, p.Angle)
			}
			if y := p.Position.Y(); y < 0 || y >= 0.3 {
				t.Errorf("seed %d grave %d: lift %v outside [0, 0.3)", seed, i, y)
			}
			if d := math.Hypot(p.Position.X(), p.Position.Z()); math.Abs(d-p.Radius) > 1e-9 {
				t.Errorf("seed %d grave %d: planar distance %v, radius %v", seed, i, d, p.Radius)
			}
			for axis := 0; axis < 3; axis++ {
				if r := p.Rotation[axis]; r < -0.2 || r >= 0.2 {
					t.Errorf("seed %d grave %d: tilt[%d] %v outside [-0.2, 0.2)", seed, i, axis, r)
				}
			}
		}
	}
}

func TestGraveLayoutReproducible(t *testing.T) {
	a, err := GenerateGraveLayout(31, 3, 4, NewSeededRand(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateGraveLayout(31, 3, 4, NewSeededRand(42))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("grave %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}

	c, _ := GenerateGraveLayout(31, 3, 4, NewSeededRand(43))
	if a[0] == c[0] {
		t.Error("different seeds produced the same first grave")
	}
}

func TestGraveLayoutValidation(t *testing.T) {
	tests := []struct {
		name  string
		count int
		inner float64
		extra float64
		field string
	}{
		{"negative count", -1, 3, 4, "grave count"},
		{"inside house", 31, 2, 4, "inner radius"},
		{"NaN inner", 31, math.NaN(), 4, "inner radius"},
		{"infinite inner", 31, math.Inf(1), 4, "inner radius"},
		{"negative width", 31, 3, -1, "outer radius extra"},
		{"NaN width", 31, 3, math.NaN(), "outer radius extra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateGraveLayout(tt.count, tt.inner, tt.extra, NewSeededRand(1))
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err = %v, want *ConfigurationError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}

	if _, err := GenerateGraveLayout(31, 3, 4, nil); err == nil {
		t.Error("nil random source accepted")
	}
}

func TestGraveLayoutEdges(t *testing.T) {
	empty, err := GenerateGraveLayout(0, 3, 4, NewSeededRand(1))
	if err != nil || len(empty) != 0 {
		t.Errorf("zero count = (%d, %v), want empty layout", len(empty), err)
	}

	ring, err := GenerateGraveLayout(10, 3, 0, NewSeededRand(1))
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range ring {
		if p.Radius != 3 {
			t.Errorf("grave %d: radius %v on a zero-width ring", i, p.Radius)
		}
	}
}

package geo

import (
	"math"
	"testing"
)

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][4]float64{
		{22.7177, 75.8545, 22.7533, 75.8937},
		{22.7244, 75.8839, 22.6396, 75.7895},
		{0, 0, 10, 10},
		{-33.8688, 151.2093, 51.5072, -0.1276},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1], p[2], p[3])
		ba := Distance(p[2], p[3], p[0], p[1])
		if ab != ba {
			t.Errorf("distance not symmetric: %v km vs %v km for %v", ab, ba, p)
		}
	}
}

func TestDistance_ZeroForIdenticalPoints(t *testing.T) {
	t.Parallel()

	if d := Distance(22.7177, 75.8545, 22.7177, 75.8545); d != 0 {
		t.Errorf("expected 0 for identical points, got %v", d)
	}
}

func TestDistance_OneDecimalPrecision(t *testing.T) {
	t.Parallel()

	d := Distance(22.7177, 75.8545, 22.7533, 75.8937)
	if math.Abs(d*10-math.Round(d*10)) > 1e-9 {
		t.Errorf("expected one-decimal result, got %v", d)
	}
}

func TestDistance_PlausibleCityScale(t *testing.T) {
	t.Parallel()

	// Rajwada to Vijay Nagar is a handful of kilometers across town.
	d := Distance(22.7177, 75.8545, 22.7533, 75.8937)
	if d < 3 || d > 9 {
		t.Errorf("expected a city-scale distance, got %v km", d)
	}
}

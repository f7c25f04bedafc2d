package pricing

import (
	"errors"
	"testing"
)

func TestCalculate_TruckFare(t *testing.T) {
	t.Parallel()

	q, err := Calculate("truck", 12.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.BasePrice != 200 {
		t.Errorf("expected base 200, got %d", q.BasePrice)
	}
	if q.DistanceCharge != 120 {
		t.Errorf("expected distance charge 120, got %d", q.DistanceCharge)
	}
	if q.TotalPrice != 320 {
		t.Errorf("expected total 320, got %d", q.TotalPrice)
	}
}

func TestCalculate_MinimumAutoFare(t *testing.T) {
	t.Parallel()

	q, err := Calculate("auto", 2.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.TotalPrice != 75 {
		t.Errorf("expected 75 for 2.5 km auto, got %d", q.TotalPrice)
	}
}

func TestCalculate_TotalMatchesParts(t *testing.T) {
	t.Parallel()

	distances := []float64{0, 2.5, 3.7, 8.1, 12.0, 47.3}

	for _, vt := range VehicleTypes() {
		for _, d := range distances {
			q, err := Calculate(vt.ID, d)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", vt.ID, err)
			}
			if q.TotalPrice-q.BasePrice != q.DistanceCharge {
				t.Errorf("%s at %.1f km: total %d - base %d != charge %d",
					vt.ID, d, q.TotalPrice, q.BasePrice, q.DistanceCharge)
			}
		}
	}
}

func TestCalculate_UnknownVehicleType(t *testing.T) {
	t.Parallel()

	_, err := Calculate("hovercraft", 5.0)
	if !errors.Is(err, ErrUnknownVehicleType) {
		t.Fatalf("expected ErrUnknownVehicleType, got %v", err)
	}
}

func TestVehicleTypeByID(t *testing.T) {
	t.Parallel()

	vt, ok := VehicleTypeByID("tempo")
	if !ok {
		t.Fatal("tempo missing from catalog")
	}
	if vt.BaseFare != 100 || vt.PerKmRate != 10 {
		t.Errorf("unexpected tempo pricing: %+v", vt)
	}

	if _, ok := VehicleTypeByID("bus"); ok {
		t.Error("bus should not be in the catalog")
	}
}

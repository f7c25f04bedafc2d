package pricing

import (
	"errors"
	"math"
)

// ErrUnknownVehicleType is returned when a quote is requested for a vehicle
// type that is not in the catalog. Callers must treat this as a fault, never
// as a zero price.
var ErrUnknownVehicleType = errors.New("unknown vehicle type")

// VehicleType is one pricing/capacity class with a fixed base fare and
// per-kilometer rate. The catalog is read-only at runtime.
type VehicleType struct {
	ID        string
	Name      string
	Capacity  string
	BaseFare  int
	PerKmRate int
}

// Catalog order matters for display: smallest vehicle first.
var vehicleTypes = []VehicleType{
	{ID: "auto", Name: "Auto", Capacity: "Up to 200kg", BaseFare: 50, PerKmRate: 10},
	{ID: "tempo", Name: "Tempo", Capacity: "Up to 1000kg", BaseFare: 100, PerKmRate: 10},
	{ID: "truck", Name: "Truck", Capacity: "1000kg+", BaseFare: 200, PerKmRate: 10},
}

// VehicleTypeByID looks up a vehicle type in the catalog.
func VehicleTypeByID(id string) (VehicleType, bool) {
	for _, vt := range vehicleTypes {
		if vt.ID == id {
			return vt, true
		}
	}
	return VehicleType{}, false
}

// VehicleTypes returns the full catalog in display order.
func VehicleTypes() []VehicleType {
	out := make([]VehicleType, len(vehicleTypes))
	copy(out, vehicleTypes)
	return out
}

// Quote is the fare breakdown for a booking.
type Quote struct {
	BasePrice      int
	DistanceCharge int
	TotalPrice     int
}

// Calculate returns the fare for carrying a load the given distance with
// the given vehicle type. The total is rounded once over the full sum, not
// assembled from independently rounded parts, so TotalPrice-BasePrice always
// equals DistanceCharge.
func Calculate(vehicleTypeID string, distanceKm float64) (Quote, error) {
	vt, ok := VehicleTypeByID(vehicleTypeID)
	if !ok {
		return Quote{}, ErrUnknownVehicleType
	}

	return Quote{
		BasePrice:      vt.BaseFare,
		DistanceCharge: int(math.Round(distanceKm * float64(vt.PerKmRate))),
		TotalPrice:     int(math.Round(float64(vt.BaseFare) + distanceKm*float64(vt.PerKmRate))),
	}, nil
}

// Package catalog holds the fixed list of named pickup/delivery points the
// booking engine accepts. The catalog is read-only reference data; bookings
// copy the chosen locations by value at creation time.
package catalog

import "booking/internal/domain"

var locations = []domain.Location{
	{ID: "rajwada", Name: "Rajwada Palace", Area: "Old City", Lat: 22.7177, Lng: 75.8545},
	{ID: "vijay-nagar", Name: "Vijay Nagar Square", Area: "Vijay Nagar", Lat: 22.7533, Lng: 75.8937},
	{ID: "palasia", Name: "Palasia Square", Area: "New Palasia", Lat: 22.7244, Lng: 75.8839},
	{ID: "geeta-bhawan", Name: "Geeta Bhawan Square", Area: "Manorama Ganj", Lat: 22.7186, Lng: 75.8812},
	{ID: "bhawarkua", Name: "Bhawarkua Square", Area: "Bhawarkua", Lat: 22.6876, Lng: 75.8630},
	{ID: "mhow-naka", Name: "Mhow Naka", Area: "Annapurna Road", Lat: 22.6966, Lng: 75.8339},
	{ID: "airport", Name: "Devi Ahilya Bai Holkar Airport", Area: "Bijasan Road", Lat: 22.7279, Lng: 75.8011},
	{ID: "rau", Name: "Rau Circle", Area: "Rau", Lat: 22.6396, Lng: 75.7895},
	{ID: "khandwa-naka", Name: "Khandwa Naka", Area: "Khandwa Road", Lat: 22.6570, Lng: 75.8683},
}

// LocationByID looks up a catalog location.
func LocationByID(id string) (domain.Location, bool) {
	for _, l := range locations {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Location{}, false
}

// Locations returns the full catalog.
func Locations() []domain.Location {
	out := make([]domain.Location, len(locations))
	copy(out, locations)
	return out
}

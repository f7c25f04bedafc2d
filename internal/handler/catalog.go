package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking/internal/catalog"
	"booking/internal/pricing"
)

// CatalogHandler serves the fixed location and vehicle-type catalogs.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// VehicleTypeResponse is the JSON shape of one vehicle type.
type VehicleTypeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  string `json:"capacity"`
	BaseFare  int    `json:"base_fare"`
	PerKmRate int    `json:"per_km_rate"`
}

// GetLocations handles GET /v1/locations
func (h *CatalogHandler) GetLocations(c *gin.Context) {
	locations := catalog.Locations()

	response := make([]LocationResponse, 0, len(locations))
	for _, l := range locations {
		response = append(response, toLocationResponse(l))
	}

	c.JSON(http.StatusOK, response)
}

// GetVehicleTypes handles GET /v1/vehicle-types
func (h *CatalogHandler) GetVehicleTypes(c *gin.Context) {
	types := pricing.VehicleTypes()

	response := make([]VehicleTypeResponse, 0, len(types))
	for _, vt := range types {
		response = append(response, VehicleTypeResponse{
			ID:        vt.ID,
			Name:      vt.Name,
			Capacity:  vt.Capacity,
			BaseFare:  vt.BaseFare,
			PerKmRate: vt.PerKmRate,
		})
	}

	c.JSON(http.StatusOK, response)
}

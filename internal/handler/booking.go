package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"booking/internal/domain"
	"booking/internal/service"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest is the HTTP request body for creating a booking.
type CreateBookingRequest struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	PickupID      string `json:"pickup_id"`
	DeliveryID    string `json:"delivery_id"`
	VehicleType   string `json:"vehicle_type"` // auto, tempo, truck
}

// AcceptBookingRequest is the HTTP request body for accepting a booking.
type AcceptBookingRequest struct {
	DriverID            string `json:"driver_id"`
	DriverName          string `json:"driver_name"`
	DriverPhone         string `json:"driver_phone"`
	DriverVehicleNumber string `json:"driver_vehicle_number"`
}

// StartTripRequest is the HTTP request body for starting a trip.
type StartTripRequest struct {
	DriverID string `json:"driver_id,omitempty"`
	OTP      string `json:"otp"`
}

// CompleteTripRequest is the HTTP request body for completing a trip.
type CompleteTripRequest struct {
	DriverID string `json:"driver_id,omitempty"`
}

// CancelBookingRequest is the HTTP request body for cancelling a booking.
type CancelBookingRequest struct {
	CustomerID string `json:"customer_id,omitempty"`
}

// LocationResponse is the JSON shape of a booking's pickup/delivery point.
type LocationResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Area string  `json:"area"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// BookingResponse is the JSON shape of a booking.
type BookingResponse struct {
	ID                  string           `json:"id"`
	CustomerID          string           `json:"customer_id"`
	CustomerName        string           `json:"customer_name"`
	CustomerPhone       string           `json:"customer_phone"`
	DriverID            string           `json:"driver_id,omitempty"`
	DriverName          string           `json:"driver_name,omitempty"`
	DriverPhone         string           `json:"driver_phone,omitempty"`
	DriverVehicleNumber string           `json:"driver_vehicle_number,omitempty"`
	Pickup              LocationResponse `json:"pickup"`
	Delivery            LocationResponse `json:"delivery"`
	VehicleType         string           `json:"vehicle_type"`
	DistanceKm          float64          `json:"distance_km"`
	BasePrice           int              `json:"base_price"`
	TotalPrice          int              `json:"total_price"`
	OTP                 string           `json:"otp,omitempty"`
	Status              string           `json:"status"`
	CreatedAt           string           `json:"created_at"`
	CompletedAt         string           `json:"completed_at,omitempty"`
}

// toBookingResponse converts a domain booking into its JSON shape. The OTP
// is included only on customer-facing views: the driver learns it from the
// customer at pickup, never from the API.
func toBookingResponse(b *domain.Booking, includeOTP bool) BookingResponse {
	resp := BookingResponse{
		ID:                  b.ID,
		CustomerID:          b.CustomerID,
		CustomerName:        b.CustomerName,
		CustomerPhone:       b.CustomerPhone,
		DriverID:            b.DriverID,
		DriverName:          b.DriverName,
		DriverPhone:         b.DriverPhone,
		DriverVehicleNumber: b.DriverVehicleNumber,
		Pickup:              toLocationResponse(b.Pickup),
		Delivery:            toLocationResponse(b.Delivery),
		VehicleType:         b.VehicleType,
		DistanceKm:          b.DistanceKm,
		BasePrice:           b.BasePrice,
		TotalPrice:          b.TotalPrice,
		Status:              string(b.Status),
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
	}

	if includeOTP {
		resp.OTP = b.OTP
	}

	if !b.CompletedAt.IsZero() {
		resp.CompletedAt = b.CompletedAt.Format(time.RFC3339)
	}

	return resp
}

func toLocationResponse(l domain.Location) LocationResponse {
	return LocationResponse{ID: l.ID, Name: l.Name, Area: l.Area, Lat: l.Lat, Lng: l.Lng}
}

// CreateBooking handles POST /v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	b, err := h.bookingService.CreateBooking(c.Request.Context(), service.CreateBookingRequest{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PickupID:      req.PickupID,
		DeliveryID:    req.DeliveryID,
		VehicleType:   req.VehicleType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(b, true))
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(b, true))
}

// GetBookings handles GET /v1/bookings with the query projections:
//
//	?customer_id=X              a customer's history, insertion order
//	?customer_id=X&active=true  the customer's open booking, if any
//	?driver_id=X&active=true    the driver's current booking, if any
//	?vehicle_type=X             the pending queue for one vehicle type
//
// Single-record projections answer 204 when empty so pollers can tell
// "no open booking" from an error.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	ctx := c.Request.Context()
	active := c.Query("active") == "true"

	switch {
	case c.Query("customer_id") != "" && active:
		b, err := h.bookingService.GetActiveCustomerBooking(ctx, c.Query("customer_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		if b == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, toBookingResponse(b, true))

	case c.Query("customer_id") != "":
		bookings, err := h.bookingService.GetCustomerBookings(ctx, c.Query("customer_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toBookingList(bookings, true))

	case c.Query("driver_id") != "":
		b, err := h.bookingService.GetActiveDriverBooking(ctx, c.Query("driver_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		if b == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, toBookingResponse(b, false))

	case c.Query("vehicle_type") != "":
		bookings, err := h.bookingService.GetDriverRequests(ctx, c.Query("vehicle_type"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toBookingList(bookings, false))

	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "customer_id, driver_id or vehicle_type is required"})
	}
}

func toBookingList(bookings []*domain.Booking, includeOTP bool) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b, includeOTP))
	}
	return out
}

// AcceptBooking handles POST /v1/bookings/:id/accept
func (h *BookingHandler) AcceptBooking(c *gin.Context) {
	var req AcceptBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	b, err := h.bookingService.AcceptBooking(c.Request.Context(), service.AcceptBookingRequest{
		BookingID:           c.Param("id"),
		DriverID:            req.DriverID,
		DriverName:          req.DriverName,
		DriverPhone:         req.DriverPhone,
		DriverVehicleNumber: req.DriverVehicleNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(b, false))
}

// StartTrip handles POST /v1/bookings/:id/start
func (h *BookingHandler) StartTrip(c *gin.Context) {
	var req StartTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	b, err := h.bookingService.StartTrip(c.Request.Context(), service.StartTripRequest{
		BookingID: c.Param("id"),
		DriverID:  req.DriverID,
		OTP:       req.OTP,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(b, false))
}

// CompleteTrip handles POST /v1/bookings/:id/complete
func (h *BookingHandler) CompleteTrip(c *gin.Context) {
	var req CompleteTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	b, err := h.bookingService.CompleteTrip(c.Request.Context(), service.CompleteTripRequest{
		BookingID: c.Param("id"),
		DriverID:  req.DriverID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(b, false))
}

// CancelBooking handles POST /v1/bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	b, err := h.bookingService.CancelBooking(c.Request.Context(), service.CancelBookingRequest{
		BookingID:  c.Param("id"),
		CustomerID: req.CustomerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(b, true))
}

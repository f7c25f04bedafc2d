package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booking/internal/pricing"
	"booking/internal/repository"
	"booking/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidCustomerID),
		errors.Is(err, service.ErrInvalidDriverID),
		errors.Is(err, service.ErrUnknownLocation),
		errors.Is(err, service.ErrSameLocation),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, pricing.ErrUnknownVehicleType):
		return http.StatusBadRequest

	// Conflict errors - the booking's current state forbids the operation
	case errors.Is(err, service.ErrActiveBookingExists),
		errors.Is(err, service.ErrDriverHasActiveBooking),
		errors.Is(err, service.ErrBookingNotPending),
		errors.Is(err, service.ErrBookingNotAccepted),
		errors.Is(err, service.ErrBookingNotInProgress),
		errors.Is(err, service.ErrBookingLocked),
		errors.Is(err, repository.ErrStaleVersion),
		errors.Is(err, repository.ErrDuplicateID):
		return http.StatusConflict

	// Forbidden - actor does not own the booking
	case errors.Is(err, service.ErrDriverNotAssigned),
		errors.Is(err, service.ErrCustomerNotOwner):
		return http.StatusForbidden

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

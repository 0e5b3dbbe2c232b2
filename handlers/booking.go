package handlers

import (
	"errors"
	"net/http"

	"roamstay/middleware"
	"roamstay/models"
	"roamstay/services/booking"
	"roamstay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// bookingErrorStatus maps the engine's typed errors onto HTTP statuses.
func bookingErrorStatus(err error) int {
	var (
		validation *booking.ValidationError
		notFound   *booking.NotFoundError
		conflict   *booking.ConflictError
		forbidden  *booking.ForbiddenError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	status := bookingErrorStatus(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, status, "Internal server error", "")
		return
	}
	utils.JSONError(c, status, err.Error(), "")
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	caller := middleware.CallerFrom(c)
	created, err := h.Svc.CreateBooking(c.Request.Context(), caller, input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "booking": created})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	view, err := h.Svc.GetBooking(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListBookings handles GET /api/bookings (admin: all, host: scoped).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	bookings, err := h.Svc.ListBookings(c.Request.Context(), caller)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListBookingsInRange handles POST /api/bookings/range.
func (h *BookingHandler) ListBookingsInRange(c *gin.Context) {
	var input models.DateRangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Start date and end date are required", err.Error())
		return
	}
	caller := middleware.CallerFrom(c)
	bookings, err := h.Svc.ListBookingsInRange(c.Request.Context(), caller, input.StartDate, input.EndDate)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListMyBookings handles GET /api/bookings/mine.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	bookings, err := h.Svc.ListUserBookings(c.Request.Context(), caller)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListHostBookings handles GET /api/bookings/host.
func (h *BookingHandler) ListHostBookings(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	bookings, err := h.Svc.ListHostBookings(c.Request.Context(), caller)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateReservationDates handles PUT /api/bookings/:id/dates.
func (h *BookingHandler) UpdateReservationDates(c *gin.Context) {
	var input models.UpdateDatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	caller := middleware.CallerFrom(c)
	updated, err := h.Svc.UpdateReservationDates(c.Request.Context(), caller, c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully", "booking": updated})
}

// ConfirmBooking handles PATCH /api/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if err := h.Svc.ConfirmBooking(c.Request.Context(), caller, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed successfully"})
}

// CancelBooking handles PATCH /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if err := h.Svc.CancelBooking(c.Request.Context(), caller, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// ConfirmReservation handles PATCH /api/bookings/:id/properties/:propertyId/confirm.
func (h *BookingHandler) ConfirmReservation(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if err := h.Svc.ConfirmReservation(c.Request.Context(), caller, c.Param("id"), c.Param("propertyId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation confirmed successfully"})
}

// CancelReservation handles PATCH /api/bookings/:id/properties/:propertyId/cancel.
func (h *BookingHandler) CancelReservation(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if err := h.Svc.CancelReservation(c.Request.Context(), caller, c.Param("id"), c.Param("propertyId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled successfully"})
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if err := h.Svc.DeleteBooking(c.Request.Context(), caller, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// CheckAvailability handles POST /api/bookings/availability: the bulk
// "which of these properties are free" query.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var input struct {
		PropertyIDs []string              `json:"propertyIds" binding:"required,min=1"`
		Range       models.DateRangeInput `json:"range" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	free, err := h.Svc.FilterAvailableProperties(c.Request.Context(), input.PropertyIDs, input.Range.StartDate, input.Range.EndDate)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": free})
}

// RevenueSummary handles GET /api/bookings/revenue.
func (h *BookingHandler) RevenueSummary(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	summary, err := h.Svc.RevenueSummary(c.Request.Context(), caller, c.Query("hostId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

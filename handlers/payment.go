package handlers

import (
	"net/http"

	"roamstay/middleware"
	"roamstay/services/payment"
	"roamstay/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes payment records and the gateway outcome webhook.
type PaymentHandler struct {
	Svc payment.PaymentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

// InitiatePayment handles POST /api/payments.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId" binding:"required"`
		Method    string `json:"method" binding:"required,oneof=card paypal"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	p, err := h.Svc.Initiate(c.Request.Context(), middleware.CallerFrom(c), input.BookingID, input.Method)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// RecordOutcome handles POST /api/payments/:id/outcome: the gateway's
// settlement callback.
func (h *PaymentHandler) RecordOutcome(c *gin.Context) {
	var input struct {
		Outcome string `json:"outcome" binding:"required,oneof=completed failed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	p, err := h.Svc.RecordOutcome(c.Request.Context(), c.Param("id"), input.Outcome)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListBookingPayments handles GET /api/payments/booking/:bookingId.
func (h *PaymentHandler) ListBookingPayments(c *gin.Context) {
	payments, err := h.Svc.GetByBooking(c.Request.Context(), middleware.CallerFrom(c), c.Param("bookingId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list payments", "")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// PaymentsSummary handles GET /api/payments/summary (admin only).
func (h *PaymentHandler) PaymentsSummary(c *gin.Context) {
	summary, err := h.Svc.Summary(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, summary)
}

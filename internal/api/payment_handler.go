package api

import (
	"errors"
	"net/http"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler holds the payment service dependency.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// --- DTOs ---

// PaymentRequest is used for both recording and replacing a payment. The
// amount and due date are derived server-side from the plan and date.
type PaymentRequest struct {
	UserID      string `json:"userId" binding:"required"`
	PaymentDate string `json:"paymentDate" binding:"required"`
	Plan        string `json:"plan" binding:"required,oneof=monthly annual"`
}

// --- Handler Methods ---

// RecordPayment stores a new membership payment.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), req.UserID, req.PaymentDate, domain.Plan(req.Plan))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed),
			errors.Is(err, service.ErrInvalidPlan),
			errors.Is(err, service.ErrInvalidDate):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to record payment.")
		}
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ListPayments returns all payments joined with member names. An optional
// userId query filters to one member.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	if userID := c.Query("userId"); userID != "" {
		payments, err := h.paymentService.ListPaymentsForUser(c.Request.Context(), userID)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve payments.")
			return
		}
		c.JSON(http.StatusOK, payments)
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve payments.")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetPayment returns one payment by id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve payment.")
		}
		return
	}
	c.JSON(http.StatusOK, payment)
}

// UpdatePayment replaces a payment's details, recomputing derived fields.
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), c.Param("id"), req.UserID, req.PaymentDate, domain.Plan(req.Plan))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed),
			errors.Is(err, service.ErrInvalidPlan),
			errors.Is(err, service.ErrInvalidDate):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update payment.")
		}
		return
	}
	c.JSON(http.StatusOK, payment)
}

// DeletePayment removes a payment record.
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.paymentService.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete payment.")
		return
	}
	c.Status(http.StatusNoContent)
}

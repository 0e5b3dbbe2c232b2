package handlers

import (
	"errors"
	"net/http"

	"roamstay/middleware"
	"roamstay/models"
	"roamstay/services/review"
	"roamstay/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review filing and listing over HTTP.
type ReviewHandler struct {
	Svc review.ReviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Svc: svc}
}

// CreateReview handles POST /api/reviews.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := h.Svc.Create(c.Request.Context(), middleware.CallerFrom(c), input)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrStayNotCompleted):
			utils.JSONError(c, http.StatusForbidden, err.Error(), "")
		case errors.Is(err, review.ErrAlreadyReviewed):
			utils.JSONError(c, http.StatusConflict, err.Error(), "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create review", "")
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPropertyReviews handles GET /api/reviews/property/:propertyId.
func (h *ReviewHandler) ListPropertyReviews(c *gin.Context) {
	reviews, err := h.Svc.GetByProperty(c.Request.Context(), c.Param("propertyId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reviews", "")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

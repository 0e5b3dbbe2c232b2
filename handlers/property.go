package handlers

import (
	"errors"
	"net/http"

	"roamstay/middleware"
	"roamstay/models"
	"roamstay/services/property"
	"roamstay/utils"

	"github.com/gin-gonic/gin"
)

// PropertyHandler exposes listing management over HTTP.
type PropertyHandler struct {
	Svc property.PropertyService
}

// NewPropertyHandler creates a PropertyHandler.
func NewPropertyHandler(svc property.PropertyService) *PropertyHandler {
	return &PropertyHandler{Svc: svc}
}

func propertyErrorStatus(err error) int {
	switch {
	case errors.Is(err, property.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, property.ErrNotAuthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CreateProperty handles POST /api/properties.
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var input models.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := h.Svc.Create(c.Request.Context(), middleware.CallerFrom(c), input)
	if err != nil {
		utils.JSONError(c, propertyErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetProperty handles GET /api/properties/:id.
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, propertyErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListProperties handles GET /api/properties.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	if hostID := c.Query("hostId"); hostID != "" {
		properties, err := h.Svc.GetByHost(c.Request.Context(), hostID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list properties", "")
			return
		}
		c.JSON(http.StatusOK, properties)
		return
	}
	properties, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list properties", "")
		return
	}
	c.JSON(http.StatusOK, properties)
}

// UpdateProperty handles PUT /api/properties/:id.
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var input models.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	updated, err := h.Svc.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), input)
	if err != nil {
		utils.JSONError(c, propertyErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProperty handles DELETE /api/properties/:id.
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		utils.JSONError(c, propertyErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}

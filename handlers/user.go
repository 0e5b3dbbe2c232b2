package handlers

import (
	"errors"
	"net/http"

	"roamstay/middleware"
	"roamstay/models"
	"roamstay/services/user"
	"roamstay/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account management over HTTP.
type UserHandler struct {
	Svc user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// RegisterUser handles POST /api/users/register.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var input models.RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	u, token, err := h.Svc.Register(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "token": token})
}

// AuthenticateUser handles POST /api/users/login.
func (h *UserHandler) AuthenticateUser(c *gin.Context) {
	var input models.AuthenticateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	u, token, err := h.Svc.Authenticate(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// GetUser handles GET /api/users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch user", "")
		return
	}
	if u == nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateUser handles PUT /api/users/:id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var input struct {
		Name  string `json:"name" binding:"required,min=2"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	updated, err := h.Svc.Update(c.Request.Context(), middleware.CallerFrom(c), &models.User{
		ID:    c.Param("id"),
		Name:  input.Name,
		Phone: input.Phone,
	})
	if err != nil {
		if errors.Is(err, user.ErrNotAuthorized) {
			utils.JSONError(c, http.StatusForbidden, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUser handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		if errors.Is(err, user.ErrNotAuthorized) {
			utils.JSONError(c, http.StatusForbidden, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete user", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// RevokeToken handles DELETE /api/users/:id/token.
func (h *UserHandler) RevokeToken(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if !caller.IsAdmin() && caller.ID != c.Param("id") {
		utils.JSONError(c, http.StatusForbidden, "not authorized to revoke this token", "")
		return
	}
	if err := h.Svc.RevokeToken(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}

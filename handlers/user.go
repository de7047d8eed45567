package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomify/middleware"
	"roomify/services/user"
	"roomify/utils"
)

// UserHandler exposes account management over HTTP.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

// ListUsers returns all accounts that are not soft-deleted. Admin only
// (enforced by route middleware).
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.FindAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns one account. Self or admin only.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.authorizeSelf(c)
	if !ok {
		return
	}

	found, err := h.Service.FindOneByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateUser applies a partial profile update. Self or admin only.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.authorizeSelf(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), id, user.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdatePassword changes the account password after verifying the
// current one. Self or admin only.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	id, ok := h.authorizeSelf(c)
	if !ok {
		return
	}

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdatePassword(c.Request.Context(), id, req.OldPassword, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUser soft-deletes an account. Self or admin only.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.authorizeSelf(c)
	if !ok {
		return
	}

	removed, err := h.Service.Remove(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, removed)
}

// authorizeSelf parses the id parameter and verifies the caller is the
// account itself or an admin.
func (h *UserHandler) authorizeSelf(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id", err.Error())
		return primitive.NilObjectID, false
	}

	if middleware.IsAdmin(c) || id.Hex() == middleware.CurrentUserID(c) {
		return id, true
	}

	utils.JSONError(c, http.StatusForbidden, "forbidden", "account belongs to another user")
	return primitive.NilObjectID, false
}

func (h *UserHandler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, user.ErrWrongPassword):
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

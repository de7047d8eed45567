package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roomify/services/user"
	"roomify/utils"
)

// AuthHandler exposes registration and sign-in.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Register(c.Request.Context(), user.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     result.Token,
		"sessionId": result.SessionID,
		"user":      result.User,
	})
}

// Revoke invalidates one session by its id.
func (h *AuthHandler) Revoke(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "sessionId is required")
		return
	}
	if err := utils.RevokeAuthSession(utils.GetAuthCacheClient(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

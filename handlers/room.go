package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomify/middleware"
	"roomify/models"
	"roomify/services/room"
	"roomify/utils"
)

// RoomHandler exposes room CRUD over HTTP.
type RoomHandler struct {
	Service room.RoomService
}

func NewRoomHandler(svc room.RoomService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

type createRoomRequest struct {
	Name      string          `json:"name" binding:"required"`
	Type      models.RoomType `json:"type"`
	Capacity  int             `json:"capacity" binding:"required"`
	Amenities []string        `json:"amenities"`
	Price     float64         `json:"price" binding:"required"`
}

type updateRoomRequest struct {
	Name      *string          `json:"name"`
	Type      *models.RoomType `json:"type"`
	Capacity  *int             `json:"capacity"`
	Amenities *[]string        `json:"amenities"`
	Price     *float64         `json:"price"`
}

// CreateRoom registers a room owned by the authenticated user.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(middleware.CurrentUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid session", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), room.CreateRoomInput{
		Name:      req.Name,
		Type:      req.Type,
		Capacity:  req.Capacity,
		Amenities: req.Amenities,
		Price:     req.Price,
		UserID:    ownerID,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListRooms returns all rooms that are not soft-deleted. Public endpoint.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Service.FindAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom returns one room by id. Public endpoint.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id", err.Error())
		return
	}

	found, err := h.Service.FindOneByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateRoom applies a partial update. Owner or admin only.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := h.authorizeOwner(c)
	if !ok {
		return
	}

	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), id, room.UpdateRoomInput{
		Name:      req.Name,
		Type:      req.Type,
		Capacity:  req.Capacity,
		Amenities: req.Amenities,
		Price:     req.Price,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRoom soft-deletes for owners, hard-deletes for admins.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := h.authorizeOwner(c)
	if !ok {
		return
	}

	if middleware.IsAdmin(c) {
		if err := h.Service.Remove(c.Request.Context(), id); err != nil {
			h.writeServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
		return
	}

	removed, err := h.Service.SoftRemove(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, removed)
}

// authorizeOwner parses the id parameter and verifies the caller owns
// the room or is an admin.
func (h *RoomHandler) authorizeOwner(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id", err.Error())
		return primitive.NilObjectID, false
	}

	if middleware.IsAdmin(c) {
		return id, true
	}

	found, err := h.Service.FindOneByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return primitive.NilObjectID, false
	}
	if found.UserID.Hex() != middleware.CurrentUserID(c) {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "room belongs to another user")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *RoomHandler) writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, room.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
}

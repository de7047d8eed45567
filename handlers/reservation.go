package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomify/middleware"
	"roomify/services/reservation"
	"roomify/utils"
)

// ReservationHandler exposes the booking lifecycle over HTTP.
type ReservationHandler struct {
	Service reservation.ReservationService
}

func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

type createReservationRequest struct {
	RoomID     string `json:"roomId" binding:"required"`
	UserID     string `json:"userId"`
	RentedFrom string `json:"rentedFrom" binding:"required"`
	RentedTo   string `json:"rentedTo" binding:"required"`
}

type updateReservationRequest struct {
	RentedFrom *string `json:"rentedFrom"`
	RentedTo   *string `json:"rentedTo"`
	IsCanceled *bool   `json:"isCanceled"`
}

// CreateReservation books a room for the authenticated user. Admins may
// book on behalf of another user by passing userId.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	roomID, err := primitive.ObjectIDFromHex(req.RoomID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id", err.Error())
		return
	}

	renterHex := middleware.CurrentUserID(c)
	if req.UserID != "" && middleware.IsAdmin(c) {
		renterHex = req.UserID
	}
	userID, err := primitive.ObjectIDFromHex(renterHex)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), reservation.CreateReservationInput{
		RoomID:     roomID,
		UserID:     userID,
		RentedFrom: req.RentedFrom,
		RentedTo:   req.RentedTo,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetRoomReservations lists a room's reservations intersecting an
// optional period. Public endpoint.
func (h *ReservationHandler) GetRoomReservations(c *gin.Context) {
	roomID, err := primitive.ObjectIDFromHex(c.Param("roomId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id", err.Error())
		return
	}

	reservations, err := h.Service.FindForRoom(c.Request.Context(), roomID, reservation.FindReservationsInput{
		RentedFrom: c.Query("rentedFrom"),
		RentedTo:   c.Query("rentedTo"),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservation returns one reservation joined with room and renter info.
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id", err.Error())
		return
	}

	details, err := h.Service.FindOneByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// UpdateReservation applies a partial update. Only the renter or an
// admin may touch a reservation.
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, ok := h.authorizeOwner(c)
	if !ok {
		return
	}

	var req updateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), id, reservation.UpdateReservationInput{
		RentedFrom: req.RentedFrom,
		RentedTo:   req.RentedTo,
		IsCanceled: req.IsCanceled,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelReservation flips the reservation to canceled.
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, ok := h.authorizeOwner(c)
	if !ok {
		return
	}

	canceled, err := h.Service.Cancel(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, canceled)
}

// DeleteReservation hard-removes a reservation. Admin only (enforced by
// route middleware).
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id", err.Error())
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRoomsStatistics reports booked days per room for a window. Admin
// only (enforced by route middleware).
func (h *ReservationHandler) GetRoomsStatistics(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "from and to query parameters are required")
		return
	}

	stats, err := h.Service.GetRoomsStatistics(c.Request.Context(), from, to)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// authorizeOwner parses the id parameter and verifies the caller is the
// reservation's renter or an admin before a mutation proceeds.
func (h *ReservationHandler) authorizeOwner(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id", err.Error())
		return primitive.NilObjectID, false
	}

	if middleware.IsAdmin(c) {
		return id, true
	}

	details, err := h.Service.FindOneByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return primitive.NilObjectID, false
	}
	if details.UserID.Hex() != middleware.CurrentUserID(c) {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "reservation belongs to another user")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *ReservationHandler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservation.ErrRoomNotFound),
		errors.Is(err, reservation.ErrReservationNotFound),
		errors.Is(err, reservation.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, reservation.ErrPeriodConflict):
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, reservation.ErrInvalidDate):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

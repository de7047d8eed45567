package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoomType classifies a bookable unit.
type RoomType string

const (
	RoomTypeApartment RoomType = "apartment"
	RoomTypeRoom      RoomType = "room"
)

// Room is a bookable unit owned by a user. Rooms are soft-deleted:
// IsDeleted hides them from listings without breaking reservation history.
type Room struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Type      RoomType           `bson:"type" json:"type"`
	Capacity  int                `bson:"capacity" json:"capacity"`
	Amenities []string           `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Price     float64            `bson:"price" json:"price"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	IsDeleted bool               `bson:"isDeleted" json:"isDeleted"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Summary projects the fields statistics results carry per room.
func (r Room) Summary() RoomSummary {
	return RoomSummary{ID: r.ID, Name: r.Name, Type: r.Type}
}

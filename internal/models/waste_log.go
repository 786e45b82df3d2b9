package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WasteType classifies a disposal event
type WasteType string

const (
	WasteTypeWet   WasteType = "wet"
	WasteTypeDry   WasteType = "dry"
	WasteTypeMixed WasteType = "mixed"
)

// WasteLog represents a single disposal event logged by a user
type WasteLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Type      WasteType          `bson:"type" json:"type"`
	Fined     bool               `bson:"fined" json:"fined"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// PickupType classifies a collection event derived from a waste log
type PickupType string

const (
	PickupTypeRecycling PickupType = "recycling"
	PickupTypeCompost   PickupType = "compost"
	PickupTypeGeneral   PickupType = "general"
)

// Pickup represents a collection event in the user's pickup history
type Pickup struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Type      PickupType         `bson:"type" json:"type"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

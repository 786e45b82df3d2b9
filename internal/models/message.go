package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement represents a broadcast message visible to every user
type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// AdminMessage represents a one-way direct message from an administrator to a
// single user
type AdminMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Text      string             `bson:"text" json:"text"`
	Read      bool               `bson:"read" json:"read"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// InboxItem is a merged inbox entry: either a direct message or an
// announcement, ordered by recency
type InboxItem struct {
	Kind         string        `json:"kind"` // message or announcement
	Message      *AdminMessage `json:"message,omitempty"`
	Announcement *Announcement `json:"announcement,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}

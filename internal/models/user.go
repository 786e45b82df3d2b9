package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStatus represents the account standing of a user
type UserStatus string

const (
	UserStatusActive     UserStatus = "active"
	UserStatusRestricted UserStatus = "restricted"
	UserStatusBlocked    UserStatus = "blocked"
)

// UserSubscription links a user to a subscription plan
type UserSubscription struct {
	PlanID          string    `bson:"planId" json:"planId"`
	Status          string    `bson:"status" json:"status"` // active, paused, cancelled
	NextRenewalDate time.Time `bson:"nextRenewalDate" json:"nextRenewalDate"`
}

// User represents a household account
type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	Password           string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	Address            string             `bson:"address" json:"address"`
	HouseholdID        string             `bson:"householdId" json:"householdId"`
	ProfilePicture     string             `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Subscription       UserSubscription   `bson:"subscription" json:"subscription"`
	Status             UserStatus         `bson:"status" json:"status"`
	OutstandingBalance float64            `bson:"outstandingBalance" json:"outstandingBalance"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

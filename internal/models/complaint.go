package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComplaintStatus represents the lifecycle state of a complaint
type ComplaintStatus string

const (
	ComplaintStatusSubmitted  ComplaintStatus = "submitted"
	ComplaintStatusInProgress ComplaintStatus = "in-progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
)

// ComplaintIssueType classifies the reported issue
type ComplaintIssueType string

const (
	IssueTypeMissedPickup ComplaintIssueType = "missed-pickup"
	IssueTypeServiceIssue ComplaintIssueType = "service-issue"
	IssueTypeOther        ComplaintIssueType = "other"
)

// Complaint represents a user-filed service issue. Status is mutated only by
// administrators.
type Complaint struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	IssueType   ComplaintIssueType `bson:"issueType" json:"issueType"`
	Description string             `bson:"description" json:"description"`
	Photo       string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Status      ComplaintStatus    `bson:"status" json:"status"`
	Date        time.Time          `bson:"date" json:"date"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

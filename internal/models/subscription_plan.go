package models

import "time"

// SubscriptionPlan represents an entry in the admin-owned plan catalog.
// Plans carry stable string ids (e.g. "plan_basic") so the default plan can
// be named in configuration.
type SubscriptionPlan struct {
	ID            string    `bson:"_id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	PricePerMonth float64   `bson:"pricePerMonth" json:"pricePerMonth"`
	BinSize       string    `bson:"binSize" json:"binSize"`     // Small (60L), Medium (120L), Large (240L)
	Frequency     string    `bson:"frequency" json:"frequency"` // Weekly, Bi-Weekly
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

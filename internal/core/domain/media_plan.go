package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaPlanItem allocates part of a campaign budget to a channel and,
// optionally, a vendor.
type MediaPlanItem struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CampaignID      string             `json:"campaign_id" bson:"campaign_id"`
	Channel         string             `json:"channel" bson:"channel" validate:"required"`
	Vendor          string             `json:"vendor,omitempty" bson:"vendor,omitempty"`
	BudgetAllocated float64            `json:"budget_allocated" bson:"budget_allocated" validate:"gte=0"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignPlanned  CampaignStatus = "planned"
	CampaignActive   CampaignStatus = "active"
	CampaignPaused   CampaignStatus = "paused"
	CampaignFinished CampaignStatus = "finished"
)

// Campaign represents a marketing campaign run for a client.
// BudgetTotal is the amount planned for the whole campaign; media plan
// items allocate parts of it to channels.
type Campaign struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ClientID    string             `json:"client_id" bson:"client_id"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	StartDate   *Date              `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate     *Date              `json:"end_date,omitempty" bson:"end_date,omitempty"`
	BudgetTotal float64            `json:"budget_total" bson:"budget_total" validate:"gte=0"`
	Status      CampaignStatus     `json:"status" bson:"status" validate:"oneof=planned active paused finished"`
	Objective   string             `json:"objective,omitempty" bson:"objective,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// WithDefaults fills in the status of a new campaign when the caller left
// it empty.
func (c Campaign) WithDefaults() Campaign {
	if c.Status == "" {
		c.Status = CampaignPlanned
	}
	return c
}

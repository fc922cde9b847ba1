package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActionStatus is the progress state of an action item.
type ActionStatus string

const (
	ActionPending    ActionStatus = "pending"
	ActionInProgress ActionStatus = "in_progress"
	ActionDone       ActionStatus = "done"
	ActionBlocked    ActionStatus = "blocked"
)

// ActionItem is a task attached to a campaign. CostActual is only set
// once the real cost is known.
type ActionItem struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CampaignID string             `json:"campaign_id" bson:"campaign_id"`
	Title      string             `json:"title" bson:"title" validate:"required"`
	Owner      string             `json:"owner,omitempty" bson:"owner,omitempty"`
	DueDate    *Date              `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Status     ActionStatus       `json:"status" bson:"status" validate:"oneof=pending in_progress done blocked"`
	CostActual *float64           `json:"cost_actual,omitempty" bson:"cost_actual,omitempty" validate:"omitempty,gte=0"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// WithDefaults marks a new action item as pending when no status was given.
func (a ActionItem) WithDefaults() ActionItem {
	if a.Status == "" {
		a.Status = ActionPending
	}
	return a
}

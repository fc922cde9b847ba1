package port

import (
	"context"

	"agency-campaigns/internal/core/domain"
)

// AgencyUseCase defines the business operations of the campaign manager.
// This interface represents the primary port into the application domain.
type AgencyUseCase interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	// CreateClient validates the payload and stores it.
	CreateClient(ctx context.Context, c domain.Client) (string, error)

	// ListCampaigns lists campaigns, restricted to one client when
	// clientID is not empty.
	ListCampaigns(ctx context.Context, clientID string) ([]domain.Campaign, error)
	// CreateCampaign validates the payload and, when ClientID is set,
	// checks the client exists before storing it.
	CreateCampaign(ctx context.Context, c domain.Campaign) (string, error)

	ListMediaPlanItems(ctx context.Context, campaignID string) ([]domain.MediaPlanItem, error)
	// CreateMediaPlanItem validates the payload and, when CampaignID is
	// set, checks the campaign exists before storing it.
	CreateMediaPlanItem(ctx context.Context, item domain.MediaPlanItem) (string, error)

	ListActionItems(ctx context.Context, campaignID string) ([]domain.ActionItem, error)
	// CreateActionItem validates the payload and, when CampaignID is set,
	// checks the campaign exists before storing it.
	CreateActionItem(ctx context.Context, item domain.ActionItem) (string, error)

	// CampaignBudget returns the budget rollup of a campaign. Remaining is
	// clamped at zero when media plan items exceed the total.
	CampaignBudget(ctx context.Context, campaignID string) (*domain.BudgetSummary, error)

	// Diagnostics reports store reachability. It never fails; problems are
	// summarised in the returned value.
	Diagnostics(ctx context.Context) Diagnostics
}

// Diagnostics is the operational status report served by the test route.
// DatabaseName is null when no store is configured.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

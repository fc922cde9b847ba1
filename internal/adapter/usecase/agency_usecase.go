package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"agency-campaigns/internal/core/domain"
	"agency-campaigns/internal/core/port"
	"agency-campaigns/internal/core/schema"
)

// AgencyUseCase implements port.AgencyUseCase. It validates payloads,
// enforces parent references before inserts and computes the campaign
// budget rollup. It keeps no state between calls; every read goes to the
// repository.
type AgencyUseCase struct {
	repo   port.AgencyRepository
	probe  port.StoreProbe
	logger *slog.Logger

	// urlSet reports whether the store address was configured explicitly.
	urlSet bool
}

// NewAgencyUseCase creates a new usecase. probe may be nil, in which case
// Diagnostics reports the store as not initialised.
func NewAgencyUseCase(repo port.AgencyRepository, probe port.StoreProbe, urlSet bool, logger *slog.Logger) *AgencyUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AgencyUseCase{repo: repo, probe: probe, urlSet: urlSet, logger: logger}
}

// ListClients returns every client.
func (u *AgencyUseCase) ListClients(ctx context.Context) ([]domain.Client, error) {
	return u.repo.ListClients(ctx)
}

// CreateClient validates and stores a client.
func (u *AgencyUseCase) CreateClient(ctx context.Context, c domain.Client) (string, error) {
	if err := schema.Check(c).Err(); err != nil {
		return "", err
	}
	return u.repo.CreateClient(ctx, c)
}

// ListCampaigns returns campaigns, filtered by client when clientID is set.
func (u *AgencyUseCase) ListCampaigns(ctx context.Context, clientID string) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx, clientID)
}

// CreateCampaign validates a campaign and stores it. A non-empty ClientID
// must name an existing client; an empty one skips the check.
func (u *AgencyUseCase) CreateCampaign(ctx context.Context, c domain.Campaign) (string, error) {
	res := schema.Check(c.WithDefaults())
	c, ok := res.Valid()
	if !ok {
		return "", res.Err()
	}
	if c.ClientID != "" {
		client, err := u.repo.GetClient(ctx, c.ClientID)
		if err != nil {
			return "", err
		}
		if client == nil {
			return "", domain.ErrClientNotFound
		}
	}
	return u.repo.CreateCampaign(ctx, c)
}

// ListMediaPlanItems returns media plan items, filtered by campaign when
// campaignID is set.
func (u *AgencyUseCase) ListMediaPlanItems(ctx context.Context, campaignID string) ([]domain.MediaPlanItem, error) {
	return u.repo.ListMediaPlanItems(ctx, campaignID)
}

// CreateMediaPlanItem validates an item and stores it after checking its
// campaign exists.
func (u *AgencyUseCase) CreateMediaPlanItem(ctx context.Context, item domain.MediaPlanItem) (string, error) {
	if err := schema.Check(item).Err(); err != nil {
		return "", err
	}
	if err := u.requireCampaign(ctx, item.CampaignID); err != nil {
		return "", err
	}
	return u.repo.CreateMediaPlanItem(ctx, item)
}

// ListActionItems returns action items, filtered by campaign when
// campaignID is set.
func (u *AgencyUseCase) ListActionItems(ctx context.Context, campaignID string) ([]domain.ActionItem, error) {
	return u.repo.ListActionItems(ctx, campaignID)
}

// CreateActionItem validates an action item and stores it after checking
// its campaign exists.
func (u *AgencyUseCase) CreateActionItem(ctx context.Context, item domain.ActionItem) (string, error) {
	res := schema.Check(item.WithDefaults())
	item, ok := res.Valid()
	if !ok {
		return "", res.Err()
	}
	if err := u.requireCampaign(ctx, item.CampaignID); err != nil {
		return "", err
	}
	return u.repo.CreateActionItem(ctx, item)
}

// CampaignBudget sums the allocations of every media plan item of the
// campaign against its total. The items are re-read on every call.
func (u *AgencyUseCase) CampaignBudget(ctx context.Context, campaignID string) (*domain.BudgetSummary, error) {
	camp, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, domain.ErrCampaignNotFound
	}
	items, err := u.repo.ListMediaPlanItems(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("listing media plan for budget: %w", err)
	}
	summary := domain.NewBudgetSummary(campaignID, camp.BudgetTotal, items)
	u.logger.Debug("campaign budget computed",
		slog.String("campaign_id", campaignID),
		slog.Int("items", len(items)),
		slog.Float64("remaining", summary.Remaining))
	return &summary, nil
}

// requireCampaign fails with domain.ErrCampaignNotFound when id is set and
// no such campaign exists. An empty id passes.
func (u *AgencyUseCase) requireCampaign(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	camp, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if camp == nil {
		return domain.ErrCampaignNotFound
	}
	return nil
}

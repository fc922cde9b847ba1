package db

import (
	"context"
	"fmt"
	"time"

	"agency-campaigns/internal/core/domain"
	"agency-campaigns/internal/core/port"
)

// Seed inserts demo data through repo when no client exists yet. It
// reports whether anything was inserted.
func Seed(ctx context.Context, repo port.AgencyRepository) (bool, error) {
	clients, err := repo.ListClients(ctx)
	if err != nil {
		return false, err
	}
	if len(clients) > 0 {
		return false, nil
	}

	clientID, err := repo.CreateClient(ctx, domain.Client{
		Name:        "Demo Foods",
		ContactName: "Marta Ruiz",
		Email:       "marketing@demofoods.example",
		Notes:       "Seeded demo client",
	})
	if err != nil {
		return false, fmt.Errorf("seeding client: %w", err)
	}

	now := time.Now().UTC()
	start := domain.NewDate(now.Year(), now.Month(), now.Day())
	end := domain.Date{Time: start.AddDate(0, 2, 0)}
	campaignID, err := repo.CreateCampaign(ctx, domain.Campaign{
		ClientID:    clientID,
		Name:        "Summer launch",
		StartDate:   &start,
		EndDate:     &end,
		BudgetTotal: 20000,
		Status:      domain.CampaignActive,
		Objective:   "Awareness for the new product line",
	})
	if err != nil {
		return false, fmt.Errorf("seeding campaign: %w", err)
	}

	items := []domain.MediaPlanItem{
		{CampaignID: campaignID, Channel: "Facebook Ads", Vendor: "Meta", BudgetAllocated: 6000},
		{CampaignID: campaignID, Channel: "Google Search", Vendor: "Google", BudgetAllocated: 8000},
		{CampaignID: campaignID, Channel: "Radio", Vendor: "City FM", BudgetAllocated: 4000},
	}
	for _, it := range items {
		if _, err = repo.CreateMediaPlanItem(ctx, it); err != nil {
			return false, fmt.Errorf("seeding media plan item: %w", err)
		}
	}

	due := domain.Date{Time: start.AddDate(0, 0, 7)}
	actions := []domain.ActionItem{
		{CampaignID: campaignID, Title: "Approve creatives", Owner: "Marta Ruiz", DueDate: &due, Status: domain.ActionInProgress},
		{CampaignID: campaignID, Title: "Book radio slots", Owner: "Media desk", Status: domain.ActionPending},
	}
	for _, a := range actions {
		if _, err = repo.CreateActionItem(ctx, a); err != nil {
			return false, fmt.Errorf("seeding action item: %w", err)
		}
	}
	return true, nil
}

package port

import (
	"context"

	"agency-campaigns/internal/core/domain"
)

// AgencyRepository defines the persistence layer for clients, campaigns,
// media plan items and action items. It is an outbound port in hexagonal
// architecture.
//
// Create methods return the generated identifier. Get methods return
// domain.ErrInvalidID for a malformed id and (nil, nil) when no document
// matches. List methods take an optional parent id; an empty string lists
// the whole collection. Store failures are reported as *domain.StorageError.
type AgencyRepository interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, c domain.Client) (string, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)

	ListCampaigns(ctx context.Context, clientID string) ([]domain.Campaign, error)
	CreateCampaign(ctx context.Context, c domain.Campaign) (string, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	ListMediaPlanItems(ctx context.Context, campaignID string) ([]domain.MediaPlanItem, error)
	CreateMediaPlanItem(ctx context.Context, item domain.MediaPlanItem) (string, error)

	ListActionItems(ctx context.Context, campaignID string) ([]domain.ActionItem, error)
	CreateActionItem(ctx context.Context, item domain.ActionItem) (string, error)
}

// StoreProbe exposes connection level details of the document store for
// diagnostics.
type StoreProbe interface {
	// Name returns the name of the database in use.
	Name() string
	// Ping checks the store is reachable.
	Ping(ctx context.Context) error
	// ListCollectionNames returns the collections present in the database.
	ListCollectionNames(ctx context.Context) ([]string, error)
}

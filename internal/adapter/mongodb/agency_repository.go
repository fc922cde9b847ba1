package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agency-campaigns/internal/core/domain"
)

// ListClients returns all clients.
func (s *Store) ListClients(ctx context.Context) ([]domain.Client, error) {
	return listDocuments[domain.Client](ctx, s.collection(domain.ClientsCollection), nil)
}

// CreateClient inserts a client with fresh timestamps.
func (s *Store) CreateClient(ctx context.Context, c domain.Client) (string, error) {
	c.ID = primitive.NilObjectID
	c.CreatedAt = s.now()
	c.UpdatedAt = c.CreatedAt
	return createDocument(ctx, s.collection(domain.ClientsCollection), c)
}

// GetClient returns a client by id.
func (s *Store) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return findByID[domain.Client](ctx, s.collection(domain.ClientsCollection), id)
}

// ListCampaigns returns campaigns, all of them or those of one client.
func (s *Store) ListCampaigns(ctx context.Context, clientID string) ([]domain.Campaign, error) {
	return listDocuments[domain.Campaign](ctx, s.collection(domain.CampaignsCollection), byParent("client_id", clientID))
}

// CreateCampaign inserts a campaign with fresh timestamps.
func (s *Store) CreateCampaign(ctx context.Context, c domain.Campaign) (string, error) {
	c.ID = primitive.NilObjectID
	c.CreatedAt = s.now()
	c.UpdatedAt = c.CreatedAt
	return createDocument(ctx, s.collection(domain.CampaignsCollection), c)
}

// GetCampaign returns a campaign by id.
func (s *Store) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return findByID[domain.Campaign](ctx, s.collection(domain.CampaignsCollection), id)
}

// ListMediaPlanItems returns media plan items, all of them or those of one
// campaign.
func (s *Store) ListMediaPlanItems(ctx context.Context, campaignID string) ([]domain.MediaPlanItem, error) {
	return listDocuments[domain.MediaPlanItem](ctx, s.collection(domain.MediaPlanItemsCollection), byParent("campaign_id", campaignID))
}

// CreateMediaPlanItem inserts a media plan item with fresh timestamps.
func (s *Store) CreateMediaPlanItem(ctx context.Context, item domain.MediaPlanItem) (string, error) {
	item.ID = primitive.NilObjectID
	item.CreatedAt = s.now()
	item.UpdatedAt = item.CreatedAt
	return createDocument(ctx, s.collection(domain.MediaPlanItemsCollection), item)
}

// ListActionItems returns action items, all of them or those of one
// campaign.
func (s *Store) ListActionItems(ctx context.Context, campaignID string) ([]domain.ActionItem, error) {
	return listDocuments[domain.ActionItem](ctx, s.collection(domain.ActionItemsCollection), byParent("campaign_id", campaignID))
}

// CreateActionItem inserts an action item with fresh timestamps.
func (s *Store) CreateActionItem(ctx context.Context, item domain.ActionItem) (string, error) {
	item.ID = primitive.NilObjectID
	item.CreatedAt = s.now()
	item.UpdatedAt = item.CreatedAt
	return createDocument(ctx, s.collection(domain.ActionItemsCollection), item)
}

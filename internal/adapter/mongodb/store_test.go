package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"agency-campaigns/internal/core/domain"
	"agency-campaigns/internal/core/port"
)

var (
	_ port.AgencyRepository = (*Store)(nil)
	_ port.StoreProbe       = (*Store)(nil)
)

const clientHex = "65a1f0c2e4b0a1b2c3d4e5f6"

var fixedNow = time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)

func newMockStore(mt *mtest.T) *Store {
	s := NewStore(mt.DB)
	s.now = func() time.Time { return fixedNow }
	return s
}

func ns(mt *mtest.T, c domain.Collection) string {
	return mt.DB.Name() + "." + c.String()
}

// insertedDocument returns the single document sent by the next recorded
// insert command.
func insertedDocument(mt *mtest.T, c domain.Collection) bson.Raw {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "insert", evt.CommandName)
	require.Equal(mt, c.String(), evt.Command.Lookup("insert").StringValue())
	docs, err := evt.Command.Lookup("documents").Array().Values()
	require.NoError(mt, err)
	require.Len(mt, docs, 1)
	return docs[0].Document()
}

// findFilter returns the filter of the next recorded find command.
func findFilter(mt *mtest.T, c domain.Collection) bson.Raw {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "find", evt.CommandName)
	require.Equal(mt, c.String(), evt.Command.Lookup("find").StringValue())
	return evt.Command.Lookup("filter").Document()
}

func TestByParent(t *testing.T) {
	require.Equal(t, bson.M{}, byParent("client_id", ""))
	require.Equal(t, bson.M{"campaign_id": clientHex}, byParent("campaign_id", clientHex))
}

func TestStoreCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("client gets generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := newMockStore(mt).CreateClient(context.Background(), domain.Client{Name: "Acme"})
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(id)
		require.NoError(mt, err)
	})

	mt.Run("caller supplied id and timestamps are replaced", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		supplied := primitive.NewObjectID()
		stale := fixedNow.Add(-48 * time.Hour)

		id, err := newMockStore(mt).CreateCampaign(context.Background(), domain.Campaign{
			ID:        supplied,
			ClientID:  clientHex,
			Name:      "Spring",
			CreatedAt: stale,
			UpdatedAt: stale,
		})
		require.NoError(mt, err)
		require.NotEqual(mt, supplied.Hex(), id)

		doc := insertedDocument(mt, domain.CampaignsCollection)
		require.Equal(mt, id, doc.Lookup("_id").ObjectID().Hex())
		require.True(mt, fixedNow.Equal(doc.Lookup("created_at").Time()))
		require.True(mt, fixedNow.Equal(doc.Lookup("updated_at").Time()))
		require.Equal(mt, clientHex, doc.Lookup("client_id").StringValue())
		require.Equal(mt, "Spring", doc.Lookup("name").StringValue())
	})

	mt.Run("created client lists back unchanged", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		s := newMockStore(mt)

		id, err := s.CreateClient(context.Background(), domain.Client{Name: "Acme", Email: "ops@acme.test"})
		require.NoError(mt, err)

		var stored bson.D
		require.NoError(mt, bson.Unmarshal(insertedDocument(mt, domain.ClientsCollection), &stored))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, domain.ClientsCollection), mtest.FirstBatch, stored))

		got, err := s.ListClients(context.Background())
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		require.Equal(mt, id, got[0].ID.Hex())
		require.Equal(mt, "Acme", got[0].Name)
		require.Equal(mt, "ops@acme.test", got[0].Email)
		require.True(mt, fixedNow.Equal(got[0].CreatedAt))
		require.True(mt, fixedNow.Equal(got[0].UpdatedAt))
	})

	mt.Run("media plan item and action item", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())
		s := newMockStore(mt)

		id, err := s.CreateMediaPlanItem(context.Background(), domain.MediaPlanItem{CampaignID: clientHex, Channel: "TV"})
		require.NoError(mt, err)
		require.Len(mt, id, 24)

		id, err = s.CreateActionItem(context.Background(), domain.ActionItem{CampaignID: clientHex, Title: "Call vendor"})
		require.NoError(mt, err)
		require.Len(mt, id, 24)
	})

	mt.Run("store failure is a storage error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on agency to execute command",
		}))

		_, err := newMockStore(mt).CreateClient(context.Background(), domain.Client{Name: "Acme"})
		var se *domain.StorageError
		require.ErrorAs(mt, err, &se)
		require.Equal(mt, "insert client", se.Op)
	})
}

func TestStoreList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("campaigns decode in store order", func(mt *mtest.T) {
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, domain.CampaignsCollection), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: first},
				{Key: "client_id", Value: clientHex},
				{Key: "name", Value: "Spring"},
				{Key: "budget_total", Value: 1000.0},
				{Key: "status", Value: "active"},
				{Key: "start_date", Value: "2025-03-01"},
			},
			bson.D{
				{Key: "_id", Value: second},
				{Key: "client_id", Value: clientHex},
				{Key: "name", Value: "Summer"},
				{Key: "budget_total", Value: int32(500)},
				{Key: "status", Value: "planned"},
			},
		))

		got, err := newMockStore(mt).ListCampaigns(context.Background(), clientHex)
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		require.Equal(mt, first, got[0].ID)
		require.Equal(mt, "Spring", got[0].Name)
		require.Equal(mt, domain.CampaignActive, got[0].Status)
		require.Equal(mt, domain.NewDate(2025, time.March, 1), *got[0].StartDate)
		require.Equal(mt, second, got[1].ID)
		require.Equal(mt, 500.0, got[1].BudgetTotal)
		require.Nil(mt, got[1].StartDate)
	})

	mt.Run("empty collection yields empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, domain.ClientsCollection), mtest.FirstBatch))

		got, err := newMockStore(mt).ListClients(context.Background())
		require.NoError(mt, err)
		require.NotNil(mt, got)
		require.Empty(mt, got)
	})

	mt.Run("action items with optional cost", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, domain.ActionItemsCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "Pay TV"}, {Key: "status", Value: "done"}, {Key: "cost_actual", Value: 120.5}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "Brief"}, {Key: "status", Value: "pending"}},
		))

		got, err := newMockStore(mt).ListActionItems(context.Background(), "")
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		require.NotNil(mt, got[0].CostActual)
		require.Equal(mt, 120.5, *got[0].CostActual)
		require.Nil(mt, got[1].CostActual)
	})

	mt.Run("parent filters reach the find command", func(mt *mtest.T) {
		s := newMockStore(mt)
		calls := []struct {
			coll  domain.Collection
			field string
			list  func() error
		}{
			{domain.CampaignsCollection, "client_id", func() error { _, err := s.ListCampaigns(context.Background(), clientHex); return err }},
			{domain.MediaPlanItemsCollection, "campaign_id", func() error { _, err := s.ListMediaPlanItems(context.Background(), clientHex); return err }},
			{domain.ActionItemsCollection, "campaign_id", func() error { _, err := s.ListActionItems(context.Background(), clientHex); return err }},
		}
		for _, c := range calls {
			mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, c.coll), mtest.FirstBatch))
			require.NoError(mt, c.list())

			filter := findFilter(mt, c.coll)
			elems, err := filter.Elements()
			require.NoError(mt, err)
			require.Len(mt, elems, 1)
			require.Equal(mt, clientHex, filter.Lookup(c.field).StringValue())
		}
	})

	mt.Run("no parent means no filter", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, domain.CampaignsCollection), mtest.FirstBatch),
			mtest.CreateCursorResponse(0, ns(mt, domain.ActionItemsCollection), mtest.FirstBatch),
		)

		_, err := s.ListCampaigns(context.Background(), "")
		require.NoError(mt, err)
		elems, err := findFilter(mt, domain.CampaignsCollection).Elements()
		require.NoError(mt, err)
		require.Empty(mt, elems)

		_, err = s.ListActionItems(context.Background(), "")
		require.NoError(mt, err)
		elems, err = findFilter(mt, domain.ActionItemsCollection).Elements()
		require.NoError(mt, err)
		require.Empty(mt, elems)
	})

	mt.Run("find failure is a storage error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "bad"}))

		_, err := newMockStore(mt).ListMediaPlanItems(context.Background(), "")
		var se *domain.StorageError
		require.ErrorAs(mt, err, &se)
		require.Equal(mt, "find mediaplanitem", se.Op)
	})
}

func TestStoreGet(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		oid, _ := primitive.ObjectIDFromHex(clientHex)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, domain.ClientsCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: oid}, {Key: "name", Value: "Acme"}},
		))

		got, err := newMockStore(mt).GetClient(context.Background(), clientHex)
		require.NoError(mt, err)
		require.NotNil(mt, got)
		require.Equal(mt, "Acme", got.Name)
		require.Equal(mt, oid, findFilter(mt, domain.ClientsCollection).Lookup("_id").ObjectID())
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, domain.CampaignsCollection), mtest.FirstBatch))

		got, err := newMockStore(mt).GetCampaign(context.Background(), clientHex)
		require.NoError(mt, err)
		require.Nil(mt, got)
	})

	mt.Run("malformed id never reaches the store", func(mt *mtest.T) {
		got, err := newMockStore(mt).GetCampaign(context.Background(), "not-an-object-id")
		require.ErrorIs(mt, err, domain.ErrInvalidID)
		require.Nil(mt, got)
	})
}

func TestStoreProbe(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ping and collections", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, mt.DB.Name()+".$cmd.listCollections", mtest.FirstBatch,
				bson.D{{Key: "name", Value: "client"}, {Key: "type", Value: "collection"}},
				bson.D{{Key: "name", Value: "campaign"}, {Key: "type", Value: "collection"}},
			),
		)
		s := newMockStore(mt)

		require.Equal(mt, mt.DB.Name(), s.Name())
		require.NoError(mt, s.Ping(context.Background()))
		names, err := s.ListCollectionNames(context.Background())
		require.NoError(mt, err)
		require.ElementsMatch(mt, []string{"client", "campaign"}, names)
	})
}

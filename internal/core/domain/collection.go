package domain

// Collection names one of the document collections the service owns. The
// set is closed; repositories are keyed by these values instead of raw
// strings.
type Collection string

const (
	ClientsCollection        Collection = "client"
	CampaignsCollection      Collection = "campaign"
	MediaPlanItemsCollection Collection = "mediaplanitem"
	ActionItemsCollection    Collection = "actionitem"
)

func (c Collection) String() string {
	return string(c)
}

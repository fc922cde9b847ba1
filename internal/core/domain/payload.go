package domain

// The payload types are the request bodies accepted on create. They carry
// only caller-owned fields; ids and timestamps are assigned by the store
// and any such keys in the body are ignored.

// ClientPayload is the body of a client create request.
type ClientPayload struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
}

func (p ClientPayload) Document() Client {
	return Client{
		Name:        p.Name,
		ContactName: p.ContactName,
		Email:       p.Email,
		Phone:       p.Phone,
		Notes:       p.Notes,
	}
}

// CampaignPayload is the body of a campaign create request.
type CampaignPayload struct {
	ClientID    string         `json:"client_id"`
	Name        string         `json:"name"`
	StartDate   *Date          `json:"start_date"`
	EndDate     *Date          `json:"end_date"`
	BudgetTotal float64        `json:"budget_total"`
	Status      CampaignStatus `json:"status"`
	Objective   string         `json:"objective"`
}

func (p CampaignPayload) Document() Campaign {
	return Campaign{
		ClientID:    p.ClientID,
		Name:        p.Name,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		BudgetTotal: p.BudgetTotal,
		Status:      p.Status,
		Objective:   p.Objective,
	}
}

// MediaPlanItemPayload is the body of a media plan item create request.
type MediaPlanItemPayload struct {
	CampaignID      string  `json:"campaign_id"`
	Channel         string  `json:"channel"`
	Vendor          string  `json:"vendor"`
	BudgetAllocated float64 `json:"budget_allocated"`
	Notes           string  `json:"notes"`
}

func (p MediaPlanItemPayload) Document() MediaPlanItem {
	return MediaPlanItem{
		CampaignID:      p.CampaignID,
		Channel:         p.Channel,
		Vendor:          p.Vendor,
		BudgetAllocated: p.BudgetAllocated,
		Notes:           p.Notes,
	}
}

// ActionItemPayload is the body of an action item create request.
type ActionItemPayload struct {
	CampaignID string       `json:"campaign_id"`
	Title      string       `json:"title"`
	Owner      string       `json:"owner"`
	DueDate    *Date        `json:"due_date"`
	Status     ActionStatus `json:"status"`
	CostActual *float64     `json:"cost_actual"`
}

func (p ActionItemPayload) Document() ActionItem {
	return ActionItem{
		CampaignID: p.CampaignID,
		Title:      p.Title,
		Owner:      p.Owner,
		DueDate:    p.DueDate,
		Status:     p.Status,
		CostActual: p.CostActual,
	}
}

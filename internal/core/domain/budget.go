package domain

// BudgetSummary is the budget rollup of a single campaign.
type BudgetSummary struct {
	CampaignID  string  `json:"campaign_id"`
	BudgetTotal float64 `json:"budget_total"`
	Allocated   float64 `json:"allocated"`
	Remaining   float64 `json:"remaining"`
}

// NewBudgetSummary sums the allocations of items against total. Remaining
// never drops below zero: over-allocation is absorbed, not reported.
func NewBudgetSummary(campaignID string, total float64, items []MediaPlanItem) BudgetSummary {
	var allocated float64
	for _, it := range items {
		allocated += it.BudgetAllocated
	}
	return BudgetSummary{
		CampaignID:  campaignID,
		BudgetTotal: total,
		Allocated:   allocated,
		Remaining:   max(total-allocated, 0),
	}
}

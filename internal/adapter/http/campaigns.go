package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"agency-campaigns/internal/core/domain"
	"agency-campaigns/internal/core/schema"
)

// handleListCampaigns lists campaigns. The optional client_id query
// parameter restricts the result to one client.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context(), r.URL.Query().Get("client_id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleCreateCampaign stores a campaign. It answers 404 when client_id
// names a client that does not exist and 400 when it is not a valid id.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	payload, err := schema.Decode[domain.CampaignPayload](r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), payload.Document())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, insertedBody{InsertedID: id})
}

// handleCampaignBudget returns the budget rollup for the {id} path
// parameter.
func (h *Handler) handleCampaignBudget(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.CampaignBudget(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

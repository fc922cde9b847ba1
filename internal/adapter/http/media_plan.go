package httpadapter

import (
	"net/http"

	"agency-campaigns/internal/core/domain"
	"agency-campaigns/internal/core/schema"
)

func (h *Handler) handleListMediaPlan(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListMediaPlanItems(r.Context(), r.URL.Query().Get("campaign_id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleCreateMediaPlanItem(w http.ResponseWriter, r *http.Request) {
	payload, err := schema.Decode[domain.MediaPlanItemPayload](r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := h.svc.CreateMediaPlanItem(r.Context(), payload.Document())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, insertedBody{InsertedID: id})
}

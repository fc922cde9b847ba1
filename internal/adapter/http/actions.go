package httpadapter

import (
	"net/http"

	"agency-campaigns/internal/core/domain"
	"agency-campaigns/internal/core/schema"
)

func (h *Handler) handleListActions(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListActionItems(r.Context(), r.URL.Query().Get("campaign_id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleCreateAction(w http.ResponseWriter, r *http.Request) {
	payload, err := schema.Decode[domain.ActionItemPayload](r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := h.svc.CreateActionItem(r.Context(), payload.Document())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, insertedBody{InsertedID: id})
}

package httpadapter

import (
	"net/http"

	"agency-campaigns/internal/core/domain"
	"agency-campaigns/internal/core/schema"
)

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.ListClients(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, clients)
}

func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	payload, err := schema.Decode[domain.ClientPayload](r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := h.svc.CreateClient(r.Context(), payload.Document())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, insertedBody{InsertedID: id})
}

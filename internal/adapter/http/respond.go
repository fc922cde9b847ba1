package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"agency-campaigns/internal/core/domain"
	"agency-campaigns/internal/core/schema"
)

// errorBody is the JSON shape of every non-2xx response. Detail is either
// a message or, for validation failures, the list of field errors.
type errorBody struct {
	Detail any `json:"detail"`
}

type insertedBody struct {
	InsertedID string `json:"inserted_id"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps err onto a status code. Storage and unknown failures are
// logged and reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	status, detail := http.StatusInternalServerError, any("internal error")
	switch {
	case errors.As(err, &verr):
		status, detail = http.StatusUnprocessableEntity, verr.Fields
	case errors.Is(err, schema.ErrMalformedJSON):
		status, detail = http.StatusBadRequest, "invalid JSON"
	case errors.Is(err, domain.ErrInvalidID):
		status, detail = http.StatusBadRequest, "Invalid ID format"
	case errors.Is(err, domain.ErrClientNotFound):
		status, detail = http.StatusNotFound, "Client not found"
	case errors.Is(err, domain.ErrCampaignNotFound):
		status, detail = http.StatusNotFound, "Campaign not found"
	}

	attrs := []any{
		slog.String("path", r.URL.Path),
		slog.String("request_id", requestIDFrom(r.Context())),
		slog.Any("error", err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", attrs...)
	} else {
		h.logger.Debug("request rejected", attrs...)
	}
	h.writeJSON(w, status, errorBody{Detail: detail})
}

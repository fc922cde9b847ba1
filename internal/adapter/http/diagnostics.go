package httpadapter

import "net/http"

const serviceName = "Agency Campaign Manager API"

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"message": serviceName})
}

// handleDiagnostics reports store reachability. It always answers 200;
// failures are described in the body.
func (h *Handler) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Diagnostics(r.Context()))
}

package handler

import "net/http"

// Health returns the health status of the service. Both services are
// stateless, so liveness is all there is to report; the external providers
// are deliberately not probed here.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

package http

import "net/http"

// healthCheck answers 200 with an empty body for as long as the server
// accepts connections.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

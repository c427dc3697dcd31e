package handler

import "net/http"

// healthResponse is the body returned by the health check endpoint.
type healthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

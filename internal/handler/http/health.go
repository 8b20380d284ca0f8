package http

import (
	"net/http"
)

// healthBody is the literal health payload, byte for byte. It is stored
// pre-rendered so the response can never drift with encoder settings;
// [models.HealthResponse] mirrors its shape for clients that decode it.
const healthBody = `{"message": "Hello, Flask!", "status": "ok"}`

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(healthBody))
}

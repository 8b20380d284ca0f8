package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
)

// home renders the homepage. The template is executed into a buffer first:
// a rendering failure must produce a clean error response for this request
// instead of a half-written page.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var page bytes.Buffer
	if err := h.templates.ExecuteTemplate(&page, homeTemplate, nil); err != nil {
		log.Error().Err(err).Msg("error rendering homepage")

		if h.config.Debug {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page.Bytes())
}

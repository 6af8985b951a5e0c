package homepage

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/bnema/mytab/internal/domain/service"
)

const faviconMaxAge = 24 * 60 * 60

// FaviconHandlers serves cached bookmark icons.
type FaviconHandlers struct {
	source service.FaviconSource
}

// NewFaviconHandlers creates the favicon handler.
func NewFaviconHandlers(source service.FaviconSource) *FaviconHandlers {
	return &FaviconHandlers{source: source}
}

// HandleGet handles GET /api/favicon?url=<page url>.
func (h *FaviconHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	pageURL := r.URL.Query().Get("url")
	if pageURL == "" {
		writeError(w, r, fmt.Errorf("%w: url is required", errBadRequest))
		return
	}

	data, contentType, err := h.source.Icon(r.Context(), pageURL)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(faviconMaxAge))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

package homepage

import (
	"fmt"
	"net/http"

	"github.com/bnema/mytab/internal/application/usecase"
)

// NewSearchHandler redirects /search?q= to the selected engine, honoring !bang shortcuts.
func NewSearchHandler(searchUC *usecase.SearchUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := searchUC.BuildURL(r.Context(), r.URL.Query().Get("q"))
		if target == "" {
			writeError(w, r, fmt.Errorf("%w: q is required", errBadRequest))
			return
		}
		http.Redirect(w, r, target, http.StatusFound)
	}
}

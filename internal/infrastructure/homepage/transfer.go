package homepage

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/domain/validation"
	"github.com/bnema/mytab/internal/logging"
)

// TransferHandlers serves config export/import and browser bookmark import.
type TransferHandlers struct {
	transferUC *usecase.TransferConfigUseCase
	importUC   *usecase.ImportBookmarksUseCase
}

// NewTransferHandlers creates a new TransferHandlers instance.
func NewTransferHandlers(transferUC *usecase.TransferConfigUseCase, importUC *usecase.ImportBookmarksUseCase) *TransferHandlers {
	return &TransferHandlers{transferUC: transferUC, importUC: importUC}
}

type importBrowserRequest struct {
	Bookmarks []entity.BrowserBookmark `json:"bookmarks"`
	GroupID   string                   `json:"groupId"`
}

// HandleExport streams the export document as a download.
func (h *TransferHandlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.transferUC.ExportJSON(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// HandleImport validates and applies an uploaded export document (raw JSON body).
func (h *TransferHandlers) HandleImport(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body := http.MaxBytesReader(w, r.Body, validation.MaxConfigDocumentSize+1)

	logging.FromContext(r.Context()).Debug().Int64("content_length", r.ContentLength).Msg("handling config import")

	result, err := h.transferUC.Import(r.Context(), body, r.ContentLength)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, result)
}

// HandleSchema returns the JSON schema of the export document.
func (h *TransferHandlers) HandleSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := h.transferUC.DocumentSchema()
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(schema)
}

// HandleListBrowser returns the flattened browser bookmarks available for import.
func (h *TransferHandlers) HandleListBrowser(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, http.StatusOK, h.importUC.ListBrowserBookmarks(r.Context()))
}

// HandleImportBrowser imports the selected browser bookmarks into a group.
func (h *TransferHandlers) HandleImportBrowser(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[importBrowserRequest](w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	imported := h.importUC.ImportSelected(r.Context(), req.Bookmarks, req.GroupID)
	writeSuccess(w, r, http.StatusOK, imported)
}

package homepage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/domain/service"
	"github.com/bnema/mytab/internal/domain/validation"
	"github.com/bnema/mytab/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
)

const maxRequestBodySize = 1 << 20

// Response represents the standard response format sent back to the new-tab page.
// The page expects: { requestId, success, data?, error? }
type Response struct {
	RequestID string `json:"requestId"`
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response with data.
func NewSuccessResponse(requestID string, data any) Response {
	return Response{
		RequestID: requestID,
		Success:   true,
		Data:      data,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(requestID string, err error) Response {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	return Response{
		RequestID: requestID,
		Success:   false,
		Error:     errMsg,
	}
}

// errNotFound and errBadRequest classify handler failures that have no use case sentinel.
var (
	errNotFound   = errors.New("not found")
	errBadRequest = errors.New("bad request")
)

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(w, status, NewSuccessResponse(middleware.GetReqID(r.Context()), data))
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	log := logging.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	writeJSON(w, status, NewErrorResponse(middleware.GetReqID(r.Context()), err))
}

// statusFor maps domain and use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errNotFound), errors.Is(err, service.ErrNoFavicon):
		return http.StatusNotFound
	case errors.Is(err, validation.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadRequest),
		errors.Is(err, validation.ErrInvalidJSON),
		errors.Is(err, validation.ErrInvalidFormat),
		errors.Is(err, validation.ErrUnsupportedVersion),
		errors.Is(err, validation.ErrGroupsMalformed),
		errors.Is(err, validation.ErrBookmarksMalformed),
		errors.Is(err, validation.ErrGroupMissingField),
		errors.Is(err, validation.ErrBookmarkMissingField),
		errors.Is(err, usecase.ErrUnknownSearchEngine),
		errors.Is(err, usecase.ErrUnknownWallpaperSource),
		errors.Is(err, usecase.ErrUnknownHitokotoType):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrPreloadFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody unmarshals a JSON request body into T. An empty body yields the zero value.
func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var target T
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(&target); err != nil && !errors.Is(err, io.EOF) {
		return target, fmt.Errorf("%w: invalid request body: %w", errBadRequest, err)
	}
	return target, nil
}

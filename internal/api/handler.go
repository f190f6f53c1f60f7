package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"articlesum/internal/domain"
	"articlesum/internal/extract"
	"articlesum/internal/httputils"
	"articlesum/internal/logging"
	"articlesum/internal/service"
	"articlesum/internal/store"
	"articlesum/internal/summarizer"
)

const summarizeEndpoint = "/summarize"

// Service is what the handlers need from the summary service.
type Service interface {
	Summarize(ctx context.Context, endpoint string, req service.SummarizeRequest) (service.SummarizeResult, error)
	History(ctx context.Context, limit int) ([]domain.SummaryRecord, error)
	Analytics(ctx context.Context) (service.Analytics, error)
	Delete(ctx context.Context, id int64) error
}

// Options configure NewServer.
type Options struct {
	Version      string
	CORSOrigins  []string
	MaxBodyBytes int64
}

type Handler struct {
	logger       *logging.Logger
	svc          Service
	version      string
	maxBodyBytes int64
}

func NewHandler(logger *logging.Logger, svc Service, opts Options) *Handler {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 10 << 20
	}
	return &Handler{logger: logger, svc: svc, version: opts.Version, maxBodyBytes: opts.MaxBodyBytes}
}

// NewServer builds the routed handler with request ids, access logging and CORS.
func NewServer(logger *logging.Logger, svc Service, opts Options) http.Handler {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(logger, svc, opts))
	return withCORS(opts.CORSOrigins, withRequestID(withAccessLog(logger, mux)))
}

func (h *Handler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	httputils.JSONResponse(w, http.StatusOK, InfoResponse{
		Message: "Article Summarizer API",
		Version: h.version,
		Endpoints: map[string]string{
			"/summarize":    "POST - Summarize article from URL or text",
			"/history":      "GET - Get summary history",
			"/history/{id}": "DELETE - Delete a summary",
			"/analytics":    "GET - Get usage analytics",
			"/health":       "GET - Liveness check",
		},
	})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputils.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := RequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	var payload SummarizeRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error("[%s] JSON decode error: %v", reqID, err)
		httputils.HandleError(w, err)
		return
	}

	req := service.SummarizeRequest{URL: payload.URL, Text: payload.Text, Method: payload.Method}
	if payload.Sentences != nil {
		if *payload.Sentences < 1 {
			httputils.HandleError(w, &httputils.HTTPError{Code: http.StatusBadRequest, Message: "'sentences' must be at least 1"})
			return
		}
		req.Sentences = *payload.Sentences
	}

	res, err := h.svc.Summarize(ctx, summarizeEndpoint, req)
	if err != nil {
		h.logger.Error("[%s] Summarize failed: %v", reqID, err)
		httputils.HandleError(w, toHTTPError(err))
		return
	}

	httputils.JSONResponse(w, http.StatusOK, SummarizeResponse{
		ID:             res.ID,
		Summary:        res.Summary,
		WordCount:      res.WordCount,
		Source:         res.Source,
		Method:         res.Method,
		OriginalLength: res.OriginalLength,
		Title:          res.Title,
	})
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	limit := store.DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			httputils.HandleError(w, &httputils.HTTPError{Code: http.StatusBadRequest, Message: "'limit' must be a positive integer"})
			return
		}
		limit = n
	}

	history, err := h.svc.History(r.Context(), limit)
	if err != nil {
		h.logger.Error("[%s] History failed: %v", RequestID(r.Context()), err)
		httputils.HandleError(w, err)
		return
	}
	if history == nil {
		history = []domain.SummaryRecord{}
	}
	httputils.JSONResponse(w, http.StatusOK, HistoryResponse{History: history, Count: len(history)})
}

func (h *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Analytics(r.Context())
	if err != nil {
		h.logger.Error("[%s] Analytics failed: %v", RequestID(r.Context()), err)
		httputils.HandleError(w, err)
		return
	}
	httputils.JSONResponse(w, http.StatusOK, a)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httputils.HandleError(w, &httputils.HTTPError{Code: http.StatusBadRequest, Message: "Invalid summary id"})
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.logger.Error("[%s] Delete %d failed: %v", RequestID(r.Context()), id, err)
		}
		httputils.HandleError(w, toHTTPError(err))
		return
	}
	httputils.MessageResponse(w, "Summary deleted successfully")
}

// toHTTPError maps service, summarizer, extraction and store failures to
// client-facing statuses. Anything unrecognised stays a 500.
func toHTTPError(err error) error {
	badRequest := func(msg string) error {
		return &httputils.HTTPError{Code: http.StatusBadRequest, Message: msg}
	}
	switch {
	case errors.Is(err, service.ErrMissingInput):
		return badRequest("Either 'url' or 'text' must be provided")
	case errors.Is(err, service.ErrUnsupportedMethod):
		return badRequest(err.Error())
	case errors.Is(err, summarizer.ErrInputTooShort), errors.Is(err, summarizer.ErrEmptyDocument):
		return badRequest("Text is too short to summarize")
	case errors.Is(err, summarizer.ErrInvalidSentenceCount):
		return badRequest("'sentences' must be at least 1")
	case errors.Is(err, extract.ErrInvalidURL):
		return badRequest(err.Error())
	case errors.Is(err, extract.ErrDownload), errors.Is(err, extract.ErrNoContent):
		return badRequest("Failed to extract article: " + err.Error())
	case errors.Is(err, store.ErrNotFound):
		return &httputils.HTTPError{Code: http.StatusNotFound, Message: "Summary not found"}
	}
	return err
}

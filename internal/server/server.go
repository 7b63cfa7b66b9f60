package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/iwvelando/opportunity-calculator/internal/calculator"
	"github.com/iwvelando/opportunity-calculator/internal/config"
	"github.com/iwvelando/opportunity-calculator/pkg/constants"
	"github.com/iwvelando/opportunity-calculator/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

// Options tunes the HTTP handler. Zero values select the defaults.
type Options struct {
	MaxBodySize       int64
	Version           string
	RequestsPerSecond float64
	Burst             int
	// Defaults is the input a new session starts from and the base that
	// partial payloads are applied to. Nil means calculator.DefaultInput().
	Defaults *calculator.Input
}

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	defaults    calculator.Input
}

// NewHandler constructs the HTTP handler that serves the web UI and calculator API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	defaults := calculator.DefaultInput()
	if opts.Defaults != nil {
		defaults = *opts.Defaults
	}

	h := &handler{logger: logger, maxBodySize: opts.MaxBodySize, version: trimmedVersion, defaults: defaults}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware(logger))
	r.Use(loggingMiddleware(logger))

	r.Route("/api", func(r chi.Router) {
		r.Use(rateLimitMiddleware(logger, opts.RequestsPerSecond, opts.Burst))

		r.Get("/version", h.handleVersion)
		r.Get("/defaults", h.handleDefaults)
		r.Post("/evaluate", h.handleEvaluate)
		r.Post("/edit", h.handleEdit)
		r.Post("/export", h.handleExport)
		r.Get("/chart.csv", h.handleChartCSV)
	})

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.Handle("/*", http.FileServer(http.FS(sub)))

	return r
}

type evaluateResponse struct {
	output.Document
	Duration  string `json:"duration"`
	RequestID string `json:"requestId,omitempty"`
}

type editRequest struct {
	Input map[string]interface{} `json:"input"`
	Field string                 `json:"field"`
	Value interface{}            `json:"value"`
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"input":    h.defaults,
		"outlooks": []string{calculator.OutlookConservative, calculator.OutlookModerate, calculator.OutlookHigh},
		"serendipity": map[string]float64{
			"min":  calculator.MinSerendipityPercent,
			"max":  calculator.MaxSerendipityPercent,
			"step": calculator.SerendipityPercentStep,
		},
	})
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEvaluate"
	start := time.Now()

	var payload map[string]interface{}
	if status, err := h.decodeBody(w, r, &payload); err != nil {
		h.respondErrorWithOp(w, r, status, err.Error(), op)
		return
	}

	in, err := h.inputFromPayload(payload)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondEvaluation(w, r, in, start, op)
}

func (h *handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEdit"
	start := time.Now()

	var req editRequest
	if status, err := h.decodeBody(w, r, &req); err != nil {
		h.respondErrorWithOp(w, r, status, err.Error(), op)
		return
	}
	if strings.TrimSpace(req.Field) == "" {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "missing field", op)
		return
	}

	in, err := h.inputFromPayload(req.Input)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	in, err = in.With(req.Field, coerceString(req.Value))
	if err == nil {
		err = checkTimeframes(in)
	}
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondEvaluation(w, r, in, start, op)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"

	var payload map[string]interface{}
	if status, err := h.decodeBody(w, r, &payload); err != nil {
		h.respondErrorWithOp(w, r, status, err.Error(), op)
		return
	}

	in, err := h.inputFromPayload(payload)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	conf := config.Configuration{Baseline: in.Baseline, Opportunity: in.Opportunity}
	yamlBytes, err := yaml.Marshal(conf)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func (h *handler) handleChartCSV(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleChartCSV"

	in := h.defaults
	keys := make([]string, 0, len(r.URL.Query()))
	for key := range r.URL.Query() {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var err error
	for _, key := range keys {
		in, err = in.With(key, r.URL.Query().Get(key))
		if err != nil {
			h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
			return
		}
	}
	if err := checkTimeframes(in); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	eval := calculator.Evaluate(h.logger, in)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="opportunity-chart.csv"`)
	w.WriteHeader(http.StatusOK)
	output.CsvFormat(w, eval)
}

func (h *handler) respondEvaluation(w http.ResponseWriter, r *http.Request, in calculator.Input, start time.Time, op string) {
	eval := calculator.Evaluate(h.logger, in)
	elapsed := time.Since(start)

	response := evaluateResponse{
		Document:  output.NewDocument(eval),
		Duration:  elapsed.String(),
		RequestID: requestIDFromContext(r.Context()),
	}

	h.logger.Debug("evaluation computed",
		zap.String("op", op),
		zap.String("request_id", response.RequestID),
		zap.Int("points", len(response.Chart)),
		zap.Int("warnings", len(response.Warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

// decodeBody decodes a size-limited JSON body into v and returns the status
// code to answer with on failure.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds limit of %d bytes", h.maxBodySize)
		}
		if errors.Is(err, io.EOF) {
			return http.StatusBadRequest, errors.New("empty request body")
		}
		return http.StatusBadRequest, fmt.Errorf("failed to decode request: %w", err)
	}
	return http.StatusOK, nil
}

// inputFromPayload applies a {"baseline": {...}, "opportunity": {...}}
// payload on top of the handler defaults. Values may be numbers or strings.
func (h *handler) inputFromPayload(payload map[string]interface{}) (calculator.Input, error) {
	in := h.defaults

	for _, section := range []string{"baseline", "opportunity"} {
		raw, ok := payload[section]
		if !ok || raw == nil {
			continue
		}
		fields, ok := raw.(map[string]interface{})
		if !ok {
			return in, fmt.Errorf("invalid %s payload: expected object", section)
		}

		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		var err error
		for _, name := range names {
			in, err = in.With(section+"."+name, coerceString(fields[name]))
			if err != nil {
				return in, err
			}
		}
	}

	return in, checkTimeframes(in)
}

// checkTimeframes rejects timeframes whose chart would not fit in a
// response. The chart holds one point per baseline week.
func checkTimeframes(in calculator.Input) error {
	timeframes := []struct {
		field string
		weeks int
	}{
		{calculator.FieldBaselineTimeframeWeeks, in.Baseline.TimeframeWeeks},
		{calculator.FieldOpportunityTimeframeWeeks, in.Opportunity.TimeframeWeeks},
	}
	for _, tf := range timeframes {
		if tf.weeks > constants.MaxTimeframeWeeks {
			return fmt.Errorf("%s must be at most %d weeks, got %d", tf.field, constants.MaxTimeframeWeeks, tf.weeks)
		}
	}
	return nil
}

func coerceString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		if v {
			return "1"
		}
		return "0"
	}
	return ""
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Warn("calculator request failed",
		zap.String("op", op),
		zap.String("request_id", requestIDFromContext(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(h.logger, w, status, payload)
}

func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}

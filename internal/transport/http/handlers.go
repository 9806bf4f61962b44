package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fedutinova/regexsmith/internal/common"
	"github.com/fedutinova/regexsmith/internal/config"
	"github.com/fedutinova/regexsmith/internal/regexgen"
	"github.com/fedutinova/regexsmith/internal/validation"
	"github.com/go-chi/chi/v5"
)

const (
	ServiceName = "Smart AI Regex Generator"
	Version     = "2.0"

	maxBodyBytes = 1 << 20
)

var endpoints = map[string]string{
	"generate": "/api/generate (POST)",
	"test":     "/api/test (POST)",
	"examples": "/api/examples (GET)",
	"health":   "/ (GET)",
}

type Handlers struct {
	Service *regexgen.Service
	Config  config.Config
}

func (h *Handlers) Routers(r chi.Router) {
	r.Get("/", h.index)
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.generate)
		r.Post("/test", h.test)
		r.Get("/examples", h.examples)
	})

	r.NotFound(h.notFound)
	r.MethodNotAllowed(h.methodNotAllowed)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success":   false,
		"error":     msg,
		"timestamp": timestamp(),
	})
}

func writeValidation(w http.ResponseWriter, errs validation.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success":   false,
		"error":     errs.First(),
		"details":   errs,
		"timestamp": timestamp(),
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrBadRequest, err)
	}
	return nil
}

func writeDecodeError(w http.ResponseWriter, err error) {
	if common.IsBadRequest(err) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	slog.Error("decode request", "err", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// generateFailure maps a Service.Generate error to a status and message.
func generateFailure(err error) (int, string) {
	switch {
	case common.IsNotConfigured(err):
		return http.StatusInternalServerError,
			"API key not configured. Please set DEEPSEEK_API_KEY environment variable."
	case common.IsUpstream(err):
		return http.StatusBadGateway, fmt.Sprintf("API request failed: %v", err)
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (h *Handlers) generate(w http.ResponseWriter, r *http.Request) {
	var req validation.GenerateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	req.Prompt = strings.TrimSpace(req.Prompt)

	if errs := validation.ValidateGenerate(req, h.Config.MaxPromptLength); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	gen, err := h.Service.Generate(r.Context(), req.Prompt)
	if err != nil {
		status, msg := generateFailure(err)
		slog.Error("generation failed", "prompt", req.Prompt, "error", err)
		writeJSON(w, status, map[string]any{
			"success":               false,
			"prompt":                req.Prompt,
			"regex":                 nil,
			"error":                 msg,
			"extraction_successful": false,
			"timestamp":             timestamp(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":               true,
		"id":                    gen.ID,
		"prompt":                gen.Prompt,
		"regex":                 gen.Regex,
		"strategy":              gen.Strategy,
		"full_response":         gen.FullResponse,
		"model":                 gen.Model,
		"tokens_used":           gen.TokensUsed,
		"processing_time_ms":    gen.ProcessingTimeMs,
		"extraction_successful": gen.Extracted,
		"timestamp":             timestamp(),
	})
}

func (h *Handlers) test(w http.ResponseWriter, r *http.Request) {
	var req validation.TestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	req.Regex = strings.TrimSpace(req.Regex)

	if errs := validation.ValidateTest(req); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	out := h.Service.Test(req.Regex, *req.TestString)

	resp := map[string]any{
		"success":     out.Valid,
		"regex":       req.Regex,
		"test_string": *req.TestString,
		"matches":     out.Matches,
		"match_count": out.Count,
		"is_valid":    out.Valid,
		"timestamp":   timestamp(),
	}
	if out.Info != nil {
		resp["pattern_info"] = out.Info
	}
	if !out.Valid {
		resp["error"] = "Invalid regex pattern: " + out.Error
		slog.Info("regex test rejected", "regex", req.Regex, "error", out.Error)
	} else {
		slog.Info("regex test done", "regex", req.Regex, "matches", out.Count)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           StatusHealthy,
		"service":          ServiceName,
		"powered_by":       h.Config.LLM.Model,
		"version":          Version,
		"timestamp":        timestamp(),
		"generator_ready":  h.Service.Configured(),
		"catch_all_policy": h.Service.CatchAll().String(),
		"endpoints":        endpoints,
		"features": []string{
			"Labeled, delimited and heuristic regex extraction",
			"Keyword fallback patterns",
			"Capture-group aware regex testing",
			"Retry on transient generation failures",
		},
	})
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"success":             false,
		"error":               "Endpoint not found",
		"available_endpoints": []string{"/", "/api/generate", "/api/test", "/api/examples"},
		"timestamp":           timestamp(),
	})
}

func (h *Handlers) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path))
}

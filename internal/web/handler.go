package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Anteater2019/ai-minecraft-platform/internal/addon"
	"github.com/Anteater2019/ai-minecraft-platform/internal/generate"
	"github.com/Anteater2019/ai-minecraft-platform/internal/mob"
)

// defaultFrontendOrigin is the development frontend allowed by CORS when no
// origin is configured.
const defaultFrontendOrigin = "http://localhost:5173"

// MobGenerator produces a validated mob record from a free-form prompt.
type MobGenerator interface {
	Generate(ctx context.Context, prompt string) (mob.Mob, error)
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	generator MobGenerator
	origin    string
	tracer    trace.Tracer
}

// NewHandler builds the HTTP handler for the generation service.
func NewHandler(generator MobGenerator, frontendOrigin string) http.Handler {
	if strings.TrimSpace(frontendOrigin) == "" {
		frontendOrigin = defaultFrontendOrigin
	}
	h := &handler{
		generator: generator,
		origin:    frontendOrigin,
		tracer:    otel.Tracer("internal/web"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/generate-json", h.handleGenerateJSON)
	mux.HandleFunc("/generate-addon", h.handleGenerateAddon)
	return h.withCORS(mux)
}

// withCORS allows the configured frontend origin and answers preflight
// requests before routing.
func (h *handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleGenerateJSON(w http.ResponseWriter, r *http.Request) {
	record, ok := h.generateRecord(w, r, "generate-json")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *handler) handleGenerateAddon(w http.ResponseWriter, r *http.Request) {
	record, ok := h.generateRecord(w, r, "generate-addon")
	if !ok {
		return
	}

	archive, err := addon.Build(record)
	if err != nil {
		log.Printf("build addon for %q: %v", record.Name, err)
		writeJSONError(w, http.StatusInternalServerError, "failed to assemble addon")
		return
	}

	id := mob.Sanitize(record.Name)
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+id+`.mcaddon"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

// generateRecord handles the shared request decode + generation path and
// writes the error response itself when generation fails.
func (h *handler) generateRecord(w http.ResponseWriter, r *http.Request, span string) (mob.Mob, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return mob.Mob{}, false
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return mob.Mob{}, false
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeJSONError(w, http.StatusBadRequest, "prompt is required")
		return mob.Mob{}, false
	}

	ctx, genSpan := h.tracer.Start(r.Context(), span,
		trace.WithAttributes(attribute.Int("prompt_length", len(req.Prompt))))
	record, err := h.generator.Generate(ctx, req.Prompt)
	if err != nil {
		genSpan.RecordError(err)
	}
	genSpan.End()

	switch {
	case err == nil:
		return record, true
	case errors.Is(err, generate.ErrUnavailable):
		writeJSONError(w, http.StatusServiceUnavailable, "generation service is unreachable")
		return mob.Mob{}, false
	default:
		log.Printf("generate mob: %v", err)
		writeJSONError(w, http.StatusUnprocessableEntity, "failed to generate valid mob data: "+err.Error())
		return mob.Mob{}, false
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(payload)
}

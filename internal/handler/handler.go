// Package handler exposes the conversation and the archive generation over
// HTTP.
package handler

import (
	"context"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"benefit-engine/internal/engine"
	"benefit-engine/internal/model"
	"benefit-engine/internal/observability"
	"benefit-engine/internal/session"
)

const sessionIDKey = "session_id"

// Generator builds the archive for a finished profile.
type Generator interface {
	Generate(ctx context.Context, p *model.Profile) (*engine.Result, error)
}

type Deps struct {
	Sessions          *session.Store
	Generator         Generator
	Logger            *zap.Logger
	Metrics           *observability.Metrics
	MetricsHandler    fasthttp.RequestHandler
	GenerationTimeout time.Duration
}

type Handler struct {
	sessions          *session.Store
	generator         Generator
	logger            *zap.Logger
	metrics           *observability.Metrics
	metricsHandler    fasthttp.RequestHandler
	generationTimeout time.Duration
}

func New(d Deps) *Handler {
	h := &Handler{
		sessions:          d.Sessions,
		generator:         d.Generator,
		logger:            observability.OrNop(d.Logger),
		metrics:           d.Metrics,
		metricsHandler:    d.MetricsHandler,
		generationTimeout: d.GenerationTimeout,
	}
	if h.generationTimeout <= 0 {
		h.generationTimeout = 30 * time.Second
	}
	return h
}

// Handle is the server's request handler.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	h.route(ctx)

	fields := []zap.Field{
		zap.String("method", observability.SanitizeMethod(string(ctx.Method()))),
		zap.String("path", observability.SanitizePath(string(ctx.Path()))),
		zap.String("route", observability.Route(string(ctx.Path()))),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	}
	if id, ok := ctx.UserValue(sessionIDKey).(string); ok {
		fields = append(fields, zap.String("session_id", observability.SanitizeID(id)))
	}
	if ctx.Response.StatusCode() >= fasthttp.StatusInternalServerError {
		h.logger.Error("request", fields...)
		return
	}
	h.logger.Info("request", fields...)
}

func (h *Handler) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	switch path {
	case "/healthz":
		if !ctx.IsGet() {
			methodNotAllowed(ctx)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		return
	case "/metrics":
		if h.metricsHandler == nil {
			writeError(ctx, fasthttp.StatusNotFound, "Not found")
			return
		}
		h.metricsHandler(ctx)
		return
	case "/api/sessions":
		if !ctx.IsPost() {
			methodNotAllowed(ctx)
			return
		}
		h.createSession(ctx)
		return
	case "/api/generate":
		if !ctx.IsPost() {
			methodNotAllowed(ctx)
			return
		}
		h.generateFromBody(ctx)
		return
	}

	rest, ok := strings.CutPrefix(path, "/api/sessions/")
	if !ok || rest == "" {
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
		return
	}
	id, action, _ := strings.Cut(rest, "/")
	ctx.SetUserValue(sessionIDKey, id)

	method := string(ctx.Method())
	switch {
	case action == "" && method == fasthttp.MethodGet:
		h.getSession(ctx, id)
	case action == "" && method == fasthttp.MethodDelete:
		h.deleteSession(ctx, id)
	case action == "answers" && method == fasthttp.MethodPost:
		h.answer(ctx, id)
	case action == "restart" && method == fasthttp.MethodPost:
		h.restart(ctx, id)
	case action == "forms" && method == fasthttp.MethodGet:
		h.previewForms(ctx, id)
	case action == "generate" && method == fasthttp.MethodPost:
		h.generateForSession(ctx, id)
	case action == "" || action == "answers" || action == "restart" || action == "forms" || action == "generate":
		methodNotAllowed(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":500,"message":"Failed to encode response"}`)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

func methodNotAllowed(ctx *fasthttp.RequestCtx) {
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
}

package handler

import (
	"context"
	"errors"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"benefit-engine/internal/engine"
	"benefit-engine/internal/flow"
	"benefit-engine/internal/model"
)

const generationErrorPrefix = "Fehler bei der PDF-Erstellung: "

var errIncomplete = errors.New("questionnaire is not complete")

func (h *Handler) generateForSession(ctx *fasthttp.RequestCtx, id string) {
	var profile *model.Profile
	err := h.sessions.Do(id, func(c *flow.Conversation) error {
		if !c.Done() {
			return errIncomplete
		}
		profile = c.Profile()
		return nil
	})
	if errors.Is(err, errIncomplete) {
		writeError(ctx, fasthttp.StatusConflict, "Der Fragebogen ist noch nicht abgeschlossen")
		return
	}
	if err != nil {
		h.sessionError(ctx, err)
		return
	}
	h.generate(ctx, profile)
}

// generateFromBody accepts {"profile": {...}} or a bare profile.
func (h *Handler) generateFromBody(ctx *fasthttp.RequestCtx) {
	body := ctx.PostBody()

	var req model.GenerateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	profile := req.Profile
	if profile == nil {
		profile = model.NewProfile()
		if err := json.Unmarshal(body, profile); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}
	h.generate(ctx, profile)
}

func (h *Handler) generate(ctx *fasthttp.RequestCtx, p *model.Profile) {
	genCtx, cancel := context.WithTimeout(ctx, h.generationTimeout)
	defer cancel()

	res, err := h.generator.Generate(genCtx, p)
	if err != nil {
		var genErr *engine.GenerationError
		if !errors.As(err, &genErr) {
			writeError(ctx, fasthttp.StatusInternalServerError, generationErrorPrefix+err.Error())
			return
		}
		h.logger.Error("generation failed",
			zap.String("generation_id", genErr.Metadata.GenerationID),
			zap.String("form_id", genErr.FormID),
			zap.String("code", genErr.Code),
			zap.Error(genErr.Err),
		)
		if genErr.Metadata.GenerationID != "" {
			ctx.Response.Header.Set("X-Generation-Id", genErr.Metadata.GenerationID)
		}
		writeJSON(ctx, fasthttp.StatusInternalServerError, model.GenerationErrorResponse{
			ErrorResponse: model.ErrorResponse{
				Status:  fasthttp.StatusInternalServerError,
				Message: generationErrorPrefix + err.Error(),
			},
			Metadata: genErr.Metadata,
			Messages: []model.Message{genErr.Message()},
		})
		return
	}

	for _, m := range res.Messages {
		h.logger.Debug("field skipped",
			zap.String("generation_id", res.Metadata.GenerationID),
			zap.String("form_id", m.FormID),
			zap.String("field", m.Field),
		)
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("application/zip")
	ctx.Response.Header.Set("Content-Disposition", contentDisposition(res.Filename))
	ctx.Response.Header.Set("X-Generation-Id", res.Metadata.GenerationID)
	ctx.Response.Header.Set("X-Skipped-Fields", strconv.Itoa(res.Metadata.SkippedFields))
	ctx.SetBody(res.Archive)
}

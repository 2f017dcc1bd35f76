package handler

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"benefit-engine/internal/flow"
	"benefit-engine/internal/forms"
	"benefit-engine/internal/jsonpatch"
	"benefit-engine/internal/model"
	"benefit-engine/internal/questions"
	"benefit-engine/internal/session"
)

func (h *Handler) createSession(ctx *fasthttp.RequestCtx) {
	id := h.sessions.Create()
	ctx.SetUserValue(sessionIDKey, id)

	var resp model.SessionResponse
	err := h.sessions.Do(id, func(c *flow.Conversation) error {
		resp = sessionView(id, c, false)
		return nil
	})
	if err != nil {
		h.sessionError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusCreated, resp)
}

func (h *Handler) getSession(ctx *fasthttp.RequestCtx, id string) {
	var resp model.SessionResponse
	err := h.sessions.Do(id, func(c *flow.Conversation) error {
		resp = sessionView(id, c, true)
		return nil
	})
	if err != nil {
		h.sessionError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) deleteSession(ctx *fasthttp.RequestCtx, id string) {
	if !h.sessions.Delete(id) {
		h.sessionError(ctx, session.ErrSessionNotFound)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *Handler) answer(ctx *fasthttp.RequestCtx, id string) {
	var req model.AnswerRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var resp model.AnswerResponse
	err := h.sessions.Do(id, func(c *flow.Conversation) error {
		before := c.Profile()
		section := c.Section()

		var err error
		if req.Skip {
			err = c.Skip()
		} else {
			err = c.Submit(req.Value, req.Display)
		}
		if err != nil {
			return err
		}
		h.metrics.IncAnswer(section)

		patch, err := jsonpatch.Profiles(before, c.Profile())
		if err != nil {
			return err
		}
		resp = model.AnswerResponse{SessionResponse: sessionView(id, c, false), Patch: patch}
		return nil
	})
	if err != nil {
		h.sessionError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) restart(ctx *fasthttp.RequestCtx, id string) {
	var resp model.SessionResponse
	err := h.sessions.Do(id, func(c *flow.Conversation) error {
		c.Restart()
		resp = sessionView(id, c, true)
		return nil
	})
	if err != nil {
		h.sessionError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) previewForms(ctx *fasthttp.RequestCtx, id string) {
	var resp model.FormsResponse
	err := h.sessions.Do(id, func(c *flow.Conversation) error {
		p := c.Profile().Clone()
		p.Normalize()
		resp = formsView(forms.RequiredForms(p), forms.DocumentChecklist(p))
		return nil
	})
	if err != nil {
		h.sessionError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// sessionError maps conversation and store errors onto HTTP statuses.
func (h *Handler) sessionError(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		writeError(ctx, fasthttp.StatusNotFound, "Session not found")
	case errors.Is(err, flow.ErrFlowComplete):
		writeError(ctx, fasthttp.StatusConflict, "All questions have been answered")
	case errors.Is(err, questions.ErrAnswerRequired), errors.Is(err, questions.ErrInvalidOption):
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
	default:
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
	}
}

func sessionView(id string, c *flow.Conversation, withProfile bool) model.SessionResponse {
	p := c.Profile()
	history := c.History()

	resp := model.SessionResponse{
		SessionID: id,
		Done:      c.Done(),
		Progress: model.Progress{
			Section:       c.Section(),
			TotalSections: questions.TotalSections,
			Answered:      len(history),
		},
	}
	if q := c.Current(); q != nil {
		resp.Prompt = promptView(q, p)
	}
	if withProfile {
		resp.Profile = p
		resp.History = make([]model.HistoryEntry, len(history))
		for i, a := range history {
			resp.History[i] = model.HistoryEntry{
				QuestionID: a.Question.ID,
				Text:       a.Question.Text,
				Answer:     a.Answer,
				Display:    a.Display,
			}
		}
	}
	return resp
}

func promptView(q *questions.Question, p *model.Profile) *model.Prompt {
	prompt := &model.Prompt{
		ID:           q.ID,
		Section:      q.Section,
		SectionLabel: q.SectionLabel,
		Text:         q.Text,
		Subtext:      q.Subtext,
		Type:         string(q.Type),
		Placeholder:  q.Placeholder,
		Required:     q.Required,
		Suggestion:   q.Suggestion(p),
	}
	for _, o := range q.Options {
		prompt.Options = append(prompt.Options, model.Option{Value: o.Value, Label: o.Label})
	}
	return prompt
}

func formsView(required []forms.RequiredForm, checklist []string) model.FormsResponse {
	views := make([]model.FormView, len(required))
	for i, f := range required {
		views[i] = model.FormView{
			ID:          f.ID,
			Name:        f.Name,
			Filename:    f.Filename(),
			Description: f.Description,
			ForPerson:   f.ForPerson,
		}
	}
	return model.FormsResponse{Forms: views, Checklist: checklist}
}

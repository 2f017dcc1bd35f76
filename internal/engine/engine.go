// Package engine turns a finished profile into the downloadable archive:
// resolve forms, map fields, fill templates, package.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"benefit-engine/internal/archive"
	"benefit-engine/internal/forms"
	"benefit-engine/internal/mapping"
	"benefit-engine/internal/model"
	"benefit-engine/internal/observability"
	"benefit-engine/internal/pdffill"
	"benefit-engine/internal/templates"
)

const (
	DefaultArchivePrefix = "Buergergeld-Antrag"
	DefaultFallbackName  = "Formulare"

	maxParallelFills = 4
)

// GenerationError is the single terminal error of a failed generation.
// FormID is empty when packaging failed. Metadata is filled in by the
// generator with a FAILURE outcome.
type GenerationError struct {
	FormID   string
	Code     string
	Err      error
	Metadata model.GenerationMetadata
}

func (e *GenerationError) Error() string {
	if e.FormID == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.FormID, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Message reports the failure as a CRITICAL diagnostic.
func (e *GenerationError) Message() model.Message {
	return model.Message{
		Level:   model.LevelCritical,
		Code:    e.Code,
		Message: e.Err.Error(),
		FormID:  e.FormID,
	}
}

type Options struct {
	ArchivePrefix string
	FallbackName  string
	Logger        *zap.Logger
	Metrics       *observability.Metrics
	Now           func() time.Time
}

type Generator struct {
	templates templates.Source
	filler    pdffill.Filler
	prefix    string
	fallback  string
	logger    *zap.Logger
	metrics   *observability.Metrics
	now       func() time.Time
}

func New(src templates.Source, filler pdffill.Filler, opts Options) *Generator {
	g := &Generator{
		templates: src,
		filler:    filler,
		prefix:    opts.ArchivePrefix,
		fallback:  opts.FallbackName,
		logger:    observability.OrNop(opts.Logger),
		metrics:   opts.Metrics,
		now:       opts.Now,
	}
	if g.prefix == "" {
		g.prefix = DefaultArchivePrefix
	}
	if g.fallback == "" {
		g.fallback = DefaultFallbackName
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

type Result struct {
	Metadata  model.GenerationMetadata
	Filename  string
	Archive   []byte
	Forms     []forms.RequiredForm
	Checklist []string
	Messages  []model.Message
}

type filled struct {
	data    []byte
	skipped []string
}

// Generate builds the archive for p. p is not modified. Running it twice on
// the same profile and clock yields the same forms, fields and checklist.
func (g *Generator) Generate(ctx context.Context, p *model.Profile) (*Result, error) {
	start := g.now()
	id := uuid.New().String()
	logger := g.logger.With(zap.String("generation_id", id))

	snapshot := p.Clone()
	snapshot.Normalize()

	required := forms.RequiredFormsAt(snapshot, start)
	checklist := forms.DocumentChecklist(snapshot)

	slots := make([]filled, len(required))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelFills)
	for i, f := range required {
		eg.Go(func() error {
			tmpl, err := g.templates.Load(egCtx, f.Template)
			if err != nil {
				return &GenerationError{FormID: f.ID, Code: model.CodeTemplateMissing, Err: err}
			}
			res, err := g.filler.Fill(egCtx, tmpl, mapping.MapForm(snapshot, f, start))
			if err != nil {
				return &GenerationError{FormID: f.ID, Code: model.CodeFillFailed, Err: err}
			}
			slots[i] = filled{data: res.Data, skipped: res.Skipped}
			g.metrics.IncFormFilled(string(f.Template), len(res.Skipped))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, g.fail(logger, id, start, len(required), err)
	}

	var messages []model.Message
	entries := make([]archive.Entry, len(required))
	for i, f := range required {
		entries[i] = archive.Entry{Name: archive.DocumentName(f.Name, f.ForPerson), Data: slots[i].data}
		for _, name := range slots[i].skipped {
			messages = append(messages, model.Message{
				ID:      len(messages),
				Level:   model.LevelWarning,
				Code:    model.CodeFieldSkipped,
				Message: fmt.Sprintf("Feld %s konnte nicht gesetzt werden", name),
				FormID:  f.ID,
				Field:   name,
			})
		}
	}

	data, err := archive.Build(entries, forms.ChecklistFilename, forms.ChecklistText(checklist, required), start)
	if err != nil {
		return nil, g.fail(logger, id, start, len(required), &GenerationError{Code: model.CodePackagingFailed, Err: err})
	}

	if messages == nil {
		messages = []model.Message{}
	}
	completed := g.now()
	elapsed := completed.Sub(start)
	g.metrics.IncGeneration(observability.OutcomeSuccess)
	g.metrics.ObserveGeneration(elapsed)
	logger.Info("archive generated",
		zap.Int("forms", len(required)),
		zap.Int("skipped_fields", len(messages)),
		zap.Int("bytes", len(data)),
		zap.Duration("duration", elapsed),
	)

	return &Result{
		Metadata: model.GenerationMetadata{
			GenerationID:  id,
			StartedAt:     start.UTC().Format(time.RFC3339),
			CompletedAt:   completed.UTC().Format(time.RFC3339),
			DurationMs:    elapsed.Milliseconds(),
			Outcome:       model.OutcomeSuccess,
			FormCount:     len(required),
			SkippedFields: len(messages),
		},
		Filename:  archive.Filename(g.prefix, snapshot.Personal.LastName, g.fallback),
		Archive:   data,
		Forms:     required,
		Checklist: checklist,
		Messages:  messages,
	}, nil
}

func (g *Generator) fail(logger *zap.Logger, id string, start time.Time, formCount int, err error) error {
	completed := g.now()
	elapsed := completed.Sub(start)
	g.metrics.IncGeneration(observability.OutcomeFailure)
	g.metrics.ObserveGeneration(elapsed)
	logger.Error("archive generation failed", zap.Error(err))

	genErr, ok := err.(*GenerationError)
	if !ok {
		genErr = &GenerationError{Code: model.CodeFillFailed, Err: err}
	}
	genErr.Metadata = model.GenerationMetadata{
		GenerationID: id,
		StartedAt:    start.UTC().Format(time.RFC3339),
		CompletedAt:  completed.UTC().Format(time.RFC3339),
		DurationMs:   elapsed.Milliseconds(),
		Outcome:      model.OutcomeFailure,
		FormCount:    formCount,
	}
	return genErr
}

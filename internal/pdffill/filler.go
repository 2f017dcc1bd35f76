// Package pdffill writes field maps into PDF form templates.
package pdffill

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/form"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"benefit-engine/internal/mapping"
)

// Result is a filled document plus the names of the fields that could not
// be written, either because the template lacks them or because their type
// does not match the value.
type Result struct {
	Data    []byte
	Skipped []string
}

type Filler interface {
	Fill(ctx context.Context, template []byte, fields mapping.FieldMap) (*Result, error)
}

var disableConfigDir sync.Once

type fillFunc func(rs io.ReadSeeker, rd io.Reader, w io.Writer, conf *model.Configuration) error

// PDF fills AcroForm templates with pdfcpu.
type PDF struct {
	conf     *model.Configuration
	fillForm fillFunc
}

func New() *PDF {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDF{conf: conf, fillForm: api.FillForm}
}

// config returns a private copy; pdfcpu writes the command into it.
func (f *PDF) config() *model.Configuration {
	c := *f.conf
	return &c
}

// Fill writes fields into template. A template without a form comes back
// unchanged with every field skipped; only unreadable bytes are an error.
func (f *PDF) Fill(ctx context.Context, template []byte, fields mapping.FieldMap) (*Result, error) {
	tmplFields, err := f.formFields(template)
	if err != nil {
		return nil, fmt.Errorf("reading form fields: %w", err)
	}
	if len(tmplFields) == 0 {
		return &Result{Data: template, Skipped: fields.Names()}, nil
	}

	entries, skipped := plan(tmplFields, fields)
	if len(entries) == 0 {
		return &Result{Data: template, Skipped: skipped}, nil
	}

	// Fast path: everything in one pass.
	if out, err := f.fill(template, entries); err == nil {
		return &Result{Data: out, Skipped: skipped}, nil
	}

	// One field at a time so a single bad field only drops itself.
	data := template
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := f.fill(data, []entry{e})
		if err != nil {
			skipped = append(skipped, e.name)
			continue
		}
		data = out
	}
	return &Result{Data: data, Skipped: skipped}, nil
}

// formFields lists the template's fields, nil when it carries no AcroForm.
func (f *PDF) formFields(template []byte) ([]form.Field, error) {
	conf := f.config()
	conf.Cmd = model.LISTFORMFIELDS
	pctx, err := api.ReadValidateAndOptimize(bytes.NewReader(template), conf)
	if err != nil {
		return nil, err
	}
	if pctx.Form == nil {
		return nil, nil
	}
	if _, ok := pctx.Form.Find("Fields"); !ok {
		return nil, nil
	}
	fields, _, err := form.FormFields(pctx)
	return fields, err
}

func (f *PDF) fill(template []byte, entries []entry) ([]byte, error) {
	payload, err := json.Marshal(encode(entries))
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := f.fillForm(bytes.NewReader(template), bytes.NewReader(payload), &out, f.config()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type entryKind int

const (
	entryText entryKind = iota
	entryDate
	entryCheckbox
)

type entry struct {
	kind  entryKind
	id    string
	name  string
	pages []int
	value string
}

// plan matches the field map against the template's fields, in sorted name
// order. Names the template lacks and values of the wrong kind are skipped.
func plan(tmpl []form.Field, values mapping.FieldMap) ([]entry, []string) {
	byName := make(map[string]form.Field, len(tmpl))
	for _, fld := range tmpl {
		byName[fld.Name] = fld
	}

	var entries []entry
	skipped := []string{}
	for _, name := range values.Names() {
		v := values[name]
		fld, ok := byName[name]
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		e := entry{id: fld.ID, name: fld.Name, pages: fld.Pages, value: v.Text}
		switch {
		case v.IsCheckbox() && fld.Typ == form.FTCheckBox:
			e.kind = entryCheckbox
		case !v.IsCheckbox() && fld.Typ == form.FTText:
			e.kind = entryText
		case !v.IsCheckbox() && fld.Typ == form.FTDate:
			e.kind = entryDate
		default:
			skipped = append(skipped, name)
			continue
		}
		entries = append(entries, e)
	}
	return entries, skipped
}

// pdfcpu form JSON, reduced to the field kinds the mappers produce.
type formGroup struct {
	Forms []formFields `json:"forms"`
}

type formFields struct {
	TextFields []textField `json:"textfield,omitempty"`
	DateFields []textField `json:"datefield,omitempty"`
	CheckBoxes []checkBox  `json:"checkbox,omitempty"`
}

type textField struct {
	Pages []int  `json:"pages"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type checkBox struct {
	Pages []int  `json:"pages"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

func encode(entries []entry) formGroup {
	var ff formFields
	for _, e := range entries {
		switch e.kind {
		case entryText:
			ff.TextFields = append(ff.TextFields, textField{Pages: e.pages, ID: e.id, Name: e.name, Value: e.value})
		case entryDate:
			ff.DateFields = append(ff.DateFields, textField{Pages: e.pages, ID: e.id, Name: e.name, Value: e.value})
		case entryCheckbox:
			ff.CheckBoxes = append(ff.CheckBoxes, checkBox{Pages: e.pages, ID: e.id, Name: e.name, Value: true})
		}
	}
	return formGroup{Forms: []formFields{ff}}
}

package questions

import (
	"errors"
	"fmt"

	"benefit-engine/internal/model"
)

var (
	ErrAnswerRequired = errors.New("answer required")
	ErrInvalidOption  = errors.New("answer is not one of the offered options")
)

type Type string

const (
	TypeText   Type = "text"
	TypeNumber Type = "number"
	TypeDate   Type = "date"
	TypeChoice Type = "choice"
	TypePhone  Type = "phone"
	TypeIBAN   Type = "iban"
	TypeInfo   Type = "info"
)

type Option struct {
	Value string
	Label string
}

// Question is an immutable catalog entry. Which questions were answered is
// tracked by the caller, never on the question itself.
type Question struct {
	ID           string
	Section      int
	SectionLabel string
	Text         string
	Subtext      string
	Placeholder  string
	Type         Type
	Options      []Option
	Required     bool
	Target       Target

	// Condition hides the question while it returns false.
	Condition func(p *model.Profile) bool
	// Transform normalises the trimmed answer before it is stored.
	Transform func(value string) string
	// AutoFill suggests an answer derived from what is already known.
	AutoFill func(p *model.Profile) string
}

// Visible reports whether the question applies to p.
func (q *Question) Visible(p *model.Profile) bool {
	return q.Condition == nil || q.Condition(p)
}

// Check rejects empty answers to required questions and unknown choices.
func (q *Question) Check(value string) error {
	if value == "" {
		if q.Required {
			return fmt.Errorf("%s: %w", q.ID, ErrAnswerRequired)
		}
		return nil
	}
	if len(q.Options) == 0 {
		return nil
	}
	for _, o := range q.Options {
		if o.Value == value {
			return nil
		}
	}
	return fmt.Errorf("%s: %q: %w", q.ID, value, ErrInvalidOption)
}

// DisplayValue returns the option label for choice answers and the raw value
// otherwise.
func (q *Question) DisplayValue(value string) string {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// Suggestion returns the auto-filled answer for p, if any.
func (q *Question) Suggestion(p *model.Profile) string {
	if q.AutoFill == nil {
		return ""
	}
	return q.AutoFill(p)
}

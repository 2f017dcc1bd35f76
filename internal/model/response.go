package model

import json "github.com/goccy/go-json"

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// GenerationErrorResponse is the body of a failed generation.
type GenerationErrorResponse struct {
	ErrorResponse
	Metadata GenerationMetadata `json:"metadata"`
	Messages []Message          `json:"messages"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Prompt struct {
	ID           string   `json:"id"`
	Section      int      `json:"section"`
	SectionLabel string   `json:"section_label"`
	Text         string   `json:"text"`
	Subtext      string   `json:"subtext,omitempty"`
	Type         string   `json:"type"`
	Options      []Option `json:"options,omitempty"`
	Placeholder  string   `json:"placeholder,omitempty"`
	Required     bool     `json:"required"`
	Suggestion   string   `json:"suggestion,omitempty"`
}

type Progress struct {
	Section       int `json:"section"`
	TotalSections int `json:"total_sections"`
	Answered      int `json:"answered"`
}

type HistoryEntry struct {
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	Answer     string `json:"answer"`
	Display    string `json:"display"`
}

type SessionResponse struct {
	SessionID string         `json:"session_id"`
	Done      bool           `json:"done"`
	Prompt    *Prompt        `json:"prompt"`
	Progress  Progress       `json:"progress"`
	History   []HistoryEntry `json:"history,omitempty"`
	Profile   *Profile       `json:"profile,omitempty"`
}

type PatchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

type AnswerResponse struct {
	SessionResponse
	Patch []PatchOp `json:"patch"`
}

type FormView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Filename    string `json:"filename"`
	Description string `json:"description"`
	ForPerson   string `json:"for_person,omitempty"`
}

type FormsResponse struct {
	Forms     []FormView `json:"forms"`
	Checklist []string   `json:"checklist"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

type GenerationMetadata struct {
	GenerationID  string `json:"generation_id"`
	StartedAt     string `json:"started_at"`
	CompletedAt   string `json:"completed_at"`
	DurationMs    int64  `json:"duration_ms"`
	Outcome       string `json:"outcome"`
	FormCount     int    `json:"form_count"`
	SkippedFields int    `json:"skipped_fields"`
}

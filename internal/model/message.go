package model

// Message is a diagnostic produced while generating documents.
type Message struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
	FormID  string `json:"form_id,omitempty"`
	Field   string `json:"field,omitempty"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeFieldSkipped    = "FIELD_SKIPPED"
	CodeTemplateMissing = "TEMPLATE_MISSING"
	CodeFillFailed      = "FILL_FAILED"
	CodePackagingFailed = "PACKAGING_FAILED"
)

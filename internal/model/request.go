package model

// AnswerRequest submits the answer to the conversation's current prompt.
// Skip answers an optional question with an empty value.
type AnswerRequest struct {
	Value   string `json:"value"`
	Display string `json:"display,omitempty"`
	Skip    bool   `json:"skip,omitempty"`
}

// GenerateRequest wraps a complete profile for the stateless generation endpoint.
// The endpoint also accepts a bare profile.
type GenerateRequest struct {
	Profile *Profile `json:"profile"`
}

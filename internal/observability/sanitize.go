package observability

import (
	"strings"
	"unicode"
)

const defaultStringLimit = 256

// sanitizeString drops control characters and bounds the length of values
// taken from requests before they reach the logs.
func sanitizeString(value string, limit int) string {
	if limit <= 0 {
		limit = defaultStringLimit
	}

	cleaned := make([]rune, 0, len(value))
	for _, r := range value {
		if unicode.IsControl(r) {
			continue
		}
		cleaned = append(cleaned, r)
	}
	if len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}
	return string(cleaned)
}

func SanitizePath(path string) string {
	if path == "" {
		return "/"
	}
	return sanitizeString(path, 180)
}

const sessionsPrefix = "/api/sessions/"

// Route is the path with the session id replaced by {id}, so request logs
// can be grouped by endpoint.
func Route(path string) string {
	path = SanitizePath(path)
	rest, ok := strings.CutPrefix(path, sessionsPrefix)
	if !ok || rest == "" {
		return path
	}
	if _, action, found := strings.Cut(rest, "/"); found {
		return sessionsPrefix + "{id}/" + action
	}
	return sessionsPrefix + "{id}"
}

func SanitizeMethod(method string) string {
	return sanitizeString(method, 10)
}

// SanitizeID bounds session and generation ids.
func SanitizeID(id string) string {
	return sanitizeString(id, 64)
}

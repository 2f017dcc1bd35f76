package templates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"benefit-engine/internal/forms"
)

const defaultFetchTimeout = 5 * time.Second

// HTTPSource downloads templates from BaseURL + "/" + file name.
type HTTPSource struct {
	BaseURL string
	Timeout time.Duration
	client  *fasthttp.Client
}

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: timeout,
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			MaxIdleConnDuration: 90 * time.Second,
		},
	}
}

func (s *HTTPSource) Load(ctx context.Context, t forms.Template) ([]byte, error) {
	timeout := s.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	status, body, err := s.client.GetTimeout(nil, s.BaseURL+"/"+t.Filename(), timeout)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", t, err)
	}
	switch status {
	case fasthttp.StatusOK:
		return body, nil
	case fasthttp.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", t, ErrTemplateNotFound)
	default:
		return nil, fmt.Errorf("fetching %s: unexpected status %d", t, status)
	}
}

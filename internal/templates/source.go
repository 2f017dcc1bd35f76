// Package templates loads the blank PDF templates from a directory, an HTTP
// endpoint or a Cloud Storage bucket and keeps them cached in memory.
package templates

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"benefit-engine/internal/forms"
)

var ErrTemplateNotFound = errors.New("template not found")

// Source returns the raw bytes of a template.
type Source interface {
	Load(ctx context.Context, t forms.Template) ([]byte, error)
}

// DirSource reads templates from a local directory.
type DirSource struct {
	Dir string
}

func (s DirSource) Load(_ context.Context, t forms.Template) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, t.Filename()))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", t, ErrTemplateNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", t, err)
	}
	return data, nil
}

// Static serves templates from memory.
type Static map[forms.Template][]byte

func (s Static) Load(_ context.Context, t forms.Template) ([]byte, error) {
	data, ok := s[t]
	if !ok {
		return nil, fmt.Errorf("%s: %w", t, ErrTemplateNotFound)
	}
	return data, nil
}

package templates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	gcs "cloud.google.com/go/storage"

	"benefit-engine/internal/forms"
)

// BucketSource reads templates from a Cloud Storage bucket.
type BucketSource struct {
	client *gcs.Client
	bucket string
	prefix string
}

func NewBucketSource(client *gcs.Client, bucket, prefix string) (*BucketSource, error) {
	if client == nil {
		return nil, errors.New("bucket source: client is required")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("bucket source: bucket is required")
	}
	return &BucketSource{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}, nil
}

func (s *BucketSource) Load(ctx context.Context, t forms.Template) ([]byte, error) {
	object := path.Join(s.prefix, t.Filename())
	r, err := s.client.Bucket(s.bucket).Object(object).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, fmt.Errorf("gs://%s/%s: %w", s.bucket, object, ErrTemplateNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("opening gs://%s/%s: %w", s.bucket, object, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading gs://%s/%s: %w", s.bucket, object, err)
	}
	return data, nil
}

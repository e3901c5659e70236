package export

import (
	"context"
	"fmt"
	"time"

	gcsstorage "cloud.google.com/go/storage"
)

// ObjectWriter stores a finished export.
type ObjectWriter interface {
	WriteObject(ctx context.Context, name, contentType string, data []byte) error
}

// BucketWriter writes objects to a Cloud Storage bucket.
type BucketWriter struct {
	bucket *gcsstorage.BucketHandle
}

// NewBucketWriter wraps a bucket handle.
func NewBucketWriter(bucket *gcsstorage.BucketHandle) *BucketWriter {
	return &BucketWriter{bucket: bucket}
}

// WriteObject uploads data under name, replacing any existing object.
func (b *BucketWriter) WriteObject(ctx context.Context, name, contentType string, data []byte) error {
	w := b.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	// The upload is only committed on Close.
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

// ObjectName is where a user's export made at t is stored.
func ObjectName(userID string, t time.Time) string {
	return fmt.Sprintf("exports/%s/%s.csv", userID, t.UTC().Format("20060102T150405Z"))
}

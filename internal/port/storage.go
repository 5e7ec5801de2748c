package port

import (
	"context"
	"io"
)

// UploadInput describes one rendered invoice document to store.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
	// FileName, when set, is offered to browsers downloading the object.
	FileName string
}

// UploadOutput is where the stored document ended up.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage holds rendered invoice documents. Keys are derived from
// the invoice date and number, so re-rendering overwrites in place.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
	// Ping reports whether the configured bucket is reachable.
	Ping(ctx context.Context) error
}

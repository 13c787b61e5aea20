package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/moodtrack/internal/contract"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

// gcsInsertFunc stores the content of r as bucket/name.
type gcsInsertFunc func(ctx context.Context, bucket, name string, r io.Reader) error

// GCSUploader puts reports into a Google Cloud Storage bucket.
type GCSUploader struct {
	insert gcsInsertFunc
	bucket string
}

var _ contract.Uploader = &GCSUploader{}

// NewGCSUploader creates the storage service. credentials may be inline JSON,
// a file path, or empty for application default credentials.
func NewGCSUploader(ctx context.Context, bucket, credentials string) (*GCSUploader, error) {
	opts := []option.ClientOption{option.WithScopes(storage.DevstorageReadWriteScope)}
	credentials = strings.TrimSpace(credentials)
	switch {
	case strings.HasPrefix(credentials, "{"):
		opts = append(opts, option.WithCredentialsJSON([]byte(credentials)))
	case credentials != "":
		opts = append(opts, option.WithCredentialsFile(credentials))
	}

	svc, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage service: %w", err)
	}

	return &GCSUploader{
		bucket: bucket,
		insert: func(ctx context.Context, bucket, name string, r io.Reader) error {
			obj := &storage.Object{Name: name, ContentType: "application/pdf"}
			_, err := svc.Objects.Insert(bucket, obj).Media(r).Context(ctx).Do()
			return err
		},
	}, nil
}

// Name implements contract.Uploader.
func (u *GCSUploader) Name() string { return "gcs" }

// Upload implements contract.Uploader.
func (u *GCSUploader) Upload(ctx context.Context, filePath, objectName string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()

	if err := u.insert(ctx, u.bucket, objectName, f); err != nil {
		return "", fmt.Errorf("failed to insert gs://%s/%s: %w", u.bucket, objectName, err)
	}
	return fmt.Sprintf("gs://%s/%s", u.bucket, objectName), nil
}

// Package upload copies generated reports to object storage.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/moodtrack/internal/contract"
	"golang.org/x/sync/errgroup"
)

// ObjectName returns the object key used for a local report file.
func ObjectName(filePath string) string {
	return "reports/" + filepath.Base(filePath)
}

// NewFromConfig builds an uploader for every bucket configured.
// An empty slice means uploads are disabled.
func NewFromConfig(ctx context.Context, cfg *contract.Config) ([]contract.Uploader, error) {
	var uploaders []contract.Uploader
	if cfg.S3Bucket != "" {
		u, err := NewS3Uploader(ctx, cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			return nil, err
		}
		uploaders = append(uploaders, u)
	}
	if cfg.GCSBucket != "" {
		u, err := NewGCSUploader(ctx, cfg.GCSBucket, cfg.GCSCredentials)
		if err != nil {
			return nil, err
		}
		uploaders = append(uploaders, u)
	}
	return uploaders, nil
}

// Fanout uploads filePath to all uploaders concurrently.
// Locations are returned in uploader order; the first failure cancels the rest and is returned.
func Fanout(ctx context.Context, uploaders []contract.Uploader, filePath string) ([]string, error) {
	if len(uploaders) == 0 {
		return nil, nil
	}
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("report file not available: %w", err)
	}

	objectName := ObjectName(filePath)
	locations := make([]string, len(uploaders))

	g, gctx := errgroup.WithContext(ctx)
	for i, u := range uploaders {
		g.Go(func() error {
			loc, err := u.Upload(gctx, filePath, objectName)
			if err != nil {
				return fmt.Errorf("%s upload failed: %w", u.Name(), err)
			}
			locations[i] = loc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return locations, nil
}

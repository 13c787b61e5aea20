package upload

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/huangsam/moodtrack/internal/contract"
)

// s3PutAPI is the slice of the S3 client used here.
type s3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader puts reports into an S3 bucket.
type S3Uploader struct {
	client s3PutAPI
	bucket string
}

var _ contract.Uploader = &S3Uploader{}

// NewS3Uploader loads the default AWS credential chain, optionally pinned to region.
func NewS3Uploader(ctx context.Context, bucket, region string) (*S3Uploader, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Uploader{client: s3.NewFromConfig(awsCfg), bucket: bucket}, nil
}

// Name implements contract.Uploader.
func (u *S3Uploader) Name() string { return "s3" }

// Upload implements contract.Uploader.
func (u *S3Uploader) Upload(ctx context.Context, filePath, objectName string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(objectName),
		Body:        f,
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put s3://%s/%s: %w", u.bucket, objectName, err)
	}
	return fmt.Sprintf("s3://%s/%s", u.bucket, objectName), nil
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"acme_shop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// S3Uploader stores uploaded product images in an S3 bucket and returns
// their public URL.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

var _ interfaces.IFileStorage = (*S3Uploader)(nil)

// NewS3Uploader builds an uploader from environment variables:
//   - S3_BUCKET (required)
//   - AWS_REGION (default: us-east-1)
func NewS3Uploader(ctx context.Context) (*S3Uploader, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not configured")
	}
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Upload writes the object under products/<millis>-<sanitized name> and
// returns the bucket's public URL for it.
func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, body []byte) (string, error) {
	key := fmt.Sprintf("products/%d-%s", time.Now().UnixMilli(), sanitizeFilename(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

func sanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = unsafeKeyChars.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}

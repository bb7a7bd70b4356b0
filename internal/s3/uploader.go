package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rookgm/bobis/config"
)

// ObjectPutter is the part of S3 client used by Uploader
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader archives dispatch reports in a bucket
type Uploader struct {
	client ObjectPutter
	bucket string
	region string
}

// NewUploader creates Uploader from config. Static credentials are used
// when set, otherwise default AWS credential chain.
func NewUploader(ctx context.Context, cfg config.S3Config) (*Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewUploaderWithClient(s3.NewFromConfig(sdkConfig), cfg.Bucket, cfg.Region), nil
}

// NewUploaderWithClient creates Uploader with given client
func NewUploaderWithClient(client ObjectPutter, bucket, region string) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		region: region,
	}
}

// Upload stores object and returns its URL
func (u *Uploader) Upload(ctx context.Context, body io.Reader, key, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

package artifacts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrObjectNotFound is returned when a requested object does not exist.
var ErrObjectNotFound = errors.New("artifacts: object not found")

// Bucket wraps an S3 client with bucket and URL configuration.
type Bucket struct {
	s3Client  *s3.Client
	name      string
	publicURL string
}

// BucketConfig holds the configuration for connecting to an S3-compatible bucket.
type BucketConfig struct {
	// Endpoint is the S3 endpoint URL. Leave empty to use default AWS S3.
	Endpoint string
	// Region is the AWS region ("auto" for Tigris-style services).
	Region string
	// AccessKeyID is the S3 access key.
	AccessKeyID string
	// SecretAccessKey is the S3 secret key.
	SecretAccessKey string
	// Name is the bucket holding run artifacts.
	Name string
	// PublicURL is the base URL for publicly accessible objects.
	PublicURL string
	// UsePathStyle enables path-style addressing (required for gofakes3).
	UsePathStyle bool
}

// NewBucket creates a bucket handle with the given configuration.
func NewBucket(ctx context.Context, cfg BucketConfig) (*Bucket, error) {
	var opts []func(*config.LoadOptions) error

	opts = append(opts, config.WithRegion(cfg.Region))

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	sdkConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("artifacts: failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Bucket{
		s3Client:  s3Client,
		name:      cfg.Name,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// NewBucketFromS3Client creates a Bucket from an existing S3 client.
// This is useful for testing with gofakes3.
func NewBucketFromS3Client(s3Client *s3.Client, name, publicURL string) *Bucket {
	return &Bucket{
		s3Client:  s3Client,
		name:      name,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// PutObject stores content under the given key with the specified content type.
func (b *Bucket) PutObject(ctx context.Context, key string, content []byte, contentType string) error {
	_, err := b.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.name),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("artifacts: failed to put object %q: %w", key, err)
	}
	return nil
}

// GetObject retrieves the content stored under the given key.
// Returns ErrObjectNotFound if the key does not exist.
func (b *Bucket) GetObject(ctx context.Context, key string) ([]byte, error) {
	result, err := b.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrObjectNotFound
		}
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("artifacts: failed to get object %q: %w", key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("artifacts: failed to read object body %q: %w", key, err)
	}
	return data, nil
}

// PublicURL returns the publicly accessible URL for the given key.
func (b *Bucket) PublicURL(key string) string {
	return b.publicURL + "/" + strings.TrimPrefix(key, "/")
}

// Name returns the configured bucket name.
func (b *Bucket) Name() string {
	return b.name
}

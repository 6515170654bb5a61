package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ContentTypeHTML is the content type of published snapshots.
const ContentTypeHTML = "text/html; charset=utf-8"

// Common errors.
var (
	ErrNoBucket = errors.New("publish: no bucket")
	ErrNoKey    = errors.New("publish: empty object key")
)

// ObjectPutter is the part of *s3.Client a Publisher needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Result describes an uploaded object.
type Result struct {
	Bucket string
	Key    string
	ETag   string
	Size   int
}

// URL returns the s3:// URL of the object.
func (r Result) URL() string {
	return "s3://" + r.Bucket + "/" + r.Key
}

// Publisher uploads HTML snapshots to one bucket.
type Publisher struct {
	client       ObjectPutter
	bucket       string
	prefix       string
	cacheControl string
	logger       *slog.Logger
	now          func() time.Time
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix prepends prefix to every key. A trailing slash is added when
// missing.
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		if prefix != "" && !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		p.prefix = prefix
	}
}

// WithCacheControl sets the Cache-Control header of uploaded objects.
func WithCacheControl(v string) Option {
	return func(p *Publisher) {
		p.cacheControl = v
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// NewPublisher creates a Publisher writing to bucket.
func NewPublisher(client ObjectPutter, bucket string, opts ...Option) *Publisher {
	p := &Publisher{
		client: client,
		bucket: bucket,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.logger = p.logger.With("component", "publish")
	return p
}

// Key returns the full object key for name.
func (p *Publisher) Key(name string) string {
	return p.prefix + strings.TrimPrefix(name, "/")
}

// Publish uploads html under name.
func (p *Publisher) Publish(ctx context.Context, name string, html []byte) (Result, error) {
	if p.bucket == "" {
		return Result{}, ErrNoBucket
	}
	if strings.TrimPrefix(name, "/") == "" {
		return Result{}, ErrNoKey
	}
	key := p.Key(name)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(html),
		ContentType:   aws.String(ContentTypeHTML),
		ContentLength: aws.Int64(int64(len(html))),
		Metadata: map[string]string{
			"rendered-at": p.now().UTC().Format(time.RFC3339),
		},
	}
	if p.cacheControl != "" {
		input.CacheControl = aws.String(p.cacheControl)
	}

	out, err := p.client.PutObject(ctx, input)
	if err != nil {
		return Result{}, fmt.Errorf("s3 upload %s/%s: %w", p.bucket, key, err)
	}

	res := Result{Bucket: p.bucket, Key: key, Size: len(html)}
	if out != nil && out.ETag != nil {
		res.ETag = *out.ETag
	}
	p.logger.Info("published", "bucket", p.bucket, "key", key, "bytes", len(html))
	return res, nil
}

// ClientOptions configures NewClient.
type ClientOptions struct {
	// Region defaults to $AWS_REGION, then "us-east-1".
	Region string

	// Endpoint overrides the service endpoint (e.g., "http://localhost:9000").
	Endpoint string

	// PathStyle forces path-style addressing.
	PathStyle bool
}

// NewClient builds an S3 client from opts and the standard AWS environment
// variables.
func NewClient(opts ClientOptions) *s3.Client {
	region := opts.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}

	o := s3.Options{
		Region:       region,
		UsePathStyle: opts.PathStyle,
		Credentials:  aws.NewCredentialsCache(EnvCredentials()),
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
	}
	return s3.New(o)
}

// EnvCredentials reads static credentials from AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN on every retrieval.
func EnvCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		id := os.Getenv("AWS_ACCESS_KEY_ID")
		secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, errors.New("publish: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "Environment",
		}, nil
	})
}

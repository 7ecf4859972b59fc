package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client defines the S3 operations used by S3Adapter.
type S3Client interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config locates translation files in a bucket.
type S3Config struct {
	Bucket         string `env:"I18N_S3_BUCKET"`
	Prefix         string `env:"I18N_S3_PREFIX"` // Optional: "locales/" loads only keys under it
	Region         string `env:"I18N_S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"I18N_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"I18N_S3_SECRET_KEY"`
	Endpoint       string `env:"I18N_S3_ENDPOINT"` // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"I18N_S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// S3Option configures an S3Adapter.
type S3Option func(*s3Options)

type s3Options struct {
	client         S3Client
	configOptions  []func(*config.LoadOptions) error
	clientOptions  []func(*s3.Options)
	adapterOptions []AdapterOption
}

// WithS3Client sets a pre-configured client. Useful for testing with mocks.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.client = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// WithS3AdapterOptions passes common adapter options such as the logger.
func WithS3AdapterOptions(opts ...AdapterOption) S3Option {
	return func(o *s3Options) {
		o.adapterOptions = append(o.adapterOptions, opts...)
	}
}

// S3Adapter loads and merges every supported object under a bucket prefix.
// Objects that fail to download or parse are skipped with a warning, the same
// way FSAdapter treats the files of a directory.
type S3Adapter struct {
	client S3Client
	parser Parser
	bucket string
	prefix string
	opts   adapterOptions
}

// NewS3Adapter creates an adapter reading cfg.Bucket with parser.
func NewS3Adapter(ctx context.Context, parser Parser, cfg S3Config, opts ...S3Option) (*S3Adapter, error) {
	if parser == nil {
		return nil, ErrNilParser
	}
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrS3ConfigRequired
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		awsOptions = append(awsOptions, options.configOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}

		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle

			for _, opt := range options.clientOptions {
				opt(o)
			}
		})
	}

	return &S3Adapter{
		client: client,
		parser: parser,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		opts:   newAdapterOptions(options.adapterOptions),
	}, nil
}

func (a *S3Adapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	keys, err := a.listKeys(ctx)
	if err != nil {
		return nil, err
	}

	allTranslations := make(map[string]map[string]any)
	for _, key := range keys {
		if ctx.Err() != nil {
			return nil, errors.Join(ErrLoadCancelled, ctx.Err())
		}
		catalogs, err := a.loadObject(ctx, key)
		if err != nil {
			a.opts.logger.WarnContext(ctx, "Skipping message catalog", "bucket", a.bucket, "key", key, "error", err)
			continue
		}
		mergeTranslations(allTranslations, catalogs)
	}

	if len(allTranslations) == 0 {
		return nil, fmt.Errorf("%w in s3://%s/%s", ErrNoCatalogs, a.bucket, a.prefix)
	}
	return allTranslations, nil
}

// listKeys returns the keys of supported files under the prefix, following
// continuation tokens.
func (a *S3Adapter) listKeys(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(a.bucket),
	}
	if a.prefix != "" {
		input.Prefix = aws.String(a.prefix)
	}

	var keys []string
	for {
		out, err := a.client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, errors.Join(ErrFailedToListObjects, classifyS3Error(err))
		}

		for _, obj := range out.Contents {
			if key := aws.ToString(obj.Key); a.parser.Supports(key) {
				keys = append(keys, key)
			}
		}

		if !aws.ToBool(out.IsTruncated) || aws.ToString(out.NextContinuationToken) == "" {
			return keys, nil
		}
		input.ContinuationToken = out.NextContinuationToken
	}
}

func (a *S3Adapter) loadObject(ctx context.Context, key string) (map[string]map[string]any, error) {
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToGetObject, classifyS3Error(err))
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Join(ErrFailedToGetObject, err)
	}
	return parseCatalog(ctx, a.parser, key, content)
}

// classifyS3Error maps bucket-level S3 failures to package errors.
func classifyS3Error(err error) error {
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return errors.Join(ErrS3BucketNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket":
			return errors.Join(ErrS3BucketNotFound, err)
		case "AccessDenied":
			return errors.Join(ErrS3AccessDenied, err)
		}
	}
	return err
}

package i18n_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
)

// MockS3Client is a mock implementation of the S3Client interface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListObjectsV2Output), args.Error(1)
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func objectBody(content string) *s3.GetObjectOutput {
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(content))}
}

func keyIs(key string) any {
	return mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return aws.ToString(in.Key) == key
	})
}

var testS3Config = i18n.S3Config{
	Bucket: "translations",
	Prefix: "locales/",
	Region: "eu-central-1",
}

func TestNewS3Adapter(t *testing.T) {
	t.Parallel()

	t.Run("builds a real client from config", func(t *testing.T) {
		t.Parallel()
		cfg := testS3Config
		cfg.AccessKeyID = "test-key"
		cfg.SecretKey = "test-secret"
		cfg.Endpoint = "http://localhost:9000"
		cfg.ForcePathStyle = true

		adapter, err := i18n.NewS3Adapter(context.Background(), i18n.NewYAMLParser(), cfg)
		require.NoError(t, err)
		assert.NotNil(t, adapter)
	})

	t.Run("requires bucket and region", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewS3Adapter(context.Background(), i18n.NewYAMLParser(), i18n.S3Config{Region: "us-east-1"})
		assert.ErrorIs(t, err, i18n.ErrS3ConfigRequired)

		_, err = i18n.NewS3Adapter(context.Background(), i18n.NewYAMLParser(), i18n.S3Config{Bucket: "b"})
		assert.ErrorIs(t, err, i18n.ErrS3ConfigRequired)
	})

	t.Run("requires parser", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewS3Adapter(context.Background(), nil, testS3Config)
		assert.ErrorIs(t, err, i18n.ErrNilParser)
	})
}

func TestS3AdapterLoad(t *testing.T) {
	t.Parallel()

	t.Run("follows pagination and merges objects", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)

		client.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
			return in.ContinuationToken == nil && aws.ToString(in.Prefix) == "locales/"
		}), mock.Anything).Return(&s3.ListObjectsV2Output{
			Contents: []types.Object{
				{Key: aws.String("locales/en.yaml")},
				{Key: aws.String("locales/README.md")},
			},
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("page-2"),
		}, nil).Once()

		client.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
			return aws.ToString(in.ContinuationToken) == "page-2"
		}), mock.Anything).Return(&s3.ListObjectsV2Output{
			Contents: []types.Object{
				{Key: aws.String("locales/ru.yml")},
			},
			IsTruncated: aws.Bool(false),
		}, nil).Once()

		client.On("GetObject", mock.Anything, keyIs("locales/en.yaml"), mock.Anything).
			Return(objectBody("en:\n  validation:\n    email:\n      invalid: \"must be a valid email address\"\n"), nil).Once()
		client.On("GetObject", mock.Anything, keyIs("locales/ru.yml"), mock.Anything).
			Return(objectBody("ru:\n  validation:\n    email:\n      invalid: \"некорректный адрес\"\n"), nil).Once()

		adapter, err := i18n.NewS3Adapter(context.Background(), i18n.NewYAMLParser(), testS3Config, i18n.WithS3Client(client))
		require.NoError(t, err)

		translator, err := i18n.NewTranslator(context.Background(), adapter)
		require.NoError(t, err)

		assert.Equal(t, []language.Tag{language.English, language.Russian}, translator.Languages())
		text, ok := translator.Text(language.Russian, "validation.email.invalid")
		assert.True(t, ok)
		assert.Equal(t, "некорректный адрес", text)
		client.AssertExpectations(t)
	})

	t.Run("skips objects that fail", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)

		client.On("ListObjectsV2", mock.Anything, mock.Anything, mock.Anything).Return(&s3.ListObjectsV2Output{
			Contents: []types.Object{
				{Key: aws.String("locales/en.yaml")},
				{Key: aws.String("locales/broken.yaml")},
				{Key: aws.String("locales/gone.yaml")},
			},
		}, nil).Once()
		client.On("GetObject", mock.Anything, keyIs("locales/en.yaml"), mock.Anything).
			Return(objectBody("en:\n  hello: Hello\n"), nil).Once()
		client.On("GetObject", mock.Anything, keyIs("locales/broken.yaml"), mock.Anything).
			Return(objectBody("en: [unclosed\n"), nil).Once()
		client.On("GetObject", mock.Anything, keyIs("locales/gone.yaml"), mock.Anything).
			Return(nil, &types.NoSuchKey{Message: aws.String("gone")}).Once()

		adapter, err := i18n.NewS3Adapter(context.Background(), i18n.NewYAMLParser(), testS3Config, i18n.WithS3Client(client))
		require.NoError(t, err)

		translations, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", translations["en"]["hello"])
		client.AssertExpectations(t)
	})

	t.Run("no supported objects", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("ListObjectsV2", mock.Anything, mock.Anything, mock.Anything).Return(&s3.ListObjectsV2Output{
			Contents: []types.Object{{Key: aws.String("locales/notes.txt")}},
		}, nil).Once()

		adapter, err := i18n.NewS3Adapter(context.Background(), i18n.NewYAMLParser(), testS3Config, i18n.WithS3Client(client))
		require.NoError(t, err)

		_, err = adapter.Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoCatalogs)
	})

	t.Run("classifies list errors", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			err  error
			want error
		}{
			{"no such bucket", &types.NoSuchBucket{Message: aws.String("missing")}, i18n.ErrS3BucketNotFound},
			{"access denied", &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}, i18n.ErrS3AccessDenied},
			{"other", errors.New("network down"), i18n.ErrFailedToListObjects},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				client := new(MockS3Client)
				client.On("ListObjectsV2", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()

				adapter, err := i18n.NewS3Adapter(context.Background(), i18n.NewYAMLParser(), testS3Config, i18n.WithS3Client(client))
				require.NoError(t, err)

				_, err = adapter.Load(context.Background())
				require.Error(t, err)
				assert.ErrorIs(t, err, i18n.ErrFailedToListObjects)
				assert.ErrorIs(t, err, tt.want)
				assert.ErrorIs(t, err, tt.err)
			})
		}
	})
}

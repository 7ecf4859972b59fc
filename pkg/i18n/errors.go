package i18n

import "errors"

// Loading errors are joined with their cause, so callers can match them with
// errors.Is and still see what went wrong underneath.
var (
	ErrNilAdapter     = errors.New("translation adapter is nil")
	ErrNilParser      = errors.New("catalog parser is nil")
	ErrFailedToReload = errors.New("failed to reload translations")

	// Catalog content
	ErrInvalidLanguage = errors.New("invalid language code")
	ErrInvalidCatalog  = errors.New("invalid message catalog")
	ErrNoCatalogs      = errors.New("no message catalogs found")

	// Reading and decoding
	ErrLoadCancelled = errors.New("loading catalogs cancelled")
	ErrReadFailed    = errors.New("failed to read catalog")
	ErrParseFailed   = errors.New("failed to parse catalog")

	// S3
	ErrS3ConfigRequired    = errors.New("s3 bucket and region are required")
	ErrS3BucketNotFound    = errors.New("translations bucket not found")
	ErrS3AccessDenied      = errors.New("access to translations bucket denied")
	ErrFailedToListObjects = errors.New("failed to list translation objects")
	ErrFailedToGetObject   = errors.New("failed to download translation object")
)

package validation

import "errors"

var (
	ErrTLDsRequired    = errors.New("tlds is required")
	ErrTooManyTLDs     = errors.New("too many tlds")
	ErrInvalidTLD      = errors.New("invalid tld")
	ErrKeywordsTooLong = errors.New("keywords exceed maximum length")
	ErrInvalidDomain   = errors.New("invalid domain name")
	ErrInvalidRPS      = errors.New("rps must be a finite number")

	ErrEmptyEndpoint   = errors.New("endpoint is empty")
	ErrInvalidEndpoint = errors.New("invalid endpoint url")
	ErrUnsafeScheme    = errors.New("endpoint must use http or https")
)

type BatchValidationError struct {
	Errors []IndexedError
}

type IndexedError struct {
	Index int
	Err   error
}

func (e *BatchValidationError) Error() string {
	return "batch validation failed"
}

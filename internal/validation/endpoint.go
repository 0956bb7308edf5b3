package validation

import (
	"net/url"
	"strings"
)

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
}

// ValidateEndpoint checks an operator-supplied upstream URL: absolute,
// http or https, with a host.
func ValidateEndpoint(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyEndpoint
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidEndpoint
	}
	if !allowedSchemes[strings.ToLower(parsed.Scheme)] {
		return ErrUnsafeScheme
	}
	if parsed.Host == "" || parsed.User != nil {
		return ErrInvalidEndpoint
	}
	return nil
}

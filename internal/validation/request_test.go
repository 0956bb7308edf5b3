package validation_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domainscout/internal/domain"
	"domainscout/internal/validation"
)

func TestRequestValidator_ValidateTLDs(t *testing.T) {
	v := validation.NewRequestValidator(3, 100)

	tests := []struct {
		name    string
		tlds    []string
		wantErr error
	}{
		// Valid
		{"single", []string{".com"}, nil},
		{"without dot", []string{"io"}, nil},
		{"multi label", []string{".co.uk"}, nil},
		{"mixed case", []string{".CoM", " .net "}, nil},

		// Missing or too many
		{"nil", nil, validation.ErrTLDsRequired},
		{"empty", []string{}, validation.ErrTLDsRequired},
		{"too many", []string{".a1", ".b2", ".c3", ".d4"}, validation.ErrTooManyTLDs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateTLDs(tt.tlds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_ValidateTLDs_IndexedErrors(t *testing.T) {
	v := validation.NewRequestValidator(10, 100)

	err := v.ValidateTLDs([]string{".com", ".c", "", ".net", ".-bad"})

	var batchErr *validation.BatchValidationError
	require.ErrorAs(t, err, &batchErr)
	require.Len(t, batchErr.Errors, 3)
	assert.Equal(t, 1, batchErr.Errors[0].Index)
	assert.Equal(t, 2, batchErr.Errors[1].Index)
	assert.Equal(t, 4, batchErr.Errors[2].Index)
	for _, e := range batchErr.Errors {
		assert.ErrorIs(t, e.Err, validation.ErrInvalidTLD)
	}
}

func TestRequestValidator_ValidateDomains(t *testing.T) {
	v := validation.NewRequestValidator(10, 100)

	tests := []struct {
		name    string
		domains []string
		valid   bool
	}{
		{"simple", []string{"example.com"}, true},
		{"subdomain and hyphen", []string{"my-shop.co.uk"}, true},
		{"upper case with spaces", []string{"  Example.COM "}, true},
		{"blank entries skipped", []string{"a.io", "", "  "}, true},
		{"no dot", []string{"localhost"}, false},
		{"leading hyphen", []string{"-bad.com"}, false},
		{"underscore", []string{"bad_name.com"}, false},
		{"scheme", []string{"https://example.com"}, false},
		{"too long", []string{strings.Repeat("a", 250) + ".com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDomains(tt.domains)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var batchErr *validation.BatchValidationError
			require.ErrorAs(t, err, &batchErr)
			assert.ErrorIs(t, batchErr.Errors[0].Err, validation.ErrInvalidDomain)
		})
	}
}

func TestRequestValidator_ValidateCheckRequest(t *testing.T) {
	v := validation.NewRequestValidator(10, 20)

	tests := []struct {
		name    string
		req     domain.CheckRequest
		wantErr error
	}{
		{"keywords", domain.CheckRequest{Keywords1: "cloud", TLDs: []string{".com"}}, nil},
		{"empty keywords pass to generator", domain.CheckRequest{TLDs: []string{".com"}}, nil},
		{"domains ignore tlds", domain.CheckRequest{Domains: []string{"a.com"}}, nil},
		{"negative rps is clamped later", domain.CheckRequest{Domains: []string{"a.com"}, RPS: -1}, nil},
		{"missing tlds", domain.CheckRequest{Keywords1: "cloud"}, validation.ErrTLDsRequired},
		{"keywords too long", domain.CheckRequest{Keywords1: strings.Repeat("a", 15), Keywords2: strings.Repeat("b", 6), TLDs: []string{".com"}}, validation.ErrKeywordsTooLong},
		{"nan rps", domain.CheckRequest{Domains: []string{"a.com"}, RPS: math.NaN()}, validation.ErrInvalidRPS},
		{"infinite rps", domain.CheckRequest{Domains: []string{"a.com"}, RPS: math.Inf(1)}, validation.ErrInvalidRPS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCheckRequest(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

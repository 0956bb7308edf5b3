package validation

import (
	"math"
	"regexp"
	"strings"

	"domainscout/internal/domain"
	"domainscout/internal/tld"
)

const maxDomainLength = 253

var domainPattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// RequestValidator rejects malformed requests before any upstream call.
// Emptiness and the job-size ceiling are the generator's concern.
type RequestValidator struct {
	maxTLDs           int
	maxKeywordsLength int
}

func NewRequestValidator(maxTLDs, maxKeywordsLength int) *RequestValidator {
	return &RequestValidator{
		maxTLDs:           maxTLDs,
		maxKeywordsLength: maxKeywordsLength,
	}
}

func (v *RequestValidator) ValidateCheckRequest(req domain.CheckRequest) error {
	if math.IsNaN(req.RPS) || math.IsInf(req.RPS, 0) {
		return ErrInvalidRPS
	}

	if !req.UsesKeywords() {
		return v.ValidateDomains(req.Domains)
	}

	if len(req.Keywords1)+len(req.Keywords2) > v.maxKeywordsLength {
		return ErrKeywordsTooLong
	}
	return v.ValidateTLDs(req.TLDs)
}

func (v *RequestValidator) ValidateTLDs(tlds []string) error {
	if len(tlds) == 0 {
		return ErrTLDsRequired
	}

	if len(tlds) > v.maxTLDs {
		return ErrTooManyTLDs
	}

	var batchErrors []IndexedError
	for i, t := range tlds {
		if !tld.IsLikelyValid(t) {
			batchErrors = append(batchErrors, IndexedError{Index: i, Err: ErrInvalidTLD})
		}
	}

	if len(batchErrors) > 0 {
		return &BatchValidationError{Errors: batchErrors}
	}

	return nil
}

// ValidateDomains checks hostname syntax. Blank entries are skipped so that
// pasted lists with trailing newlines pass.
func (v *RequestValidator) ValidateDomains(domains []string) error {
	var batchErrors []IndexedError
	for i, d := range domains {
		name := strings.ToLower(strings.TrimSpace(d))
		if name == "" {
			continue
		}
		if len(name) > maxDomainLength || !domainPattern.MatchString(name) {
			batchErrors = append(batchErrors, IndexedError{Index: i, Err: ErrInvalidDomain})
		}
	}

	if len(batchErrors) > 0 {
		return &BatchValidationError{Errors: batchErrors}
	}

	return nil
}

package domain

import "time"

// CheckRequest is the body accepted by the stream and preview endpoints.
// Either Domains is set, or the keyword triple is used for expansion.
type CheckRequest struct {
	Domains   []string `json:"domains"`
	Keywords1 string   `json:"keywords1"`
	Keywords2 string   `json:"keywords2"`
	TLDs      []string `json:"tlds"`
	RPS       float64  `json:"rps"`
}

func (r CheckRequest) UsesKeywords() bool {
	return len(r.Domains) == 0
}

// Outcome is one streamed per-domain record. Available is nil when the
// availability could not be determined.
type Outcome struct {
	Domain    string   `json:"domain"`
	Available *bool    `json:"available"`
	Price     *string  `json:"price,omitempty"`
	PriceUSD  *float64 `json:"priceUsd,omitempty"`
	Premium   *bool    `json:"premium,omitempty"`
	Error     string   `json:"error,omitempty"`
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
	StatusUnknown     Status = "unknown"
)

func (o Outcome) Status() Status {
	switch {
	case o.Available == nil:
		return StatusUnknown
	case *o.Available:
		return StatusAvailable
	default:
		return StatusUnavailable
	}
}

func Available(domainName string) Outcome {
	v := true
	return Outcome{Domain: domainName, Available: &v}
}

func Unavailable(domainName string) Outcome {
	v := false
	return Outcome{Domain: domainName, Available: &v}
}

func Unknown(domainName, reason string) Outcome {
	return Outcome{Domain: domainName, Error: reason}
}

// DoneRecord terminates every stream.
type DoneRecord struct {
	Event string `json:"event"`
}

var Done = DoneRecord{Event: "done"}

// Job is the state of a single streamed check. It is owned by the goroutine
// running the scheduler and is never shared between requests.
type Job struct {
	ID         string
	Candidates []string
	RPS        float64
	StartedAt  time.Time

	Processed   int
	Available   int
	Unavailable int
	Unknown     int
	Cancelled   bool
}

func (j *Job) Count(o Outcome) {
	j.Processed++
	switch o.Status() {
	case StatusAvailable:
		j.Available++
	case StatusUnavailable:
		j.Unavailable++
	default:
		j.Unknown++
	}
}

type PreviewResponse struct {
	Count      int      `json:"count"`
	Max        int      `json:"max"`
	TooLarge   bool     `json:"tooLarge"`
	Candidates []string `json:"candidates"`
}

type TLDReport struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
	Known      bool   `json:"known"`
	Listed     bool   `json:"listed"`
	Suggestion string `json:"suggestion,omitempty"`
}

type ValidateTLDsRequest struct {
	TLDs []string `json:"tlds"`
}

type ValidateTLDsResponse struct {
	TLDs    []TLDReport `json:"tlds"`
	Unknown []string    `json:"unknown"`
}

type TLDListResponse struct {
	Primary []string `json:"primary"`
	All     []string `json:"all"`
}

type TLDRequest struct {
	TLD string `json:"tld"`
}

type TLDSuggestResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

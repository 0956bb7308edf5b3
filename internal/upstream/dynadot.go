package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"domainscout/internal/domain"
	"domainscout/internal/pricing"
)

const (
	DefaultTimeout   = 20 * time.Second
	maxResponseBytes = 1 << 20
	maxErrorSnippet  = 200
)

var busyPattern = regexp.MustCompile(`(?i)system[_ ]busy`)

type Pricer interface {
	Quote(domainName, raw string) pricing.Quote
}

type DynadotConfig struct {
	Endpoint  string
	APIKey    string
	Currency  string
	ShowPrice bool
	Timeout   time.Duration
}

// Dynadot checks availability with the search command, one request per
// batch.
type Dynadot struct {
	cfg    DynadotConfig
	client *http.Client
	pricer Pricer
	logger *slog.Logger
}

func NewDynadot(cfg DynadotConfig, client *http.Client, pricer Pricer, logger *slog.Logger) *Dynadot {
	if client == nil {
		client = &http.Client{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Dynadot{
		cfg:    cfg,
		client: client,
		pricer: pricer,
		logger: logger,
	}
}

func (d *Dynadot) Name() string { return "dynadot" }

func (d *Dynadot) Configured() bool { return d.cfg.APIKey != "" }

func (d *Dynadot) Check(ctx context.Context, domains []string) ([]domain.Outcome, error) {
	if !d.Configured() {
		return nil, ErrMissingCredential
	}

	callCtx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, d.searchURL(domains), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, transportError(ctx, callCtx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(ctx, callCtx, err)
	}

	if err := classifyStatus(resp.StatusCode, body); err != nil {
		return nil, err
	}

	reply := parseSearchReply(body)
	if reply.failed() {
		msg := reply.Message
		if msg == "" {
			msg = "response code " + reply.Code
		}
		return nil, &HardError{StatusCode: resp.StatusCode, Message: msg}
	}
	if reply.Shape == shapeUnknown {
		d.logger.Warn("unrecognized search response",
			slog.Int("status", resp.StatusCode),
			slog.String("body", snippet(body)))
	} else {
		d.logger.Debug("search response parsed",
			slog.String("shape", reply.Shape.String()),
			slog.Int("records", len(reply.Records)))
	}

	return d.outcomes(domains, reply), nil
}

func (d *Dynadot) searchURL(domains []string) string {
	q := url.Values{}
	q.Set("key", d.cfg.APIKey)
	q.Set("command", "search")
	for i, name := range domains {
		q.Set("domain"+strconv.Itoa(i), name)
	}
	if d.cfg.ShowPrice {
		q.Set("show_price", "1")
		if d.cfg.Currency != "" {
			q.Set("currency", d.cfg.Currency)
		}
	}
	return d.cfg.Endpoint + "?" + q.Encode()
}

// outcomes returns exactly one outcome per requested domain, in request
// order.
func (d *Dynadot) outcomes(requested []string, reply searchReply) []domain.Outcome {
	byName := make(map[string]record, len(reply.Records))
	for _, r := range reply.Records {
		byName[strings.ToLower(strings.TrimSpace(r.Domain))] = r
	}

	out := make([]domain.Outcome, 0, len(requested))
	for _, name := range requested {
		if reply.Shape == shapeUnknown {
			out = append(out, domain.Unknown(name, "unrecognized upstream response"))
			continue
		}

		r, ok := byName[strings.ToLower(name)]
		switch {
		case !ok:
			out = append(out, domain.Unknown(name, "domain missing from upstream response"))
		case strings.TrimSpace(r.Available) == "":
			reason := r.Error
			if reason == "" {
				reason = "no availability in upstream response"
			}
			out = append(out, domain.Unknown(name, reason))
		default:
			o := domain.Unavailable(name)
			if isAvailable(r.Available) {
				o = domain.Available(name)
			}
			if r.Price != "" && d.pricer != nil {
				d.pricer.Quote(name, r.Price).Apply(&o)
			}
			out = append(out, o)
		}
	}
	return out
}

// classifyStatus maps a response to a retry decision: 429, 5xx and an
// overloaded 200 are transient, any other non-2xx is hard.
func classifyStatus(status int, body []byte) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &TransientError{Reason: "rate limited", StatusCode: status}
	case status >= http.StatusInternalServerError:
		return &TransientError{Reason: http.StatusText(status), StatusCode: status}
	case status < 200 || status > 299:
		return &HardError{StatusCode: status, Message: snippet(body)}
	case busyPattern.Match(body):
		return &TransientError{Reason: "system busy", StatusCode: status}
	}
	return nil
}

// transportError separates caller cancellation from the per-call timeout.
// Other transport failures (resets, DNS) are retried.
func transportError(parent, call context.Context, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(call.Err(), context.DeadlineExceeded) {
		return &TransientError{Reason: "timeout", Err: ErrTimeout}
	}
	return &TransientError{Reason: err.Error(), Err: err}
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorSnippet {
		s = s[:maxErrorSnippet]
	}
	return s
}

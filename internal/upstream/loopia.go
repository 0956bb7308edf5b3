package upstream

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/kolo/xmlrpc"

	"domainscout/internal/domain"
)

// Loopia status strings returned by domainIsFree.
const (
	loopiaFree        = "OK"
	loopiaOccupied    = "DOMAIN_OCCUPIED"
	loopiaRateLimited = "RATE_LIMITED"
	loopiaAuthError   = "AUTH_ERROR"
)

var transientStatus = regexp.MustCompile(`\b(429|5\d\d)\b`)

type LoopiaConfig struct {
	Endpoint string
	Username string
	Password string
	Timeout  time.Duration
}

// Loopia checks availability over XML-RPC. The API has no multi-domain
// search, so one batch is one domainIsFree call per domain and any
// transient or hard failure fails the whole batch.
type Loopia struct {
	cfg    LoopiaConfig
	rpc    *xmlrpc.Client
	logger *slog.Logger
}

// NewLoopia builds the client. A nil transport gets a clone of the default
// transport whose response header wait is bounded by the call timeout, so a
// call abandoned after its deadline still finishes in the background.
func NewLoopia(cfg LoopiaConfig, transport http.RoundTripper, logger *slog.Logger) (*Loopia, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.ResponseHeaderTimeout = cfg.Timeout
		transport = t
	}
	c, err := xmlrpc.NewClient(cfg.Endpoint, transport)
	if err != nil {
		return nil, fmt.Errorf("failed to create xmlrpc client: %w", err)
	}
	return &Loopia{cfg: cfg, rpc: c, logger: logger}, nil
}

func (l *Loopia) Name() string { return "loopia" }

func (l *Loopia) Configured() bool {
	return l.cfg.Username != "" && l.cfg.Password != ""
}

func (l *Loopia) Close() error {
	return l.rpc.Close()
}

func (l *Loopia) Check(ctx context.Context, domains []string) ([]domain.Outcome, error) {
	if !l.Configured() {
		return nil, ErrMissingCredential
	}

	out := make([]domain.Outcome, 0, len(domains))
	for _, name := range domains {
		status, err := l.domainIsFree(ctx, name)
		if err != nil {
			return nil, err
		}

		switch status {
		case loopiaFree:
			out = append(out, domain.Available(name))
		case loopiaOccupied:
			out = append(out, domain.Unavailable(name))
		case loopiaRateLimited:
			return nil, &TransientError{Reason: "rate limited", StatusCode: http.StatusTooManyRequests}
		case loopiaAuthError:
			return nil, &HardError{StatusCode: http.StatusUnauthorized, Message: "authentication failed"}
		default:
			out = append(out, domain.Unknown(name, "upstream status "+status))
		}
	}
	return out, nil
}

// domainIsFree runs one call with the credentials prepended. The xmlrpc
// client has no context support, so the call runs in its own goroutine and
// the caller stops waiting on timeout or cancellation.
func (l *Loopia) domainIsFree(ctx context.Context, name string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, l.cfg.Timeout)
	defer cancel()

	type result struct {
		reply string
		err   error
	}
	done := make(chan result, 1)
	go func() {
		var reply string
		err := l.rpc.Call("domainIsFree", []interface{}{l.cfg.Username, l.cfg.Password, "", name}, &reply)
		done <- result{reply: reply, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			l.logger.Debug("domainIsFree failed",
				slog.String("domain", name),
				slog.String("error", res.err.Error()))
			return "", classifyRPCError(res.err)
		}
		return strings.ToUpper(strings.TrimSpace(res.reply)), nil
	case <-callCtx.Done():
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &TransientError{Reason: "timeout", Err: ErrTimeout}
	}
}

// classifyRPCError reads the error text: the rpc layer flattens server
// faults and HTTP status failures into strings.
func classifyRPCError(err error) error {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "Fault("):
		return &HardError{Message: msg}
	case strings.Contains(msg, "401"):
		return &HardError{StatusCode: http.StatusUnauthorized, Message: msg}
	case transientStatus.MatchString(msg):
		return &TransientError{Reason: msg, Err: err}
	case strings.Contains(msg, "status code"):
		return &HardError{Message: msg}
	default:
		return &TransientError{Reason: msg, Err: err}
	}
}

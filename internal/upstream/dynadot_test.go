package upstream_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domainscout/internal/domain"
	"domainscout/internal/pricing"
	"domainscout/internal/upstream"
)

func newDynadot(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *upstream.Dynadot {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return upstream.NewDynadot(upstream.DynadotConfig{
		Endpoint:  srv.URL,
		APIKey:    "secret",
		Currency:  "USD",
		ShowPrice: true,
		Timeout:   timeout,
	}, srv.Client(), pricing.Default(), logger)
}

func TestDynadot_Check_RequestParameters(t *testing.T) {
	d := newDynadot(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "secret", q.Get("key"))
		assert.Equal(t, "search", q.Get("command"))
		assert.Equal(t, "alpha.com", q.Get("domain0"))
		assert.Equal(t, "beta.com", q.Get("domain1"))
		assert.Equal(t, "1", q.Get("show_price"))
		assert.Equal(t, "USD", q.Get("currency"))

		_, _ = io.WriteString(w, `{"SearchResponse":{"ResponseCode":"0","SearchResults":[
			{"DomainName":"alpha.com","Available":"yes","Price":"8.99 in USD"},
			{"DomainName":"beta.com","Available":"no"}]}}`)
	}, time.Second)

	out, err := d.Check(context.Background(), []string{"alpha.com", "beta.com"})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "alpha.com", out[0].Domain)
	assert.Equal(t, domain.StatusAvailable, out[0].Status())
	require.NotNil(t, out[0].Price)
	assert.Equal(t, "$8.99", *out[0].Price)
	assert.Equal(t, "beta.com", out[1].Domain)
	assert.Equal(t, domain.StatusUnavailable, out[1].Status())
	assert.Nil(t, out[1].Price)
}

func TestDynadot_Check_MultiYearPrice(t *testing.T) {
	d := newDynadot(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"SearchResponse":{"ResponseCode":"0","SearchResults":[{"DomainName":"cloud.ai","Available":"yes","Price":"9.99 in USD"}]}}`)
	}, time.Second)

	out, err := d.Check(context.Background(), []string{"cloud.ai"})

	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Price)
	assert.Equal(t, "$19.98", *out[0].Price)
	require.NotNil(t, out[0].PriceUSD)
	assert.InDelta(t, 19.98, *out[0].PriceUSD, 1e-9)
}

func TestDynadot_Check_OneOutcomePerRequestedDomain(t *testing.T) {
	d := newDynadot(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"SearchResponse":{"ResponseCode":"0","SearchResults":[
			{"DomainName":"B.COM","Available":"yes"},
			{"DomainName":"c.com","Error":"unsupported tld"}]}}`)
	}, time.Second)

	out, err := d.Check(context.Background(), []string{"a.com", "b.com", "c.com"})

	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, domain.StatusUnknown, out[0].Status())
	assert.Equal(t, "domain missing from upstream response", out[0].Error)
	assert.Equal(t, domain.StatusAvailable, out[1].Status())
	assert.Equal(t, "b.com", out[1].Domain)
	assert.Equal(t, domain.StatusUnknown, out[2].Status())
	assert.Equal(t, "unsupported tld", out[2].Error)
}

func TestDynadot_Check_UnrecognizedBody(t *testing.T) {
	d := newDynadot(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "maintenance")
	}, time.Second)

	out, err := d.Check(context.Background(), []string{"a.com", "b.com"})

	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, o := range out {
		assert.Equal(t, domain.StatusUnknown, o.Status())
		assert.Equal(t, "unrecognized upstream response", o.Error)
	}
}

func TestDynadot_Check_Classification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		transient bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: "slow down", transient: true},
		{name: "server error", status: http.StatusServiceUnavailable, body: "", transient: true},
		{name: "busy inside ok", status: http.StatusOK, body: `{"Response":{"Error":"system_busy"}}`, transient: true},
		{name: "forbidden", status: http.StatusForbidden, body: "bad key", transient: false},
		{name: "error payload", status: http.StatusOK, body: `{"Response":{"ResponseCode":"-1","Error":"invalid key"}}`, transient: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDynadot(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}, time.Second)

			out, err := d.Check(context.Background(), []string{"a.com"})

			require.Error(t, err)
			assert.Nil(t, out)
			assert.Equal(t, tt.transient, upstream.IsTransient(err))
			if !tt.transient {
				var hard *upstream.HardError
				assert.ErrorAs(t, err, &hard)
			}
		})
	}
}

func TestDynadot_Check_Timeout(t *testing.T) {
	release := make(chan struct{})
	d := newDynadot(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	defer close(release)

	_, err := d.Check(context.Background(), []string{"a.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, upstream.ErrTimeout)
	assert.True(t, upstream.IsTransient(err))
}

func TestDynadot_Check_CallerCancelled(t *testing.T) {
	d := newDynadot(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Check(ctx, []string{"a.com"})

	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, upstream.IsTransient(err))
}

func TestDynadot_Check_MissingCredential(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := upstream.NewDynadot(upstream.DynadotConfig{Endpoint: "http://127.0.0.1:1"}, nil, nil, logger)

	_, err := d.Check(context.Background(), []string{"a.com"})

	assert.ErrorIs(t, err, upstream.ErrMissingCredential)
	assert.False(t, d.Configured())
	assert.Equal(t, "dynadot", d.Name())
}

func TestDynadot_Check_LogsResponseShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<SearchResponse><SearchHeader><DomainName>a.com</DomainName><Available>yes</Available></SearchHeader></SearchResponse>`)
	}))
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := upstream.NewDynadot(upstream.DynadotConfig{Endpoint: srv.URL, APIKey: "secret"}, srv.Client(), nil, logger)

	out, err := d.Check(context.Background(), []string{"a.com"})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, domain.StatusAvailable, out[0].Status())
	assert.Contains(t, logs.String(), "shape=xml_per_domain")
	assert.Contains(t, logs.String(), "records=1")
}

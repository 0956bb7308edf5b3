package app_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domainscout/internal/app"
	"domainscout/internal/config"
	"domainscout/internal/domain"
	"domainscout/internal/export"
	"domainscout/internal/upstream"
)

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		Upstream: config.UpstreamConfig{
			Provider:         config.ProviderDynadot,
			Timeout:          time.Second,
			Currency:         "USD",
			DynadotAPIKey:    "secret",
			DynadotEndpoint:  endpoint,
			DynadotShowPrice: true,
		},
		Pipeline: config.PipelineConfig{
			DefaultRPS:   50,
			MinRPS:       0.2,
			BatchSize:    2,
			MaxAttempts:  5,
			BackoffBase:  time.Millisecond,
			BackoffCap:   5 * time.Millisecond,
			MaxDomains:   5000,
			PreviewLimit: 50,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPipeline_KeywordJobEndToEnd(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch calls.Add(1) {
		case 1:
			assert.Equal(t, "cloud.com", q.Get("domain0"))
			assert.Equal(t, "cloud.io", q.Get("domain1"))
			_, _ = io.WriteString(w, `{"SearchResponse":{"ResponseCode":"0","SearchResults":[
				{"DomainName":"cloud.com","Available":"no"},
				{"DomainName":"cloud.io","Available":"yes","Price":"39.99 in USD"}]}}`)
		case 2:
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			assert.Equal(t, "data.com", q.Get("domain0"))
			_, _ = io.WriteString(w, `{"SearchResponse":{"ResponseCode":"0","SearchResults":[
				{"DomainName":"data.com","Available":"no"},
				{"DomainName":"data.io","Available":"yes"}]}}`)
		}
	}))
	defer srv.Close()

	p, err := app.NewPipeline(testConfig(srv.URL), testLogger(), app.Observers{})
	require.NoError(t, err)
	defer p.Close()

	job, err := p.Service.PrepareJob(domain.CheckRequest{Keywords1: "cloud,data", TLDs: []string{".com", ".io"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"cloud.com", "cloud.io", "data.com", "data.io"}, job.Candidates)
	assert.NotEmpty(t, job.ID)

	table := export.NewTable(false)
	require.NoError(t, p.Service.Run(context.Background(), job, table))

	assert.True(t, table.Finished())
	rows := table.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, domain.StatusUnavailable, rows[0].Status())
	assert.Equal(t, domain.StatusAvailable, rows[1].Status())
	require.NotNil(t, rows[1].Price)
	assert.Equal(t, "$39.99", *rows[1].Price)
	assert.Equal(t, domain.StatusAvailable, rows[3].Status())
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 4, job.Processed)
	assert.Equal(t, 2, job.Available)
}

func TestPipeline_MissingCredential(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Upstream.DynadotAPIKey = ""

	p, err := app.NewPipeline(cfg, testLogger(), app.Observers{})
	require.NoError(t, err)

	_, err = p.Service.PrepareJob(domain.CheckRequest{Domains: []string{"a.com"}})
	assert.ErrorIs(t, err, upstream.ErrMissingCredential)
}

func TestNewProvider(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")

	p, err := app.NewProvider(&cfg.Upstream, nil, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "dynadot", p.Name())

	cfg.Upstream.Provider = config.ProviderLoopia
	cfg.Upstream.LoopiaEndpoint = "http://127.0.0.1:1/RPCSERV"
	p, err = app.NewProvider(&cfg.Upstream, nil, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "loopia", p.Name())
	assert.False(t, p.Configured())

	cfg.Upstream.Provider = "godaddy"
	_, err = app.NewProvider(&cfg.Upstream, nil, testLogger())
	assert.Error(t, err)
}

func TestPipeline_HardFailureIsolatedToItsBatch(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		q := r.URL.Query()
		if q.Get("domain0") == "d5.com" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, "forbidden")
			return
		}
		var results []string
		for i := 0; i < 2; i++ {
			if name := q.Get("domain" + strconv.Itoa(i)); name != "" {
				results = append(results, `{"DomainName":"`+name+`","Available":"yes"}`)
			}
		}
		_, _ = io.WriteString(w, `{"SearchResponse":{"ResponseCode":"0","SearchResults":[`+strings.Join(results, ",")+`]}}`)
	}))
	defer srv.Close()

	p, err := app.NewPipeline(testConfig(srv.URL), testLogger(), app.Observers{})
	require.NoError(t, err)
	defer p.Close()

	domains := []string{"d1.com", "d2.com", "d3.com", "d4.com", "d5.com", "d6.com", "d7.com", "d8.com", "d9.com"}
	job, err := p.Service.PrepareJob(domain.CheckRequest{Domains: domains})
	require.NoError(t, err)

	table := export.NewTable(false)
	require.NoError(t, p.Service.Run(context.Background(), job, table))

	rows := table.Rows()
	require.Len(t, rows, len(domains))
	for i, o := range rows {
		assert.Equal(t, domains[i], o.Domain)
		if o.Domain == "d5.com" || o.Domain == "d6.com" {
			assert.Equal(t, domain.StatusUnknown, o.Status(), o.Domain)
			assert.Contains(t, o.Error, "403", o.Domain)
			continue
		}
		assert.Equal(t, domain.StatusAvailable, o.Status(), o.Domain)
		assert.Empty(t, o.Error, o.Domain)
	}
	assert.Equal(t, int32(5), calls.Load())
	assert.Equal(t, 7, job.Available)
	assert.Equal(t, 2, job.Unknown)
}

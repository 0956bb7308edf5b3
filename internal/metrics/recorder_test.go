package metrics_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"domainscout/internal/config"
	"domainscout/internal/metrics"
	"domainscout/internal/metrics/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func readRows(t *testing.T, src pgx.CopyFromSource) [][]any {
	t.Helper()
	var rows [][]any
	for src.Next() {
		values, err := src.Values()
		require.NoError(t, err)
		rows = append(rows, values)
	}
	require.NoError(t, src.Err())
	return rows
}

func TestRecorder_FlushesAtThreshold(t *testing.T) {
	w := mocks.NewMockCopyWriter(t)
	written := make(chan [][]any, 1)

	w.EXPECT().CopyFrom(mock.Anything, pgx.Identifier{"http_metrics"}, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
			assert.Equal(t, "time", columns[0])
			rows := readRows(t, src)
			written <- rows
			return int64(len(rows)), nil
		}).Once()

	r := metrics.NewRecorder(w, &config.MetricsConfig{
		Enabled:        true,
		BufferSize:     10,
		FlushInterval:  60_000,
		FlushThreshold: 2,
	}, testLogger())
	r.Start(context.Background())

	r.RecordHTTP(metrics.HTTPMetric{Method: "GET", Path: "/api/v1/health", StatusCode: 200})
	r.RecordHTTP(metrics.HTTPMetric{Method: "POST", Path: "/api/v1/check/stream", StatusCode: 200})

	select {
	case rows := <-written:
		require.Len(t, rows, 2)
		assert.Equal(t, "GET", rows[0][1])
		assert.Equal(t, "/api/v1/check/stream", rows[1][2])
	case <-time.After(2 * time.Second):
		t.Fatal("batch was not flushed")
	}

	r.Close()
}

func TestRecorder_CloseDrainsPending(t *testing.T) {
	w := mocks.NewMockCopyWriter(t)

	var rows [][]any
	w.EXPECT().CopyFrom(mock.Anything, pgx.Identifier{"business_metrics"}, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ pgx.Identifier, _ []string, src pgx.CopyFromSource) (int64, error) {
			rows = readRows(t, src)
			return int64(len(rows)), nil
		}).Once()

	r := metrics.NewRecorder(w, &config.MetricsConfig{
		Enabled:        true,
		BufferSize:     10,
		FlushInterval:  60_000,
		FlushThreshold: 100,
	}, testLogger())
	r.Start(context.Background())

	r.RecordBusiness("job_started", 4, map[string]string{"job_id": "bMZn4Y"})
	r.Close()

	require.Len(t, rows, 1)
	assert.Equal(t, "job_started", rows[0][1])
	assert.InDelta(t, 4.0, rows[0][2], 1e-9)
	assert.JSONEq(t, `{"job_id":"bMZn4Y"}`, string(rows[0][3].([]byte)))
}

func TestRecorder_InfraColumns(t *testing.T) {
	w := mocks.NewMockCopyWriter(t)

	var columns []string
	var rows [][]any
	w.EXPECT().CopyFrom(mock.Anything, pgx.Identifier{"infra_metrics"}, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ pgx.Identifier, cols []string, src pgx.CopyFromSource) (int64, error) {
			columns = cols
			rows = readRows(t, src)
			return int64(len(rows)), nil
		}).Once()

	r := metrics.NewRecorder(w, &config.MetricsConfig{
		Enabled:        true,
		BufferSize:     10,
		FlushInterval:  60_000,
		FlushThreshold: 100,
	}, testLogger())
	r.Start(context.Background())

	r.RecordInfra(metrics.InfraMetric{ActiveJobs: 3, PrefsHitRatio: 0.5})
	r.Close()

	require.Len(t, rows, 1)
	require.Len(t, rows[0], len(columns))
	assert.Equal(t, "active_jobs", columns[8])
	assert.Equal(t, int64(3), rows[0][8])
}

func TestRecorder_Disabled(t *testing.T) {
	w := mocks.NewMockCopyWriter(t)

	r := metrics.NewRecorder(w, &config.MetricsConfig{Enabled: false, BufferSize: 10}, testLogger())
	r.Start(context.Background())

	r.RecordHTTP(metrics.HTTPMetric{Method: "GET"})
	r.RecordBusiness("job_started", 1, nil)
	r.RecordInfra(metrics.InfraMetric{})
	r.Close()

	w.AssertNotCalled(t, "CopyFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecorder_DropsWhenBufferFull(t *testing.T) {
	w := mocks.NewMockCopyWriter(t)

	var rows [][]any
	w.EXPECT().CopyFrom(mock.Anything, pgx.Identifier{"http_metrics"}, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ pgx.Identifier, _ []string, src pgx.CopyFromSource) (int64, error) {
			rows = readRows(t, src)
			return int64(len(rows)), nil
		}).Once()

	r := metrics.NewRecorder(w, &config.MetricsConfig{
		Enabled:        true,
		BufferSize:     1,
		FlushInterval:  60_000,
		FlushThreshold: 100,
	}, testLogger())

	r.RecordHTTP(metrics.HTTPMetric{Path: "/first"})
	r.RecordHTTP(metrics.HTTPMetric{Path: "/second"})

	r.Start(context.Background())
	r.Close()

	require.Len(t, rows, 1)
	assert.Equal(t, "/first", rows[0][2])
}

func TestRecorder_WriteErrorIsLogged(t *testing.T) {
	w := mocks.NewMockCopyWriter(t)
	w.EXPECT().CopyFrom(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, errors.New("relation does not exist")).Once()

	r := metrics.NewRecorder(w, &config.MetricsConfig{
		Enabled:        true,
		BufferSize:     10,
		FlushInterval:  60_000,
		FlushThreshold: 100,
	}, testLogger())
	r.Start(context.Background())

	r.RecordHTTP(metrics.HTTPMetric{Path: "/x"})

	assert.NotPanics(t, r.Close)
}

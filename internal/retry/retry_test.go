package retry_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"domainscout/internal/domain"
	"domainscout/internal/retry"
	"domainscout/internal/retry/mocks"
	"domainscout/internal/upstream"
)

var batch = []string{"alpha.com", "beta.com"}

type sleepRecorder struct {
	delays []time.Duration
	err    error
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return s.err
}

func noJitter(time.Duration) time.Duration { return 0 }

func newController(client retry.Client, sleeper *sleepRecorder, opts ...retry.Option) *retry.Controller {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]retry.Option{retry.WithSleep(sleeper.sleep), retry.WithJitter(noJitter)}, opts...)
	return retry.New(client, retry.Config{
		MaxAttempts: 5,
		BaseDelay:   400 * time.Millisecond,
		MaxDelay:    10 * time.Second,
	}, logger, opts...)
}

func transient() error {
	return &upstream.TransientError{Reason: "rate limited", StatusCode: 429}
}

func TestCheckBatch_FirstAttemptSucceeds(t *testing.T) {
	client := mocks.NewMockClient(t)
	observer := mocks.NewMockObserver(t)
	expected := []domain.Outcome{domain.Available("alpha.com"), domain.Unavailable("beta.com")}

	client.EXPECT().Check(mock.Anything, batch).Return(expected, nil).Once()
	observer.EXPECT().ObserveUpstream(retry.ResultOK, mock.Anything).Return().Once()

	sleeper := &sleepRecorder{}
	c := newController(client, sleeper, retry.WithObserver(observer))

	out := c.CheckBatch(context.Background(), batch)

	assert.Equal(t, expected, out)
	assert.Empty(t, sleeper.delays)
}

func TestCheckBatch_RecoversAfterTransientFailures(t *testing.T) {
	client := mocks.NewMockClient(t)
	observer := mocks.NewMockObserver(t)
	expected := []domain.Outcome{domain.Available("alpha.com"), domain.Available("beta.com")}

	client.EXPECT().Check(mock.Anything, batch).Return(nil, transient()).Twice()
	client.EXPECT().Check(mock.Anything, batch).Return(expected, nil).Once()
	observer.EXPECT().ObserveUpstream(retry.ResultTransient, mock.Anything).Return().Twice()
	observer.EXPECT().ObserveRetry().Return().Twice()
	observer.EXPECT().ObserveUpstream(retry.ResultOK, mock.Anything).Return().Once()

	sleeper := &sleepRecorder{}
	c := newController(client, sleeper, retry.WithObserver(observer))

	out := c.CheckBatch(context.Background(), batch)

	assert.Equal(t, expected, out)
	assert.Equal(t, []time.Duration{400 * time.Millisecond, 800 * time.Millisecond}, sleeper.delays)
}

func TestCheckBatch_ExhaustsAttempts(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.EXPECT().Check(mock.Anything, batch).Return(nil, transient()).Times(5)

	sleeper := &sleepRecorder{}
	c := newController(client, sleeper)

	out := c.CheckBatch(context.Background(), batch)

	require.Len(t, out, 2)
	for i, o := range out {
		assert.Equal(t, batch[i], o.Domain)
		assert.Nil(t, o.Available)
		assert.Contains(t, o.Error, "gave up after 5 attempts")
		assert.Contains(t, o.Error, "rate limited")
	}
	assert.Equal(t, []time.Duration{
		400 * time.Millisecond,
		800 * time.Millisecond,
		1600 * time.Millisecond,
		3200 * time.Millisecond,
	}, sleeper.delays)
}

func TestCheckBatch_HardFailureIsNotRetried(t *testing.T) {
	client := mocks.NewMockClient(t)
	observer := mocks.NewMockObserver(t)

	client.EXPECT().Check(mock.Anything, batch).
		Return(nil, &upstream.HardError{StatusCode: 403, Message: "bad key"}).Once()
	observer.EXPECT().ObserveUpstream(retry.ResultHard, mock.Anything).Return().Once()
	observer.EXPECT().ObserveDegraded("upstream error 403: bad key").Return().Once()

	sleeper := &sleepRecorder{}
	c := newController(client, sleeper, retry.WithObserver(observer))

	out := c.CheckBatch(context.Background(), batch)

	require.Len(t, out, 2)
	for _, o := range out {
		assert.Equal(t, domain.StatusUnknown, o.Status())
		assert.Equal(t, "upstream error 403: bad key", o.Error)
	}
	assert.Empty(t, sleeper.delays)
}

func TestCheckBatch_CancelledDuringBackoff(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.EXPECT().Check(mock.Anything, batch).Return(nil, transient()).Once()

	sleeper := &sleepRecorder{err: context.Canceled}
	c := newController(client, sleeper)

	out := c.CheckBatch(context.Background(), batch)

	require.Len(t, out, 2)
	for _, o := range out {
		assert.Nil(t, o.Available)
		assert.Contains(t, o.Error, "cancelled during backoff")
	}
	assert.Len(t, sleeper.delays, 1)
}

func TestCheckBatch_CancelledDuringCall(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := mocks.NewMockClient(t)
	client.EXPECT().Check(mock.Anything, batch).
		RunAndReturn(func(context.Context, []string) ([]domain.Outcome, error) {
			cancel()
			return nil, errors.New("request aborted")
		}).Once()

	sleeper := &sleepRecorder{}
	c := newController(client, sleeper)

	out := c.CheckBatch(ctx, batch)

	require.Len(t, out, 2)
	assert.Equal(t, context.Canceled.Error(), out[0].Error)
	assert.Empty(t, sleeper.delays)
}

func TestCheckBatch_EmptyBatch(t *testing.T) {
	client := mocks.NewMockClient(t)
	c := newController(client, &sleepRecorder{})

	assert.Empty(t, c.CheckBatch(context.Background(), nil))
}

func TestCheckBatch_RealSleepHonoursContext(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.EXPECT().Check(mock.Anything, batch).Return(nil, transient()).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := retry.New(client, retry.Config{BaseDelay: time.Hour, MaxDelay: time.Hour}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	out := c.CheckBatch(ctx, batch)

	assert.Less(t, time.Since(start), 5*time.Second)
	require.Len(t, out, 2)
	assert.Contains(t, out[0].Error, "cancelled during backoff")
}

func TestBackoff(t *testing.T) {
	maxJitter := func(d time.Duration) time.Duration { return d - 1 }
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := retry.New(nil, retry.Config{}, logger, retry.WithJitter(maxJitter))

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{attempt: 1, expected: 800*time.Millisecond - 1},
		{attempt: 2, expected: 1600*time.Millisecond - 1},
		{attempt: 3, expected: 3200*time.Millisecond - 1},
		{attempt: 4, expected: 6400*time.Millisecond - 1},
		{attempt: 5, expected: 10 * time.Second},
		{attempt: 64, expected: 10 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, c.Backoff(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestBackoff_JitterRange(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := retry.New(nil, retry.Config{}, logger)

	for attempt := 1; attempt <= 5; attempt++ {
		exp := 400 * time.Millisecond << (attempt - 1)
		upper := min(2*exp, 10*time.Second)
		for range 50 {
			d := c.Backoff(attempt)
			assert.GreaterOrEqual(t, d, min(exp, 10*time.Second))
			assert.LessOrEqual(t, d, upper)
		}
	}
}

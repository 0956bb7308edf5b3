package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"domainscout/internal/metrics"
	"domainscout/internal/metrics/mocks"
)

func TestSampler_Sample(t *testing.T) {
	prefs := mocks.NewMockCacheStater(t)
	jobs := mocks.NewMockJobCounter(t)

	prefs.EXPECT().Stats().Return(uint64(30), uint64(10), 0.75)
	jobs.EXPECT().ActiveJobs().Return(2)

	s := metrics.NewSampler(nil, metrics.WithPrefs(prefs), metrics.WithJobs(jobs))
	m := s.Sample()

	assert.Equal(t, int64(30), m.PrefsHits)
	assert.Equal(t, int64(10), m.PrefsMisses)
	assert.InDelta(t, 0.75, m.PrefsHitRatio, 1e-9)
	assert.Equal(t, int64(2), m.ActiveJobs)
	assert.Positive(t, m.Goroutines)
	assert.Zero(t, m.PoolMax)
	assert.False(t, m.Time.IsZero())
}

func TestSampler_RunFansOut(t *testing.T) {
	first := mocks.NewMockInfraRecorder(t)
	second := mocks.NewMockInfraRecorder(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorded := make(chan struct{})
	first.EXPECT().RecordInfra(mock.Anything).Return().Maybe()
	second.EXPECT().RecordInfra(mock.Anything).Run(func(metrics.InfraMetric) {
		select {
		case recorded <- struct{}{}:
		default:
		}
	}).Return().Maybe()

	s := metrics.NewSampler([]metrics.InfraRecorder{first, second})

	done := make(chan struct{})
	go func() {
		s.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-recorded:
	case <-time.After(2 * time.Second):
		t.Fatal("no sample recorded")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sampler did not stop")
	}
	first.AssertCalled(t, "RecordInfra", mock.Anything)
}

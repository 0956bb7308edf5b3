package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"domainscout/internal/config"
)

const drainTimeout = 5 * time.Second

// table is one buffered metric stream and the Postgres table it lands in.
type table[T any] struct {
	name    string
	columns []string
	row     func(T) []any
	ch      chan T
}

// Recorder buffers metrics in memory and writes them to Postgres in COPY
// batches. Recording never blocks: a full buffer drops the metric.
type Recorder struct {
	writer       CopyWriter
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	http         *table[HTTPMetric]
	business     *table[BusinessMetric]
	infra        *table[InfraMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(writer CopyWriter, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		writer: writer,
		logger: logger,
		cfg:    cfg,
		http: &table[HTTPMetric]{
			name:    "http_metrics",
			columns: []string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "error"},
			row: func(m HTTPMetric) []any {
				return []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
			},
			ch: make(chan HTTPMetric, cfg.BufferSize),
		},
		business: &table[BusinessMetric]{
			name:    "business_metrics",
			columns: []string{"time", "metric_name", "value", "labels"},
			row: func(m BusinessMetric) []any {
				labelsJSON, _ := json.Marshal(m.Labels)
				return []any{m.Time, m.MetricName, m.Value, labelsJSON}
			},
			ch: make(chan BusinessMetric, cfg.BufferSize),
		},
		infra: &table[InfraMetric]{
			name: "infra_metrics",
			columns: []string{
				"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
				"prefs_hits", "prefs_misses", "prefs_hit_ratio", "active_jobs",
				"goroutines", "heap_alloc_mb",
			},
			row: func(m InfraMetric) []any {
				return []any{
					m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
					m.PrefsHits, m.PrefsMisses, m.PrefsHitRatio, m.ActiveJobs,
					m.Goroutines, m.HeapAllocMB,
				}
			},
			ch: make(chan InfraMetric, cfg.BufferSize),
		},
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	enqueue(r, r.http, m)
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	enqueue(r, r.business, BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	})
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	enqueue(r, r.infra, m)
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go flushLoop(ctx, r, r.http, flushInterval)
	go flushLoop(ctx, r, r.business, flushInterval)
	go flushLoop(ctx, r, r.infra, flushInterval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func enqueue[T any](r *Recorder, t *table[T], m T) {
	if !r.cfg.Enabled {
		return
	}
	select {
	case t.ch <- m:
	default:
		r.logger.Warn("metrics buffer full, dropping metric", slog.String("table", t.name))
	}
}

func flushLoop[T any](ctx context.Context, r *Recorder, t *table[T], interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.FlushThreshold)

	for {
		select {
		case <-ctx.Done():
			drain(r, t, batch)
			return
		case <-r.shutdownCh:
			drain(r, t, batch)
			return
		case m := <-t.ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				write(ctx, r, t, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				write(ctx, r, t, batch)
				batch = batch[:0]
			}
		}
	}
}

// drain empties the channel into a final batch. The run context may already
// be cancelled, so the write gets its own deadline.
func drain[T any](r *Recorder, t *table[T], batch []T) {
	for {
		select {
		case m := <-t.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
				write(ctx, r, t, batch)
				cancel()
			}
			return
		}
	}
}

func write[T any](ctx context.Context, r *Recorder, t *table[T], batch []T) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = t.row(m)
	}

	_, err := r.writer.CopyFrom(ctx, pgx.Identifier{t.name}, t.columns, pgx.CopyFromRows(rows))
	if err != nil {
		r.logger.Error("failed to write metrics batch",
			slog.String("table", t.name),
			slog.Int("rows", len(rows)),
			slog.String("error", err.Error()))
	}
}

package metrics

//go:generate go tool mockery

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CopyWriter is the bulk insert half of a pgx pool.
type CopyWriter interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type InfraRecorder interface {
	RecordInfra(m InfraMetric)
}

type PoolStater interface {
	Stat() *pgxpool.Stat
}

type CacheStater interface {
	Stats() (hits, misses uint64, ratio float64)
}

type JobCounter interface {
	ActiveJobs() int
}

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bundlegen/internal/domain/entities"
	"bundlegen/internal/ports/output"
)

var _ output.RunRepository = (*RunRepository)(nil)

const (
	insertOutputSQL = `
INSERT INTO export_outputs (set_name, target, locale, format, path, key_count, digest, started_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	latestOutputsSQL = `
SELECT target, locale, format, path, key_count, digest
FROM export_outputs
WHERE set_name = $1
  AND started_at = (SELECT MAX(started_at) FROM export_outputs WHERE set_name = $1)
ORDER BY id`
)

type RunRepository struct {
	pool *pgxpool.Pool
}

func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

func (r *RunRepository) Record(ctx context.Context, set string, startedAt time.Time, out entities.Output) error {
	_, err := r.pool.Exec(ctx, insertOutputSQL,
		set, out.Target, out.Locale, out.Format, out.Path, int32(out.Keys), out.Digest, startedAt)
	if err != nil {
		return fmt.Errorf("record output %s: %w", out.Path, err)
	}
	return nil
}

func (r *RunRepository) LatestBySet(ctx context.Context, set string) ([]entities.Output, error) {
	rows, err := r.pool.Query(ctx, latestOutputsSQL, set)
	if err != nil {
		return nil, fmt.Errorf("list outputs of %s: %w", set, err)
	}
	records, err := pgx.CollectRows(rows, scanOutput)
	if err != nil {
		return nil, fmt.Errorf("scan outputs of %s: %w", set, err)
	}
	outputs := make([]entities.Output, 0, len(records))
	for _, rec := range records {
		outputs = append(outputs, outputToDomain(rec))
	}
	return outputs, nil
}

// NopRunRepository is used when no ledger database is configured.
type NopRunRepository struct{}

var _ output.RunRepository = NopRunRepository{}

func (NopRunRepository) Record(context.Context, string, time.Time, entities.Output) error {
	return nil
}

func (NopRunRepository) LatestBySet(context.Context, string) ([]entities.Output, error) {
	return nil, nil
}

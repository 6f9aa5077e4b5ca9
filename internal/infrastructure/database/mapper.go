package database

import (
	"github.com/jackc/pgx/v5"

	"bundlegen/internal/domain/entities"
)

// outputRow mirrors the columns selected from export_outputs.
type outputRow struct {
	Target   string
	Locale   string
	Format   string
	Path     string
	KeyCount int32
	Digest   string
}

func scanOutput(row pgx.CollectableRow) (outputRow, error) {
	var r outputRow
	err := row.Scan(&r.Target, &r.Locale, &r.Format, &r.Path, &r.KeyCount, &r.Digest)
	return r, err
}

func outputToDomain(r outputRow) entities.Output {
	return entities.Output{
		Target: r.Target,
		Locale: r.Locale,
		Format: r.Format,
		Path:   r.Path,
		Keys:   int(r.KeyCount),
		Digest: r.Digest,
	}
}

package output

import (
	"context"
	"time"

	"bundlegen/internal/domain/entities"
)

// RunRepository keeps a ledger of exported files.
type RunRepository interface {
	Record(ctx context.Context, set string, startedAt time.Time, out entities.Output) error
	LatestBySet(ctx context.Context, set string) ([]entities.Output, error)
}

package input

import (
	"context"

	"bundlegen/internal/domain/entities"
)

type ExportUseCase interface {
	// Export writes the named sets, or every set when names is empty.
	Export(ctx context.Context, names ...string) ([]entities.Summary, error)
	// Check validates the named sets without writing anything.
	Check(ctx context.Context, names ...string) (entities.Report, error)
	// History returns the files recorded by the latest export of a set.
	History(ctx context.Context, set string) ([]entities.Output, error)
	Sets() []entities.Set
}

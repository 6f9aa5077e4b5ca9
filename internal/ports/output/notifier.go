package output

import (
	"context"

	"bundlegen/internal/domain/entities"
)

// Notifier announces finished exports outside the console.
type Notifier interface {
	Notify(ctx context.Context, summary entities.Summary) error
}

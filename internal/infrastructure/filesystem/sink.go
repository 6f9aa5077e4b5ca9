package filesystem

import (
	"context"
	"fmt"
	"os"

	"bundlegen/internal/ports/output"
)

var _ output.Sink = (*Sink)(nil)

const fileMode = 0o644

// Sink writes bundles to the local filesystem. Missing directories are not
// created: the write error is returned as is.
type Sink struct{}

func NewSink() *Sink { return &Sink{} }

func (s *Sink) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

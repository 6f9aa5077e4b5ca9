package output

import "context"

// Sink persists encoded bundles.
type Sink interface {
	// Write stores data at path, replacing any previous content.
	Write(ctx context.Context, path string, data []byte) error
}

package output

import "bundlegen/internal/domain/entities"

// Encoder serializes a locale bundle into a file format.
type Encoder interface {
	// Format is the name used in configuration (e.g. "json").
	Format() string
	// Ext is the file extension, dot included.
	Ext() string
	Encode(b entities.Bundle) ([]byte, error)
}

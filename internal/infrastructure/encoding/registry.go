package encoding

import (
	"fmt"

	"bundlegen/internal/domain"
	"bundlegen/internal/infrastructure/encoding/jsonfile"
	"bundlegen/internal/infrastructure/encoding/tomlfile"
	"bundlegen/internal/ports/output"
)

// Registry resolves encoders by format name.
type Registry struct{ byFormat map[string]output.Encoder }

func New() *Registry { return &Registry{byFormat: map[string]output.Encoder{}} }

// Default returns a registry holding every built-in encoder.
func Default() *Registry {
	r := New()
	r.Register(jsonfile.New())
	r.Register(tomlfile.New())
	return r
}

func (r *Registry) Register(e output.Encoder) { r.byFormat[e.Format()] = e }

func (r *Registry) Get(format string) (output.Encoder, bool) {
	e, ok := r.byFormat[format]
	return e, ok
}

// Resolve returns the encoders of formats, in order.
func (r *Registry) Resolve(formats []string) ([]output.Encoder, error) {
	encoders := make([]output.Encoder, 0, len(formats))
	for _, f := range formats {
		e, ok := r.Get(f)
		if !ok {
			return nil, fmt.Errorf("format %q: %w", f, domain.ErrUnknownFormat)
		}
		encoders = append(encoders, e)
	}
	return encoders, nil
}

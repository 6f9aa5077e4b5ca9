// Package tomlfile writes locale bundles as TOML message files, loadable by
// go-i18n based runtimes. Tables are written with sorted keys.
package tomlfile

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"bundlegen/internal/domain"
	"bundlegen/internal/domain/entities"
	"bundlegen/internal/ports/output"
)

var _ output.Encoder = (*Encoder)(nil)

type Encoder struct{}

func New() *Encoder { return &Encoder{} }

func (e *Encoder) Format() string { return "toml" }

func (e *Encoder) Ext() string { return ".toml" }

func (e *Encoder) Encode(b entities.Bundle) ([]byte, error) {
	doc, err := toMap(b)
	if err != nil {
		return nil, err
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal toml: %w", err)
	}
	return out, nil
}

func toMap(b entities.Bundle) (map[string]any, error) {
	m := make(map[string]any, len(b))
	for _, e := range b {
		switch v := e.Value.(type) {
		case entities.Text:
			m[e.Key] = string(v)
		case entities.List:
			m[e.Key] = []string(v)
		case entities.Bundle:
			sub, err := toMap(v)
			if err != nil {
				return nil, err
			}
			m[e.Key] = sub
		default:
			return nil, fmt.Errorf("key %q: %T: %w", e.Key, v, domain.ErrUnsupportedValue)
		}
	}
	return m, nil
}

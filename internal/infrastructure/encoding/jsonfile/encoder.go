// Package jsonfile writes locale bundles as human-readable JSON documents.
//
// Output is UTF-8 with non-ASCII and HTML-sensitive characters kept literal,
// two-space indentation, ": " key separators and no trailing newline.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"bundlegen/internal/domain"
	"bundlegen/internal/domain/entities"
	"bundlegen/internal/ports/output"
)

var _ output.Encoder = (*Encoder)(nil)

const indent = "  "

type Encoder struct{}

func New() *Encoder { return &Encoder{} }

func (e *Encoder) Format() string { return "json" }

func (e *Encoder) Ext() string { return ".json" }

// Encode renders b in declaration order.
func (e *Encoder) Encode(b entities.Bundle) ([]byte, error) {
	w := &writer{}
	if err := w.bundle(b, 0); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

type writer struct {
	buf     bytes.Buffer
	scratch bytes.Buffer
}

func (w *writer) bundle(b entities.Bundle, depth int) error {
	if len(b) == 0 {
		w.buf.WriteString("{}")
		return nil
	}
	w.buf.WriteString("{\n")
	for i, e := range b {
		w.pad(depth + 1)
		if err := w.str(e.Key); err != nil {
			return err
		}
		w.buf.WriteString(": ")
		if err := w.value(e.Key, e.Value, depth+1); err != nil {
			return err
		}
		if i < len(b)-1 {
			w.buf.WriteByte(',')
		}
		w.buf.WriteByte('\n')
	}
	w.pad(depth)
	w.buf.WriteByte('}')
	return nil
}

func (w *writer) value(key string, v entities.Value, depth int) error {
	switch v := v.(type) {
	case entities.Text:
		return w.str(string(v))
	case entities.List:
		return w.list(v, depth)
	case entities.Bundle:
		return w.bundle(v, depth)
	default:
		return fmt.Errorf("key %q: %T: %w", key, v, domain.ErrUnsupportedValue)
	}
}

func (w *writer) list(l entities.List, depth int) error {
	if len(l) == 0 {
		w.buf.WriteString("[]")
		return nil
	}
	w.buf.WriteString("[\n")
	for i, s := range l {
		w.pad(depth + 1)
		if err := w.str(s); err != nil {
			return err
		}
		if i < len(l)-1 {
			w.buf.WriteByte(',')
		}
		w.buf.WriteByte('\n')
	}
	w.pad(depth)
	w.buf.WriteByte(']')
	return nil
}

// str writes s as a JSON string without HTML escaping.
func (w *writer) str(s string) error {
	w.scratch.Reset()
	enc := json.NewEncoder(&w.scratch)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	w.buf.Write(bytes.TrimSuffix(w.scratch.Bytes(), []byte{'\n'}))
	return nil
}

func (w *writer) pad(depth int) {
	for i := 0; i < depth; i++ {
		w.buf.WriteString(indent)
	}
}

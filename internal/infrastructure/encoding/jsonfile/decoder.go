package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"bundlegen/internal/domain"
	"bundlegen/internal/domain/entities"
)

// Decode reads a JSON document written by Encoder back into a bundle, keeping
// key order.
func Decode(data []byte) (entities.Bundle, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("decode bundle: top-level value is not an object: %w", domain.ErrUnsupportedValue)
	}
	b, err := decodeObject(dec)
	if err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode bundle: trailing data after top-level object")
	}
	return b, nil
}

// decodeObject reads the members of an object whose '{' was consumed.
func decodeObject(dec *json.Decoder) (entities.Bundle, error) {
	b := entities.Bundle{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		v, err := decodeValue(dec, key)
		if err != nil {
			return nil, err
		}
		b = append(b, entities.Entry{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return b, nil
}

func decodeValue(dec *json.Decoder, key string) (entities.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case string:
		return entities.Text(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeList(dec, key)
		}
	}
	return nil, fmt.Errorf("key %q: %v: %w", key, tok, domain.ErrUnsupportedValue)
}

func decodeList(dec *json.Decoder, key string) (entities.List, error) {
	l := entities.List{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		s, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("key %q: list item %v: %w", key, tok, domain.ErrUnsupportedValue)
		}
		l = append(l, s)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return l, nil
}

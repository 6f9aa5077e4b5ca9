package entities

import (
	"fmt"
	"regexp"
)

// Value is a bundle value: a Text leaf, a List of strings or a nested Bundle.
type Value interface {
	isValue()
}

// Text is a display string, possibly holding placeholders such as {{count}}.
type Text string

// List is an ordered list of display strings (bullet items in legal pages).
type List []string

func (Text) isValue()   {}
func (List) isValue()   {}
func (Bundle) isValue() {}

// Entry is a single key of a bundle.
type Entry struct {
	Key   string
	Value Value
}

// Bundle maps keys to values. Declaration order is kept for readability only.
type Bundle []Entry

// Merge folds bundles into a new one. A key present in several bundles takes
// the value of the last one but keeps the position of its first occurrence.
func Merge(bundles ...Bundle) Bundle {
	out := Bundle{}
	index := map[string]int{}
	for _, b := range bundles {
		for _, e := range b {
			if i, ok := index[e.Key]; ok {
				out[i].Value = e.Value
				continue
			}
			index[e.Key] = len(out)
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of top-level keys.
func (b Bundle) Len() int {
	return len(b)
}

// Keys returns the top-level keys in declaration order.
func (b Bundle) Keys() []string {
	keys := make([]string, 0, len(b))
	for _, e := range b {
		keys = append(keys, e.Key)
	}
	return keys
}

// Get returns the value stored under key. When a literal declares the same key
// twice, the last declaration wins.
func (b Bundle) Get(key string) (Value, bool) {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i].Key == key {
			return b[i].Value, true
		}
	}
	return nil, false
}

// KeyPaths lists every key path of the bundle, nested ones included.
// Nested keys are joined with "/" and list items are addressed as key[i].
func (b Bundle) KeyPaths() []string {
	var paths []string
	b.walk("", func(path string, v Value) {
		paths = append(paths, path)
	})
	return paths
}

// Leaves calls fn for every string of the bundle with its key path.
func (b Bundle) Leaves(fn func(path, s string)) {
	b.walk("", func(path string, v Value) {
		switch v := v.(type) {
		case Text:
			fn(path, string(v))
		case List:
			for i, s := range v {
				fn(fmt.Sprintf("%s[%d]", path, i), s)
			}
		}
	})
}

func (b Bundle) walk(prefix string, fn func(path string, v Value)) {
	for _, e := range b {
		path := prefix + e.Key
		fn(path, e.Value)
		switch v := e.Value.(type) {
		case Bundle:
			v.walk(path+"/", fn)
		case List:
			for i := range v {
				fn(fmt.Sprintf("%s[%d]", path, i), nil)
			}
		}
	}
}

var placeholderRe = regexp.MustCompile(`\{\{\s*[^{}\s]+\s*\}\}|\{[^{}\s]+\}`)

// Placeholders returns the {{name}} and {name} markers found in s, in order.
func Placeholders(s string) []string {
	return placeholderRe.FindAllString(s, -1)
}

package movie_api

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// OrderedMap is a string-keyed map that remembers insertion order.
// When decoded from JSON the order is the order of keys in the document.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: map[string]V{}}
}

// Set adds or replaces value. Replacing keeps the original position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = map[string]V{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m OrderedMap[V]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m OrderedMap[V]) Len() int {
	return len(m.keys)
}

// First returns the earliest inserted entry.
func (m OrderedMap[V]) First() (string, V, bool) {
	if len(m.keys) == 0 {
		var v V
		return "", v, false
	}
	k := m.keys[0]
	return k, m.values[k], true
}

func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "read object start")
	}
	m.keys = nil
	m.values = map[string]V{}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.Errorf("expected json object, got %v", tok)
	}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return errors.Wrap(err, "read object key")
		}
		key, ok := tok.(string)
		if !ok {
			return errors.Errorf("expected string key, got %v", tok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return errors.Wrapf(err, "decode value for key %q", key)
		}
		m.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return errors.Wrap(err, "read object end")
	}
	return nil
}

func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, errors.Wrapf(err, "encode value for key %q", k)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

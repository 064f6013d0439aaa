package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject is returned when a descriptor document is not a JSON object.
var ErrNotObject = errors.New("descriptor is not a JSON object")

// Descriptor is a package descriptor (package.json) held as an ordered list of
// top-level fields. Field values are kept as raw JSON so that everything the
// generator does not own round-trips untouched.
type Descriptor struct {
	keys   []string
	fields map[string]json.RawMessage
}

// NewDescriptor returns an empty descriptor.
func NewDescriptor() *Descriptor {
	return &Descriptor{fields: make(map[string]json.RawMessage)}
}

// Keys returns the top-level field names in document order.
func (d *Descriptor) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)

	return keys
}

// Field returns the raw value of a top-level field.
func (d *Descriptor) Field(key string) (json.RawMessage, bool) {
	raw, ok := d.fields[key]
	return raw, ok
}

// SetField replaces a top-level field in place, or appends it when missing.
func (d *Descriptor) SetField(key string, raw json.RawMessage) {
	if d.fields == nil {
		d.fields = make(map[string]json.RawMessage)
	}

	if _, exists := d.fields[key]; !exists {
		d.keys = append(d.keys, key)
	}

	d.fields[key] = raw
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	d.keys = nil
	d.fields = make(map[string]json.RawMessage)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}

		d.SetField(key, raw)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after descriptor object")
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		encodedKey, err := marshalNoEscape(key)
		if err != nil {
			return nil, err
		}

		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(d.fields[key])
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

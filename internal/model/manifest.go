package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExportEntry is the manifest value for one export key. It is either a plain
// path (style sheets) or a types/import pair (modules).
type ExportEntry struct {
	Path   string
	Types  string
	Import string
}

// PathEntry returns an entry serialized as a plain string.
func PathEntry(path string) ExportEntry {
	return ExportEntry{Path: path}
}

// ModuleEntry returns an entry serialized as {"types": ..., "import": ...}.
func ModuleEntry(types, importPath string) ExportEntry {
	return ExportEntry{Types: types, Import: importPath}
}

// IsPath reports whether the entry is serialized as a plain string.
func (e ExportEntry) IsPath() bool {
	return e.Types == "" && e.Import == ""
}

func (e ExportEntry) String() string {
	if e.IsPath() {
		return e.Path
	}

	return fmt.Sprintf("types=%s import=%s", e.Types, e.Import)
}

type moduleEntryJSON struct {
	Types  string `json:"types"`
	Import string `json:"import"`
}

// MarshalJSON implements json.Marshaler.
func (e ExportEntry) MarshalJSON() ([]byte, error) {
	if e.IsPath() {
		return marshalNoEscape(e.Path)
	}

	return marshalNoEscape(moduleEntryJSON{Types: e.Types, Import: e.Import})
}

// ManifestItem is one key/entry pair of a Manifest, in insertion order.
type ManifestItem struct {
	Key   string
	Entry ExportEntry
}

// Manifest is an insertion-ordered mapping from export key to entry.
// Setting an existing key replaces its entry but keeps its position.
type Manifest struct {
	keys    []string
	entries map[string]ExportEntry
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{entries: make(map[string]ExportEntry)}
}

// Set inserts or overwrites the entry stored under key.
func (mf *Manifest) Set(key string, entry ExportEntry) {
	if _, exists := mf.entries[key]; !exists {
		mf.keys = append(mf.keys, key)
	}

	mf.entries[key] = entry
}

// Get returns the entry stored under key.
func (mf *Manifest) Get(key string) (ExportEntry, bool) {
	entry, ok := mf.entries[key]
	return entry, ok
}

// Len returns the number of distinct keys.
func (mf *Manifest) Len() int {
	return len(mf.keys)
}

// Keys returns the keys in insertion order.
func (mf *Manifest) Keys() []string {
	keys := make([]string, len(mf.keys))
	copy(keys, mf.keys)

	return keys
}

// Items returns all pairs in insertion order.
func (mf *Manifest) Items() []ManifestItem {
	items := make([]ManifestItem, 0, len(mf.keys))
	for _, key := range mf.keys {
		items = append(items, ManifestItem{Key: key, Entry: mf.entries[key]})
	}

	return items
}

// MarshalJSON implements json.Marshaler, keeping insertion order.
func (mf *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range mf.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		encodedKey, err := marshalNoEscape(key)
		if err != nil {
			return nil, err
		}

		encodedEntry, err := mf.entries[key].MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", key, err)
		}

		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(encodedEntry)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

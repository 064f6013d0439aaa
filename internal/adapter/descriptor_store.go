package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/exportgen/internal/model"
)

// ErrDescriptorInvalid is returned when the package descriptor cannot be parsed.
var ErrDescriptorInvalid = errors.New("invalid package descriptor")

const defaultDescriptorMode fs.FileMode = 0o644

// DescriptorStore loads, renders and persists package descriptors.
type DescriptorStore interface {
	Load(path m.Path) (*m.Descriptor, error)
	// Render serializes a descriptor with 2-space indentation and a single
	// trailing newline.
	Render(descriptor *m.Descriptor) ([]byte, error)
	// Save overwrites path with the rendered descriptor in one step.
	Save(path m.Path, descriptor *m.Descriptor) error
	ReadRaw(path m.Path) ([]byte, error)
}

type descriptorStore struct{}

// NewDescriptorStore constructs a DescriptorStore backed by the local disk.
func NewDescriptorStore() DescriptorStore {
	return &descriptorStore{}
}

func (ds *descriptorStore) ReadRaw(path m.Path) ([]byte, error) {
	// #nosec G304 - descriptor path comes from the project configuration
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read descriptor %s: %w", path, err)
	}

	return data, nil
}

func (ds *descriptorStore) Load(path m.Path) (*m.Descriptor, error) {
	data, err := ds.ReadRaw(path)
	if err != nil {
		return nil, err
	}

	descriptor := m.NewDescriptor()
	if err := json.Unmarshal(data, descriptor); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDescriptorInvalid, path, err)
	}

	return descriptor, nil
}

func (ds *descriptorStore) Render(descriptor *m.Descriptor) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(descriptor); err != nil {
		return nil, fmt.Errorf("encode descriptor: %w", err)
	}

	return buf.Bytes(), nil
}

func (ds *descriptorStore) Save(path m.Path, descriptor *m.Descriptor) error {
	data, err := ds.Render(descriptor)
	if err != nil {
		return err
	}

	return writeFileAtomic(string(path), data)
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// over path, keeping the permissions of the file being replaced.
func writeFileAtomic(path string, data []byte) error {
	mode := defaultDescriptorMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp descriptor: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp descriptor: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp descriptor: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp descriptor: %w", err)
	}

	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp descriptor: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace descriptor %s: %w", path, err)
	}

	return nil
}

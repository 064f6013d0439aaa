// Package domain derives the package export manifest from a source tree.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mouse-blink/exportgen/internal/adapter"
	"github.com/mouse-blink/exportgen/internal/controller"
	"github.com/mouse-blink/exportgen/internal/logging"
	m "github.com/mouse-blink/exportgen/internal/model"
)

// DefaultPreviewSize is the number of entries shown after a run.
const DefaultPreviewSize = 5

const exportsField = "exports"

// ScanArgs selects the tree to scan.
type ScanArgs struct {
	Root   m.Path // project root
	Layout Layout
}

// GenerateArgs configures a generation or check run.
type GenerateArgs struct {
	ScanArgs
	// Descriptor is the package descriptor; relative paths resolve against Root.
	Descriptor m.Path
	Preview    int
	DryRun     bool
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Generate(args GenerateArgs) error
	List(args ScanArgs) error
	Check(args GenerateArgs) error
}

type workflow struct {
	scanner *Scanner
	store   adapter.DescriptorStore
	ui      controller.UI
	log     *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.DescriptorStore,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	return &workflow{
		scanner: NewScanner(fsAdapter, logger),
		store:   store,
		ui:      ui,
		log:     logging.WithComponent(logger, "workflow"),
	}
}

// Generate rebuilds the manifest, merges it into the descriptor and writes
// the descriptor back unless args.DryRun is set.
func (w *workflow) Generate(args GenerateArgs) (err error) {
	if err := w.ui.Start(controller.WithGenerateMode()); err != nil {
		return err
	}

	defer func() { err = w.stopUI(err) }()

	summary, genErr := w.generate(args)

	return w.ui.DisplaySummary(summary, genErr)
}

// List reports the discovered units without touching the descriptor.
func (w *workflow) List(args ScanArgs) (err error) {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}

	defer func() { err = w.stopUI(err) }()

	units, scanErr := w.scanner.Discover(args.Root, args.Layout)

	return w.ui.DisplayUnits(units, scanErr)
}

// Check compares the persisted descriptor with the one Generate would write.
func (w *workflow) Check(args GenerateArgs) (err error) {
	if err := w.ui.Start(controller.WithCheckMode()); err != nil {
		return err
	}

	defer func() { err = w.stopUI(err) }()

	drift, checkErr := w.check(args)

	return w.ui.DisplayDrift(drift, checkErr)
}

// stopUI shuts the UI down. A UI failure only surfaces when the operation
// itself succeeded, since its own error was already shown.
func (w *workflow) stopUI(err error) error {
	w.ui.Close()

	if waitErr := w.ui.Wait(); waitErr != nil && err == nil {
		return waitErr
	}

	return err
}

func (w *workflow) generate(args GenerateArgs) (m.Summary, error) {
	descriptorPath := w.descriptorPath(args)

	manifest, descriptor, err := w.assemble(args, descriptorPath)
	if err != nil {
		return m.Summary{}, err
	}

	if args.DryRun {
		w.log.Info("dry run, descriptor not written", "descriptor", descriptorPath)
	} else {
		if err := w.store.Save(descriptorPath, descriptor); err != nil {
			return m.Summary{}, err
		}

		w.log.Info("descriptor written", "descriptor", descriptorPath, "exports", manifest.Len())
	}

	return summarize(manifest, descriptorPath, args.Preview, args.DryRun), nil
}

func (w *workflow) check(args GenerateArgs) (m.Drift, error) {
	descriptorPath := w.descriptorPath(args)

	manifest, descriptor, err := w.assemble(args, descriptorPath)
	if err != nil {
		return m.Drift{}, err
	}

	current, err := w.store.ReadRaw(descriptorPath)
	if err != nil {
		return m.Drift{}, err
	}

	rendered, err := w.store.Render(descriptor)
	if err != nil {
		return m.Drift{}, err
	}

	drift := m.Drift{Descriptor: descriptorPath}
	if bytes.Equal(current, rendered) {
		return drift, nil
	}

	previous, err := w.persistedExports(descriptorPath)
	if err != nil {
		return m.Drift{}, err
	}

	drift = diffExports(previous, manifest)
	drift.Descriptor = descriptorPath

	if drift.Empty() {
		drift.Reordered = true
	}

	return drift, fmt.Errorf("%w: %s", ErrExportsOutOfDate, descriptorPath)
}

// assemble runs discovery, builds the manifest and merges it into a freshly
// loaded descriptor. The source root is checked before the descriptor is read.
func (w *workflow) assemble(args GenerateArgs, descriptorPath m.Path) (*m.Manifest, *m.Descriptor, error) {
	units, err := w.scanner.Discover(args.Root, args.Layout)
	if err != nil {
		return nil, nil, err
	}

	manifest := BuildManifest(units, args.Layout)

	descriptor, err := w.store.Load(descriptorPath)
	if err != nil {
		return nil, nil, err
	}

	exports, err := manifest.MarshalJSON()
	if err != nil {
		return nil, nil, fmt.Errorf("encode exports: %w", err)
	}

	descriptor.SetField(exportsField, exports)

	return manifest, descriptor, nil
}

// persistedExports returns the exports currently on disk as an ordered
// object. A missing or non-object exports field yields an empty object.
func (w *workflow) persistedExports(descriptorPath m.Path) (*m.Descriptor, error) {
	descriptor, err := w.store.Load(descriptorPath)
	if err != nil {
		return nil, err
	}

	exports := m.NewDescriptor()

	raw, ok := descriptor.Field(exportsField)
	if !ok {
		return exports, nil
	}

	if err := json.Unmarshal(raw, exports); err != nil {
		w.log.Debug("persisted exports are not an object", "descriptor", descriptorPath, "error", err)
		return m.NewDescriptor(), nil
	}

	return exports, nil
}

func (w *workflow) descriptorPath(args GenerateArgs) m.Path {
	if filepath.IsAbs(string(args.Descriptor)) {
		return args.Descriptor
	}

	return m.Path(filepath.Join(string(args.Root), string(args.Descriptor)))
}

func summarize(manifest *m.Manifest, descriptorPath m.Path, previewSize int, dryRun bool) m.Summary {
	items := manifest.Items()

	if previewSize < 0 {
		previewSize = 0
	}

	preview := items[:min(previewSize, len(items))]

	return m.Summary{
		Descriptor: descriptorPath,
		Total:      len(items),
		Preview:    preview,
		Omitted:    len(items) - len(preview),
		DryRun:     dryRun,
	}
}

func diffExports(previous *m.Descriptor, manifest *m.Manifest) m.Drift {
	var drift m.Drift

	for _, item := range manifest.Items() {
		old, ok := previous.Field(item.Key)
		if !ok {
			drift.Added = append(drift.Added, item.Key)
			continue
		}

		fresh, err := item.Entry.MarshalJSON()
		if err != nil || !sameJSON(old, fresh) {
			drift.Changed = append(drift.Changed, item.Key)
		}
	}

	for _, key := range previous.Keys() {
		if _, ok := manifest.Get(key); !ok {
			drift.Removed = append(drift.Removed, key)
		}
	}

	return drift
}

func sameJSON(a, b []byte) bool {
	var ca, cb bytes.Buffer

	if err := json.Compact(&ca, a); err != nil {
		return false
	}

	if err := json.Compact(&cb, b); err != nil {
		return false
	}

	return bytes.Equal(ca.Bytes(), cb.Bytes())
}

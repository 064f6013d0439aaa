package domain

import (
	"path"
	"strings"

	m "github.com/mouse-blink/exportgen/internal/model"
)

// EntryFor derives the export entry of a unit. Style sheets point at their
// source file; modules point at the compiler's declaration and JS output.
func EntryFor(unit m.SourceUnit, layout Layout) m.ExportEntry {
	if unit.Kind == m.KindStyleSheet {
		return m.PathEntry(relativeRef(layout.SourceRoot, unit.SourcePath))
	}

	stem := strings.TrimSuffix(unit.SourcePath, path.Ext(unit.SourcePath))

	return m.ModuleEntry(
		relativeRef(layout.OutputRoot, stem+".d.ts"),
		relativeRef(layout.OutputRoot, stem+".js"),
	)
}

// BuildManifest inserts the units in order; a later unit with the same key
// overwrites an earlier one.
func BuildManifest(units []m.SourceUnit, layout Layout) *m.Manifest {
	manifest := m.NewManifest()

	for _, unit := range units {
		manifest.Set(unit.Key(), EntryFor(unit, layout))
	}

	return manifest
}

func relativeRef(root, rel string) string {
	return "./" + path.Join(root, rel)
}

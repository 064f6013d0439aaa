// Package model defines the data structures for export manifest generation.
package model

// Path represents a file system path.
type Path string

// UnitKind categorizes a publishable unit discovered in the source tree.
type UnitKind string

const (
	// KindStyleSheet is a CSS entry point (base style sheet or theme).
	// Style sheets are exported as plain string paths.
	KindStyleSheet UnitKind = "style-sheet"

	// KindFlatComponent is a single-file component directly under components/ui.
	KindFlatComponent UnitKind = "flat-component"

	// KindGroupedComponent is a component folder with an index barrel file.
	KindGroupedComponent UnitKind = "grouped-component"

	// KindUtilityModule is the shared lib/utils module.
	KindUtilityModule UnitKind = "utility-module"

	// KindHookModule is a single-file hook under hooks/.
	KindHookModule UnitKind = "hook-module"
)

// SourceUnit is a publishable file or folder found during a scan.
type SourceUnit struct {
	Kind UnitKind
	// Name is the public export key without the "./" prefix.
	Name string
	// SourcePath is slash-separated and relative to the scanned source root.
	SourcePath string
}

// Key returns the manifest key for the unit.
func (u SourceUnit) Key() string {
	return "./" + u.Name
}

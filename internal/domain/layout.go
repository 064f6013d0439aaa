package domain

// Layout describes where publishable units live in a source tree and where
// the compiler puts their build output. SourceRoot and OutputRoot are
// project-relative, slash-separated paths and are used textually when
// synthesizing manifest values.
//
// Themes and namespaces are fixed tables. New themes or namespaces need a
// change here; only files inside a known namespace are discovered.
type Layout struct {
	SourceRoot string
	OutputRoot string

	// Extensions are the source file extensions considered during discovery,
	// including the leading dot.
	Extensions []string

	// DeclarationExt marks type declaration files, which share a source
	// extension but are never exported.
	DeclarationExt string

	// StyleSheet is the base style sheet, relative to SourceRoot. It is
	// exported once under each of StyleSheetKeys.
	StyleSheet     string
	StyleSheetKeys []string

	// ThemeDir holds one <theme>.css per entry of Themes.
	ThemeDir string
	Themes   []string

	FlatNamespace     string
	GroupedNamespaces []string

	ReservedSuffixes []string
	BarrelName       string
	UtilityModule    string // relative to SourceRoot, without extension
	HooksDir         string
}

// Default source and output roots.
const (
	DefaultSourceRoot = "src"
	DefaultOutputRoot = "dist"
)

// DefaultLayout returns the layout of the component library.
func DefaultLayout() Layout {
	return Layout{
		SourceRoot:        DefaultSourceRoot,
		OutputRoot:        DefaultOutputRoot,
		Extensions:        []string{".ts", ".tsx"},
		DeclarationExt:    ".d.ts",
		StyleSheet:        "styles/styles.css",
		StyleSheetKeys:    []string{"styles.css", "styles"},
		ThemeDir:          "styles/themes",
		Themes:            []string{"purple-dawn", "first-light"},
		FlatNamespace:     "ui",
		GroupedNamespaces: []string{"neynar"},
		ReservedSuffixes:  []string{".stories", ".test", ".spec"},
		BarrelName:        "index",
		UtilityModule:     "lib/utils",
		HooksDir:          "hooks",
	}
}

// WithRoots returns a copy of the layout with the given roots. Empty values
// keep the current ones.
func (l Layout) WithRoots(sourceRoot, outputRoot string) Layout {
	if sourceRoot != "" {
		l.SourceRoot = sourceRoot
	}

	if outputRoot != "" {
		l.OutputRoot = outputRoot
	}

	return l
}

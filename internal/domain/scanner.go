package domain

import (
	"fmt"
	"log/slog"
	"path"

	"github.com/mouse-blink/exportgen/internal/adapter"
	"github.com/mouse-blink/exportgen/internal/logging"
	m "github.com/mouse-blink/exportgen/internal/model"
)

// Scanner discovers the publishable units of a source tree.
type Scanner struct {
	fs  adapter.SourceFSAdapter
	log *slog.Logger
}

// NewScanner creates a Scanner reading through fsAdapter.
func NewScanner(fsAdapter adapter.SourceFSAdapter, logger *slog.Logger) *Scanner {
	return &Scanner{fs: fsAdapter, log: logging.WithComponent(logger, "scanner")}
}

// SourceRoot resolves the source root of layout against the project root.
func (s *Scanner) SourceRoot(root m.Path, layout Layout) m.Path {
	return s.fs.JoinPath(string(root), layout.SourceRoot)
}

// Discover returns the units of the tree under root, in manifest order:
// style sheets, flat components, grouped components, the utility module,
// then hooks. Within a step units are sorted by source path.
func (s *Scanner) Discover(root m.Path, layout Layout) ([]m.SourceUnit, error) {
	sourceRoot := s.SourceRoot(root, layout)

	info, err := s.fs.FileInfo(sourceRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceRootMissing, sourceRoot, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceRootMissing, sourceRoot)
	}

	units := s.styleSheets(layout)

	steps := []func(m.Path, Layout) ([]m.SourceUnit, error){
		s.flatComponents,
		s.groupedComponents,
		s.utilityModule,
		s.hookModules,
	}

	for _, step := range steps {
		found, err := step(sourceRoot, layout)
		if err != nil {
			return nil, err
		}

		units = append(units, found...)
	}

	s.log.Debug("discovery finished", "root", sourceRoot, "units", len(units))

	return units, nil
}

func (s *Scanner) styleSheets(layout Layout) []m.SourceUnit {
	units := make([]m.SourceUnit, 0, len(layout.StyleSheetKeys)+len(layout.Themes))

	for _, key := range layout.StyleSheetKeys {
		units = append(units, m.SourceUnit{
			Kind:       m.KindStyleSheet,
			Name:       key,
			SourcePath: layout.StyleSheet,
		})
	}

	for _, theme := range layout.Themes {
		units = append(units, m.SourceUnit{
			Kind:       m.KindStyleSheet,
			Name:       path.Join("themes", theme),
			SourcePath: path.Join(layout.ThemeDir, theme+".css"),
		})
	}

	return units
}

func (s *Scanner) flatComponents(sourceRoot m.Path, layout Layout) ([]m.SourceUnit, error) {
	files, err := s.fs.Glob(sourceRoot, path.Join("components", layout.FlatNamespace, "*"))
	if err != nil {
		return nil, err
	}

	var units []m.SourceUnit

	for _, file := range files {
		if !layout.isFlatComponent(file) {
			s.log.Debug("skipping file", "path", file, "kind", m.KindFlatComponent)
			continue
		}

		units = append(units, m.SourceUnit{
			Kind:       m.KindFlatComponent,
			Name:       baseName(file),
			SourcePath: file,
		})
	}

	return units, nil
}

func (s *Scanner) groupedComponents(sourceRoot m.Path, layout Layout) ([]m.SourceUnit, error) {
	var units []m.SourceUnit

	for _, namespace := range layout.GroupedNamespaces {
		pattern := path.Join("components", namespace, "*", layout.BarrelName) + layout.extGlob()

		files, err := s.fs.Glob(sourceRoot, pattern)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			units = append(units, m.SourceUnit{
				Kind:       m.KindGroupedComponent,
				Name:       folderName(file),
				SourcePath: file,
			})
		}
	}

	return units, nil
}

func (s *Scanner) utilityModule(sourceRoot m.Path, layout Layout) ([]m.SourceUnit, error) {
	for _, ext := range layout.Extensions {
		rel := layout.UtilityModule + ext

		ok, err := s.fs.Exists(s.fs.JoinPath(string(sourceRoot), rel))
		if err != nil {
			return nil, fmt.Errorf("utility module %s: %w", rel, err)
		}

		if ok {
			return []m.SourceUnit{{
				Kind:       m.KindUtilityModule,
				Name:       path.Base(layout.UtilityModule),
				SourcePath: rel,
			}}, nil
		}
	}

	s.log.Debug("utility module not found", "module", layout.UtilityModule)

	return nil, nil
}

func (s *Scanner) hookModules(sourceRoot m.Path, layout Layout) ([]m.SourceUnit, error) {
	files, err := s.fs.Glob(sourceRoot, path.Join(layout.HooksDir, "*"))
	if err != nil {
		return nil, err
	}

	var units []m.SourceUnit

	for _, file := range files {
		if !layout.isHookModule(file) {
			s.log.Debug("skipping file", "path", file, "kind", m.KindHookModule)
			continue
		}

		units = append(units, m.SourceUnit{
			Kind:       m.KindHookModule,
			Name:       baseName(file),
			SourcePath: file,
		})
	}

	return units, nil
}

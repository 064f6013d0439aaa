package domain

import (
	"path"
	"slices"
	"strings"
)

// baseName returns the file name of a slash path without its last extension.
func baseName(p string) string {
	name := path.Base(p)
	return strings.TrimSuffix(name, path.Ext(name))
}

// folderName returns the name of the directory that directly contains p.
func folderName(p string) string {
	return path.Base(path.Dir(p))
}

// hasSourceExt reports whether the file name carries one of the layout's
// source extensions. Declaration files are not sources.
func (l Layout) hasSourceExt(name string) bool {
	if l.isDeclaration(name) {
		return false
	}

	return slices.Contains(l.Extensions, path.Ext(name))
}

// isDeclaration reports whether name is a type declaration file such as
// "types.d.ts".
func (l Layout) isDeclaration(name string) bool {
	return l.DeclarationExt != "" && strings.HasSuffix(name, l.DeclarationExt)
}

// isBarrel reports whether a base name is the barrel entry point.
func (l Layout) isBarrel(base string) bool {
	return base == l.BarrelName
}

// isStoryOrTest reports whether a base name ends with a reserved suffix
// such as ".stories" or ".test".
func (l Layout) isStoryOrTest(base string) bool {
	for _, suffix := range l.ReservedSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}

	return false
}

// isFlatComponent reports whether a file under the flat namespace is exported.
func (l Layout) isFlatComponent(file string) bool {
	base := baseName(file)

	return l.hasSourceExt(file) && !l.isBarrel(base) && !l.isStoryOrTest(base)
}

// isHookModule reports whether a file under the hooks directory is exported.
func (l Layout) isHookModule(file string) bool {
	return l.hasSourceExt(file) && !l.isBarrel(baseName(file))
}

// extGlob renders the layout's extensions as a glob suffix, e.g. ".{ts,tsx}".
func (l Layout) extGlob() string {
	exts := make([]string, 0, len(l.Extensions))
	for _, ext := range l.Extensions {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}

	if len(exts) == 1 {
		return "." + exts[0]
	}

	return ".{" + strings.Join(exts, ",") + "}"
}

package domain

import (
	"os"
	"path/filepath"
	"testing"
)

const fixturePackageJSON = `{
  "name": "@neynar/ui",
  "version": "0.3.1",
  "type": "module",
  "scripts": {
    "build": "exportgen && tsc -p tsconfig.build.json"
  },
  "exports": {
    "./legacy": "./dist/legacy.js"
  },
  "peerDependencies": {
    "react": ">=18"
  },
  "dependencies": {
    "clsx": "^2.1.1"
  }
}
`

// writeProject creates a project tree under a temp dir. Keys are
// slash-separated paths relative to the project root.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	return root
}

// libraryFiles is a representative component library source tree.
func libraryFiles() map[string]string {
	return map[string]string{
		"package.json":                                    fixturePackageJSON,
		"src/styles/styles.css":                           "",
		"src/styles/themes/purple-dawn.css":               "",
		"src/styles/themes/first-light.css":               "",
		"src/components/ui/button.tsx":                    "",
		"src/components/ui/alert.tsx":                     "",
		"src/components/ui/badge.tsx":                     "",
		"src/components/ui/skeleton.tsx":                  "",
		"src/components/ui/toggle.tsx":                    "",
		"src/components/ui/button.stories.tsx":            "",
		"src/components/ui/index.ts":                      "",
		"src/components/ui/types.d.ts":                    "",
		"src/components/ui/README.md":                     "",
		"src/components/neynar/color-mode/index.ts":       "",
		"src/components/neynar/color-mode/color-mode.tsx": "",
		"src/components/neynar/theme/index.tsx":           "",
		"src/components/neynar/theme/provider.tsx":        "",
		"src/lib/utils.ts":                                "",
		"src/hooks/use-mobile.ts":                         "",
		"src/hooks/use-color-mode.tsx":                    "",
		"src/hooks/index.ts":                              "",
		"src/hooks/globals.d.ts":                          "",
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/exportgen/internal/model"
)

func TestEntryFor(t *testing.T) {
	layout := DefaultLayout()

	tests := []struct {
		name string
		unit m.SourceUnit
		want m.ExportEntry
	}{
		{
			name: "style sheet",
			unit: m.SourceUnit{Kind: m.KindStyleSheet, Name: "styles.css", SourcePath: "styles/styles.css"},
			want: m.PathEntry("./src/styles/styles.css"),
		},
		{
			name: "theme",
			unit: m.SourceUnit{Kind: m.KindStyleSheet, Name: "themes/first-light", SourcePath: "styles/themes/first-light.css"},
			want: m.PathEntry("./src/styles/themes/first-light.css"),
		},
		{
			name: "flat component",
			unit: m.SourceUnit{Kind: m.KindFlatComponent, Name: "button", SourcePath: "components/ui/button.tsx"},
			want: m.ModuleEntry("./dist/components/ui/button.d.ts", "./dist/components/ui/button.js"),
		},
		{
			name: "grouped component",
			unit: m.SourceUnit{Kind: m.KindGroupedComponent, Name: "color-mode", SourcePath: "components/neynar/color-mode/index.ts"},
			want: m.ModuleEntry("./dist/components/neynar/color-mode/index.d.ts", "./dist/components/neynar/color-mode/index.js"),
		},
		{
			name: "utility module",
			unit: m.SourceUnit{Kind: m.KindUtilityModule, Name: "utils", SourcePath: "lib/utils.ts"},
			want: m.ModuleEntry("./dist/lib/utils.d.ts", "./dist/lib/utils.js"),
		},
		{
			name: "hook",
			unit: m.SourceUnit{Kind: m.KindHookModule, Name: "use-mobile", SourcePath: "hooks/use-mobile.ts"},
			want: m.ModuleEntry("./dist/hooks/use-mobile.d.ts", "./dist/hooks/use-mobile.js"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EntryFor(tt.unit, layout))
		})
	}
}

func TestEntryFor_CustomRoots(t *testing.T) {
	layout := DefaultLayout().WithRoots("source", "build/esm")

	unit := m.SourceUnit{Kind: m.KindFlatComponent, Name: "badge", SourcePath: "components/ui/badge.tsx"}
	assert.Equal(t,
		m.ModuleEntry("./build/esm/components/ui/badge.d.ts", "./build/esm/components/ui/badge.js"),
		EntryFor(unit, layout),
	)

	sheet := m.SourceUnit{Kind: m.KindStyleSheet, Name: "styles", SourcePath: "styles/styles.css"}
	assert.Equal(t, m.PathEntry("./source/styles/styles.css"), EntryFor(sheet, layout))
}

func TestBuildManifest_LastWriteWins(t *testing.T) {
	layout := DefaultLayout()

	units := []m.SourceUnit{
		{Kind: m.KindFlatComponent, Name: "use-mobile", SourcePath: "components/ui/use-mobile.tsx"},
		{Kind: m.KindFlatComponent, Name: "button", SourcePath: "components/ui/button.tsx"},
		{Kind: m.KindHookModule, Name: "use-mobile", SourcePath: "hooks/use-mobile.ts"},
	}

	manifest := BuildManifest(units, layout)

	assert.Equal(t, []string{"./use-mobile", "./button"}, manifest.Keys())

	entry, ok := manifest.Get("./use-mobile")
	assert.True(t, ok)
	assert.Equal(t, "./dist/hooks/use-mobile.js", entry.Import)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseName(t *testing.T) {
	assert.Equal(t, "button", baseName("components/ui/button.tsx"))
	assert.Equal(t, "button.stories", baseName("components/ui/button.stories.tsx"))
	assert.Equal(t, "index", baseName("index.ts"))
}

func TestFolderName(t *testing.T) {
	assert.Equal(t, "color-mode", folderName("components/neynar/color-mode/index.ts"))
}

func TestLayout_Predicates(t *testing.T) {
	layout := DefaultLayout()

	tests := []struct {
		file string
		flat bool
		hook bool
	}{
		{file: "button.tsx", flat: true, hook: true},
		{file: "alert.ts", flat: true, hook: true},
		{file: "index.ts", flat: false, hook: false},
		{file: "index.tsx", flat: false, hook: false},
		{file: "button.stories.tsx", flat: false, hook: true},
		{file: "button.test.tsx", flat: false, hook: true},
		{file: "button.spec.ts", flat: false, hook: true},
		{file: "styles.css", flat: false, hook: false},
		{file: "README.md", flat: false, hook: false},
		{file: "indexer.ts", flat: true, hook: true},
		{file: "types.d.ts", flat: false, hook: false},
		{file: "globals.d.ts", flat: false, hook: false},
		{file: "d.ts", flat: true, hook: true},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.flat, layout.isFlatComponent(tt.file), "isFlatComponent")
			assert.Equal(t, tt.hook, layout.isHookModule(tt.file), "isHookModule")
		})
	}
}

func TestLayout_IsDeclaration(t *testing.T) {
	layout := DefaultLayout()

	assert.True(t, layout.isDeclaration("components/ui/types.d.ts"))
	assert.False(t, layout.isDeclaration("components/ui/types.ts"))

	layout.DeclarationExt = ""
	assert.False(t, layout.isDeclaration("types.d.ts"))
}

func TestLayout_IsStoryOrTest(t *testing.T) {
	layout := DefaultLayout()

	assert.True(t, layout.isStoryOrTest("badge.stories"))
	assert.True(t, layout.isStoryOrTest("badge.test"))
	assert.False(t, layout.isStoryOrTest("stories"))
	assert.False(t, layout.isStoryOrTest("badge"))
}

func TestLayout_ExtGlob(t *testing.T) {
	layout := DefaultLayout()
	assert.Equal(t, ".{ts,tsx}", layout.extGlob())

	layout.Extensions = []string{".ts"}
	assert.Equal(t, ".ts", layout.extGlob())
}

func TestLayout_WithRoots(t *testing.T) {
	layout := DefaultLayout().WithRoots("source", "")

	assert.Equal(t, "source", layout.SourceRoot)
	assert.Equal(t, DefaultOutputRoot, layout.OutputRoot)
}

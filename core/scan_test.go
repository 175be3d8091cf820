package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedlens/feedlens/internal/contract"
	"github.com/feedlens/feedlens/schema"
)

// writeFixture drops content at a path relative to dir, creating parents.
func writeFixture(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverJSONFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.json", `[]`)
	writeFixture(t, dir, "sub/deep/b.json", `[]`)
	writeFixture(t, dir, "sub/c.JSON", `[]`)
	writeFixture(t, dir, "notes.txt", "ignored")
	writeFixture(t, dir, "sub/data.jsonl", "ignored")

	files, err := DiscoverJSONFiles(dir)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "sub", "c.JSON"),
		filepath.Join(dir, "sub", "deep", "b.json"),
	}
	assert.Equal(t, expected, files)
}

func TestDiscoverJSONFilesEmptyTree(t *testing.T) {
	files, err := DiscoverJSONFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		expected schema.FieldTypeCounts
	}{
		{
			name:    "array of objects",
			content: `[{"id": 1, "name": "a"}, {"id": 2, "name": null}]`,
			expected: schema.FieldTypeCounts{
				"id":   {schema.NumberTag: 2},
				"name": {schema.StringTag: 1, schema.NullTag: 1},
			},
		},
		{
			name:     "top-level object is skipped",
			content:  `{"a": 1}`,
			expected: schema.FieldTypeCounts{},
		},
		{
			name:     "malformed json is skipped",
			content:  `not valid json`,
			expected: schema.FieldTypeCounts{},
		},
		{
			name:     "top-level string is skipped",
			content:  `"just a string"`,
			expected: schema.FieldTypeCounts{},
		},
		{
			name:    "non-object elements are ignored",
			content: `[1, "two", null, {"y": true}]`,
			expected: schema.FieldTypeCounts{
				"y": {schema.BooleanTag: 1},
			},
		},
		{
			name:     "empty array",
			content:  `[]`,
			expected: schema.FieldTypeCounts{},
		},
		{
			name:    "nested values classify as their container type",
			content: `[{"tags": ["a", "b"], "meta": {"k": "v"}}]`,
			expected: schema.FieldTypeCounts{
				"tags": {schema.ArrayTag: 1},
				"meta": {schema.ObjectTag: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, dir, tt.name+".json", tt.content)
			assert.Equal(t, tt.expected, AnalyzeFile(path))
		})
	}
}

func TestAnalyzeFileUnreadable(t *testing.T) {
	counts := AnalyzeFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Empty(t, counts)
}

func TestScanTree(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "one.json", `[{"x": 1}]`)
	writeFixture(t, dir, "sub/two.json", `[{"x": "a"}, {"x": null}]`)
	writeFixture(t, dir, "sub/broken.json", `{{{`)
	writeFixture(t, dir, "readme.md", "ignored")

	cfg := &contract.Config{ScanDir: dir, Workers: 4}
	aggregate, fileCount, err := ScanTree(context.Background(), cfg)
	require.NoError(t, err)

	// Malformed files count as scanned but contribute nothing.
	assert.Equal(t, 3, fileCount)
	assert.Equal(t, schema.FieldTypeCounts{
		"x": {schema.NumberTag: 1, schema.StringTag: 1, schema.NullTag: 1},
	}, aggregate)
}

func TestScanTreeNoFiles(t *testing.T) {
	cfg := &contract.Config{ScanDir: t.TempDir(), Workers: 4}
	aggregate, fileCount, err := ScanTree(context.Background(), cfg)
	require.NoError(t, err)
	assert.Zero(t, fileCount)
	assert.Empty(t, aggregate)
}

func TestScanTreeMissingRoot(t *testing.T) {
	cfg := &contract.Config{ScanDir: filepath.Join(t.TempDir(), "gone"), Workers: 4}
	_, _, err := ScanTree(context.Background(), cfg)
	assert.Error(t, err)
}

// TestScanTreeManyFiles exercises the worker pool with more files than
// workers and checks the merged totals.
func TestScanTreeManyFiles(t *testing.T) {
	dir := t.TempDir()
	for i := range 20 {
		writeFixture(t, dir, filepath.Join("batch", "part"+string(rune('a'+i))+".json"), `[{"n": 1}, {"n": 2}]`)
	}

	cfg := &contract.Config{ScanDir: dir, Workers: 3}
	aggregate, fileCount, err := ScanTree(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 20, fileCount)
	assert.Equal(t, 40, aggregate["n"][schema.NumberTag])
}

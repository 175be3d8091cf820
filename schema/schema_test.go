package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected TypeTag
	}{
		{"nil value", nil, NullTag},
		{"true", true, BooleanTag},
		{"false", false, BooleanTag},
		{"float", 3.14, NumberTag},
		{"integer-valued float", float64(42), NumberTag},
		{"json number", json.Number("7"), NumberTag},
		{"string", "hello", StringTag},
		{"empty string", "", StringTag},
		{"array", []any{1.0, "a"}, ArrayTag},
		{"empty array", []any{}, ArrayTag},
		{"object", map[string]any{"k": "v"}, ObjectTag},
		{"empty object", map[string]any{}, ObjectTag},
		{"unexpected type", struct{}{}, UnknownTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.input))
		})
	}
}

// TestClassifyDecodedValues checks totality over values produced by an actual
// JSON decode: every element classifies to a concrete tag, never Unknown.
func TestClassifyDecodedValues(t *testing.T) {
	var doc any
	err := json.Unmarshal([]byte(`[null, true, 1, 2.5, "s", [1], {"a": 1}]`), &doc)
	require.NoError(t, err)

	items, ok := doc.([]any)
	require.True(t, ok)

	expected := []TypeTag{NullTag, BooleanTag, NumberTag, NumberTag, StringTag, ArrayTag, ObjectTag}
	require.Len(t, items, len(expected))
	for i, item := range items {
		assert.Equal(t, expected[i], Classify(item))
		assert.NotEqual(t, UnknownTag, Classify(item))
	}
}

func TestSnapshotName(t *testing.T) {
	rev := Revision{ID: "abc123", Timestamp: 1700000000}
	assert.Equal(t, "1700000000_abc123.json", rev.SnapshotName())
}

func TestObserveAndTotal(t *testing.T) {
	counts := make(FieldTypeCounts)
	counts.Observe("x", NumberTag)
	counts.Observe("x", NumberTag)
	counts.Observe("x", StringTag)
	counts.Observe("y", BooleanTag)

	assert.Equal(t, 2, counts["x"][NumberTag])
	assert.Equal(t, 1, counts["x"][StringTag])
	assert.Equal(t, 3, counts["x"].Total())
	assert.Equal(t, 1, counts["y"].Total())
}

func TestMerge(t *testing.T) {
	a := FieldTypeCounts{
		"x": {NumberTag: 1},
		"y": {StringTag: 2},
	}
	b := FieldTypeCounts{
		"x": {NumberTag: 3, NullTag: 1},
		"z": {ArrayTag: 1},
	}

	acc := make(FieldTypeCounts)
	acc.Merge(a)
	acc.Merge(b)

	assert.Equal(t, 4, acc["x"][NumberTag])
	assert.Equal(t, 1, acc["x"][NullTag])
	assert.Equal(t, 2, acc["y"][StringTag])
	assert.Equal(t, 1, acc["z"][ArrayTag])
}

// TestMergeOrderIndependent verifies the commutative/associative invariant the
// parallel scan relies on: any merge order yields an identical aggregate.
func TestMergeOrderIndependent(t *testing.T) {
	parts := []FieldTypeCounts{
		{"x": {NumberTag: 1}},
		{"x": {StringTag: 1}, "y": {BooleanTag: 2}},
		{"x": {NullTag: 1}, "y": {BooleanTag: 1}},
	}
	orders := [][]int{
		{0, 1, 2},
		{2, 1, 0},
		{1, 0, 2},
		{2, 0, 1},
	}

	var baseline FieldTypeCounts
	for _, order := range orders {
		acc := make(FieldTypeCounts)
		for _, i := range order {
			acc.Merge(parts[i])
		}
		if baseline == nil {
			baseline = acc
			continue
		}
		assert.Equal(t, baseline, acc)
	}

	assert.Equal(t, 3, baseline["x"].Total())
	assert.Equal(t, 3, baseline["y"][BooleanTag])
}

func TestMergeDegenerateCases(t *testing.T) {
	t.Run("empty merge list yields empty map", func(t *testing.T) {
		acc := make(FieldTypeCounts)
		assert.Empty(t, acc)
	})

	t.Run("single element is identity", func(t *testing.T) {
		single := FieldTypeCounts{"x": {NumberTag: 2}}
		acc := make(FieldTypeCounts)
		acc.Merge(single)
		assert.Equal(t, single, acc)
	})

	t.Run("merging empty map changes nothing", func(t *testing.T) {
		acc := FieldTypeCounts{"x": {NumberTag: 2}}
		acc.Merge(FieldTypeCounts{})
		assert.Equal(t, FieldTypeCounts{"x": {NumberTag: 2}}, acc)
	})
}

func TestSortedAccessors(t *testing.T) {
	counts := FieldTypeCounts{
		"zeta":  {StringTag: 1},
		"alpha": {NumberTag: 1, BooleanTag: 1, ArrayTag: 1},
		"mid":   {NullTag: 1},
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, counts.Fields())
	assert.Equal(t, []TypeTag{ArrayTag, BooleanTag, NumberTag}, counts["alpha"].Tags())
}

// Package schema has models, enums and classification logic shared by all parts of feedlens.
package schema

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// TypeTag classifies the shape of a decoded JSON value.
type TypeTag string

// All type tags a JSON value can classify to. UnknownTag is a fallback that a
// conformant JSON decoder never produces.
const (
	NullTag    TypeTag = "Null"
	BooleanTag TypeTag = "Boolean"
	NumberTag  TypeTag = "Number"
	StringTag  TypeTag = "String"
	ArrayTag   TypeTag = "Array"
	ObjectTag  TypeTag = "Object"
	UnknownTag TypeTag = "Unknown"
)

// Classify maps a value decoded by encoding/json into `any` to exactly one TypeTag.
// JSON makes no distinction between integers and floats, so both float64 (the
// decoder default) and json.Number (decoders with UseNumber) classify as Number.
func Classify(v any) TypeTag {
	switch v.(type) {
	case nil:
		return NullTag
	case bool:
		return BooleanTag
	case float64, json.Number:
		return NumberTag
	case string:
		return StringTag
	case []any:
		return ArrayTag
	case map[string]any:
		return ObjectTag
	default:
		return UnknownTag
	}
}

// Revision is one entry of a repository's history: an opaque revision id paired
// with the author timestamp in seconds since epoch.
type Revision struct {
	ID        string
	Timestamp int64
}

// SnapshotName returns the file name a snapshot of this revision is written to.
func (r Revision) SnapshotName() string {
	return fmt.Sprintf("%d_%s.json", r.Timestamp, r.ID)
}

// TypeCounts tallies how often a field appeared with each observed type.
type TypeCounts map[TypeTag]int

// Total returns the total number of occurrences across all type tags.
func (tc TypeCounts) Total() int {
	total := 0
	for _, n := range tc {
		total += n
	}
	return total
}

// Tags returns the observed type tags sorted alphabetically for deterministic output.
func (tc TypeCounts) Tags() []TypeTag {
	return slices.Sorted(maps.Keys(tc))
}

// FieldTypeCounts maps each object field to its per-type occurrence counts.
// It represents one file's tally, or the aggregate of many files after merging.
type FieldTypeCounts map[string]TypeCounts

// Observe increments the count for (field, tag) by one.
func (f FieldTypeCounts) Observe(field string, tag TypeTag) {
	counts, ok := f[field]
	if !ok {
		counts = make(TypeCounts)
		f[field] = counts
	}
	counts[tag]++
}

// Merge adds every (field, tag) count of other into f, inserting missing cells
// as needed. The operation is commutative and associative, so repeatedly merging
// per-file results into an empty map yields the same aggregate regardless of the
// order files complete in.
func (f FieldTypeCounts) Merge(other FieldTypeCounts) {
	for field, otherCounts := range other {
		counts, ok := f[field]
		if !ok {
			counts = make(TypeCounts)
			f[field] = counts
		}
		for tag, n := range otherCounts {
			counts[tag] += n
		}
	}
}

// Fields returns all field names sorted alphabetically for deterministic output.
func (f FieldTypeCounts) Fields() []string {
	return slices.Sorted(maps.Keys(f))
}

// ExtractSummary describes the outcome of one extraction run.
type ExtractSummary struct {
	Revisions int // Revisions listed in the repository history
	Written   int // Snapshots written to the output directory
	Failed    int // Revisions whose content could not be retrieved
}

package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, doc string) any {
	t.Helper()
	tree, err := Decode([]byte(doc))
	require.NoError(t, err)
	return tree
}

func TestFindBuffList_NestedDiscovery(t *testing.T) {
	tree := decode(t, `{
		"details": {
			"stats": [1, 2, 3],
			"misc": {
				"deep": [{"buff_id": 31, "inventory_amount": 2}]
			}
		}
	}`)
	list := FindBuffList(tree)
	require.Len(t, list, 1)
}

func TestFindBuffList_FirstQualifyingWins(t *testing.T) {
	// Key "a" holds an empty list (does not qualify), "b" holds the real one.
	tree := decode(t, `{"a": [], "b": [{"buff_id": 31, "inventory_amount": 2}]}`)
	agg := Aggregate(tree)
	assert.Equal(t, int64(2), agg.Total)
	assert.Equal(t, int64(2), agg.Breakdown[31])
}

func TestFindBuffList_SequenceCheckedBeforeDescent(t *testing.T) {
	// The outer list itself qualifies; the nested list inside a later
	// element must not be reached.
	tree := decode(t, `[
		{"buff_id": 32, "inventory_amount": 1},
		{"nested": [{"buff_id": 34, "inventory_amount": 99}]}
	]`)
	agg := Aggregate(tree)
	assert.Equal(t, int64(2), agg.Total, "only the outer list's weight-2 buff counts")
}

func TestFindBuffList_Missing(t *testing.T) {
	tree := decode(t, `{"details": {"chests": {"1": 3}}, "misc": [1, "x", []]}`)
	assert.Nil(t, FindBuffList(tree))

	agg := Aggregate(tree)
	assert.Equal(t, int64(0), agg.Total)
	assert.Len(t, agg.Breakdown, len(BuffWeights))
}

func TestAggregate_Weights(t *testing.T) {
	tree := decode(t, `{"buffs": [
		{"buff_id": 31, "inventory_amount": 1},
		{"buff_id": 32, "inventory_amount": 1},
		{"buff_id": 33, "inventory_amount": 2},
		{"buff_id": 34, "inventory_amount": 1},
		{"buff_id": 1797, "inventory_amount": 1}
	]}`)
	agg := Aggregate(tree)
	// 1 + 2 + 12 + 24 + 120
	assert.Equal(t, int64(159), agg.Total)
	assert.Equal(t, int64(2), agg.Breakdown[33])
	assert.Equal(t, int64(1), agg.Breakdown[1797])
}

func TestAggregate_UnrecognizedIDIgnored(t *testing.T) {
	tree := decode(t, `{"buffs": [{"buff_id": 999, "inventory_amount": 50}]}`)
	assert.Equal(t, int64(0), Aggregate(tree).Total)
}

func TestAggregate_MalformedEntriesSkipped(t *testing.T) {
	tree := decode(t, `{"buffs": [
		{"buff_id": "x", "inventory_amount": 5},
		{"buff_id": 31, "inventory_amount": "not a number"},
		{"buff_id": 31, "inventory_amount": -4},
		{"buff_id": 31, "inventory_amount": 0},
		{"buff_id": 33, "inventory_amount": 2}
	]}`)
	agg := Aggregate(tree)
	assert.Equal(t, int64(12), agg.Total)
	assert.Equal(t, int64(0), agg.Breakdown[31])
}

func TestAggregate_StringAndFloatValuesCoerced(t *testing.T) {
	tree := decode(t, `{"buffs": [
		{"buff_id": "33", "inventory_amount": "2"},
		{"buff_id": 31, "inventory_amount": 3.9}
	]}`)
	agg := Aggregate(tree)
	// 2×6 from the string entry, floor(3.9)=3 from the float entry.
	assert.Equal(t, int64(15), agg.Total)
}

func TestLookupAndInt(t *testing.T) {
	tree := decode(t, `{"details": {"chests": {"1": 40, "2": "7"}, "red_rubies": 10000}}`)

	assert.Equal(t, int64(40), Int(tree, "details", "chests", "1"))
	assert.Equal(t, int64(7), Int(tree, "details", "chests", "2"))
	assert.Equal(t, int64(10000), Int(tree, "details", "red_rubies"))
	assert.Equal(t, int64(0), Int(tree, "details", "chests", "3"))
	assert.Equal(t, int64(0), Int(tree, "nope", "nothing"))
	assert.Nil(t, Lookup(tree, "details", "red_rubies", "deeper"))
}

func TestAsInt_LargeNumbersSurvive(t *testing.T) {
	tree := decode(t, `{"n": 15360005}`)
	assert.Equal(t, int64(15360005), Int(tree, "n"))
}

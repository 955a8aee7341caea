package collector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
	"success": true,
	"details": {
		"chests": {"1": 250, "2": "100"},
		"red_rubies": 10000,
		"loot": {
			"buffs": [
				{"buff_id": 33, "inventory_amount": 2},
				{"buff_id": 999, "inventory_amount": 50}
			]
		}
	}
}`

func TestCollect(t *testing.T) {
	col := NewCollector(&MockFetcher{Payload: []byte(samplePayload)})

	inv, buffs, err := col.Collect()
	require.NoError(t, err)

	assert.Equal(t, int64(100), inv.Gold, "chest id 2 is gold")
	assert.Equal(t, int64(250), inv.Silver, "chest id 1 is silver")
	assert.Equal(t, int64(10000), inv.Gems)
	assert.False(t, inv.FetchedAt.IsZero())

	assert.Equal(t, int64(12), buffs.Total, "2 medium contracts at weight 6")
	assert.Equal(t, int64(2), buffs.Breakdown[33])
}

func TestCollect_MissingFieldsDefaultToZero(t *testing.T) {
	col := NewCollector(&MockFetcher{Payload: []byte(`{"details": {}}`)})

	inv, buffs, err := col.Collect()
	require.NoError(t, err)
	assert.Zero(t, inv.Gold)
	assert.Zero(t, inv.Silver)
	assert.Zero(t, inv.Gems)
	assert.Zero(t, buffs.Total)
}

func TestCollect_FetchError(t *testing.T) {
	col := NewCollector(&MockFetcher{Err: errors.New("boom")})
	_, _, err := col.Collect()
	require.Error(t, err)
}

func TestCollect_MalformedJSON(t *testing.T) {
	col := NewCollector(&MockFetcher{Payload: []byte(`{"details": `)})
	_, _, err := col.Collect()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "<empty>", snippet(nil))
	assert.Equal(t, "short", snippet([]byte("  short  ")))

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	got := snippet(long)
	assert.Len(t, got, 123)
	assert.Contains(t, got, "...")
}

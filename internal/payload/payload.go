// Package payload locates and aggregates contract-buff records inside the
// play server's getuserdetails response. The response is a large, loosely
// structured JSON document and the buff list's position in it is not fixed,
// so the list is discovered by a structural scan rather than a typed decode.
package payload

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/Extraversi0n/road-to-brivJ/internal/model"
)

// BuffWeights maps recognized contract buff ids to their BSC value per unit.
var BuffWeights = map[int64]int64{
	31:   1,   // tiny blacksmith contract
	32:   2,   // small
	33:   6,   // medium
	34:   24,  // large
	1797: 120, // modest
}

// Decode parses a JSON document into the untyped tree used by the scanner.
// Numbers are kept as json.Number so large ids and counts survive intact.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// FindBuffList walks the decoded tree depth-first and returns the first
// sequence whose first element is an object carrying both a buff_id and an
// inventory_amount key. A sequence is tested before its elements are
// descended into, so a qualifying list is returned without scanning sibling
// branches. Object values are visited in sorted key order to keep the scan
// deterministic. Returns nil when no such list exists.
func FindBuffList(tree any) []any {
	switch node := tree.(type) {
	case []any:
		if looksLikeBuffList(node) {
			return node
		}
		for _, item := range node {
			if found := FindBuffList(item); found != nil {
				return found
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if found := FindBuffList(node[k]); found != nil {
				return found
			}
		}
	}
	return nil
}

func looksLikeBuffList(seq []any) bool {
	if len(seq) == 0 {
		return false
	}
	first, ok := seq[0].(map[string]any)
	if !ok {
		return false
	}
	_, hasID := first["buff_id"]
	_, hasAmount := first["inventory_amount"]
	return hasID && hasAmount
}

// Aggregate sums the weighted BSC value of all recognized buffs in the tree.
// Entries whose id or amount fails integer parsing are skipped, as are
// amounts of zero or less and unrecognized ids. A missing buff list is not
// an error and yields a zero total.
func Aggregate(tree any) model.BuffAggregate {
	agg := model.BuffAggregate{Breakdown: make(map[int64]int64, len(BuffWeights))}
	for id := range BuffWeights {
		agg.Breakdown[id] = 0
	}

	list := FindBuffList(tree)
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := AsInt(entry["buff_id"])
		if !ok {
			continue
		}
		amount, ok := AsInt(entry["inventory_amount"])
		if !ok || amount <= 0 {
			continue
		}
		weight, recognized := BuffWeights[id]
		if !recognized {
			continue
		}
		agg.Total += amount * weight
		agg.Breakdown[id] += amount
	}
	return agg
}

// Lookup walks a path of object keys through the tree and returns the value
// at the end, or nil if any step is missing or not an object.
func Lookup(tree any, path ...string) any {
	cur := tree
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return cur
}

// Int is Lookup followed by integer coercion, with a zero fallback.
func Int(tree any, path ...string) int64 {
	if n, ok := AsInt(Lookup(tree, path...)); ok {
		return n
	}
	return 0
}

// AsInt coerces the loosely typed values the API emits (numbers, numeric
// strings, occasionally floats) into an int64. Floats are truncated.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return int64(f), true
		}
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int64(f), true
		}
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

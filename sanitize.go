package shop

import (
	"bytes"
	"encoding/json"
)

// sanitizeList heals one raw collection: a value that is not a JSON array
// becomes the empty list, and entries that are not non-null objects are
// dropped. changed reports whether anything had to be healed. Persisted
// blobs are the only corruption risk in this design, so this runs on every
// byte path into the system.
func sanitizeList(raw json.RawMessage) (entries []json.RawMessage, changed bool) {
	entries = []json.RawMessage{}
	if len(raw) == 0 {
		return entries, true
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return entries, true
	}
	for _, e := range list {
		if isObject(e) {
			entries = append(entries, e)
		} else {
			changed = true
		}
	}
	return entries, changed
}

// isObject reports whether raw is a JSON object. null is not.
func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// Sanitized returns a view of the book that is safe to encode and report
// on: nil collections become empty ones. Past the parse boundary the book
// is statically well-formed, so this projection is all that remains of the
// historical per-access shape checking. It is cheap, has no side effects,
// and never assigns ids; backfilling ids is the migrator's job alone.
func (b Book) Sanitized() Book {
	if b.Inventory == nil {
		b.Inventory = []InventoryItem{}
	}
	if b.Purchases == nil {
		b.Purchases = []Purchase{}
	}
	if b.Sales == nil {
		b.Sales = []Sale{}
	}
	if b.OtherExpenses == nil {
		b.OtherExpenses = []Expense{}
	}
	return b
}

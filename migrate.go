package shop

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// legacyExpenseName labels the single expense synthesized from the oldest
// document generation, where otherExpenses was one bare number.
const legacyExpenseName = "Legacy Other Expenses"

// Migrate upgrades a raw persisted document into the current canonical form
// and reports whether anything had to change. There is no version field in
// the document; the generation is inferred from its shape.
//
// Migrate never fails: a field it cannot interpret degrades to its empty or
// zero value, and a blob that is not a JSON object at all yields the empty
// book. It is idempotent: running it on the canonical encoding of its own
// output reports changed == false.
func Migrate(raw []byte) (Book, bool) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return NewBook(), true
	}

	changed := false

	// Oldest documents stored otherExpenses as one bare number.
	if n, ok := asNumber(doc["otherExpenses"]); ok {
		if n.IsPositive() {
			converted, _ := json.Marshal([]Expense{{Name: legacyExpenseName, Amount: n}})
			doc["otherExpenses"] = converted
		} else {
			doc["otherExpenses"] = json.RawMessage("[]")
		}
		changed = true
	}

	b := NewBook()

	rawInventory, c := sanitizeList(doc["inventory"])
	changed = changed || c
	for i, e := range rawInventory {
		it := decodeInventoryItem(e)
		if it.ID == "" {
			it.ID = newMigratedID(i)
			changed = true
		}
		b.Inventory = append(b.Inventory, it)
	}

	rawPurchases, c := sanitizeList(doc["purchases"])
	changed = changed || c
	for _, e := range rawPurchases {
		b.Purchases = append(b.Purchases, decodePurchase(e))
	}

	rawSales, c := sanitizeList(doc["sales"])
	changed = changed || c
	for i, e := range rawSales {
		s := decodeSale(e)
		if s.ID == "" {
			s.ID = newMigratedID(i)
			changed = true
		}
		b.Sales = append(b.Sales, s)
	}

	b.Rent = asNumberOrZero(doc["rent"])

	rawExpenses, c := sanitizeList(doc["otherExpenses"])
	changed = changed || c
	for i, e := range rawExpenses {
		x := decodeExpense(e)
		if x.ID == "" {
			x.ID = newMigratedID(i)
			changed = true
		}
		b.OtherExpenses = append(b.OtherExpenses, x)
	}

	return b, changed
}

// asNumber decodes raw only when it is a bare JSON number, the shape the
// oldest documents used for otherExpenses. A numeric string is not a
// number here: it falls through to the not-an-array rule instead.
func asNumber(raw json.RawMessage) (decimal.Decimal, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return decimal.Zero, false
	}
	if c := trimmed[0]; c != '-' && (c < '0' || c > '9') {
		return decimal.Zero, false
	}
	var d decimal.Decimal
	if err := json.Unmarshal(trimmed, &d); err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// asNumberOrZero decodes a scalar that should be a number, tolerating the
// quoted and junk variants found in old documents.
func asNumberOrZero(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var n looseNumber
	_ = n.UnmarshalJSON(raw)
	return n.Decimal
}

// The loose types below decode entry fields from documents of any
// generation: numbers may be quoted, dates may be epoch milliseconds, and
// junk degrades to the zero value instead of failing the entry. None of
// them ever returns an error.

type looseNumber struct{ decimal.Decimal }

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err == nil {
		n.Decimal = d
	} else {
		n.Decimal = decimal.Zero
	}
	return nil
}

type looseString struct{ s string }

func (s *looseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.s = str
	}
	return nil
}

type looseTime struct{ Timestamp }

func (t *looseTime) UnmarshalJSON(data []byte) error {
	var ts Timestamp
	if err := json.Unmarshal(data, &ts); err == nil {
		t.Timestamp = ts
	} else {
		t.Timestamp = Timestamp{}
	}
	return nil
}

// Tolerant per-entity decoders. Entries reaching them are objects, so the
// outer unmarshal cannot fail; individual fields degrade on their own.

func decodeInventoryItem(raw json.RawMessage) InventoryItem {
	var temp struct {
		ID          looseString `json:"id"`
		Name        looseString `json:"item"`
		Quantity    looseNumber `json:"quantity"`
		CostPerUnit looseNumber `json:"costPerUnit"`
		Date        looseTime   `json:"date"`
	}
	_ = json.Unmarshal(raw, &temp)
	return InventoryItem{
		ID:          temp.ID.s,
		Name:        temp.Name.s,
		Quantity:    temp.Quantity.Decimal,
		CostPerUnit: temp.CostPerUnit.Decimal,
		Date:        temp.Date.Timestamp,
	}
}

func decodePurchase(raw json.RawMessage) Purchase {
	var temp struct {
		Item     looseString `json:"item"`
		Quantity looseNumber `json:"quantity"`
		Cost     looseNumber `json:"cost"`
		Date     looseTime   `json:"date"`
	}
	_ = json.Unmarshal(raw, &temp)
	return Purchase{
		Item:     temp.Item.s,
		Quantity: temp.Quantity.Decimal,
		Cost:     temp.Cost.Decimal,
		Date:     temp.Date.Timestamp,
	}
}

func decodeSale(raw json.RawMessage) Sale {
	var temp struct {
		ID      looseString `json:"id"`
		Revenue looseNumber `json:"revenue"`
		Date    looseTime   `json:"date"`
	}
	_ = json.Unmarshal(raw, &temp)
	return Sale{
		ID:      temp.ID.s,
		Revenue: temp.Revenue.Decimal,
		Date:    temp.Date.Timestamp,
	}
}

func decodeExpense(raw json.RawMessage) Expense {
	var temp struct {
		ID     looseString `json:"id"`
		Name   looseString `json:"name"`
		Amount looseNumber `json:"amount"`
	}
	_ = json.Unmarshal(raw, &temp)
	return Expense{
		ID:     temp.ID.s,
		Name:   temp.Name.s,
		Amount: temp.Amount.Decimal,
	}
}

package shop

import (
	"bytes"
	"strings"
	"testing"
)

// mustExport encodes a book in its canonical document form.
func mustExport(t *testing.T, b Book) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := ExportBook(&buf, b); err != nil {
		t.Fatalf("ExportBook() = %v", err)
	}
	return buf.Bytes()
}

func TestMigrate_Garbage(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"null", "null"},
		{"not json", "not json at all"},
		{"array", "[]"},
		{"string", `"boo"`},
		{"number", "42"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, changed := Migrate([]byte(tc.doc))
			if !changed {
				t.Error("Migrate() reported no change")
			}
			if n := len(b.Inventory) + len(b.Purchases) + len(b.Sales) + len(b.OtherExpenses); n != 0 {
				t.Errorf("Migrate() kept %d entries, want an empty book", n)
			}
			if b.Inventory == nil || b.Purchases == nil || b.Sales == nil || b.OtherExpenses == nil {
				t.Error("empty book has nil collections")
			}
		})
	}
}

func TestMigrate_LegacyExpenseNumber(t *testing.T) {
	doc := `{"inventory":[],"purchases":[],"sales":[],"rent":0,"otherExpenses":120.5}`
	b, changed := Migrate([]byte(doc))
	if !changed {
		t.Fatal("Migrate() reported no change")
	}
	if len(b.OtherExpenses) != 1 {
		t.Fatalf("len(OtherExpenses) = %d, want 1", len(b.OtherExpenses))
	}
	e := b.OtherExpenses[0]
	if e.Name != "Legacy Other Expenses" {
		t.Errorf("name = %q, want Legacy Other Expenses", e.Name)
	}
	if !e.Amount.Equal(amt(120.5)) {
		t.Errorf("amount = %v, want 120.5", e.Amount)
	}
	if !IsMigratedID(e.ID) {
		t.Errorf("id = %q, want a migrated id", e.ID)
	}
}

func TestMigrate_LegacyExpenseNotPositive(t *testing.T) {
	for _, doc := range []string{
		`{"inventory":[],"purchases":[],"sales":[],"otherExpenses":0}`,
		`{"inventory":[],"purchases":[],"sales":[],"otherExpenses":-3}`,
	} {
		b, changed := Migrate([]byte(doc))
		if !changed {
			t.Errorf("Migrate(%s) reported no change", doc)
		}
		if len(b.OtherExpenses) != 0 {
			t.Errorf("Migrate(%s) kept %d expenses, want none", doc, len(b.OtherExpenses))
		}
	}
}

func TestMigrate_QuotedNumberIsNotLegacy(t *testing.T) {
	// "120" quoted is not the legacy bare-number shape. It is simply not
	// an array, so it heals to the empty list.
	doc := `{"inventory":[],"purchases":[],"sales":[],"otherExpenses":"120"}`
	b, changed := Migrate([]byte(doc))
	if !changed {
		t.Fatal("Migrate() reported no change")
	}
	if len(b.OtherExpenses) != 0 {
		t.Errorf("OtherExpenses = %+v, want empty", b.OtherExpenses)
	}
}

func TestMigrate_HealsCollections(t *testing.T) {
	doc := `{"inventory":42,"purchases":null,"sales":"boo"}`
	b, changed := Migrate([]byte(doc))
	if !changed {
		t.Fatal("Migrate() reported no change")
	}
	if b.Inventory == nil || len(b.Inventory) != 0 {
		t.Errorf("Inventory = %#v, want empty", b.Inventory)
	}
	if b.Purchases == nil || len(b.Purchases) != 0 {
		t.Errorf("Purchases = %#v, want empty", b.Purchases)
	}
	if b.Sales == nil || len(b.Sales) != 0 {
		t.Errorf("Sales = %#v, want empty", b.Sales)
	}
}

func TestMigrate_DropsNonObjectEntries(t *testing.T) {
	doc := `{"inventory":[],"purchases":[],"sales":[{"id":"s-1","revenue":10},null,5,"x",[1,2]],"otherExpenses":[]}`
	b, changed := Migrate([]byte(doc))
	if !changed {
		t.Fatal("Migrate() reported no change")
	}
	if len(b.Sales) != 1 || b.Sales[0].ID != "s-1" {
		t.Errorf("Sales = %+v, want only s-1", b.Sales)
	}
}

func TestMigrate_BackfillsIDs(t *testing.T) {
	doc := `{
	  "inventory": [{"item":"Dough","quantity":5,"costPerUnit":2}],
	  "purchases": [{"item":"Dough","quantity":5,"cost":10}],
	  "sales": [{"revenue":12},{"id":"keep-me","revenue":8},{"revenue":3}],
	  "otherExpenses": [{"name":"Ice","amount":4}]
	}`
	b, changed := Migrate([]byte(doc))
	if !changed {
		t.Fatal("Migrate() reported no change")
	}
	if !IsMigratedID(b.Inventory[0].ID) {
		t.Errorf("inventory id = %q, want a migrated id", b.Inventory[0].ID)
	}
	if !strings.HasPrefix(b.Sales[0].ID, "migrated-0-") {
		t.Errorf("first sale id = %q, want a migrated-0- id", b.Sales[0].ID)
	}
	if b.Sales[1].ID != "keep-me" {
		t.Errorf("second sale id = %q, want keep-me", b.Sales[1].ID)
	}
	if !strings.HasPrefix(b.Sales[2].ID, "migrated-2-") {
		t.Errorf("third sale id = %q, want a migrated-2- id", b.Sales[2].ID)
	}
	if !IsMigratedID(b.OtherExpenses[0].ID) {
		t.Errorf("expense id = %q, want a migrated id", b.OtherExpenses[0].ID)
	}

	seen := map[string]bool{}
	for _, id := range []string{b.Inventory[0].ID, b.Sales[0].ID, b.Sales[2].ID, b.OtherExpenses[0].ID} {
		if seen[id] {
			t.Errorf("id %q minted twice", id)
		}
		seen[id] = true
	}
}

func TestMigrate_LooseFields(t *testing.T) {
	// Numbers may arrive quoted, dates as epoch milliseconds, and junk
	// fields fall back to the zero value. No entry is lost over one bad
	// field, and coercion alone is not a structural change.
	doc := `{
	  "inventory": [{"id":"i-1","item":"Dough","quantity":"7","costPerUnit":"2.5","date":1755600000000}],
	  "purchases": [{"item":"Ice","quantity":true,"cost":{},"date":"boo"}],
	  "sales": [{"id":"s-1","revenue":"12.5","date":"2026-08-05"}],
	  "otherExpenses": []
	}`
	b, changed := Migrate([]byte(doc))
	if changed {
		t.Error("Migrate() reported a structural change")
	}
	it := b.Inventory[0]
	if !it.Quantity.Equal(amt(7)) || !it.CostPerUnit.Equal(amt(2.5)) {
		t.Errorf("inventory entry = %+v, want quantity 7 cost 2.5", it)
	}
	if want := ts("2025-08-19T10:40:00.000Z"); !it.Date.Equal(want) {
		t.Errorf("inventory date = %v, want %v", it.Date, want)
	}
	p := b.Purchases[0]
	if p.Item != "Ice" || !p.Quantity.IsZero() || !p.Cost.IsZero() || !p.Date.IsZero() {
		t.Errorf("purchase = %+v, want junk fields zeroed", p)
	}
	if s := b.Sales[0]; !s.Revenue.Equal(amt(12.5)) {
		t.Errorf("sale revenue = %v, want 12.5", s.Revenue)
	}
}

func TestMigrate_ScalarCoercionAlone(t *testing.T) {
	// Rent arrives quoted in some old documents. Coercing it is not a
	// structural change, so on its own it does not force a rewrite.
	doc := `{"inventory":[],"purchases":[],"sales":[],"rent":"250","otherExpenses":[]}`
	b, changed := Migrate([]byte(doc))
	if changed {
		t.Error("Migrate() reported a change for scalar coercion")
	}
	if !b.Rent.Equal(amt(250)) {
		t.Errorf("rent = %v, want 250", b.Rent)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"legacy number expenses", `{"otherExpenses":42}`},
		{"missing collections", `{"sales":[{"revenue":10}]}`},
		{"junk entries", `{"inventory":[5,null,{"item":"Dough","quantity":1,"costPerUnit":2}],"purchases":[],"sales":[],"otherExpenses":[]}`},
		{"canonical", string(mustExport(t, groceryBook()))},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			first, _ := Migrate([]byte(tc.doc))
			enc := mustExport(t, first)
			second, changed := Migrate(enc)
			if changed {
				t.Fatalf("second pass reported changes on\n%s", enc)
			}
			if got := mustExport(t, second); !bytes.Equal(got, enc) {
				t.Errorf("second pass changed the encoding:\nfirst\n%s\nsecond\n%s", enc, got)
			}
		})
	}
}

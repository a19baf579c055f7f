package shop

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewSummary(t *testing.T) {
	s := NewSummary(groceryBook())
	testCases := []struct {
		name string
		got  decimal.Decimal
		want float64
	}{
		{"purchase cost", s.PurchaseCost, 100}, // 50 + 50
		{"revenue", s.Revenue, 200},            // 120 + 80
		{"rent", s.Rent, 40},
		{"other expenses", s.OtherExpenses, 20}, // 15 + 5
		{"total expenses", s.TotalExpenses, 60}, // 40 + 20
		{"margin", s.Margin, 40},                // 200 - 100 - 60
	}
	for _, tc := range testCases {
		if !tc.got.Equal(amt(tc.want)) {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
	if s.Purchases != 2 || s.Sales != 2 {
		t.Errorf("counts = %d purchases, %d sales, want 2, 2", s.Purchases, s.Sales)
	}
}

func TestNewSummary_ZeroBook(t *testing.T) {
	var zero Book
	s := NewSummary(zero)
	if !s.Margin.IsZero() || s.Purchases != 0 || s.Sales != 0 {
		t.Errorf("summary of the zero book = %+v", s)
	}
}

func TestStock(t *testing.T) {
	b := NewBook()
	b.Inventory = []InventoryItem{
		{ID: "a", Name: "Dough", Quantity: amt(10), CostPerUnit: amt(2), Date: ts("2026-08-01")},
		{ID: "b", Name: "Cheese", Quantity: amt(4), CostPerUnit: amt(5), Date: ts("2026-08-02")},
		{ID: "c", Name: "dough", Quantity: amt(6), CostPerUnit: amt(3), Date: ts("2026-08-03")},
	}
	got := b.Stock()
	if len(got) != 2 {
		t.Fatalf("len(Stock()) = %d, want 2", len(got))
	}
	// Sorted by name, grouped without case.
	if got[0].Name != "Cheese" || got[1].Name != "Dough" {
		t.Fatalf("Stock() order = %s, %s, want Cheese, Dough", got[0].Name, got[1].Name)
	}
	dough := got[1]
	if !dough.Quantity.Equal(amt(16)) { // 10 + 6
		t.Errorf("Dough quantity = %v, want 16", dough.Quantity)
	}
	if !dough.CostPerUnit.Equal(amt(3)) {
		t.Errorf("Dough cost per unit = %v, want 3 from the latest entry", dough.CostPerUnit)
	}
	if dough.LastPurchase.Short() != "2026-08-03" {
		t.Errorf("Dough last purchase = %v, want 2026-08-03", dough.LastPurchase)
	}
	if dough.Entries != 2 {
		t.Errorf("Dough entries = %d, want 2", dough.Entries)
	}
}

func TestStock_UndatedEntries(t *testing.T) {
	// Migrated entries may have no date at all. The latest entry still
	// wins, and among undated ones the last in the book does.
	b := NewBook()
	b.Inventory = []InventoryItem{
		{ID: "a", Name: "Ice", Quantity: amt(1), CostPerUnit: amt(2)},
		{ID: "b", Name: "Ice", Quantity: amt(1), CostPerUnit: amt(4)},
	}
	got := b.Stock()
	if len(got) != 1 {
		t.Fatalf("len(Stock()) = %d, want 1", len(got))
	}
	if !got[0].CostPerUnit.Equal(amt(4)) {
		t.Errorf("cost per unit = %v, want 4", got[0].CostPerUnit)
	}
}

func TestActivity(t *testing.T) {
	got := groceryBook().Activity()
	if len(got) != 6 { // 2 purchases + 2 sales + 2 expenses
		t.Fatalf("len(Activity()) = %d, want 6", len(got))
	}
	// Dated entries oldest first, undated expenses at the end.
	wantKinds := []string{KindPurchase, KindPurchase, KindSale, KindSale, KindExpense, KindExpense}
	for i, e := range got {
		if e.Kind != wantKinds[i] {
			t.Errorf("entry %d kind = %s, want %s", i, e.Kind, wantKinds[i])
		}
	}
	if got[0].Label != "Dough" || !got[0].Amount.Equal(amt(50)) {
		t.Errorf("first entry = %+v, want the Dough purchase", got[0])
	}
	if got[2].ID != "sale-1" || !got[2].Amount.Equal(amt(120)) {
		t.Errorf("third entry = %+v, want sale-1", got[2])
	}
	if got[4].Label != "Electricity" {
		t.Errorf("fifth entry = %+v, want Electricity", got[4])
	}
}

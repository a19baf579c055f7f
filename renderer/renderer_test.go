package renderer

import (
	"strings"
	"testing"

	shop "github.com/Jvntrials/COGSHALFHALF"
	"github.com/shopspring/decimal"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestAmount(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		currency string
		want     string
	}{
		{"peso", 1250.5, "PHP", "₱1,250.50"},
		{"peso negative", -3.25, "PHP", "-₱3.25"},
		{"usd", 3.25, "USD", "$3.25"},
		{"euro", 10, "EUR", "€10.00"},
		{"sub cents truncated", 2.555, "PHP", "₱2.55"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Amount(d(tc.value), tc.currency); got != tc.want {
				t.Errorf("Amount(%v, %s) = %q, want %q", tc.value, tc.currency, got, tc.want)
			}
		})
	}
}

func TestSignedAmount(t *testing.T) {
	if got := SignedAmount(d(5), "PHP"); got != "+₱5.00" {
		t.Errorf("SignedAmount(5) = %q, want +₱5.00", got)
	}
	if got := SignedAmount(d(-5), "PHP"); got != "-₱5.00" {
		t.Errorf("SignedAmount(-5) = %q, want -₱5.00", got)
	}
	if got := SignedAmount(d(0), "PHP"); got != "-" {
		t.Errorf("SignedAmount(0) = %q, want -", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := &shop.Summary{
		PurchaseCost:  d(100),
		Revenue:       d(200),
		Rent:          d(40),
		OtherExpenses: d(20),
		TotalExpenses: d(60),
		Margin:        d(40),
		Purchases:     2,
		Sales:         3,
	}
	got := SummaryMarkdown(s, "PHP")

	for _, want := range []string{
		"# Shop Summary",
		"2 purchases and 3 sales recorded.",
		"Revenue",
		"₱200.00",
		"Margin",
		"+₱40.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() misses %q:\n%s", want, got)
		}
	}
}

func TestStockMarkdown(t *testing.T) {
	stock := []shop.StockEntry{
		{Name: "Cheese", Quantity: d(4), CostPerUnit: d(5), Entries: 1},
		{Name: "Dough", Quantity: d(16), CostPerUnit: d(3), Entries: 2},
	}
	got := StockMarkdown(stock, "PHP")
	for _, want := range []string{"# Stock", "Cheese", "Dough", "₱3.00", "16"} {
		if !strings.Contains(got, want) {
			t.Errorf("StockMarkdown() misses %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "No items") {
		t.Errorf("StockMarkdown() claims empty stock:\n%s", got)
	}
}

func TestStockMarkdown_Empty(t *testing.T) {
	got := StockMarkdown(nil, "PHP")
	if !strings.Contains(got, "No items in stock.") {
		t.Errorf("StockMarkdown(nil) = %s", got)
	}
}

func TestActivityMarkdown(t *testing.T) {
	entries := []shop.ActivityEntry{
		{Kind: shop.KindPurchase, Label: "Dough", Amount: d(50)},
		{Kind: shop.KindSale, ID: "sale-1", Amount: d(120)},
		{Kind: shop.KindExpense, Label: "Electricity", Amount: d(15)},
	}
	got := ActivityMarkdown(entries, "PHP")
	for _, want := range []string{
		"## Activity",
		"| Date | Kind | Detail | Amount |",
		"| purchase | Dough |",
		"| sale | sale-1 |",
		"| expense | Electricity |",
		"₱120.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ActivityMarkdown() misses %q:\n%s", want, got)
		}
	}
}

func TestActivityMarkdown_Empty(t *testing.T) {
	got := ActivityMarkdown(nil, "PHP")
	if !strings.Contains(got, "Nothing recorded yet.") {
		t.Errorf("ActivityMarkdown(nil) = %s", got)
	}
}

func TestConfirmations(t *testing.T) {
	p := shop.Purchase{Item: "Dough", Quantity: d(10), Cost: d(25)}
	entry := shop.InventoryItem{ID: "i-1", Name: "Dough", Quantity: d(10), CostPerUnit: d(2.5)}
	if got := Purchase(p, entry, "PHP"); !strings.Contains(got, "₱2.50 per unit") {
		t.Errorf("Purchase() = %q", got)
	}

	s := shop.Sale{ID: "s-1", Revenue: d(65)}
	if got := Sale(s, "PHP"); !strings.Contains(got, "₱65.00") || !strings.Contains(got, "s-1") {
		t.Errorf("Sale() = %q", got)
	}

	e := shop.Expense{ID: "e-1", Name: "Gas", Amount: d(12)}
	if got := Expense(e, "PHP"); !strings.Contains(got, "Gas") || !strings.Contains(got, "₱12.00") {
		t.Errorf("Expense() = %q", got)
	}
}

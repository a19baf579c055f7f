package shop

import "github.com/shopspring/decimal"

// amt is a helper for tests to create a decimal amount from a const.
func amt(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ts is a helper for tests to parse a timestamp literal.
func ts(s string) Timestamp {
	t, err := ParseTimestamp(s)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// groceryBook returns a small canonical book exercised across tests.
func groceryBook() Book {
	b := NewBook()
	b.Inventory = []InventoryItem{
		{ID: "it-1", Name: "Dough", Quantity: amt(20), CostPerUnit: amt(2.5), Date: ts("2026-08-01T08:00:00.000Z")},
		{ID: "it-2", Name: "Cheese", Quantity: amt(10), CostPerUnit: amt(5), Date: ts("2026-08-02T08:00:00.000Z")},
	}
	b.Purchases = []Purchase{
		{Item: "Dough", Quantity: amt(20), Cost: amt(50), Date: ts("2026-08-01T08:00:00.000Z")},
		{Item: "Cheese", Quantity: amt(10), Cost: amt(50), Date: ts("2026-08-02T08:00:00.000Z")},
	}
	b.Sales = []Sale{
		{ID: "sale-1", Revenue: amt(120), Date: ts("2026-08-03T12:00:00.000Z")},
		{ID: "sale-2", Revenue: amt(80), Date: ts("2026-08-04T12:00:00.000Z")},
	}
	b.Rent = amt(40)
	b.OtherExpenses = []Expense{
		{ID: "exp-1", Name: "Electricity", Amount: amt(15)},
		{ID: "exp-2", Name: "Water", Amount: amt(5)},
	}
	return b
}

package shop

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Summary is the profit and loss view of the whole book.
type Summary struct {
	PurchaseCost  decimal.Decimal // total spent on purchases
	Revenue       decimal.Decimal // total sale revenue
	Rent          decimal.Decimal
	OtherExpenses decimal.Decimal // sum of the expense amounts
	TotalExpenses decimal.Decimal // rent + other expenses
	Margin        decimal.Decimal // revenue - purchase cost - total expenses
	Purchases     int
	Sales         int
}

// NewSummary computes the profit and loss of the book. Amounts are typed
// decimals past the parse boundary, so junk in old documents has already
// degraded to zero and no total can come out NaN.
func NewSummary(b Book) *Summary {
	b = b.Sanitized()
	s := &Summary{
		Rent:      b.Rent,
		Purchases: len(b.Purchases),
		Sales:     len(b.Sales),
	}
	for _, p := range b.Purchases {
		s.PurchaseCost = s.PurchaseCost.Add(p.Cost)
	}
	for _, sale := range b.Sales {
		s.Revenue = s.Revenue.Add(sale.Revenue)
	}
	for _, e := range b.OtherExpenses {
		s.OtherExpenses = s.OtherExpenses.Add(e.Amount)
	}
	s.TotalExpenses = s.Rent.Add(s.OtherExpenses)
	s.Margin = s.Revenue.Sub(s.PurchaseCost).Sub(s.TotalExpenses)
	return s
}

// StockEntry aggregates the inventory entries sharing a name.
type StockEntry struct {
	Name         string
	Quantity     decimal.Decimal // sum across the entries
	CostPerUnit  decimal.Decimal // unit cost of the most recent entry
	LastPurchase Timestamp
	Entries      int
}

// Stock groups inventory entries case-insensitively by name, sorted by
// name. Each purchase creates its own entry, so the on-hand quantity for a
// name is the sum across its group; the unit cost reported is the most
// recent entry's, not an average, because that is what costPerUnit means on
// a single entry too.
func (b Book) Stock() []StockEntry {
	b = b.Sanitized()
	index := make(map[string]int)
	stock := []StockEntry{}
	for _, it := range b.Inventory {
		key := strings.ToLower(it.Name)
		i, ok := index[key]
		if !ok {
			index[key] = len(stock)
			stock = append(stock, StockEntry{
				Name:         it.Name,
				Quantity:     it.Quantity,
				CostPerUnit:  it.CostPerUnit,
				LastPurchase: it.Date,
				Entries:      1,
			})
			continue
		}
		e := stock[i]
		e.Quantity = e.Quantity.Add(it.Quantity)
		e.Entries++
		// Later entries win ties so the freshest purchase sets the cost.
		if !it.Date.Before(e.LastPurchase) {
			e.CostPerUnit = it.CostPerUnit
			e.LastPurchase = it.Date
		}
		stock[i] = e
	}
	slices.SortFunc(stock, func(a, b StockEntry) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return stock
}

// Kinds of activity feed lines.
const (
	KindPurchase = "purchase"
	KindSale     = "sale"
	KindExpense  = "expense"
)

// ActivityEntry is one line of the chronological activity feed.
type ActivityEntry struct {
	Date   Timestamp
	Kind   string
	Label  string
	ID     string
	Amount decimal.Decimal
}

// Activity flattens purchases, sales and expenses into one feed, oldest
// first. Undated entries (expenses carry no date) sort last, in arrival
// order.
func (b Book) Activity() []ActivityEntry {
	b = b.Sanitized()
	feed := []ActivityEntry{}
	for _, p := range b.Purchases {
		feed = append(feed, ActivityEntry{Date: p.Date, Kind: KindPurchase, Label: p.Item, Amount: p.Cost})
	}
	for _, s := range b.Sales {
		feed = append(feed, ActivityEntry{Date: s.Date, Kind: KindSale, ID: s.ID, Amount: s.Revenue})
	}
	for _, e := range b.OtherExpenses {
		feed = append(feed, ActivityEntry{Kind: KindExpense, Label: e.Name, ID: e.ID, Amount: e.Amount})
	}
	slices.SortStableFunc(feed, func(a, b ActivityEntry) int {
		switch {
		case a.Date.IsZero() && b.Date.IsZero():
			return 0
		case a.Date.IsZero():
			return 1
		case b.Date.IsZero():
			return -1
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		}
		return 0
	})
	return feed
}

package shop

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrDuplicateItem is returned when creating an inventory item whose name,
// compared case-insensitively, is already taken.
var ErrDuplicateItem = errors.New("inventory item already exists")

// This file holds the state transitions of the book. Every operation takes
// the book by value and returns a new one; the receiver and its slices are
// never written to, so callers can keep old snapshots around. Operations
// that target a missing id are silent no-ops and return the book unchanged.

// UnitCost derives the cost of one unit from a total cost and a quantity.
// When either is not strictly positive there is nothing meaningful to
// derive and the unit cost is zero, never a division error.
func UnitCost(cost, quantity decimal.Decimal) decimal.Decimal {
	if cost.IsPositive() && quantity.IsPositive() {
		return cost.Div(quantity)
	}
	return decimal.Zero
}

// RecordPurchase appends p to the purchase history and synthesizes the
// matching inventory entry, returned for display.
//
// A purchase never merges into an existing entry of the same name: repeated
// purchases accumulate entries. On-hand quantity for a name is therefore
// the sum across its entries, and the most recent entry carries the current
// unit cost; see Book.Stock.
func (b Book) RecordPurchase(p Purchase) (Book, InventoryItem) {
	if p.Date.IsZero() {
		p.Date = Now()
	}
	entry := InventoryItem{
		ID:          NewID(),
		Name:        p.Item,
		Quantity:    p.Quantity,
		CostPerUnit: UnitCost(p.Cost, p.Quantity),
		Date:        p.Date,
	}
	b.Purchases = append(slices.Clone(b.Purchases), p)
	b.Inventory = append(slices.Clone(b.Inventory), entry)
	return b, entry
}

// RecordSale stamps, identifies and appends a sale, returned for display.
// Sales never decrement inventory; reconciling the two is a reporting
// concern.
func (b Book) RecordSale(s Sale) (Book, Sale) {
	if s.Date.IsZero() {
		s.Date = Now()
	}
	s.ID = NewID()
	b.Sales = append(slices.Clone(b.Sales), s)
	return b, s
}

// UpdateSale replaces the sale with a matching id.
func (b Book) UpdateSale(s Sale) Book {
	i := slices.IndexFunc(b.Sales, func(x Sale) bool { return x.ID == s.ID })
	if i < 0 {
		return b
	}
	sales := slices.Clone(b.Sales)
	sales[i] = s
	b.Sales = sales
	return b
}

// DeleteSale removes the sale with a matching id.
func (b Book) DeleteSale(id string) Book {
	i := slices.IndexFunc(b.Sales, func(x Sale) bool { return x.ID == id })
	if i < 0 {
		return b
	}
	b.Sales = slices.Delete(slices.Clone(b.Sales), i, i+1)
	return b
}

// FindSale returns the sale with a matching id.
func (b Book) FindSale(id string) (Sale, bool) {
	i := slices.IndexFunc(b.Sales, func(x Sale) bool { return x.ID == id })
	if i < 0 {
		return Sale{}, false
	}
	return b.Sales[i], true
}

// CreateItem appends a manually created inventory entry. The name must be
// new: a colliding creation is rejected with ErrDuplicateItem and the book
// is returned unchanged. Buying more of an existing name goes through
// RecordPurchase instead.
func (b Book) CreateItem(it InventoryItem) (Book, error) {
	if b.HasItemNamed(it.Name) {
		return b, fmt.Errorf("%q: %w", it.Name, ErrDuplicateItem)
	}
	if it.Date.IsZero() {
		it.Date = Now()
	}
	it.ID = NewID()
	b.Inventory = append(slices.Clone(b.Inventory), it)
	return b, nil
}

// HasItemNamed reports whether an inventory entry already uses the name,
// ignoring case.
func (b Book) HasItemNamed(name string) bool {
	return slices.ContainsFunc(b.Inventory, func(x InventoryItem) bool {
		return strings.EqualFold(x.Name, name)
	})
}

// UpdateItem replaces the inventory entry with a matching id.
func (b Book) UpdateItem(it InventoryItem) Book {
	i := slices.IndexFunc(b.Inventory, func(x InventoryItem) bool { return x.ID == it.ID })
	if i < 0 {
		return b
	}
	inventory := slices.Clone(b.Inventory)
	inventory[i] = it
	b.Inventory = inventory
	return b
}

// DeleteItem removes the inventory entry with a matching id.
func (b Book) DeleteItem(id string) Book {
	i := slices.IndexFunc(b.Inventory, func(x InventoryItem) bool { return x.ID == id })
	if i < 0 {
		return b
	}
	b.Inventory = slices.Delete(slices.Clone(b.Inventory), i, i+1)
	return b
}

// FindItem returns the inventory entry with a matching id.
func (b Book) FindItem(id string) (InventoryItem, bool) {
	i := slices.IndexFunc(b.Inventory, func(x InventoryItem) bool { return x.ID == id })
	if i < 0 {
		return InventoryItem{}, false
	}
	return b.Inventory[i], true
}

// SetRent replaces the rent unconditionally.
func (b Book) SetRent(r decimal.Decimal) Book {
	b.Rent = r
	return b
}

// AddExpense identifies and appends an expense, returned for display.
func (b Book) AddExpense(e Expense) (Book, Expense) {
	e.ID = NewID()
	b.OtherExpenses = append(slices.Clone(b.OtherExpenses), e)
	return b, e
}

// DeleteExpense removes the expense with a matching id.
func (b Book) DeleteExpense(id string) Book {
	i := slices.IndexFunc(b.OtherExpenses, func(x Expense) bool { return x.ID == id })
	if i < 0 {
		return b
	}
	b.OtherExpenses = slices.Delete(slices.Clone(b.OtherExpenses), i, i+1)
	return b
}

// DeleteExpenseAt removes the expense at position i, a no-op when out of
// range. Positional identity predates expense ids and is unstable whenever
// the collection is appended to concurrently; DeleteExpense is the reliable
// form.
func (b Book) DeleteExpenseAt(i int) Book {
	if i < 0 || i >= len(b.OtherExpenses) {
		return b
	}
	b.OtherExpenses = slices.Delete(slices.Clone(b.OtherExpenses), i, i+1)
	return b
}

package shop

import (
	"github.com/shopspring/decimal"
)

// The wire keys in this file are fixed by the historical document format and
// must never change: documents written years ago still have to load.

// InventoryItem is one stock entry. Every purchase creates its own entry,
// so a name can legitimately appear several times; see Book.RecordPurchase.
type InventoryItem struct {
	// ID is globally unique, assigned at creation, immutable.
	ID string `json:"id"`
	// Name is unique case-insensitively across the collection at creation
	// time.
	Name     string          `json:"item"`
	Quantity decimal.Decimal `json:"quantity"`
	// CostPerUnit is derived from the purchase that created the entry.
	CostPerUnit decimal.Decimal `json:"costPerUnit"`
	// Date of the purchase that created or last touched the entry.
	Date Timestamp `json:"date"`
}

// Purchase is one restocking event. Purchases are append-only: once
// recorded they are never edited.
type Purchase struct {
	Item     string          `json:"item"`
	Quantity decimal.Decimal `json:"quantity"`
	// Cost is the total paid for the whole quantity.
	Cost decimal.Decimal `json:"cost"`
	Date Timestamp       `json:"date"`
}

// Sale is one sale event. Sales are editable and deletable by id; legacy
// records without an id get one during migration.
type Sale struct {
	ID      string          `json:"id"`
	Revenue decimal.Decimal `json:"revenue"`
	Date    Timestamp       `json:"date"`
}

// Expense is one recurring or one-off expense beside rent. Expenses carry a
// stable id since the current schema generation; older records identified
// them by position only and are migrated.
type Expense struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Book is the whole persisted document and the single source of truth. It
// owns every entry exclusively; snapshots are replaced wholesale, never
// edited in place. Field order is the document's key order.
type Book struct {
	Inventory     []InventoryItem `json:"inventory"`
	Purchases     []Purchase      `json:"purchases"`
	Sales         []Sale          `json:"sales"`
	Rent          decimal.Decimal `json:"rent"`
	OtherExpenses []Expense       `json:"otherExpenses"`
}

// NewBook returns an empty book in canonical form.
func NewBook() Book {
	return Book{
		Inventory:     []InventoryItem{},
		Purchases:     []Purchase{},
		Sales:         []Sale{},
		OtherExpenses: []Expense{},
	}
}

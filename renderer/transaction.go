package renderer

import (
	"fmt"

	shop "github.com/Jvntrials/COGSHALFHALF"
)

// Purchase renders a recorded purchase to a confirmation line.
func Purchase(p shop.Purchase, entry shop.InventoryItem, currency string) string {
	return fmt.Sprintf("Bought %s %s for %s (%s per unit)",
		p.Quantity, p.Item, Amount(p.Cost, currency), Amount(entry.CostPerUnit, currency))
}

// Sale renders a recorded sale to a confirmation line.
func Sale(s shop.Sale, currency string) string {
	return fmt.Sprintf("Sold for %s on %s (id %s)", Amount(s.Revenue, currency), s.Date.Short(), s.ID)
}

// Item renders an inventory item to a confirmation line.
func Item(it shop.InventoryItem, currency string) string {
	return fmt.Sprintf("%s x%s at %s per unit (id %s)",
		it.Name, it.Quantity, Amount(it.CostPerUnit, currency), it.ID)
}

// Expense renders an expense to a confirmation line.
func Expense(e shop.Expense, currency string) string {
	return fmt.Sprintf("Expense %s of %s (id %s)", e.Name, Amount(e.Amount, currency), e.ID)
}

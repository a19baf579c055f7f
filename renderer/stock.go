package renderer

import (
	"bytes"
	"strconv"

	shop "github.com/Jvntrials/COGSHALFHALF"
	md "github.com/nao1215/markdown"
)

// StockMarkdown renders the current stock, one row per item name with the
// deliveries grouped.
func StockMarkdown(stock []shop.StockEntry, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock")
	if len(stock) == 0 {
		doc.PlainText("No items in stock.")
		return doc.String()
	}

	rows := make([][]string, 0, len(stock))
	for _, e := range stock {
		rows = append(rows, []string{
			e.Name,
			e.Quantity.String(),
			Amount(e.CostPerUnit, currency),
			e.LastPurchase.Short(),
			strconv.Itoa(e.Entries),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Item", "Quantity", "Cost per Unit", "Last Purchase", "Entries"},
		Rows:   rows,
	})

	return doc.String()
}

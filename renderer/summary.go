package renderer

import (
	"bytes"
	"fmt"

	shop "github.com/Jvntrials/COGSHALFHALF"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *shop.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Shop Summary")
	doc.PlainText(fmt.Sprintf("%d purchases and %d sales recorded.", s.Purchases, s.Sales))

	table := md.TableSet{
		Header: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Revenue", Amount(s.Revenue, currency)},
			{"Purchase Cost", Amount(s.PurchaseCost, currency)},
			{"Rent", Amount(s.Rent, currency)},
			{"Other Expenses", Amount(s.OtherExpenses, currency)},
			{"Total Expenses", Amount(s.TotalExpenses, currency)},
			{"Margin", SignedAmount(s.Margin, currency)},
		},
	}
	doc.Table(table)

	return doc.String()
}

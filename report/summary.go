package report

import (
	"github.com/shopspring/decimal"

	"example.com/stipends/models"
)

type Summary struct {
	Transactions int
	UniqueNames  int
	Total        decimal.Decimal
	MinDate      string
	MaxDate      string
}

// Summarize computes the post-merge statistics. Empty names are not counted
// as a name and empty dates are left out of the date range.
func Summarize(transactions []models.Transaction) Summary {
	s := Summary{
		Transactions: len(transactions),
		Total:        decimal.Zero,
	}

	names := make(map[string]struct{})
	for _, tx := range transactions {
		s.Total = s.Total.Add(tx.Amount.Decimal)

		if tx.Name != "" {
			names[tx.Name] = struct{}{}
		}

		if tx.Date == "" {
			continue
		}
		if s.MinDate == "" || tx.Date < s.MinDate {
			s.MinDate = tx.Date
		}
		if s.MaxDate == "" || tx.Date > s.MaxDate {
			s.MaxDate = tx.Date
		}
	}
	s.UniqueNames = len(names)

	return s
}

package models

// RawRow is one input line as read from a fiscal year file. Every field is
// kept as text until the amount is cleaned.
type RawRow struct {
	Line   int    `csv:"-"`
	Date   string `csv:"Date"`
	Name   string `csv:"Name"`
	Amount string `csv:"Amount"`
}

type Transaction struct {
	Date   string `csv:"Date"`
	Name   string `csv:"Name"`
	Amount Amount `csv:"Amount"`
}

const (
	ColumnDate   = "Date"
	ColumnName   = "Name"
	ColumnAmount = "Amount"
)

// RequiredColumns lists the header fields every input file must carry, in
// output order.
var RequiredColumns = []string{ColumnDate, ColumnName, ColumnAmount}

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"example.com/stipends/models"
)

func tx(date, name, amount string) models.Transaction {
	return models.Transaction{Date: date, Name: name, Amount: models.NewAmount(decimal.RequireFromString(amount))}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx("2024-01-01", "Alice", "50"),
		tx("2024-02-01", "Alice", "25.5"),
		tx("2024-01-02", "Bob", "100"),
		tx("", "", "-10"),
	})

	if s.Transactions != 4 {
		t.Errorf("expected 4 transactions, got %d", s.Transactions)
	}
	if s.UniqueNames != 2 {
		t.Errorf("expected 2 unique names, got %d", s.UniqueNames)
	}
	if !s.Total.Equal(decimal.RequireFromString("165.5")) {
		t.Errorf("expected total 165.5, got %s", s.Total)
	}
	if s.MinDate != "2024-01-01" || s.MaxDate != "2024-02-01" {
		t.Errorf("unexpected date range %s to %s", s.MinDate, s.MaxDate)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Transactions != 0 || s.UniqueNames != 0 || !s.Total.IsZero() || s.MinDate != "" {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestReporterSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf)

	r.Summary(Summary{UniqueNames: 2, Total: decimal.RequireFromString("175.5"), MinDate: "2024-01-01", MaxDate: "2024-02-01"}, 1)

	out := buf.String()
	for _, want := range []string{
		"Unique students: 2",
		"Total amount: $175.50",
		"Date range: 2024-01-01 to 2024-02-01",
		"Amounts coerced to 0.0: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestReporterPreview(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf)

	txs := []models.Transaction{
		tx("2024-01-01", "Alice", "50"),
		tx("2024-02-01", "Alice", "25.5"),
		tx("2024-01-02", "Bob", "100"),
	}
	r.Preview(txs, 2)

	out := buf.String()
	if !strings.Contains(out, "First 2 rows") {
		t.Errorf("expected preview heading, got:\n%s", out)
	}
	if !strings.Contains(out, "25.5") || strings.Contains(out, "Bob") {
		t.Errorf("expected exactly the first two rows, got:\n%s", out)
	}

	buf.Reset()
	r.Preview(txs, 0)
	if buf.Len() != 0 {
		t.Errorf("expected no preview, got:\n%s", buf.String())
	}
}

func TestReporterFileLoaded(t *testing.T) {
	buf := &bytes.Buffer{}
	New(buf).FileLoaded(3, []string{"Date", "Name", "Amount", "Memo"})

	out := buf.String()
	if !strings.Contains(out, "Rows: 3") || !strings.Contains(out, "Columns: [Date, Name, Amount, Memo]") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestReporterCurrency(t *testing.T) {
	r := New(&bytes.Buffer{})

	cases := []struct {
		in  string
		out string
	}{
		{"175.5", "$175.50"},
		{"0", "$0.00"},
		{"0.995", "$1.00"},
		{"-5", "$-5.00"},
		{"-0.001", "$0.00"},
		{"12207474172", "$12,207,474,172.00"},
		{"-1234.567", "$-1,234.57"},
		{"1e20", "$100000000000000000000.00"},
	}
	for _, tc := range cases {
		if got := r.Currency(decimal.RequireFromString(tc.in)); got != tc.out {
			t.Errorf("%s expected %q, got %q", tc.in, tc.out, got)
		}
	}
}

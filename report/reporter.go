package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"example.com/stipends/models"
)

// Reporter prints the human readable progress of a merge run.
type Reporter struct {
	out     io.Writer
	printer *message.Printer
}

func New(out io.Writer) *Reporter {
	return &Reporter{
		out:     out,
		printer: message.NewPrinter(language.English),
	}
}

func (r *Reporter) Discovered(files []string) {
	fmt.Fprintf(r.out, "Found %d CSV files:\n", len(files))
	for _, f := range files {
		fmt.Fprintf(r.out, "  - %s\n", f)
	}
}

func (r *Reporter) Processing(path string) {
	fmt.Fprintf(r.out, "\nProcessing %s...\n", filepath.Base(path))
}

func (r *Reporter) FileLoaded(rows int, columns []string) {
	fmt.Fprintf(r.out, "  Rows: %d\n", rows)
	fmt.Fprintf(r.out, "  Columns: [%s]\n", strings.Join(columns, ", "))
}

func (r *Reporter) Merging(tables, rows int) {
	fmt.Fprintf(r.out, "\nMerging %d tables...\n", tables)
	fmt.Fprintf(r.out, "Total rows before sorting: %d\n", rows)
	fmt.Fprintln(r.out, "\nSorting by Name and Date...")
}

func (r *Reporter) Written(rows int, path string) {
	fmt.Fprintf(r.out, "\nSuccessfully merged %d transactions\n", rows)
	fmt.Fprintf(r.out, "Output saved to: %s\n", path)
}

func (r *Reporter) Summary(s Summary, coerced int) {
	fmt.Fprintln(r.out, "\n--- Summary Statistics ---")
	fmt.Fprintf(r.out, "Unique students: %d\n", s.UniqueNames)
	fmt.Fprintf(r.out, "Total amount: %s\n", r.Currency(s.Total))
	fmt.Fprintf(r.out, "Date range: %s to %s\n", s.MinDate, s.MaxDate)
	if coerced > 0 {
		fmt.Fprintf(r.out, "Amounts coerced to 0.0: %d\n", coerced)
	}
}

// Currency formats a total with a dollar sign, thousands grouping and two
// decimals, e.g. $12,345.60. Totals beyond int64 are printed ungrouped.
func (r *Reporter) Currency(v decimal.Decimal) string {
	rounded := v.Abs().Round(2)
	whole, frac, _ := strings.Cut(rounded.StringFixed(2), ".")

	units := rounded.Truncate(0)
	if units.LessThan(decimal.New(1, 18)) {
		whole = r.printer.Sprintf("%d", units.IntPart())
	}

	sign := ""
	if v.Round(2).IsNegative() {
		sign = "-"
	}
	return "$" + sign + whole + "." + frac
}

// Preview prints the first n transactions as an aligned table.
func (r *Reporter) Preview(transactions []models.Transaction, n int) {
	if n <= 0 {
		return
	}
	if n > len(transactions) {
		n = len(transactions)
	}

	fmt.Fprintf(r.out, "\n--- First %d rows (preview) ---\n", n)
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", models.ColumnDate, models.ColumnName, models.ColumnAmount)
	for _, tx := range transactions[:n] {
		fmt.Fprintf(w, "%s\t%s\t%s\n", tx.Date, tx.Name, tx.Amount)
	}
	w.Flush()
}

package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"example.com/stipends/amount"
	"example.com/stipends/models"
)

var (
	ErrEmptyFile   = errors.New("file has no header line")
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")
)

// MissingColumnsError means a file cannot take part in the merge because
// its header lacks required columns.
type MissingColumnsError struct {
	Path    string
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing columns [%s]", filepath.Base(e.Path), strings.Join(e.Missing, ", "))
}

// Table is the raw content of one fiscal year file.
type Table struct {
	Path    string
	Columns []string
	Rows    []*models.RawRow
}

// Read loads a whole CSV file without interpreting any field. A leading
// UTF-8 byte order mark is dropped.
func Read(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	header, err := newCSVReader(decoded).Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	rows := []*models.RawRow{}
	in := &headerReader{Reader: newCSVReader(decoded), header: decodeHeader(header)}
	if err := gocsv.UnmarshalCSV(in, &rows); err != nil {
		return nil, fmt.Errorf("read rows of %s: %w", path, err)
	}
	for idx, row := range rows {
		// header is line 1
		row.Line = idx + 2
	}

	return &Table{
		Path:    path,
		Columns: header,
		Rows:    rows,
	}, nil
}

// Load reads a file and checks it carries every required column.
func Load(path string) (*Table, error) {
	table, err := Read(path)
	if err != nil {
		return nil, err
	}
	if missing := table.Missing(); len(missing) > 0 {
		return table, &MissingColumnsError{Path: path, Missing: missing}
	}
	return table, nil
}

// Missing lists the required columns absent from the header. Names match
// exactly and case-sensitively.
func (t *Table) Missing() []string {
	var missing []string
	for _, col := range models.RequiredColumns {
		if !slices.Contains(t.Columns, col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// Clean projects the table to Date, Name and Amount and turns every amount
// into a number. Missing dates and names are written as empty fields.
func (t *Table) Clean(cleaner *amount.Cleaner) []models.Transaction {
	file := filepath.Base(t.Path)
	transactions := make([]models.Transaction, 0, len(t.Rows))
	for _, row := range t.Rows {
		transactions = append(transactions, models.Transaction{
			Date:   presentOrEmpty(row.Date),
			Name:   presentOrEmpty(row.Name),
			Amount: cleaner.Clean(row.Amount, zap.String("file", file), zap.Int("line", row.Line)),
		})
	}
	return transactions
}

func presentOrEmpty(s string) string {
	if models.IsMissing(s) {
		return ""
	}
	return s
}

// newCSVReader tolerates rows shorter or longer than the header. Absent
// trailing fields read as empty.
func newCSVReader(data []byte) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	return r
}

// decodeHeader returns the header handed to the row decoder. Only the first
// exact match of each required column keeps its name; any other column that
// the decoder could confuse with it (case or surrounding space aside) is
// renamed to "<name>.<index>" and so dropped from the projection.
func decodeHeader(header []string) []string {
	first := make(map[string]int, len(models.RequiredColumns))
	for _, col := range models.RequiredColumns {
		if idx := slices.Index(header, col); idx >= 0 {
			first[col] = idx
		}
	}

	out := slices.Clone(header)
	for idx, name := range header {
		for _, col := range models.RequiredColumns {
			if !strings.EqualFold(strings.TrimSpace(name), col) {
				continue
			}
			if pos, ok := first[col]; !ok || pos != idx {
				out[idx] = fmt.Sprintf("%s.%d", strings.TrimSpace(name), idx)
			}
		}
	}
	return out
}

// headerReader feeds gocsv the records of a csv.Reader with the header line
// replaced.
type headerReader struct {
	*csv.Reader
	header []string
	read   bool
}

func (r *headerReader) Read() ([]string, error) {
	record, err := r.Reader.Read()
	if err != nil || r.read {
		return record, err
	}
	r.read = true
	return r.header, nil
}

func (r *headerReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

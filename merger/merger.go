package merger

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"example.com/stipends/amount"
	"example.com/stipends/config"
	"example.com/stipends/loader"
	"example.com/stipends/models"
	"example.com/stipends/report"
)

var (
	ErrNoInputFiles  = errors.New("no CSV files found")
	ErrNoValidTables = errors.New("no valid tables to merge")
)

// Result describes a completed merge.
type Result struct {
	OutputPath   string
	Files        []string
	SkippedFiles []string
	Transactions []models.Transaction
	Summary      report.Summary
}

type Merger struct {
	cfg      *config.Config
	logger   *zap.Logger
	reporter *report.Reporter
}

func New(cfg *config.Config, logger *zap.Logger, reporter *report.Reporter) *Merger {
	return &Merger{
		cfg:      cfg,
		logger:   logger,
		reporter: reporter,
	}
}

// Run discovers the input files, merges them and writes the output file.
//
// ErrNoInputFiles and ErrNoValidTables are expected outcomes: they have
// already been logged when returned and no output has been written.
func (m *Merger) Run(ctx context.Context) (*Result, error) {
	pattern := m.cfg.InputGlob()
	files, err := Discover(pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		m.logger.Error("no CSV files found matching pattern", zap.String("pattern", pattern))
		return nil, ErrNoInputFiles
	}
	m.reporter.Discovered(files)

	cleaner := amount.NewCleaner(m.logger)
	result := &Result{Files: files}

	var tables [][]models.Transaction
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		m.reporter.Processing(file)
		table, err := loader.Load(file)

		var mce *loader.MissingColumnsError
		switch {
		case errors.As(err, &mce):
			m.reporter.FileLoaded(len(table.Rows), table.Columns)
			m.logger.Warn("missing columns, skipping file",
				zap.String("file", filepath.Base(file)),
				zap.Strings("missing", mce.Missing))
			result.SkippedFiles = append(result.SkippedFiles, file)
			continue
		case err != nil:
			return nil, fmt.Errorf("load %s: %w", file, err)
		}

		m.reporter.FileLoaded(len(table.Rows), table.Columns)
		tables = append(tables, table.Clean(cleaner))
	}

	if len(tables) == 0 {
		m.logger.Error("no valid tables to merge", zap.Int("files", len(files)))
		return nil, ErrNoValidTables
	}

	merged := Concat(tables)
	m.reporter.Merging(len(tables), len(merged))
	Sort(merged)

	output := m.cfg.OutputPath()
	if err := Write(output, merged); err != nil {
		return nil, err
	}
	m.logger.Debug("wrote merged file", zap.String("path", output), zap.Int("rows", len(merged)))

	result.OutputPath = output
	result.Transactions = merged
	result.Summary = report.Summarize(merged)

	m.reporter.Written(len(merged), output)
	m.reporter.Summary(result.Summary, cleaner.Warnings())
	m.reporter.Preview(merged, m.cfg.PreviewRows)

	return result, nil
}

// Discover returns the files matching pattern in lexicographic order.
func Discover(pattern string) ([]string, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("match %q: %w", pattern, err)
	}
	sort.Strings(files)
	return files, nil
}

// Concat joins the tables in order, keeping the row order of each.
func Concat(tables [][]models.Transaction) []models.Transaction {
	var n int
	for _, t := range tables {
		n += len(t)
	}
	merged := make([]models.Transaction, 0, n)
	for _, t := range tables {
		merged = append(merged, t...)
	}
	return merged
}

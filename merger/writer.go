package merger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"example.com/stipends/models"
)

// Write stores the transactions as UTF-8 CSV with a Date,Name,Amount header,
// creating the parent directory when needed.
func Write(path string, transactions []models.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := gocsv.Marshal(transactions, file); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return file.Close()
}

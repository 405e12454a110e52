package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile overwrites the dataset at path wholesale: a header row with the
// declared field names, then one row per record with values in header
// order. Unset fields are written empty. The caller is responsible for
// ordering the records.
func WriteFile(path string, fields []string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	row := make([]string, len(fields))
	for _, rec := range records {
		for i, field := range fields {
			row[i] = rec.Fields[field]
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

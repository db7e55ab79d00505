package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"minimcu/storage"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, details []storage.CheckupDetail) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, detail := range details {
		if err := writer.Write(exportRow(detail)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}
	return nil
}

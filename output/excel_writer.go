package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"minimcu/storage"
)

const exportSheetName = "Checkup Data"

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, details []storage.CheckupDetail) error {
	file, err := buildExportFile(details)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}
	return nil
}

// WriteExcelTo streams the export workbook, used by the web download
// endpoint.
func WriteExcelTo(out io.Writer, details []storage.CheckupDetail) error {
	file, err := buildExportFile(details)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.Write(out); err != nil {
		return fmt.Errorf("write excel output: %w", err)
	}
	return nil
}

func buildExportFile(details []storage.CheckupDetail) (*excelize.File, error) {
	file := excelize.NewFile()

	defaultSheet := file.GetSheetName(0)
	if err := file.SetSheetName(defaultSheet, exportSheetName); err != nil {
		file.Close()
		return nil, fmt.Errorf("rename export sheet: %w", err)
	}

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(exportSheetName, cell, header); err != nil {
			file.Close()
			return nil, fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, detail := range details {
		row := i + 2
		for col, value := range exportRow(detail) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(exportSheetName, cell, value); err != nil {
				file.Close()
				return nil, fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	return file, nil
}

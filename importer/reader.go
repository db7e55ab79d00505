package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Row is one data row of a sheet. Number is the 1-based spreadsheet row
// number (header row is 1), used in skip reports.
type Row struct {
	Number int
	Cells  []string
}

func (r Row) Empty() bool {
	for _, cell := range r.Cells {
		if trimmed := normalizeText(cell); trimmed != "" {
			return false
		}
	}
	return true
}

type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}

type Workbook struct {
	Path   string
	Sheets []Sheet
}

// ReadWorkbook loads every sheet of an Excel workbook. Sheets without a
// header row are kept with zero rows so callers can report them as empty
// rather than failing the whole file.
func ReadWorkbook(path string) (*Workbook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	names := file.GetSheetList()
	if len(names) == 0 {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	workbook := &Workbook{Path: path, Sheets: make([]Sheet, 0, len(names))}
	for _, name := range names {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read rows from sheet %s: %w", name, err)
		}

		sheet := Sheet{Name: name}
		if len(rows) > 0 {
			sheet.Headers = rows[0]
			sheet.Rows = make([]Row, 0, len(rows)-1)
			for i, cells := range rows[1:] {
				sheet.Rows = append(sheet.Rows, Row{Number: i + 2, Cells: cells})
			}
		}
		workbook.Sheets = append(workbook.Sheets, sheet)
	}

	return workbook, nil
}

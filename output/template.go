package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"minimcu/medical"
)

const templateSheetName = "Template Data Check-Up"

// Template column layout. Identity columns are pre-filled from master
// data; measurement columns stay empty for manual entry; the last three
// carry in-cell formulas so the sheet self-calculates while nurses type.
var templateHeaders = []string{
	"uid", "nama", "jabatan", "lokasi", "tanggal_checkup", "tanggal_lahir",
	"tinggi", "berat", "lingkar_perut",
	"gula_darah_puasa", "gula_darah_sewaktu", "cholesterol", "asam_urat",
	"umur", "bmi", "bmi_category",
}

// WriteTemplate generates the nurse entry workbook for the given
// employees, optionally filtered by location (case-insensitive).
func WriteTemplate(path string, employees []medical.Employee, locationFilter string) error {
	file, err := buildTemplateFile(employees, locationFilter)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save template %s: %w", path, err)
	}
	return nil
}

// WriteTemplateTo streams the template workbook, used by the web download
// endpoint.
func WriteTemplateTo(out io.Writer, employees []medical.Employee, locationFilter string) error {
	file, err := buildTemplateFile(employees, locationFilter)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.Write(out); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}

func buildTemplateFile(employees []medical.Employee, locationFilter string) (*excelize.File, error) {
	file := excelize.NewFile()

	if err := file.SetSheetName(file.GetSheetName(0), templateSheetName); err != nil {
		file.Close()
		return nil, fmt.Errorf("rename template sheet: %w", err)
	}

	for col, header := range templateHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(templateSheetName, cell, header); err != nil {
			file.Close()
			return nil, fmt.Errorf("set template header %s: %w", cell, err)
		}
	}

	filter := strings.ToLower(strings.TrimSpace(locationFilter))
	row := 2
	for _, employee := range employees {
		if filter != "" && strings.ToLower(strings.TrimSpace(employee.Location)) != filter {
			continue
		}
		if err := writeTemplateRow(file, row, employee); err != nil {
			file.Close()
			return nil, err
		}
		row++
	}

	return file, nil
}

func writeTemplateRow(file *excelize.File, row int, employee medical.Employee) error {
	identity := []string{employee.UID, employee.Name, employee.JobTitle, employee.Location}
	for col, value := range identity {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := file.SetCellValue(templateSheetName, cell, value); err != nil {
			return fmt.Errorf("set template value %s: %w", cell, err)
		}
	}

	if employee.BirthDate != nil {
		cell, _ := excelize.CoordinatesToCellName(6, row)
		if err := file.SetCellValue(templateSheetName, cell, employee.BirthDate.Format("2006-01-02")); err != nil {
			return fmt.Errorf("set template value %s: %w", cell, err)
		}
	}

	// Column letters follow templateHeaders: F birth date, G height,
	// H weight, N age, O bmi, P category.
	ageFormula := fmt.Sprintf(`IF(ISNUMBER(F%d),INT(YEARFRAC(F%d,TODAY(),1)),"")`, row, row)
	bmiFormula := fmt.Sprintf(`IF(G%d>0,H%d/((G%d/100)^2),0)`, row, row, row)
	categoryFormula := fmt.Sprintf(
		`IF(O%d<18.5,"Underweight",IF(O%d<25,"Ideal",IF(O%d<30,"Overweight","Obese")))`,
		row, row, row,
	)

	formulas := map[string]string{
		fmt.Sprintf("N%d", row): ageFormula,
		fmt.Sprintf("O%d", row): bmiFormula,
		fmt.Sprintf("P%d", row): categoryFormula,
	}
	for cell, formula := range formulas {
		if err := file.SetCellFormula(templateSheetName, cell, formula); err != nil {
			return fmt.Errorf("set template formula %s: %w", cell, err)
		}
	}
	return nil
}

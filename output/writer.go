package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"minimcu/medical"
	"minimcu/storage"
)

type Writer interface {
	Write(path string, details []storage.CheckupDetail) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

// Export column order. Headers use the source-workbook spellings so an
// exported file can be re-imported through the same alias tables.
var exportHeaders = []string{
	"uid", "nama", "jabatan", "lokasi", "tanggal_checkup", "tanggal_lahir",
	"umur", "tinggi", "berat", "lingkar_perut", "bmi",
	"gula_darah_puasa", "gula_darah_sewaktu", "cholesterol", "asam_urat",
	"status",
}

// exportRow serializes one checkup: numerics with two decimals, dates as
// ISO YYYY-MM-DD, missing values as blanks.
func exportRow(detail storage.CheckupDetail) []string {
	return []string{
		detail.UID,
		detail.Name,
		detail.JobTitle,
		detail.Location,
		detail.CheckupDate.Format("2006-01-02"),
		formatDate(detail.BirthDate),
		formatInt(detail.Age),
		formatFloat(detail.Height),
		formatFloat(detail.Weight),
		formatFloat(detail.Waist),
		formatFloat(detail.BMI),
		formatFloat(detail.FastingGlucose),
		formatFloat(detail.RandomGlucose),
		formatFloat(detail.Cholesterol),
		formatFloat(detail.UricAcid),
		medical.Status(detail.Checkup),
	}
}

func formatDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format("2006-01-02")
}

func formatFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(medical.Round2(*value), 'f', 2, 64)
}

func formatInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

package importer

import (
	"strconv"
	"strings"
	"time"
)

// parseFloat coerces a cell into a number. Unparsable values yield nil,
// never an error; a bad measurement must not fail the row.
func parseFloat(raw string) *float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil
	}
	if strings.Contains(cleaned, ",") && !strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseInt(raw string) *int {
	value := parseFloat(raw)
	if value == nil {
		return nil
	}
	rounded := int(*value)
	return &rounded
}

// Day-first layouts come first: the source workbooks are filled in a
// dd/mm locale, so 03/04/2026 is the 3rd of April.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2.1.2006",
	"2006-01-02",
	"2006/01/02",
	"02/01/06",
	"2 January 2006",
	time.RFC3339,
}

// Excel stores dates as day counts from this epoch when the cell is not
// string-typed.
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// parseDate coerces a cell into a calendar date. Dates before 1901 are a
// sentinel for spreadsheet epoch artifacts and yield nil, as does any
// value no layout accepts.
func parseDate(raw string) *time.Time {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return validDate(parsed)
		}
	}

	if serial, err := strconv.ParseFloat(cleaned, 64); err == nil && serial > 0 {
		parsed := excelEpoch.AddDate(0, 0, int(serial))
		return validDate(parsed)
	}

	return nil
}

func validDate(parsed time.Time) *time.Time {
	if parsed.Year() < 1901 {
		return nil
	}
	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return &date
}

// normalizeText trims and lower-cases free-text identity fields so that
// matching is insensitive to spreadsheet entry style.
func normalizeText(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

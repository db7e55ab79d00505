package importer

import (
	"fmt"
	"strings"
	"time"

	"minimcu/medical"
)

// CheckupStore is the persistence surface the checkup importer needs. The
// employee snapshot is fetched once per import so identifier matching does
// not cost one query per row.
type CheckupStore interface {
	ListEmployees() ([]medical.Employee, error)
	InsertCheckup(checkup medical.Checkup) (int64, error)
}

// SkipRecord is one excluded row with its 1-based spreadsheet row number
// and a human-readable reason. It is reported, never persisted.
type SkipRecord struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// CheckupResult is the batch contract of a checkup import: how many rows
// were inserted and an itemized log of every row that was not.
type CheckupResult struct {
	Inserted int          `json:"inserted"`
	Skipped  []SkipRecord `json:"skipped"`
}

// ImportCheckups ingests a medical checkup workbook. Every sheet is
// processed; a row failing coercion, identifier resolution, or persistence
// is recorded in the skip log and the batch continues. Only an unreadable
// workbook or an unreachable store fails the whole call.
func ImportCheckups(workbook *Workbook, store CheckupStore, now time.Time) (*CheckupResult, error) {
	employees, err := store.ListEmployees()
	if err != nil {
		return nil, fmt.Errorf("load employee snapshot: %w", err)
	}

	byUID := make(map[string]medical.Employee, len(employees))
	byIdentity := make(map[string]string, len(employees))
	for _, employee := range employees {
		byUID[employee.UID] = employee
		byIdentity[identityKey(employee.Name, employee.JobTitle, employee.Location, employee.BirthDate)] = employee.UID
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	result := &CheckupResult{Skipped: make([]SkipRecord, 0)}

	for _, sheet := range workbook.Sheets {
		columns := ResolveColumns(sheet.Headers, checkupFields)

		for _, row := range sheet.Rows {
			if row.Empty() {
				result.skip(row, "Empty row")
				continue
			}

			checkup, reason := buildCheckup(columns, row, sheet.Name, today, byUID, byIdentity)
			if reason != "" {
				result.skip(row, reason)
				continue
			}

			if _, err := store.InsertCheckup(checkup); err != nil {
				result.skip(row, err.Error())
				continue
			}
			result.Inserted++
		}
	}

	return result, nil
}

func buildCheckup(
	columns ColumnMap,
	row Row,
	sheetName string,
	today time.Time,
	byUID map[string]medical.Employee,
	byIdentity map[string]string,
) (medical.Checkup, string) {
	location := strings.TrimSpace(columns.Value(row, FieldLocation))
	if location == "" {
		location = sheetName
	}

	birthDate := parseDate(columns.Value(row, FieldBirthDate))

	uid := strings.TrimSpace(columns.Value(row, FieldUID))
	if uid != "" {
		if _, ok := byUID[uid]; !ok {
			return medical.Checkup{}, "UID not found in database"
		}
	} else if columns.Has(FieldUID) {
		return medical.Checkup{}, "UID not found in database"
	} else {
		name := columns.Value(row, FieldName)
		jobTitle := columns.Value(row, FieldJobTitle)
		matched, ok := byIdentity[identityKey(name, jobTitle, location, birthDate)]
		if !ok {
			return medical.Checkup{}, "identifier not found"
		}
		uid = matched
	}

	checkupDate := today
	if parsed := parseDate(columns.Value(row, FieldCheckupDate)); parsed != nil {
		checkupDate = *parsed
	}

	height := parseFloat(columns.Value(row, FieldHeight))
	if height != nil && *height < 3 {
		// Values under 3 are meters from mixed-unit templates.
		converted := *height * 100
		height = &converted
	}
	weight := parseFloat(columns.Value(row, FieldWeight))

	age := parseInt(columns.Value(row, FieldAge))
	if age == nil && birthDate != nil {
		computed := medical.AgeAt(*birthDate, checkupDate)
		age = &computed
	}

	return medical.Checkup{
		UID:            uid,
		CheckupDate:    checkupDate,
		BirthDate:      birthDate,
		Age:            age,
		Height:         height,
		Weight:         weight,
		Waist:          parseFloat(columns.Value(row, FieldWaist)),
		BMI:            medical.ComputeBMI(weight, height),
		FastingGlucose: parseFloat(columns.Value(row, FieldFastingGlucose)),
		RandomGlucose:  parseFloat(columns.Value(row, FieldRandomGlucose)),
		Cholesterol:    parseFloat(columns.Value(row, FieldCholesterol)),
		UricAcid:       parseFloat(columns.Value(row, FieldUricAcid)),
		Location:       location,
	}, ""
}

func identityKey(name, jobTitle, location string, birthDate *time.Time) string {
	birth := ""
	if birthDate != nil {
		birth = birthDate.Format("2006-01-02")
	}
	return normalizeText(name) + "|" + normalizeText(jobTitle) + "|" + normalizeText(location) + "|" + birth
}

func (r *CheckupResult) skip(row Row, reason string) {
	r.Skipped = append(r.Skipped, SkipRecord{Row: row.Number, Reason: reason})
}

// RunCheckupImport reads each workbook path and merges the per-file batch
// results.
func RunCheckupImport(paths []string, store CheckupStore, now time.Time) (*CheckupResult, error) {
	combined := &CheckupResult{Skipped: make([]SkipRecord, 0)}
	for _, path := range paths {
		workbook, err := ReadWorkbook(path)
		if err != nil {
			return nil, err
		}
		result, err := ImportCheckups(workbook, store, now)
		if err != nil {
			return nil, err
		}
		combined.Inserted += result.Inserted
		combined.Skipped = append(combined.Skipped, result.Skipped...)
	}
	return combined, nil
}

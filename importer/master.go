package importer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"minimcu/medical"
)

// MasterStore is the persistence surface the master-data importer needs.
// EnsureEmployee must perform lookup-by-(name, job title) and conditional
// insert as one transactional unit so concurrent imports cannot mint two
// UIDs for the same pair.
type MasterStore interface {
	EnsureEmployee(employee medical.Employee) (uid string, created bool, err error)
}

// MasterResult is the batch contract of a master-data import. Callers get
// aggregate counts plus the batch id; SkipLog carries the per-row reasons
// for diagnostics but is not part of the external contract.
type MasterResult struct {
	Inserted int
	Skipped  int
	Created  int
	Matched  int
	BatchID  string
	SkipLog  []SkipRecord
}

// ImportMasterData ingests an employee master workbook sheet by sheet.
// The sheet name is the site for every row unless the row carries its own
// populated location cell. Rows missing name, job title, or birth date are
// skipped; a row whose persistence fails is skipped with a reason and the
// rest of the sheet continues.
func ImportMasterData(workbook *Workbook, store MasterStore, batchID string) (*MasterResult, error) {
	if batchID == "" {
		batchID = uuid.NewString()
	}
	result := &MasterResult{BatchID: batchID}

	for _, sheet := range workbook.Sheets {
		columns := ResolveColumns(sheet.Headers, masterFields)

		for _, row := range sheet.Rows {
			if row.Empty() {
				continue
			}

			name := strings.TrimSpace(columns.Value(row, FieldName))
			jobTitle := strings.TrimSpace(columns.Value(row, FieldJobTitle))
			birthRaw := columns.Value(row, FieldBirthDate)
			if name == "" || jobTitle == "" || birthRaw == "" {
				result.skip(row, "missing mandatory field (name, job title, birth date)")
				continue
			}

			location := sheet.Name
			if cellLocation := strings.TrimSpace(columns.Value(row, FieldLocation)); cellLocation != "" {
				location = cellLocation
			}
			if strings.TrimSpace(location) == "" {
				result.skip(row, "invalid location")
				continue
			}

			employee := medical.Employee{
				Name:      name,
				JobTitle:  jobTitle,
				Location:  location,
				BirthDate: parseDate(birthRaw),
				BatchID:   batchID,
			}

			_, created, err := store.EnsureEmployee(employee)
			if err != nil {
				result.skip(row, fmt.Sprintf("persist employee: %v", err))
				continue
			}

			result.Inserted++
			if created {
				result.Created++
			} else {
				result.Matched++
			}
		}
	}

	return result, nil
}

func (r *MasterResult) skip(row Row, reason string) {
	r.Skipped++
	r.SkipLog = append(r.SkipLog, SkipRecord{Row: row.Number, Reason: reason})
}

// RunMasterImport reads each workbook path and feeds it through
// ImportMasterData under one shared batch id.
func RunMasterImport(paths []string, store MasterStore) (*MasterResult, error) {
	combined := &MasterResult{BatchID: uuid.NewString()}
	for _, path := range paths {
		workbook, err := ReadWorkbook(path)
		if err != nil {
			return nil, err
		}
		result, err := ImportMasterData(workbook, store, combined.BatchID)
		if err != nil {
			return nil, err
		}
		combined.Inserted += result.Inserted
		combined.Skipped += result.Skipped
		combined.Created += result.Created
		combined.Matched += result.Matched
		combined.SkipLog = append(combined.SkipLog, result.SkipLog...)
	}
	return combined, nil
}

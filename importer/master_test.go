package importer

import (
	"errors"
	"fmt"
	"testing"

	"minimcu/medical"
)

type fakeMasterStore struct {
	employees []medical.Employee
	failNames map[string]bool
	nextUID   int
}

func (s *fakeMasterStore) EnsureEmployee(employee medical.Employee) (string, bool, error) {
	if s.failNames[employee.Name] {
		return "", false, errors.New("disk full")
	}
	for _, existing := range s.employees {
		if existing.Name == employee.Name && existing.JobTitle == employee.JobTitle {
			return existing.UID, false, nil
		}
	}
	s.nextUID++
	employee.UID = fmt.Sprintf("uid-%d", s.nextUID)
	s.employees = append(s.employees, employee)
	return employee.UID, true, nil
}

func masterWorkbook(sheets ...Sheet) *Workbook {
	return &Workbook{Path: "master.xlsx", Sheets: sheets}
}

func TestImportMasterDataSheetNameIsLocation(t *testing.T) {
	t.Parallel()

	workbook := masterWorkbook(Sheet{
		Name:    "Rig AB-100",
		Headers: []string{"nama", "jabatan", "tanggal_lahir"},
		Rows: []Row{
			{Number: 2, Cells: []string{"Budi Santoso", "Driller", "03/04/1990"}},
			{Number: 3, Cells: []string{"Siti Aminah", "Medic", "17/12/1985"}},
		},
	})

	store := &fakeMasterStore{}
	result, err := ImportMasterData(workbook, store, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Inserted != 2 || result.Created != 2 || result.Skipped != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.BatchID == "" {
		t.Fatalf("expected a generated batch id")
	}
	for _, employee := range store.employees {
		if employee.Location != "Rig AB-100" {
			t.Fatalf("expected sheet name as location, got %q", employee.Location)
		}
		if employee.BatchID != result.BatchID {
			t.Fatalf("expected batch id %s on employee, got %s", result.BatchID, employee.BatchID)
		}
	}
}

func TestImportMasterDataLocationCellOverridesSheet(t *testing.T) {
	t.Parallel()

	workbook := masterWorkbook(Sheet{
		Name:    "Kantor",
		Headers: []string{"nama", "jabatan", "tanggal_lahir", "lokasi"},
		Rows: []Row{
			{Number: 2, Cells: []string{"Budi Santoso", "Driller", "03/04/1990", "Rig LTO-150"}},
			{Number: 3, Cells: []string{"Siti Aminah", "Medic", "17/12/1985", ""}},
		},
	})

	store := &fakeMasterStore{}
	if _, err := ImportMasterData(workbook, store, "batch-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.employees[0].Location; got != "Rig LTO-150" {
		t.Fatalf("expected cell location to win, got %q", got)
	}
	if got := store.employees[1].Location; got != "Kantor" {
		t.Fatalf("expected sheet fallback for blank cell, got %q", got)
	}
}

func TestImportMasterDataSkipsIncompleteRows(t *testing.T) {
	t.Parallel()

	workbook := masterWorkbook(Sheet{
		Name:    "Kantor",
		Headers: []string{"nama", "jabatan", "tanggal_lahir"},
		Rows: []Row{
			{Number: 2, Cells: []string{"", "Driller", "03/04/1990"}},
			{Number: 3, Cells: []string{"Siti Aminah", "", "17/12/1985"}},
			{Number: 4, Cells: []string{"Andi Wijaya", "Mechanic", ""}},
			{Number: 5, Cells: []string{"Budi Santoso", "Driller", "03/04/1990"}},
			{Number: 6, Cells: []string{"", "", ""}},
		},
	})

	store := &fakeMasterStore{}
	result, err := ImportMasterData(workbook, store, "batch-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Inserted != 1 {
		t.Fatalf("expected 1 inserted, got %d", result.Inserted)
	}
	// Fully empty rows are ignored silently; only rows 2-4 are reported.
	if result.Skipped != 3 {
		t.Fatalf("expected 3 skipped, got %d", result.Skipped)
	}
	if len(result.SkipLog) != 3 {
		t.Fatalf("expected 3 skip log entries, got %d", len(result.SkipLog))
	}
	if result.SkipLog[0].Row != 2 || result.SkipLog[2].Row != 4 {
		t.Fatalf("unexpected skip rows: %+v", result.SkipLog)
	}
}

func TestImportMasterDataMatchesExistingEmployee(t *testing.T) {
	t.Parallel()

	workbook := masterWorkbook(Sheet{
		Name:    "Kantor",
		Headers: []string{"nama", "jabatan", "tanggal_lahir"},
		Rows: []Row{
			{Number: 2, Cells: []string{"Budi Santoso", "Driller", "03/04/1990"}},
		},
	})

	store := &fakeMasterStore{}
	first, err := ImportMasterData(workbook, store, "batch-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ImportMasterData(workbook, store, "batch-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Created != 1 || first.Matched != 0 {
		t.Fatalf("first import should create: %+v", first)
	}
	if second.Created != 0 || second.Matched != 1 {
		t.Fatalf("second import should match: %+v", second)
	}
	if len(store.employees) != 1 {
		t.Fatalf("expected one stored employee, got %d", len(store.employees))
	}
}

func TestImportMasterDataPersistFailureIsolatesRow(t *testing.T) {
	t.Parallel()

	workbook := masterWorkbook(Sheet{
		Name:    "Kantor",
		Headers: []string{"nama", "jabatan", "tanggal_lahir"},
		Rows: []Row{
			{Number: 2, Cells: []string{"Budi Santoso", "Driller", "03/04/1990"}},
			{Number: 3, Cells: []string{"Siti Aminah", "Medic", "17/12/1985"}},
		},
	})

	store := &fakeMasterStore{failNames: map[string]bool{"Budi Santoso": true}}
	result, err := ImportMasterData(workbook, store, "batch-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Inserted != 1 || result.Skipped != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.SkipLog[0].Row != 2 {
		t.Fatalf("expected row 2 in skip log, got %d", result.SkipLog[0].Row)
	}
}

package importer

import (
	"errors"
	"testing"
	"time"

	"minimcu/medical"
)

type fakeCheckupStore struct {
	employees []medical.Employee
	inserted  []medical.Checkup
	insertErr error
	listErr   error
	nextID    int64
}

func (s *fakeCheckupStore) ListEmployees() ([]medical.Employee, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.employees, nil
}

func (s *fakeCheckupStore) InsertCheckup(checkup medical.Checkup) (int64, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	s.nextID++
	s.inserted = append(s.inserted, checkup)
	return s.nextID, nil
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func registeredEmployees() []medical.Employee {
	return []medical.Employee{
		{UID: "uid-1", Name: "Budi Santoso", JobTitle: "Driller", Location: "Rig AB-100", BirthDate: datePtr(1990, time.April, 3)},
		{UID: "uid-2", Name: "Siti Aminah", JobTitle: "Medic", Location: "Kantor", BirthDate: datePtr(1985, time.December, 17)},
	}
}

var importNow = time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)

func TestImportCheckupsByUID(t *testing.T) {
	t.Parallel()

	workbook := &Workbook{Sheets: []Sheet{{
		Name:    "Rig AB-100",
		Headers: []string{"uid", "tanggal_checkup", "tinggi", "berat", "gula_darah_puasa"},
		Rows: []Row{
			{Number: 2, Cells: []string{"uid-1", "10/01/2026", "175", "70", "98"}},
		},
	}}}

	store := &fakeCheckupStore{employees: registeredEmployees()}
	result, err := ImportCheckups(workbook, store, importNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Inserted != 1 || len(result.Skipped) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	checkup := store.inserted[0]
	if checkup.UID != "uid-1" {
		t.Fatalf("expected uid-1, got %s", checkup.UID)
	}
	wantDate := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	if !checkup.CheckupDate.Equal(wantDate) {
		t.Fatalf("expected checkup date %s, got %s", wantDate, checkup.CheckupDate)
	}
	if checkup.BMI == nil || *checkup.BMI != 22.86 {
		t.Fatalf("expected BMI 22.86, got %v", checkup.BMI)
	}
}

func TestImportCheckupsUnknownUIDSkipped(t *testing.T) {
	t.Parallel()

	workbook := &Workbook{Sheets: []Sheet{{
		Name:    "Rig AB-100",
		Headers: []string{"uid", "tinggi", "berat"},
		Rows: []Row{
			{Number: 2, Cells: []string{"uid-404", "175", "70"}},
			{Number: 3, Cells: []string{"", "168", "60"}},
		},
	}}}

	store := &fakeCheckupStore{employees: registeredEmployees()}
	result, err := ImportCheckups(workbook, store, importNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Inserted != 0 {
		t.Fatalf("expected no inserts, got %d", result.Inserted)
	}
	if len(result.Skipped) != 2 {
		t.Fatalf("expected 2 skips, got %+v", result.Skipped)
	}
	for _, skip := range result.Skipped {
		if skip.Reason != "UID not found in database" {
			t.Fatalf("unexpected skip reason: %q", skip.Reason)
		}
	}
}

func TestImportCheckupsIdentityFallback(t *testing.T) {
	t.Parallel()

	// No uid column at all: match on (name, job title, location, birth date),
	// insensitive to case and padding.
	workbook := &Workbook{Sheets: []Sheet{{
		Name:    "Kantor",
		Headers: []string{"nama", "jabatan", "tanggal_lahir", "berat"},
		Rows: []Row{
			{Number: 2, Cells: []string{"  SITI AMINAH ", "medic", "17/12/1985", "58"}},
			{Number: 3, Cells: []string{"Orang Asing", "Welder", "01/01/1980", "80"}},
		},
	}}}

	store := &fakeCheckupStore{employees: registeredEmployees()}
	result, err := ImportCheckups(workbook, store, importNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Inserted != 1 {
		t.Fatalf("expected 1 insert, got %d", result.Inserted)
	}
	if store.inserted[0].UID != "uid-2" {
		t.Fatalf("expected identity match to uid-2, got %s", store.inserted[0].UID)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != "identifier not found" {
		t.Fatalf("unexpected skips: %+v", result.Skipped)
	}
}

func TestImportCheckupsHeightInMetersConverted(t *testing.T) {
	t.Parallel()

	workbook := &Workbook{Sheets: []Sheet{{
		Name:    "Rig AB-100",
		Headers: []string{"uid", "tinggi", "berat"},
		Rows: []Row{
			{Number: 2, Cells: []string{"uid-1", "1.75", "70"}},
		},
	}}}

	store := &fakeCheckupStore{employees: registeredEmployees()}
	if _, err := ImportCheckups(workbook, store, importNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkup := store.inserted[0]
	if checkup.Height == nil || *checkup.Height != 175 {
		t.Fatalf("expected height 175, got %v", checkup.Height)
	}
	if checkup.BMI == nil || *checkup.BMI != 22.86 {
		t.Fatalf("expected BMI 22.86, got %v", checkup.BMI)
	}
}

func TestImportCheckupsDefaultsDateAndAge(t *testing.T) {
	t.Parallel()

	workbook := &Workbook{Sheets: []Sheet{{
		Name:    "Rig AB-100",
		Headers: []string{"uid", "tanggal_lahir", "berat"},
		Rows: []Row{
			{Number: 2, Cells: []string{"uid-1", "03/04/1990", "70"}},
		},
	}}}

	store := &fakeCheckupStore{employees: registeredEmployees()}
	if _, err := ImportCheckups(workbook, store, importNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkup := store.inserted[0]
	wantDate := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !checkup.CheckupDate.Equal(wantDate) {
		t.Fatalf("expected import-day default %s, got %s", wantDate, checkup.CheckupDate)
	}
	// Born 1990-04-03, measured 2026-01-15: birthday not yet reached.
	if checkup.Age == nil || *checkup.Age != 35 {
		t.Fatalf("expected derived age 35, got %v", checkup.Age)
	}
}

func TestImportCheckupsInsertFailureIsolated(t *testing.T) {
	t.Parallel()

	workbook := &Workbook{Sheets: []Sheet{{
		Name:    "Rig AB-100",
		Headers: []string{"uid", "berat"},
		Rows: []Row{
			{Number: 2, Cells: []string{"uid-1", "70"}},
		},
	}}}

	store := &fakeCheckupStore{employees: registeredEmployees(), insertErr: errors.New("database is locked")}
	result, err := ImportCheckups(workbook, store, importNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Inserted != 0 || len(result.Skipped) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Skipped[0].Reason != "database is locked" {
		t.Fatalf("unexpected reason: %q", result.Skipped[0].Reason)
	}
}

func TestImportCheckupsSnapshotLoadFailureFailsCall(t *testing.T) {
	t.Parallel()

	workbook := &Workbook{Sheets: []Sheet{{Name: "Kantor", Headers: []string{"uid"}}}}
	store := &fakeCheckupStore{listErr: errors.New("no such table")}

	if _, err := ImportCheckups(workbook, store, importNow); err == nil {
		t.Fatalf("expected error when snapshot cannot be loaded")
	}
}

func TestImportCheckupsAccounting(t *testing.T) {
	t.Parallel()

	// N rows in, K skipped: inserted must be N-K and every skip itemized.
	workbook := &Workbook{Sheets: []Sheet{{
		Name:    "Rig AB-100",
		Headers: []string{"uid", "berat"},
		Rows: []Row{
			{Number: 2, Cells: []string{"uid-1", "70"}},
			{Number: 3, Cells: []string{"", ""}},
			{Number: 4, Cells: []string{"uid-404", "90"}},
			{Number: 5, Cells: []string{"uid-2", "58"}},
		},
	}}}

	store := &fakeCheckupStore{employees: registeredEmployees()}
	result, err := ImportCheckups(workbook, store, importNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Inserted+len(result.Skipped) != 4 {
		t.Fatalf("accounting mismatch: inserted %d, skipped %d", result.Inserted, len(result.Skipped))
	}
	if result.Inserted != 2 {
		t.Fatalf("expected 2 inserted, got %d", result.Inserted)
	}
	if result.Skipped[0].Reason != "Empty row" {
		t.Fatalf("expected empty-row reason first, got %q", result.Skipped[0].Reason)
	}
}

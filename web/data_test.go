package web

import (
	"testing"
	"time"

	"minimcu/medical"
	"minimcu/storage"
)

func webDate(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func webFloat(v float64) *float64 { return &v }

func TestBuildDashboardJoinsLatestCheckup(t *testing.T) {
	t.Parallel()

	employees := []medical.Employee{
		{UID: "uid-1", Name: "Budi Santoso", JobTitle: "Driller", Location: "Rig AB-100", BirthDate: webDate(1990, time.April, 3)},
		{UID: "uid-2", Name: "Siti Aminah", JobTitle: "Medic", Location: "Kantor"},
	}
	latest := []storage.CheckupDetail{
		{
			Checkup: medical.Checkup{
				UID:            "uid-1",
				CheckupDate:    time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
				BMI:            webFloat(31.2),
				FastingGlucose: webFloat(98),
			},
			Name:     "Budi Santoso",
			JobTitle: "Driller",
		},
	}

	rows := BuildDashboard(employees, latest)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	budi := rows[0]
	if !budi.HasCheckup || budi.CheckupDate != "2026-01-10" {
		t.Fatalf("latest checkup not joined: %+v", budi)
	}
	if budi.Status != medical.StatusUnwell {
		t.Fatalf("BMI 31.2 should be Unwell, got %s", budi.Status)
	}
	if budi.BirthDate != "1990-04-03" {
		t.Fatalf("unexpected birth date: %q", budi.BirthDate)
	}

	siti := rows[1]
	if siti.HasCheckup {
		t.Fatalf("expected no checkup for siti")
	}
	if siti.Status != medical.StatusWell {
		t.Fatalf("employee without checkup defaults to Well, got %s", siti.Status)
	}
	if siti.BMI != nil {
		t.Fatalf("measurements must stay nil without a checkup")
	}
}

func TestFilterDashboard(t *testing.T) {
	t.Parallel()

	rows := []DashboardRow{
		{UID: "uid-1", Location: "Rig AB-100", Status: medical.StatusUnwell},
		{UID: "uid-2", Location: "Kantor", Status: medical.StatusWell},
		{UID: "uid-3", Location: "Kantor", Status: medical.StatusUnwell},
	}

	if got := FilterDashboard(rows, "", ""); len(got) != 3 {
		t.Fatalf("no filter should keep all rows, got %d", len(got))
	}

	kantor := FilterDashboard(rows, "kantor", "")
	if len(kantor) != 2 {
		t.Fatalf("expected 2 Kantor rows, got %d", len(kantor))
	}

	unwell := FilterDashboard(rows, "", "unwell")
	if len(unwell) != 2 {
		t.Fatalf("expected 2 Unwell rows, got %d", len(unwell))
	}

	both := FilterDashboard(rows, "Kantor", "Unwell")
	if len(both) != 1 || both[0].UID != "uid-3" {
		t.Fatalf("combined filter wrong: %+v", both)
	}
}

func TestBuildEmployeeView(t *testing.T) {
	t.Parallel()

	employee := medical.Employee{
		UID:       "uid-1",
		Name:      "Budi Santoso",
		JobTitle:  "Driller",
		Location:  "Rig AB-100",
		BirthDate: webDate(1990, time.April, 3),
	}
	history := []storage.CheckupDetail{
		{Checkup: medical.Checkup{ID: 2, UID: "uid-1", CheckupDate: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), FastingGlucose: webFloat(131)}},
		{Checkup: medical.Checkup{ID: 1, UID: "uid-1", CheckupDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)}},
	}

	view := BuildEmployeeView(employee, history)
	if view.UID != "uid-1" || view.BirthDate != "1990-04-03" {
		t.Fatalf("unexpected identity: %+v", view)
	}
	if len(view.Checkups) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(view.Checkups))
	}
	if view.Checkups[0].Status != medical.StatusUnwell {
		t.Fatalf("fasting glucose 131 should be Unwell, got %s", view.Checkups[0].Status)
	}
	if view.Checkups[1].Status != medical.StatusWell {
		t.Fatalf("empty checkup should be Well, got %s", view.Checkups[1].Status)
	}
}

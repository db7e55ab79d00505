package web

import (
	"strings"

	"minimcu/medical"
	"minimcu/storage"
)

// DashboardRow is one employee with their latest checkup (if any), the
// shape both the HTML dashboard and the JSON API serve.
type DashboardRow struct {
	UID            string   `json:"uid"`
	Name           string   `json:"name"`
	JobTitle       string   `json:"jobTitle"`
	Location       string   `json:"location"`
	BirthDate      string   `json:"birthDate,omitempty"`
	CheckupDate    string   `json:"checkupDate,omitempty"`
	Age            *int     `json:"age,omitempty"`
	Height         *float64 `json:"height,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	Waist          *float64 `json:"waist,omitempty"`
	BMI            *float64 `json:"bmi,omitempty"`
	FastingGlucose *float64 `json:"fastingGlucose,omitempty"`
	RandomGlucose  *float64 `json:"randomGlucose,omitempty"`
	Cholesterol    *float64 `json:"cholesterol,omitempty"`
	UricAcid       *float64 `json:"uricAcid,omitempty"`
	Status         string   `json:"status"`
	HasCheckup     bool     `json:"hasCheckup"`
}

// BuildDashboard joins the employee snapshot with the latest checkup per
// employee. Employees without any checkup appear with empty measurements
// and a Well status, matching how the classifier treats missing values.
func BuildDashboard(employees []medical.Employee, latest []storage.CheckupDetail) []DashboardRow {
	latestByUID := make(map[string]storage.CheckupDetail, len(latest))
	for _, detail := range latest {
		latestByUID[detail.UID] = detail
	}

	rows := make([]DashboardRow, 0, len(employees))
	for _, employee := range employees {
		row := DashboardRow{
			UID:      employee.UID,
			Name:     employee.Name,
			JobTitle: employee.JobTitle,
			Location: employee.Location,
			Status:   medical.StatusWell,
		}
		if employee.BirthDate != nil {
			row.BirthDate = employee.BirthDate.Format("2006-01-02")
		}

		if detail, ok := latestByUID[employee.UID]; ok {
			row.HasCheckup = true
			row.CheckupDate = detail.CheckupDate.Format("2006-01-02")
			row.Age = detail.Age
			row.Height = detail.Height
			row.Weight = detail.Weight
			row.Waist = detail.Waist
			row.BMI = detail.BMI
			row.FastingGlucose = detail.FastingGlucose
			row.RandomGlucose = detail.RandomGlucose
			row.Cholesterol = detail.Cholesterol
			row.UricAcid = detail.UricAcid
			row.Status = medical.Status(detail.Checkup)
		}

		rows = append(rows, row)
	}
	return rows
}

// FilterDashboard narrows rows by location and/or status, both optional
// and case-insensitive.
func FilterDashboard(rows []DashboardRow, location, status string) []DashboardRow {
	location = strings.ToLower(strings.TrimSpace(location))
	status = strings.ToLower(strings.TrimSpace(status))
	if location == "" && status == "" {
		return rows
	}

	filtered := make([]DashboardRow, 0, len(rows))
	for _, row := range rows {
		if location != "" && strings.ToLower(strings.TrimSpace(row.Location)) != location {
			continue
		}
		if status != "" && strings.ToLower(row.Status) != status {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// CheckupRow is one history entry in the per-employee view.
type CheckupRow struct {
	ID             int64    `json:"id"`
	CheckupDate    string   `json:"checkupDate"`
	Age            *int     `json:"age,omitempty"`
	Height         *float64 `json:"height,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	Waist          *float64 `json:"waist,omitempty"`
	BMI            *float64 `json:"bmi,omitempty"`
	FastingGlucose *float64 `json:"fastingGlucose,omitempty"`
	RandomGlucose  *float64 `json:"randomGlucose,omitempty"`
	Cholesterol    *float64 `json:"cholesterol,omitempty"`
	UricAcid       *float64 `json:"uricAcid,omitempty"`
	Location       string   `json:"location"`
	Status         string   `json:"status"`
}

// EmployeeView is the payload behind the per-employee link (the target a
// printed QR code points at).
type EmployeeView struct {
	UID       string       `json:"uid"`
	Name      string       `json:"name"`
	JobTitle  string       `json:"jobTitle"`
	Location  string       `json:"location"`
	BirthDate string       `json:"birthDate,omitempty"`
	Checkups  []CheckupRow `json:"checkups"`
}

func BuildEmployeeView(employee medical.Employee, history []storage.CheckupDetail) EmployeeView {
	view := EmployeeView{
		UID:      employee.UID,
		Name:     employee.Name,
		JobTitle: employee.JobTitle,
		Location: employee.Location,
		Checkups: make([]CheckupRow, 0, len(history)),
	}
	if employee.BirthDate != nil {
		view.BirthDate = employee.BirthDate.Format("2006-01-02")
	}

	for _, detail := range history {
		view.Checkups = append(view.Checkups, CheckupRow{
			ID:             detail.ID,
			CheckupDate:    detail.CheckupDate.Format("2006-01-02"),
			Age:            detail.Age,
			Height:         detail.Height,
			Weight:         detail.Weight,
			Waist:          detail.Waist,
			BMI:            detail.BMI,
			FastingGlucose: detail.FastingGlucose,
			RandomGlucose:  detail.RandomGlucose,
			Cholesterol:    detail.Cholesterol,
			UricAcid:       detail.UricAcid,
			Location:       detail.Location,
			Status:         medical.Status(detail.Checkup),
		})
	}
	return view
}

package medical

import (
	"math"
	"time"
)

// Employee is the master identity record. UID is assigned once on first
// sighting of a (name, job title) pair and never changes afterwards.
type Employee struct {
	UID       string
	Name      string
	JobTitle  string
	Location  string
	BirthDate *time.Time
	BatchID   string
}

// Checkup is one point-in-time measurement record for an employee.
// Measurement fields are nil when the source row did not carry a usable
// value; BirthDate is a denormalized copy taken at insert time.
type Checkup struct {
	ID             int64
	UID            string
	CheckupDate    time.Time
	BirthDate      *time.Time
	Age            *int
	Height         *float64
	Weight         *float64
	Waist          *float64
	BMI            *float64
	FastingGlucose *float64
	RandomGlucose  *float64
	Cholesterol    *float64
	UricAcid       *float64
	Location       string
}

const (
	StatusWell   = "Well"
	StatusUnwell = "Unwell"
)

// Status classifies a checkup as Well or Unwell. A missing measurement
// never trips a threshold.
func Status(c Checkup) string {
	if exceeds(c.FastingGlucose, 120) ||
		exceeds(c.RandomGlucose, 200) ||
		exceeds(c.Cholesterol, 240) ||
		exceeds(c.UricAcid, 7) ||
		atLeast(c.BMI, 30) {
		return StatusUnwell
	}
	return StatusWell
}

func exceeds(value *float64, limit float64) bool {
	return value != nil && *value > limit
}

func atLeast(value *float64, limit float64) bool {
	return value != nil && *value >= limit
}

// ComputeBMI returns weight / height(m)^2 rounded to two decimals, or nil
// when either input is missing or height is not positive.
func ComputeBMI(weightKg, heightCm *float64) *float64 {
	if weightKg == nil || heightCm == nil || *heightCm <= 0 {
		return nil
	}
	heightM := *heightCm / 100
	bmi := Round2(*weightKg / (heightM * heightM))
	return &bmi
}

// AgeAt returns full calendar years between birth and on.
func AgeAt(birth, on time.Time) int {
	years := on.Year() - birth.Year()
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

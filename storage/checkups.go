package storage

import (
	"database/sql"
	"fmt"

	"minimcu/medical"
)

// CheckupDetail is a checkup joined with the identity of its employee, the
// shape every display surface works with.
type CheckupDetail struct {
	medical.Checkup
	Name     string
	JobTitle string
}

const checkupColumns = `
	c.id,
	c.uid,
	c.checkup_date,
	c.birth_date,
	c.age,
	c.height,
	c.weight,
	c.waist,
	c.bmi,
	c.fasting_glucose,
	c.random_glucose,
	c.cholesterol,
	c.uric_acid,
	c.location,
	k.name,
	k.job_title`

// InsertCheckup appends one checkup row. The foreign key to employees is
// enforced by the database; numeric fields are rounded to two decimals.
func (s *SQLiteStore) InsertCheckup(checkup medical.Checkup) (int64, error) {
	const insertStmt = `
INSERT INTO checkups (
	uid,
	checkup_date,
	birth_date,
	age,
	height,
	weight,
	waist,
	bmi,
	fasting_glucose,
	random_glucose,
	cholesterol,
	uric_acid,
	location
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	res, err := s.db.Exec(
		insertStmt,
		checkup.UID,
		checkup.CheckupDate.Format(dateLayout),
		dateToNullString(checkup.BirthDate),
		intToNull(checkup.Age),
		floatToNull(checkup.Height),
		floatToNull(checkup.Weight),
		floatToNull(checkup.Waist),
		floatToNull(checkup.BMI),
		floatToNull(checkup.FastingGlucose),
		floatToNull(checkup.RandomGlucose),
		floatToNull(checkup.Cholesterol),
		floatToNull(checkup.UricAcid),
		checkup.Location,
	)
	if err != nil {
		return 0, fmt.Errorf("insert checkup for %s: %w", checkup.UID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted row id: %w", err)
	}
	return id, nil
}

// ListCheckups returns every checkup joined with employee identity, newest
// first.
func (s *SQLiteStore) ListCheckups() ([]CheckupDetail, error) {
	query := `SELECT ` + checkupColumns + `
FROM checkups c
JOIN employees k ON c.uid = k.uid
ORDER BY c.checkup_date DESC, c.id DESC;`
	return s.queryCheckups(query)
}

// CheckupsByUID returns the full checkup history of one employee, newest
// first.
func (s *SQLiteStore) CheckupsByUID(uid string) ([]CheckupDetail, error) {
	query := `SELECT ` + checkupColumns + `
FROM checkups c
JOIN employees k ON c.uid = k.uid
WHERE c.uid = ?
ORDER BY c.checkup_date DESC, c.id DESC;`
	return s.queryCheckups(query, uid)
}

// LatestCheckups returns the most recent checkup per employee.
func (s *SQLiteStore) LatestCheckups() ([]CheckupDetail, error) {
	query := `SELECT ` + checkupColumns + `
FROM checkups c
JOIN employees k ON c.uid = k.uid
WHERE c.id = (
	SELECT c2.id FROM checkups c2
	WHERE c2.uid = c.uid
	ORDER BY c2.checkup_date DESC, c2.id DESC
	LIMIT 1
)
ORDER BY k.name;`
	return s.queryCheckups(query)
}

func (s *SQLiteStore) queryCheckups(query string, args ...any) ([]CheckupDetail, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query checkups: %w", err)
	}
	defer rows.Close()

	details := make([]CheckupDetail, 0, 128)
	for rows.Next() {
		detail, err := scanCheckup(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkups: %w", err)
	}
	return details, nil
}

func scanCheckup(rows *sql.Rows) (CheckupDetail, error) {
	var (
		detail         CheckupDetail
		checkupRaw     string
		birthRaw       sql.NullString
		age            sql.NullInt64
		height         sql.NullFloat64
		weight         sql.NullFloat64
		waist          sql.NullFloat64
		bmi            sql.NullFloat64
		fastingGlucose sql.NullFloat64
		randomGlucose  sql.NullFloat64
		cholesterol    sql.NullFloat64
		uricAcid       sql.NullFloat64
	)

	if err := rows.Scan(
		&detail.ID,
		&detail.UID,
		&checkupRaw,
		&birthRaw,
		&age,
		&height,
		&weight,
		&waist,
		&bmi,
		&fastingGlucose,
		&randomGlucose,
		&cholesterol,
		&uricAcid,
		&detail.Location,
		&detail.Name,
		&detail.JobTitle,
	); err != nil {
		return CheckupDetail{}, fmt.Errorf("scan checkup: %w", err)
	}

	checkupDate, err := nullStringToDate(sql.NullString{String: checkupRaw, Valid: true})
	if err != nil {
		return CheckupDetail{}, fmt.Errorf("parse checkup date: %w", err)
	}
	detail.CheckupDate = *checkupDate

	detail.BirthDate, err = nullStringToDate(birthRaw)
	if err != nil {
		return CheckupDetail{}, fmt.Errorf("parse birth date: %w", err)
	}

	detail.Age = nullToInt(age)
	detail.Height = nullToFloat(height)
	detail.Weight = nullToFloat(weight)
	detail.Waist = nullToFloat(waist)
	detail.BMI = nullToFloat(bmi)
	detail.FastingGlucose = nullToFloat(fastingGlucose)
	detail.RandomGlucose = nullToFloat(randomGlucose)
	detail.Cholesterol = nullToFloat(cholesterol)
	detail.UricAcid = nullToFloat(uricAcid)

	return detail, nil
}

// DeleteCheckup removes one checkup by id.
func (s *SQLiteStore) DeleteCheckup(id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("checkup id must be > 0")
	}

	res, err := s.db.Exec(`DELETE FROM checkups WHERE id = ?;`, id)
	if err != nil {
		return false, fmt.Errorf("delete checkup %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read deleted row count: %w", err)
	}
	return affected > 0, nil
}

func (s *SQLiteStore) DeleteAllCheckups() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM checkups;`)
	if err != nil {
		return 0, fmt.Errorf("delete checkups: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read deleted row count: %w", err)
	}
	return affected, nil
}

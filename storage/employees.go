package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"minimcu/medical"
)

// EnsureEmployee returns the UID for the given (name, job title) pair,
// creating a new employee row when no match exists. Lookup and insert run
// in one transaction so concurrent imports cannot assign two UIDs to the
// same pair. The (name, job title) key is kept for compatibility with the
// source workbooks; two distinct people sharing both values collide onto
// one UID.
func (s *SQLiteStore) EnsureEmployee(employee medical.Employee) (string, bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRow(
		`SELECT uid FROM employees WHERE name = ? AND job_title = ?;`,
		employee.Name, employee.JobTitle,
	).Scan(&existing)
	switch {
	case err == nil:
		if err := tx.Commit(); err != nil {
			return "", false, fmt.Errorf("commit transaction: %w", err)
		}
		return existing, false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return "", false, fmt.Errorf("lookup employee: %w", err)
	}

	newUID := uuid.NewString()
	_, err = tx.Exec(
		`INSERT INTO employees (uid, name, job_title, location, birth_date, batch_id) VALUES (?, ?, ?, ?, ?, ?);`,
		newUID,
		employee.Name,
		employee.JobTitle,
		employee.Location,
		dateToNullString(employee.BirthDate),
		employee.BatchID,
	)
	if err != nil {
		return "", false, fmt.Errorf("insert employee: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("commit transaction: %w", err)
	}
	return newUID, true, nil
}

func (s *SQLiteStore) GetEmployeeByUID(uid string) (medical.Employee, bool, error) {
	var (
		employee medical.Employee
		birthRaw sql.NullString
	)
	err := s.db.QueryRow(
		`SELECT uid, name, job_title, location, birth_date, batch_id FROM employees WHERE uid = ?;`,
		uid,
	).Scan(&employee.UID, &employee.Name, &employee.JobTitle, &employee.Location, &birthRaw, &employee.BatchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medical.Employee{}, false, nil
		}
		return medical.Employee{}, false, fmt.Errorf("query employee %s: %w", uid, err)
	}

	employee.BirthDate, err = nullStringToDate(birthRaw)
	if err != nil {
		return medical.Employee{}, false, fmt.Errorf("parse birth date for %s: %w", uid, err)
	}
	return employee, true, nil
}

// ListEmployees returns the full master-data snapshot ordered by name.
func (s *SQLiteStore) ListEmployees() ([]medical.Employee, error) {
	rows, err := s.db.Query(
		`SELECT uid, name, job_title, location, birth_date, batch_id FROM employees ORDER BY name, uid;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	employees := make([]medical.Employee, 0, 128)
	for rows.Next() {
		var (
			employee medical.Employee
			birthRaw sql.NullString
		)
		if err := rows.Scan(&employee.UID, &employee.Name, &employee.JobTitle, &employee.Location, &birthRaw, &employee.BatchID); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employee.BirthDate, err = nullStringToDate(birthRaw)
		if err != nil {
			return nil, fmt.Errorf("parse birth date for %s: %w", employee.UID, err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}

// UpdateEmployee replaces the editable identity fields for one UID.
func (s *SQLiteStore) UpdateEmployee(employee medical.Employee) error {
	if employee.UID == "" {
		return fmt.Errorf("employee uid is required")
	}

	res, err := s.db.Exec(
		`UPDATE employees SET name = ?, job_title = ?, location = ?, birth_date = ? WHERE uid = ?;`,
		employee.Name,
		employee.JobTitle,
		employee.Location,
		dateToNullString(employee.BirthDate),
		employee.UID,
	)
	if err != nil {
		return fmt.Errorf("update employee %s: %w", employee.UID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read updated row count: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// DeleteAllEmployees is the admin master-data reset. Checkups cascade.
func (s *SQLiteStore) DeleteAllEmployees() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM employees;`)
	if err != nil {
		return 0, fmt.Errorf("delete employees: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read deleted row count: %w", err)
	}
	return affected, nil
}

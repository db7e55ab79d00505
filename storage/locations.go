package storage

import (
	"fmt"
	"strings"
)

// AddLocation registers a known site name. Re-adding an existing name is a
// no-op; the bool reports whether a new row was created.
func (s *SQLiteStore) AddLocation(name string) (bool, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, fmt.Errorf("location name is required")
	}

	res, err := s.db.Exec(`INSERT OR IGNORE INTO locations (name) VALUES (?);`, trimmed)
	if err != nil {
		return false, fmt.Errorf("insert location %s: %w", trimmed, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read inserted row count: %w", err)
	}
	return affected > 0, nil
}

func (s *SQLiteStore) ListLocations() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM locations ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 16)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}
	return names, nil
}

// SeedLocations loads the configured initial site list.
func (s *SQLiteStore) SeedLocations(names []string) error {
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, err := s.AddLocation(name); err != nil {
			return err
		}
	}
	return nil
}

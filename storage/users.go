package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Login roles. Employees never log in; they are reached through their
// per-UID view link.
const (
	RoleMaster  = "Master"
	RoleManager = "Manager"
	RoleNurse   = "Tenaga Kesehatan"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type User struct {
	ID        int64
	Username  string
	Role      string
	CreatedAt time.Time
}

func ValidRole(role string) bool {
	switch role {
	case RoleMaster, RoleManager, RoleNurse:
		return true
	default:
		return false
	}
}

func (s *SQLiteStore) CreateUser(username, password, role string) error {
	if !ValidRole(role) {
		return fmt.Errorf("unsupported role %q", role)
	}
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.Exec(
		`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?);`,
		username, string(hash), role,
	); err != nil {
		return fmt.Errorf("insert user %s: %w", username, err)
	}
	return nil
}

func (s *SQLiteStore) ListUsers() ([]User, error) {
	rows, err := s.db.Query(`SELECT id, username, role, created_at FROM users ORDER BY username;`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0, 8)
	for rows.Next() {
		var (
			user       User
			createdRaw string
		)
		if err := rows.Scan(&user.ID, &user.Username, &user.Role, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if parsed, parseErr := time.Parse("2006-01-02 15:04:05", createdRaw); parseErr == nil {
			user.CreatedAt = parsed
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// Authenticate checks the password against the stored bcrypt hash and
// returns the user on success.
func (s *SQLiteStore) Authenticate(username, password string) (User, error) {
	var (
		user User
		hash string
	)
	err := s.db.QueryRow(
		`SELECT id, username, password_hash, role FROM users WHERE username = ?;`,
		username,
	).Scan(&user.ID, &user.Username, &hash, &user.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("query user %s: %w", username, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *SQLiteStore) ResetUserPassword(username, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	res, err := s.db.Exec(`UPDATE users SET password_hash = ? WHERE username = ?;`, string(hash), username)
	if err != nil {
		return fmt.Errorf("update password for %s: %w", username, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read updated row count: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUser refuses to remove the last remaining Master account so the
// system can always be administered.
func (s *SQLiteStore) DeleteUser(username string) error {
	var role string
	err := s.db.QueryRow(`SELECT role FROM users WHERE username = ?;`, username).Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("query user %s: %w", username, err)
	}

	if role == RoleMaster {
		masters, err := s.CountUsersByRole(RoleMaster)
		if err != nil {
			return err
		}
		if masters <= 1 {
			return fmt.Errorf("cannot delete the last %s account", RoleMaster)
		}
	}

	if _, err := s.db.Exec(`DELETE FROM users WHERE username = ?;`, username); err != nil {
		return fmt.Errorf("delete user %s: %w", username, err)
	}
	return nil
}

func (s *SQLiteStore) CountUsersByRole(role string) (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM users WHERE role = ?;`, role).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users by role %s: %w", role, err)
	}
	return count, nil
}

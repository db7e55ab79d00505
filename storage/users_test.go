package storage

import (
	"errors"
	"testing"
)

func TestCreateUserAndAuthenticate(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	if err := store.CreateUser("admin", "rahasia", RoleMaster); err != nil {
		t.Fatalf("create user: %v", err)
	}

	user, err := store.Authenticate("admin", "rahasia")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Username != "admin" || user.Role != RoleMaster {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := store.Authenticate("admin", "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := store.Authenticate("ghost", "rahasia"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestCreateUserRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	if err := store.CreateUser("x", "pw", "Dukun"); err == nil {
		t.Fatalf("expected error for unsupported role")
	}
	if err := store.CreateUser("", "pw", RoleManager); err == nil {
		t.Fatalf("expected error for empty username")
	}
	if err := store.CreateUser("x", "", RoleManager); err == nil {
		t.Fatalf("expected error for empty password")
	}

	if err := store.CreateUser("dup", "pw", RoleNurse); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := store.CreateUser("dup", "pw2", RoleNurse); err == nil {
		t.Fatalf("expected unique constraint violation for duplicate username")
	}
}

func TestResetUserPassword(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	if err := store.CreateUser("manager", "lama", RoleManager); err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := store.ResetUserPassword("manager", "baru"); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if _, err := store.Authenticate("manager", "baru"); err != nil {
		t.Fatalf("authenticate with new password: %v", err)
	}
	if _, err := store.Authenticate("manager", "lama"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}

	if err := store.ResetUserPassword("ghost", "pw"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUserKeepsLastMaster(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	if err := store.CreateUser("admin", "pw", RoleMaster); err != nil {
		t.Fatalf("create master: %v", err)
	}
	if err := store.CreateUser("nurse", "pw", RoleNurse); err != nil {
		t.Fatalf("create nurse: %v", err)
	}

	if err := store.DeleteUser("admin"); err == nil {
		t.Fatalf("expected refusal to delete the last Master")
	}

	if err := store.CreateUser("admin2", "pw", RoleMaster); err != nil {
		t.Fatalf("create second master: %v", err)
	}
	if err := store.DeleteUser("admin"); err != nil {
		t.Fatalf("delete master with another remaining: %v", err)
	}

	if err := store.DeleteUser("nurse"); err != nil {
		t.Fatalf("delete nurse: %v", err)
	}
	if err := store.DeleteUser("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListUsersOrderedByUsername(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	for _, username := range []string{"citra", "andi", "budi"} {
		if err := store.CreateUser(username, "pw", RoleNurse); err != nil {
			t.Fatalf("create %s: %v", username, err)
		}
	}

	users, err := store.ListUsers()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].Username != "andi" || users[2].Username != "citra" {
		t.Fatalf("unexpected order: %s, %s, %s", users[0].Username, users[1].Username, users[2].Username)
	}
}

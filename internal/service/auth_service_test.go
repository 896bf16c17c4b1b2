package service

import (
	"testing"

	"go.uber.org/zap"

	"github.com/atlas-rto/workforce-matrix/internal/config"
	"github.com/atlas-rto/workforce-matrix/internal/domain"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
	}, zap.NewNop())
}

func TestLoginSeededAdministrator(t *testing.T) {
	svc := newAuthFixture(t)

	user, token, _, err := svc.Login("Judy Irmisch", "ATLAS2025")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if user.Role != domain.RoleAdministrator {
		t.Errorf("seeded account role = %q, want administrator", user.Role)
	}
	if token == "" {
		t.Error("expected a bearer token")
	}

	session, ok := svc.CurrentSession()
	if !ok || session.Username != "Judy Irmisch" {
		t.Errorf("session not established: %+v ok=%v", session, ok)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "Judy Irmisch", password: "wrong"},
		{name: "case-variant password", username: "Judy Irmisch", password: "atlas2025"},
		{name: "unknown user", username: "nobody", password: "ATLAS2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := svc.Login(tt.username, tt.password)
			if code := domainCode(t, err); code != "UNAUTHORIZED" {
				t.Fatalf("expected UNAUTHORIZED, got %s", code)
			}
			if _, ok := svc.CurrentSession(); ok {
				t.Fatal("failed login must not establish a session")
			}
		})
	}
}

func TestLogoutClearsSession(t *testing.T) {
	svc := newAuthFixture(t)
	if _, _, _, err := svc.Login("Judy Irmisch", "ATLAS2025"); err != nil {
		t.Fatal(err)
	}

	svc.Logout()
	if _, ok := svc.CurrentSession(); ok {
		t.Fatal("session survived logout")
	}

	// Logout while logged out is a no-op.
	svc.Logout()
}

func TestAddUser(t *testing.T) {
	svc := newAuthFixture(t)
	admin := adminActor()

	user, err := svc.AddUser(admin, "operator", "secret1", domain.RoleUser)
	if err != nil {
		t.Fatalf("AddUser() error: %v", err)
	}
	if user.Password != "" {
		t.Error("returned account must not expose the stored checksum")
	}

	if _, _, _, err := svc.Login("operator", "secret1"); err != nil {
		t.Fatalf("new account cannot log in: %v", err)
	}

	// Duplicates conflict.
	if _, err := svc.AddUser(admin, "operator", "secret2", domain.RoleUser); err == nil {
		t.Fatal("expected conflict on duplicate username")
	}

	// Validation failures.
	if _, err := svc.AddUser(admin, "", "secret1", domain.RoleUser); err == nil {
		t.Fatal("expected error for empty username")
	}
	if _, err := svc.AddUser(admin, "short", "12345", domain.RoleUser); err == nil {
		t.Fatal("expected error for short password")
	}
	if _, err := svc.AddUser(admin, "odd", "secret1", "manager"); err == nil {
		t.Fatal("expected error for unknown role")
	}

	// Non-admins cannot manage accounts.
	if _, err := svc.AddUser(userActor(), "extra", "secret1", domain.RoleUser); err == nil {
		t.Fatal("expected forbidden for non-admin")
	}
}

func TestListUsersOrdering(t *testing.T) {
	svc := newAuthFixture(t)
	admin := adminActor()

	for _, u := range []struct {
		name string
		role domain.Role
	}{
		{"zara", domain.RoleUser},
		{"adam", domain.RoleUser},
		{"Boss", domain.RoleAdministrator},
	} {
		if _, err := svc.AddUser(admin, u.name, "secret1", u.role); err != nil {
			t.Fatal(err)
		}
	}

	users, err := svc.ListUsers(admin)
	if err != nil {
		t.Fatalf("ListUsers() error: %v", err)
	}

	got := make([]string, len(users))
	for i, u := range users {
		got[i] = u.Username
		if u.Password != "" {
			t.Errorf("account %s leaks its checksum", u.Username)
		}
	}
	want := []string{"Boss", "Judy Irmisch", "adam", "zara"}
	if !equalStrings(got, want) {
		t.Fatalf("ListUsers() order = %v, want %v", got, want)
	}
}

func TestChangeRoleLastAdminGuard(t *testing.T) {
	svc := newAuthFixture(t)
	admin := adminActor()

	err := svc.ChangeRole(admin, "Judy Irmisch", domain.RoleUser)
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Fatalf("expected CONFLICT demoting the last administrator, got %s", code)
	}

	// With a second administrator the demotion goes through.
	if _, err := svc.AddUser(admin, "second", "secret1", domain.RoleAdministrator); err != nil {
		t.Fatal(err)
	}
	if err := svc.ChangeRole(admin, "Judy Irmisch", domain.RoleUser); err != nil {
		t.Fatalf("ChangeRole() error: %v", err)
	}

	judy, ok := svc.FindUser("Judy Irmisch")
	if !ok || judy.Role != domain.RoleUser {
		t.Fatalf("role change not applied: %+v", judy)
	}
}

func TestChangeRoleUpdatesActiveSession(t *testing.T) {
	svc := newAuthFixture(t)
	admin := adminActor()

	if _, err := svc.AddUser(admin, "second", "secret1", domain.RoleAdministrator); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := svc.Login("Judy Irmisch", "ATLAS2025"); err != nil {
		t.Fatal(err)
	}

	if err := svc.ChangeRole(admin, "Judy Irmisch", domain.RoleUser); err != nil {
		t.Fatal(err)
	}
	session, ok := svc.CurrentSession()
	if !ok || session.Role != domain.RoleUser {
		t.Fatalf("session role not updated: %+v", session)
	}
}

func TestChangePassword(t *testing.T) {
	svc := newAuthFixture(t)
	admin := adminActor()

	if err := svc.ChangePassword(admin, "Judy Irmisch", "NewPass99"); err != nil {
		t.Fatalf("ChangePassword() error: %v", err)
	}
	if _, _, _, err := svc.Login("Judy Irmisch", "ATLAS2025"); err == nil {
		t.Fatal("old password still accepted")
	}
	if _, _, _, err := svc.Login("Judy Irmisch", "NewPass99"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}

	if err := svc.ChangePassword(admin, "Judy Irmisch", "tiny"); err == nil {
		t.Fatal("expected error for short password")
	}
	if err := svc.ChangePassword(admin, "ghost", "LongEnough"); err == nil {
		t.Fatal("expected not found for unknown account")
	}
}

func TestDeleteUserGuards(t *testing.T) {
	svc := newAuthFixture(t)
	admin := adminActor()

	// Self-deletion is refused.
	err := svc.DeleteUser(admin, admin.Username)
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Fatalf("expected CONFLICT deleting own account, got %s", code)
	}

	// The last administrator cannot be deleted even by another admin account.
	other := &domain.User{Username: "other-admin", Role: domain.RoleAdministrator}
	err = svc.DeleteUser(other, "Judy Irmisch")
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Fatalf("expected CONFLICT deleting the last administrator, got %s", code)
	}

	if _, err := svc.AddUser(admin, "operator", "secret1", domain.RoleUser); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteUser(admin, "operator"); err != nil {
		t.Fatalf("DeleteUser() error: %v", err)
	}
	if _, ok := svc.FindUser("operator"); ok {
		t.Fatal("account still present after delete")
	}

	err = svc.DeleteUser(admin, "operator")
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND for repeated delete, got %s", code)
	}
}

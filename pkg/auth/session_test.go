package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"testing"
)

// tokenWith builds an unsigned JWT carrying the given claims; the session
// only reads the payload, so the signature part can be anything.
func tokenWith(t *testing.T, claims map[string]any) string {
	t.Helper()
	header, _ := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func TestNewSessionDecodesClaims(t *testing.T) {
	token := tokenWith(t, map[string]any{"userId": "u1", "role": "admin"})

	session, err := NewSession("op@guarda.pa.gov.br", token)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	user := session.User()
	if user.ID != "u1" || user.Role != RoleAdmin || user.Email != "op@guarda.pa.gov.br" {
		t.Fatalf("user = %+v", user)
	}
	if session.Token() != token {
		t.Fatal("session must hand back the raw token")
	}
	if !session.IsAuthenticated() {
		t.Fatal("session should be authenticated")
	}
}

func TestNewSessionRejectsGarbage(t *testing.T) {
	if _, err := NewSession("a@b.c", "not-a-token"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewSessionRequiresRole(t *testing.T) {
	token := tokenWith(t, map[string]any{"userId": "u1"})
	if _, err := NewSession("a@b.c", token); err == nil {
		t.Fatal("a token without a role must be rejected")
	}
}

func TestRolePermissions(t *testing.T) {
	cases := []struct {
		role Role
		perm Permission
		want bool
	}{
		{RoleSuperAdmin, PermCreateUser, true},
		{RoleAdmin, PermDeleteUser, true},
		{RoleAdmin, PermPrintReports, true},
		{RoleUser, PermCreateVictim, true},
		{RoleUser, PermDeleteAuthor, true},
		{RoleUser, PermViewDashboard, true},
		{RoleUser, PermCreateUser, false},
		{RoleUser, PermReadUser, false},
		{Role("intruso"), PermReadVictim, false},
	}
	for _, tc := range cases {
		if got := tc.role.Grants(tc.perm); got != tc.want {
			t.Errorf("%s.Grants(%s) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestCanManageUsers(t *testing.T) {
	admin, err := NewSession("a@b.c", tokenWith(t, map[string]any{"userId": "u1", "role": "admin"}))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if !admin.CanManageUsers() {
		t.Fatal("admin should manage users")
	}

	operator, err := NewSession("a@b.c", tokenWith(t, map[string]any{"userId": "u2", "role": "user"}))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if operator.CanManageUsers() {
		t.Fatal("regular operator must not manage users")
	}
}

func TestClear(t *testing.T) {
	session, err := NewSession("a@b.c", tokenWith(t, map[string]any{"userId": "u1", "role": "user"}))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	session.Clear()

	if session.IsAuthenticated() {
		t.Fatal("cleared session should be logged out")
	}
	if session.Token() != "" {
		t.Fatal("cleared session must not keep the token")
	}
	if session.HasPermission(PermReadVictim) {
		t.Fatal("cleared session grants nothing")
	}
}

func TestNilSessionIsLoggedOut(t *testing.T) {
	var session *Session
	if session.IsAuthenticated() {
		t.Fatal("nil session is logged out")
	}
	if session.Token() != "" {
		t.Fatal("nil session has no token")
	}
	if session.HasPermission(PermReadVictim) || session.HasRole(RoleAdmin) {
		t.Fatal("nil session grants nothing")
	}
	session.Clear() // must not panic
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := t.TempDir() + "/credentials.json"
	store := NewFileStore(path)
	token := tokenWith(t, map[string]any{"userId": "u1", "role": "superadmin"})

	if err := store.Save("op@guarda.pa.gov.br", token); err != nil {
		t.Fatalf("Save: %v", err)
	}
	session, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if session.User().Role != RoleSuperAdmin || session.User().Email != "op@guarda.pa.gov.br" {
		t.Fatalf("loaded user = %+v", session.User())
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("after clear, err = %v, want ErrNotAuthenticated", err)
	}
	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := t.TempDir() + "/credentials.json"
	store := NewFileStore(path)
	if err := store.Save("a@b.c", tokenWith(t, map[string]any{"userId": "u", "role": "user"})); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("corrupt: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("corrupt file should read as logged out, got %v", err)
	}
}

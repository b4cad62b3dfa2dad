package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotAuthenticated is returned by operations that need a logged-in user.
var ErrNotAuthenticated = errors.New("auth: not authenticated")

// User is the identity carried by a session.
type User struct {
	ID    string
	Email string
	Role  Role
}

// Session holds one operator's login state. The zero value is a logged-out
// session. Sessions are passed explicitly to whatever needs them.
type Session struct {
	user  User
	token string
}

// NewSession builds a logged-in session from a backend token. The token
// payload is decoded without signature verification: the backend signed it
// and verifies it on every request, this side only reads the claims.
func NewSession(email, token string) (*Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("auth: decode token: %w", err)
	}
	userID, _ := claims["userId"].(string)
	role, _ := claims["role"].(string)
	if role == "" {
		return nil, errors.New("auth: token carries no role")
	}
	return &Session{
		user:  User{ID: userID, Email: email, Role: Role(role)},
		token: token,
	}, nil
}

// IsAuthenticated reports whether someone is logged in.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.token != ""
}

// User returns the logged-in identity; zero value when logged out.
func (s *Session) User() User {
	if s == nil {
		return User{}
	}
	return s.user
}

// Token returns the bearer token for outgoing requests, empty when logged
// out. It satisfies the API client's token source shape.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

// HasPermission reports whether the logged-in role grants p. Logged-out
// sessions grant nothing.
func (s *Session) HasPermission(p Permission) bool {
	return s.IsAuthenticated() && s.user.Role.Grants(p)
}

// HasRole reports whether the logged-in user holds exactly the given role.
func (s *Session) HasRole(r Role) bool {
	return s.IsAuthenticated() && s.user.Role == r
}

// CanManageUsers requires the full account-management permission set.
func (s *Session) CanManageUsers() bool {
	return s.HasPermission(PermCreateUser) &&
		s.HasPermission(PermUpdateUser) &&
		s.HasPermission(PermDeleteUser)
}

// Clear logs the session out in place. Used both for explicit logout and
// when the backend answers 401.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.user = User{}
	s.token = ""
}

package api

import (
	"context"
	"net/http"
	"net/url"
)

// User mirrors the backend user document. Senha is write-only: the backend
// never echoes it, and updates omit it when blank so the stored password is
// kept.
type User struct {
	ID    string `json:"_id,omitempty"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha,omitempty"`
	Role  string `json:"role"`
}

// UserService manages operator accounts.
type UserService struct {
	client *Client
}

// Users returns the account management surface.
func (c *Client) Users() *UserService {
	return &UserService{client: c}
}

// List fetches every account.
func (s *UserService) List(ctx context.Context) ([]User, error) {
	var out []User
	if err := s.client.do(ctx, http.MethodGet, "/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one account by id.
func (s *UserService) Get(ctx context.Context, id string) (User, error) {
	var out User
	if err := s.client.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Create registers a new account. The backend exposes this on its own route.
func (s *UserService) Create(ctx context.Context, user User) (User, error) {
	var out User
	if err := s.client.do(ctx, http.MethodPost, "/createUser", nil, user, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Update edits an account; a blank Senha leaves the password untouched.
func (s *UserService) Update(ctx context.Context, id string, user User) (User, error) {
	var out User
	if err := s.client.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), nil, user, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, nil)
}

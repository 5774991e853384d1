package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// UsersService covers the /admin/users endpoints.
type UsersService struct {
	client *Client
}

// User is an administered account.
type User struct {
	ID           string
	Username     string
	Email        string
	Role         string
	Status       string
	TokenBalance *int64
	CreatedAt    string
	UpdatedAt    string
}

type wireUser struct {
	ID           flexID     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	TokenBalance *flexInt64 `json:"tokenBalance"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

func (w wireUser) toUser() User {
	u := User{
		ID:        string(w.ID),
		Username:  w.Username,
		Email:     w.Email,
		Role:      w.Role,
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if w.TokenBalance != nil {
		balance := int64(*w.TokenBalance)
		u.TokenBalance = &balance
	}
	return u
}

// ListUsersParams filters and pages the user list. Zero values are omitted
// from the query.
type ListUsersParams struct {
	Page      int
	Limit     int
	Search    string
	Role      string
	Status    string
	SortBy    string
	SortOrder string
}

// UserPage is one page of the user list. Total is nil when the backend did
// not report a row count.
type UserPage struct {
	Items []User
	Total *int64
}

// List describes the list operation and its observable behavior.
//
// List may return an error when input validation, dependency calls, or security checks fail.
func (s *UsersService) List(ctx context.Context, params ListUsersParams) (*UserPage, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Role != "" {
		query.Set("role", params.Role)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.SortBy != "" {
		query.Set("sortBy", params.SortBy)
	}
	if params.SortOrder != "" {
		query.Set("sortOrder", params.SortOrder)
	}

	data, err := s.client.do(ctx, http.MethodGet, "/admin/users", query, nil)
	if err != nil {
		return nil, err
	}

	page := &UserPage{Items: []User{}, Total: collectionTotal(data)}
	itemsRaw := collectionItems(data, "users", "items", "data")
	if itemsRaw == nil {
		return page, nil
	}

	var wires []wireUser
	if err := json.Unmarshal(itemsRaw, &wires); err != nil {
		return nil, errors.New("api: malformed user list")
	}
	for _, w := range wires {
		page.Items = append(page.Items, w.toUser())
	}
	return page, nil
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
func (s *UsersService) Get(ctx context.Context, userID string) (*User, error) {
	data, err := s.client.do(ctx, http.MethodGet, "/admin/users/"+url.PathEscape(userID), nil, nil)
	if err != nil {
		return nil, err
	}

	// Some deployments nest the record one level deeper under "user".
	var nested struct {
		User *wireUser `json:"user"`
	}
	if err := json.Unmarshal(data, &nested); err == nil && nested.User != nil && nested.User.ID != "" {
		u := nested.User.toUser()
		return &u, nil
	}

	var w wireUser
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed user record")
	}
	u := w.toUser()
	return &u, nil
}

// CreateUserRequest is the input for [UsersService.Create].
type CreateUserRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role,omitempty"`
	Status        string `json:"status,omitempty"`
	InitialTokens *int64 `json:"initialTokens,omitempty"`
}

// Create describes the create operation and its observable behavior.
//
// Create may return an error when input validation, dependency calls, or security checks fail.
func (s *UsersService) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	data, err := s.client.do(ctx, http.MethodPost, "/admin/users", nil, req)
	if err != nil {
		return nil, err
	}
	var w wireUser
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed user record")
	}
	u := w.toUser()
	return &u, nil
}

// UpdateUserRequest carries partial updates; nil fields are left untouched.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// Update describes the update operation and its observable behavior.
//
// Update may return an error when input validation, dependency calls, or security checks fail.
func (s *UsersService) Update(ctx context.Context, userID string, req UpdateUserRequest) (*User, error) {
	data, err := s.client.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(userID), nil, req)
	if err != nil {
		return nil, err
	}
	var w wireUser
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed user record")
	}
	u := w.toUser()
	return &u, nil
}

// UpdateStatus activates or deactivates an account. Reason is optional
// operator context.
func (s *UsersService) UpdateStatus(ctx context.Context, userID, status, reason string) (*User, error) {
	body := map[string]string{"status": status}
	if reason != "" {
		body["reason"] = reason
	}
	data, err := s.client.do(ctx, http.MethodPatch, "/admin/users/"+url.PathEscape(userID)+"/status", nil, body)
	if err != nil {
		return nil, err
	}
	var w wireUser
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed user record")
	}
	u := w.toUser()
	return &u, nil
}

// Delete removes an account. With permanent set the record is purged instead
// of soft-deleted.
func (s *UsersService) Delete(ctx context.Context, userID string, permanent bool) error {
	var query url.Values
	if permanent {
		query = url.Values{"permanent": []string{"true"}}
	}
	_, err := s.client.doRaw(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(userID), query, nil)
	return err
}

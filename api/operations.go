package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
)

// OperationsService covers the /operations endpoints: the per-operation
// token pricing table.
type OperationsService struct {
	client *Client
}

// Operation is one billable operation and its token price.
type Operation struct {
	ID                 string
	Name               string
	TokensPerOperation int64
	Description        string
	IsActive           bool
	CreatedAt          string
	UpdatedAt          string
}

type wireOperation struct {
	ID                 flexID     `json:"id"`
	Name               string     `json:"name"`
	TokensPerOperation *flexInt64 `json:"tokensPerOperation"`
	Tokens             *flexInt64 `json:"tokens"`
	Description        string     `json:"description"`
	IsActive           bool       `json:"isActive"`
	CreatedAt          string     `json:"createdAt"`
	UpdatedAt          string     `json:"updatedAt"`
}

func (w wireOperation) toOperation() Operation {
	op := Operation{
		ID:          string(w.ID),
		Name:        w.Name,
		Description: w.Description,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
	// Older deployments report the price under "tokens".
	switch {
	case w.TokensPerOperation != nil:
		op.TokensPerOperation = int64(*w.TokensPerOperation)
	case w.Tokens != nil:
		op.TokensPerOperation = int64(*w.Tokens)
	}
	return op
}

// List describes the list operation and its observable behavior.
//
// List may return an error when input validation, dependency calls, or security checks fail.
func (s *OperationsService) List(ctx context.Context) ([]Operation, error) {
	data, err := s.client.do(ctx, http.MethodGet, "/operations", nil, nil)
	if err != nil {
		return nil, err
	}

	itemsRaw := collectionItems(data, "items", "data")
	if itemsRaw == nil {
		return []Operation{}, nil
	}
	var wires []wireOperation
	if err := json.Unmarshal(itemsRaw, &wires); err != nil {
		return nil, errors.New("api: malformed operation list")
	}
	out := make([]Operation, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toOperation())
	}
	return out, nil
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
func (s *OperationsService) Get(ctx context.Context, id string) (*Operation, error) {
	data, err := s.client.do(ctx, http.MethodGet, "/operations/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	var w wireOperation
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed operation record")
	}
	op := w.toOperation()
	return &op, nil
}

// CreateOperationRequest is the input for [OperationsService.Create].
type CreateOperationRequest struct {
	Name               string `json:"name"`
	TokensPerOperation int64  `json:"tokensPerOperation"`
	Description        string `json:"description,omitempty"`
	IsActive           bool   `json:"isActive"`
}

// Create describes the create operation and its observable behavior.
//
// Create may return an error when input validation, dependency calls, or security checks fail.
func (s *OperationsService) Create(ctx context.Context, req CreateOperationRequest) (*Operation, error) {
	data, err := s.client.do(ctx, http.MethodPost, "/operations", nil, req)
	if err != nil {
		return nil, err
	}
	var w wireOperation
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed operation record")
	}
	op := w.toOperation()
	return &op, nil
}

// UpdateOperationRequest carries partial updates; nil fields are left
// untouched. The operation name is immutable.
type UpdateOperationRequest struct {
	TokensPerOperation *int64  `json:"tokensPerOperation,omitempty"`
	Description        *string `json:"description,omitempty"`
	IsActive           *bool   `json:"isActive,omitempty"`
}

// Update describes the update operation and its observable behavior.
//
// Update may return an error when input validation, dependency calls, or security checks fail.
func (s *OperationsService) Update(ctx context.Context, id string, req UpdateOperationRequest) (*Operation, error) {
	data, err := s.client.do(ctx, http.MethodPut, "/operations/"+url.PathEscape(id), nil, req)
	if err != nil {
		return nil, err
	}
	var w wireOperation
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed operation record")
	}
	op := w.toOperation()
	return &op, nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
func (s *OperationsService) Delete(ctx context.Context, id string) error {
	_, err := s.client.doRaw(ctx, http.MethodDelete, "/operations/"+url.PathEscape(id), nil, nil)
	return err
}

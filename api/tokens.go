package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// TokensService covers the per-user token ledger under
// /admin/users/{id}/tokens.
type TokensService struct {
	client *Client
}

// Transaction is one ledger entry. Amount is positive for credits and
// negative for debits.
type Transaction struct {
	ID        string
	Amount    int64
	Type      string
	Reason    string
	Notes     string
	CreatedAt string
}

type wireTransaction struct {
	ID        flexID    `json:"id"`
	Amount    flexInt64 `json:"amount"`
	Type      string    `json:"type"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes"`
	CreatedAt string    `json:"createdAt"`
}

func (w wireTransaction) toTransaction() Transaction {
	return Transaction{
		ID:        string(w.ID),
		Amount:    int64(w.Amount),
		Type:      w.Type,
		Reason:    w.Reason,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
	}
}

// Balance reads a user's current token balance. The backend reports it
// either as a bare number or as {"balance": n}; a missing field reads as 0.
func (s *TokensService) Balance(ctx context.Context, userID string) (int64, error) {
	data, err := s.client.do(ctx, http.MethodGet, "/admin/users/"+url.PathEscape(userID)+"/tokens/balance", nil, nil)
	if err != nil {
		return 0, err
	}

	var direct flexInt64
	if err := json.Unmarshal(data, &direct); err == nil {
		return int64(direct), nil
	}

	var obj struct {
		Balance flexInt64 `json:"balance"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return 0, errors.New("api: malformed balance payload")
	}
	return int64(obj.Balance), nil
}

// HistoryParams filters and pages the ledger history. Zero values are
// omitted from the query.
type HistoryParams struct {
	Limit  int
	Cursor string
	Type   string // "credit" or "debit"
	Reason string
}

// HistoryPage is one page of ledger history. NextCursor is empty on the last
// page.
type HistoryPage struct {
	Items      []Transaction
	NextCursor string
}

// History describes the history operation and its observable behavior.
//
// History may return an error when input validation, dependency calls, or security checks fail.
func (s *TokensService) History(ctx context.Context, userID string, params HistoryParams) (*HistoryPage, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Cursor != "" {
		query.Set("cursor", params.Cursor)
	}
	if params.Type != "" {
		query.Set("type", params.Type)
	}
	if params.Reason != "" {
		query.Set("reason", params.Reason)
	}

	data, err := s.client.do(ctx, http.MethodGet, "/admin/users/"+url.PathEscape(userID)+"/tokens/history", query, nil)
	if err != nil {
		return nil, err
	}

	page := &HistoryPage{Items: []Transaction{}, NextCursor: collectionCursor(data)}
	itemsRaw := collectionItems(data, "transactions", "items", "data")
	if itemsRaw == nil {
		return page, nil
	}

	var wires []wireTransaction
	if err := json.Unmarshal(itemsRaw, &wires); err != nil {
		return nil, errors.New("api: malformed transaction list")
	}
	for _, w := range wires {
		page.Items = append(page.Items, w.toTransaction())
	}
	return page, nil
}

// AdjustmentRequest is the input for [TokensService.Credit] and
// [TokensService.Debit]. Amount is always positive; the endpoint determines
// the direction. An empty IdempotencyKey is filled with a fresh UUID.
type AdjustmentRequest struct {
	Amount         int64
	Reason         string
	Notes          string
	IdempotencyKey string
}

// Credit adds tokens to a user's balance. It returns the idempotency key the
// request was sent with, so a manual retry of a failed call can reuse it.
func (s *TokensService) Credit(ctx context.Context, userID string, req AdjustmentRequest) (string, error) {
	return s.adjust(ctx, userID, "credit", req)
}

// Debit removes tokens from a user's balance. It returns the idempotency key
// the request was sent with, so a manual retry of a failed call can reuse it.
func (s *TokensService) Debit(ctx context.Context, userID string, req AdjustmentRequest) (string, error) {
	return s.adjust(ctx, userID, "debit", req)
}

func (s *TokensService) adjust(ctx context.Context, userID, direction string, req AdjustmentRequest) (string, error) {
	key := req.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	body := map[string]any{
		"amount":         req.Amount,
		"idempotencyKey": key,
	}
	if req.Reason != "" {
		body["reason"] = req.Reason
	}
	if req.Notes != "" {
		body["notes"] = req.Notes
	}

	_, err := s.client.doRaw(ctx, http.MethodPost, "/admin/users/"+url.PathEscape(userID)+"/tokens/"+direction, nil, body)
	return key, err
}

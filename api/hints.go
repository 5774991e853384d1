package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// HintsService covers the /hints endpoints.
type HintsService struct {
	client *Client
}

// Hint is a typed prompt suggestion linked to prompt templates.
type Hint struct {
	ID                string
	Name              string
	Type              string
	Description       string
	PromptTemplateIDs []string
	IsActive          bool
	CreatedAt         string
	UpdatedAt         string
}

type wireHint struct {
	ID                flexID   `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Description       string   `json:"description"`
	PromptTemplateIDs []flexID `json:"promptTemplateIds"`
	IsActive          bool     `json:"isActive"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

func (w wireHint) toHint() Hint {
	h := Hint{
		ID:                string(w.ID),
		Name:              w.Name,
		Type:              w.Type,
		Description:       w.Description,
		PromptTemplateIDs: make([]string, 0, len(w.PromptTemplateIDs)),
		IsActive:          w.IsActive,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
	for _, id := range w.PromptTemplateIDs {
		h.PromptTemplateIDs = append(h.PromptTemplateIDs, string(id))
	}
	return h
}

// ListHintsParams filters the hint list.
type ListHintsParams struct {
	IsActive *bool
	Type     string
	Search   string
}

// List describes the list operation and its observable behavior.
//
// List may return an error when input validation, dependency calls, or security checks fail.
func (s *HintsService) List(ctx context.Context, params ListHintsParams) ([]Hint, error) {
	query := url.Values{}
	if params.IsActive != nil {
		query.Set("isActive", strconv.FormatBool(*params.IsActive))
	}
	if params.Type != "" {
		query.Set("type", params.Type)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	data, err := s.client.do(ctx, http.MethodGet, "/hints", query, nil)
	if err != nil {
		return nil, err
	}

	itemsRaw := collectionItems(data, "items", "data")
	if itemsRaw == nil {
		return []Hint{}, nil
	}
	var wires []wireHint
	if err := json.Unmarshal(itemsRaw, &wires); err != nil {
		return nil, errors.New("api: malformed hint list")
	}
	out := make([]Hint, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toHint())
	}
	return out, nil
}

// AddTemplate attaches a prompt template to the hint and returns the updated
// record.
func (s *HintsService) AddTemplate(ctx context.Context, id, templateID string) (*Hint, error) {
	body := map[string]string{"templateId": templateID}
	data, err := s.client.do(ctx, http.MethodPost, "/hints/"+url.PathEscape(id)+"/templates", nil, body)
	if err != nil {
		return nil, err
	}
	var w wireHint
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed hint record")
	}
	h := w.toHint()
	return &h, nil
}

// UpdateHintRequest carries partial updates; nil fields are left untouched.
type UpdateHintRequest struct {
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// Update describes the update operation and its observable behavior.
//
// Update may return an error when input validation, dependency calls, or security checks fail.
func (s *HintsService) Update(ctx context.Context, id string, req UpdateHintRequest) (*Hint, error) {
	data, err := s.client.do(ctx, http.MethodPut, "/hints/"+url.PathEscape(id), nil, req)
	if err != nil {
		return nil, err
	}
	var w wireHint
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed hint record")
	}
	h := w.toHint()
	return &h, nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
func (s *HintsService) Delete(ctx context.Context, id string) error {
	_, err := s.client.doRaw(ctx, http.MethodDelete, "/hints/"+url.PathEscape(id), nil, nil)
	return err
}

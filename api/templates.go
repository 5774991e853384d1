package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// TemplatesService covers the /prompt-templates endpoints.
type TemplatesService struct {
	client *Client
}

// Template is a reusable prompt with an optional preview image.
type Template struct {
	ID         string
	Name       string
	Prompt     string
	PreviewURL string
	IsActive   bool
	CreatedAt  string
	UpdatedAt  string
}

type wireTemplate struct {
	ID         flexID `json:"id"`
	Name       string `json:"name"`
	Prompt     string `json:"prompt"`
	PreviewURL string `json:"previewUrl"`
	IsActive   bool   `json:"isActive"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

func (w wireTemplate) toTemplate() Template {
	return Template{
		ID:         string(w.ID),
		Name:       w.Name,
		Prompt:     w.Prompt,
		PreviewURL: w.PreviewURL,
		IsActive:   w.IsActive,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

// ListTemplatesParams filters the template list. A nil IsActive means both
// active and inactive templates.
type ListTemplatesParams struct {
	IsActive *bool
	Search   string
}

// List describes the list operation and its observable behavior.
//
// List may return an error when input validation, dependency calls, or security checks fail.
func (s *TemplatesService) List(ctx context.Context, params ListTemplatesParams) ([]Template, error) {
	query := url.Values{}
	if params.IsActive != nil {
		query.Set("isActive", strconv.FormatBool(*params.IsActive))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	data, err := s.client.do(ctx, http.MethodGet, "/prompt-templates", query, nil)
	if err != nil {
		return nil, err
	}

	itemsRaw := collectionItems(data, "items", "data")
	if itemsRaw == nil {
		return []Template{}, nil
	}
	var wires []wireTemplate
	if err := json.Unmarshal(itemsRaw, &wires); err != nil {
		return nil, errors.New("api: malformed template list")
	}
	out := make([]Template, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toTemplate())
	}
	return out, nil
}

// CreateTemplateRequest is the input for [TemplatesService.Create].
type CreateTemplateRequest struct {
	Name       string `json:"name"`
	Prompt     string `json:"prompt"`
	PreviewURL string `json:"previewUrl,omitempty"`
	IsActive   *bool  `json:"isActive,omitempty"`
}

// Create describes the create operation and its observable behavior.
//
// Create may return an error when input validation, dependency calls, or security checks fail.
func (s *TemplatesService) Create(ctx context.Context, req CreateTemplateRequest) (*Template, error) {
	data, err := s.client.do(ctx, http.MethodPost, "/prompt-templates", nil, req)
	if err != nil {
		return nil, err
	}
	var w wireTemplate
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed template record")
	}
	t := w.toTemplate()
	return &t, nil
}

// UpdateTemplateRequest carries partial updates; nil fields are left
// untouched.
type UpdateTemplateRequest struct {
	Name       *string `json:"name,omitempty"`
	Prompt     *string `json:"prompt,omitempty"`
	PreviewURL *string `json:"previewUrl,omitempty"`
	IsActive   *bool   `json:"isActive,omitempty"`
}

// Update describes the update operation and its observable behavior.
//
// Update may return an error when input validation, dependency calls, or security checks fail.
func (s *TemplatesService) Update(ctx context.Context, id string, req UpdateTemplateRequest) (*Template, error) {
	data, err := s.client.do(ctx, http.MethodPut, "/prompt-templates/"+url.PathEscape(id), nil, req)
	if err != nil {
		return nil, err
	}
	var w wireTemplate
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed template record")
	}
	t := w.toTemplate()
	return &t, nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
func (s *TemplatesService) Delete(ctx context.Context, id string) error {
	_, err := s.client.doRaw(ctx, http.MethodDelete, "/prompt-templates/"+url.PathEscape(id), nil, nil)
	return err
}

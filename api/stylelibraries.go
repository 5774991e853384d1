package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// StyleLibrariesService covers the /style-library endpoints.
type StyleLibrariesService struct {
	client *Client
}

// StyleLibrary is a named collection of prompt templates.
type StyleLibrary struct {
	ID                string
	Name              string
	Description       string
	PromptTemplateIDs []string
	IsActive          bool
	CreatedAt         string
	UpdatedAt         string
}

type wireStyleLibrary struct {
	ID                flexID   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PromptTemplateIDs []flexID `json:"promptTemplateIds"`
	IsActive          bool     `json:"isActive"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

func (w wireStyleLibrary) toStyleLibrary() StyleLibrary {
	lib := StyleLibrary{
		ID:                string(w.ID),
		Name:              w.Name,
		Description:       w.Description,
		PromptTemplateIDs: make([]string, 0, len(w.PromptTemplateIDs)),
		IsActive:          w.IsActive,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
	for _, id := range w.PromptTemplateIDs {
		lib.PromptTemplateIDs = append(lib.PromptTemplateIDs, string(id))
	}
	return lib
}

// ListStyleLibrariesParams filters the style library list.
type ListStyleLibrariesParams struct {
	IsActive *bool
	Search   string
}

// List describes the list operation and its observable behavior.
//
// List may return an error when input validation, dependency calls, or security checks fail.
func (s *StyleLibrariesService) List(ctx context.Context, params ListStyleLibrariesParams) ([]StyleLibrary, error) {
	query := url.Values{}
	if params.IsActive != nil {
		query.Set("isActive", strconv.FormatBool(*params.IsActive))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	data, err := s.client.do(ctx, http.MethodGet, "/style-library", query, nil)
	if err != nil {
		return nil, err
	}

	itemsRaw := collectionItems(data, "items", "data")
	if itemsRaw == nil {
		return []StyleLibrary{}, nil
	}
	var wires []wireStyleLibrary
	if err := json.Unmarshal(itemsRaw, &wires); err != nil {
		return nil, errors.New("api: malformed style library list")
	}
	out := make([]StyleLibrary, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toStyleLibrary())
	}
	return out, nil
}

// AddTemplate attaches a prompt template to the library and returns the
// updated record.
func (s *StyleLibrariesService) AddTemplate(ctx context.Context, id, templateID string) (*StyleLibrary, error) {
	body := map[string]string{"templateId": templateID}
	data, err := s.client.do(ctx, http.MethodPost, "/style-library/"+url.PathEscape(id)+"/templates", nil, body)
	if err != nil {
		return nil, err
	}
	var w wireStyleLibrary
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed style library record")
	}
	lib := w.toStyleLibrary()
	return &lib, nil
}

// UpdateStyleLibraryRequest carries partial updates; nil fields are left
// untouched.
type UpdateStyleLibraryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// Update describes the update operation and its observable behavior.
//
// Update may return an error when input validation, dependency calls, or security checks fail.
func (s *StyleLibrariesService) Update(ctx context.Context, id string, req UpdateStyleLibraryRequest) (*StyleLibrary, error) {
	data, err := s.client.do(ctx, http.MethodPut, "/style-library/"+url.PathEscape(id), nil, req)
	if err != nil {
		return nil, err
	}
	var w wireStyleLibrary
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.New("api: malformed style library record")
	}
	lib := w.toStyleLibrary()
	return &lib, nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
func (s *StyleLibrariesService) Delete(ctx context.Context, id string) error {
	_, err := s.client.doRaw(ctx, http.MethodDelete, "/style-library/"+url.PathEscape(id), nil, nil)
	return err
}

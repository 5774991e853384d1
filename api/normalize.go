package api

import (
	"encoding/json"
	"strconv"
)

// unwrapData peels the standard response envelope. When the body has no
// "data" field (or is not an object at all), the body itself is the payload.
func unwrapData(body []byte) json.RawMessage {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && !isNull(env.Data) {
		return env.Data
	}
	return body
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// collectionItems locates the item array in a list payload: the payload
// itself when it is a bare array, otherwise the first of the given object
// keys holding an array.
func collectionItems(data json.RawMessage, keys ...string) json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	if data[0] == '[' {
		return data
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	for _, key := range keys {
		if raw, ok := obj[key]; ok && len(raw) > 0 && raw[0] == '[' {
			return raw
		}
	}
	return nil
}

// collectionTotal extracts the total row count from a list payload, probing
// total, count, totalCount, then pagination.total. Nil means the backend did
// not report one.
func collectionTotal(data json.RawMessage) *int64 {
	var obj struct {
		Total      *int64 `json:"total"`
		Count      *int64 `json:"count"`
		TotalCount *int64 `json:"totalCount"`
		Pagination struct {
			Total *int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	switch {
	case obj.Total != nil:
		return obj.Total
	case obj.Count != nil:
		return obj.Count
	case obj.TotalCount != nil:
		return obj.TotalCount
	default:
		return obj.Pagination.Total
	}
}

// collectionCursor extracts the continuation cursor from a list payload,
// probing nextCursor, pagination.cursor, then cursor.
func collectionCursor(data json.RawMessage) string {
	var obj struct {
		NextCursor string `json:"nextCursor"`
		Cursor     string `json:"cursor"`
		Pagination struct {
			Cursor string `json:"cursor"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return ""
	}
	switch {
	case obj.NextCursor != "":
		return obj.NextCursor
	case obj.Pagination.Cursor != "":
		return obj.Pagination.Cursor
	default:
		return obj.Cursor
	}
}

// flexID tolerates backends that serialize IDs as JSON numbers instead of
// strings.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// normalizeRoles folds the two role dialects into one list: a "roles" array
// wins (non-string entries skipped), a singular "role" becomes a one-element
// list. The result is never nil.
func normalizeRoles(rolesRaw json.RawMessage, single string) []string {
	if len(rolesRaw) > 0 && rolesRaw[0] == '[' {
		var entries []json.RawMessage
		if err := json.Unmarshal(rolesRaw, &entries); err == nil {
			out := make([]string, 0, len(entries))
			for _, entry := range entries {
				var s string
				if err := json.Unmarshal(entry, &s); err == nil {
					out = append(out, s)
				}
			}
			return out
		}
	}
	if single != "" {
		return []string{single}
	}
	return []string{}
}

// flexInt64 tolerates numeric fields serialized as JSON strings.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*f = flexInt64(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexInt64(n)
	return nil
}

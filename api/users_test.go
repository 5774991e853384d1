package api

import (
	"context"
	"io"
	"net/http"
	"testing"
)

func TestListUsersHandlesEnvelopeDialects(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLen   int
		wantTotal *int64
	}{
		{
			name:    "bare array",
			body:    `{"data":[{"id":"u1"},{"id":"u2"}]}`,
			wantLen: 2,
		},
		{
			name:      "users key with total",
			body:      `{"data":{"users":[{"id":"u1"}],"total":41}}`,
			wantLen:   1,
			wantTotal: ptrInt64(41),
		},
		{
			name:      "items key with count",
			body:      `{"data":{"items":[{"id":"u1"}],"count":12}}`,
			wantLen:   1,
			wantTotal: ptrInt64(12),
		},
		{
			name:      "data key with totalCount",
			body:      `{"data":{"data":[{"id":"u1"}],"totalCount":3}}`,
			wantLen:   1,
			wantTotal: ptrInt64(3),
		},
		{
			name:      "pagination total as last resort",
			body:      `{"data":{"users":[{"id":"u1"}],"pagination":{"total":9}}}`,
			wantLen:   1,
			wantTotal: ptrInt64(9),
		},
		{
			name:    "unrecognized shape yields empty page",
			body:    `{"data":{"weird":true}}`,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			})

			page, err := client.Users.List(context.Background(), ListUsersParams{})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(page.Items) != tt.wantLen {
				t.Fatalf("items = %d, want %d", len(page.Items), tt.wantLen)
			}
			if (page.Total == nil) != (tt.wantTotal == nil) {
				t.Fatalf("total = %v, want %v", page.Total, tt.wantTotal)
			}
			if page.Total != nil && *page.Total != *tt.wantTotal {
				t.Fatalf("total = %d, want %d", *page.Total, *tt.wantTotal)
			}
		})
	}
}

func TestListUsersQueryParams(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"data":[]}`)
	})

	_, err := client.Users.List(context.Background(), ListUsersParams{
		Page:   2,
		Limit:  25,
		Search: "ada",
		Role:   "admin",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, want := range []string{"page=2", "limit=25", "search=ada", "role=admin"} {
		if !containsJSONField(gotQuery, want) {
			t.Fatalf("query %q missing %q", gotQuery, want)
		}
	}
}

func TestGetUserUnwrapsNestedRecord(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"user":{"id":"u7","username":"ada"}}}`)
	})

	u, err := client.Users.Get(context.Background(), "u7")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if u.ID != "u7" || u.Username != "ada" {
		t.Fatalf("Get = %+v, want nested user record", u)
	}
}

func TestGetUserFlatRecord(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"id":99,"username":"ada","tokenBalance":1500}}`)
	})

	u, err := client.Users.Get(context.Background(), "99")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if u.ID != "99" {
		t.Fatalf("numeric id = %q, want \"99\"", u.ID)
	}
	if u.TokenBalance == nil || *u.TokenBalance != 1500 {
		t.Fatalf("tokenBalance = %v, want 1500", u.TokenBalance)
	}
}

func TestDeleteUserPermanentFlag(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Users.Delete(context.Background(), "u1", true); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotQuery != "permanent=true" {
		t.Fatalf("query = %q, want permanent=true", gotQuery)
	}
}

func ptrInt64(v int64) *int64 { return &v }

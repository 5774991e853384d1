package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestBalanceShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int64
	}{
		{name: "bare number", body: `{"data":120}`, want: 120},
		{name: "balance object", body: `{"data":{"balance":77}}`, want: 77},
		{name: "missing balance reads as zero", body: `{"data":{}}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			})

			got, err := client.Tokens.Balance(context.Background(), "u1")
			if err != nil {
				t.Fatalf("Balance: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Balance = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHistoryCursorPrecedence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "nextCursor wins",
			body: `{"data":{"transactions":[],"nextCursor":"a","pagination":{"cursor":"b"},"cursor":"c"}}`,
			want: "a",
		},
		{
			name: "pagination cursor second",
			body: `{"data":{"transactions":[],"pagination":{"cursor":"b"},"cursor":"c"}}`,
			want: "b",
		},
		{
			name: "bare cursor last",
			body: `{"data":{"transactions":[],"cursor":"c"}}`,
			want: "c",
		},
		{
			name: "no cursor means last page",
			body: `{"data":{"transactions":[]}}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			})

			page, err := client.Tokens.History(context.Background(), "u1", HistoryParams{})
			if err != nil {
				t.Fatalf("History: %v", err)
			}
			if page.NextCursor != tt.want {
				t.Fatalf("NextCursor = %q, want %q", page.NextCursor, tt.want)
			}
		})
	}
}

func TestHistoryItemShapes(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"transactions":[
			{"id":1,"amount":100,"type":"credit","reason":"promo"},
			{"id":"tx2","amount":-40,"type":"debit"}
		]}}`)
	})

	page, err := client.Tokens.History(context.Background(), "u1", HistoryParams{Limit: 10})
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(page.Items))
	}
	if page.Items[0].ID != "1" || page.Items[0].Amount != 100 {
		t.Fatalf("first item = %+v, want normalized credit", page.Items[0])
	}
	if page.Items[1].Amount != -40 {
		t.Fatalf("debit amount = %d, want -40", page.Items[1].Amount)
	}
}

func TestCreditGeneratesIdempotencyKey(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
	})

	key, err := client.Tokens.Credit(context.Background(), "u1", AdjustmentRequest{Amount: 50, Reason: "promo"})
	if err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if key == "" {
		t.Fatal("Credit returned an empty idempotency key")
	}
	if gotBody["idempotencyKey"] != key {
		t.Fatalf("sent key = %v, returned key = %q; must match", gotBody["idempotencyKey"], key)
	}
	if gotBody["amount"] != float64(50) {
		t.Fatalf("amount = %v, want 50", gotBody["amount"])
	}
}

func TestDebitReusesCallerKey(t *testing.T) {
	var gotBody map[string]any
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
	})

	key, err := client.Tokens.Debit(context.Background(), "u1", AdjustmentRequest{
		Amount:         20,
		IdempotencyKey: "retry-key-1",
	})
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if key != "retry-key-1" {
		t.Fatalf("returned key = %q, want caller's key", key)
	}
	if gotBody["idempotencyKey"] != "retry-key-1" {
		t.Fatalf("sent key = %v, want retry-key-1", gotBody["idempotencyKey"])
	}
	if gotPath != "/admin/users/u1/tokens/debit" {
		t.Fatalf("path = %q, want debit endpoint", gotPath)
	}
}

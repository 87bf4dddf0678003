package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"ledger-reconciler/internal/domain"
)

func enrichmentItems() []domain.EnrichmentItem {
	return []domain.EnrichmentItem{
		{ID: "BANK-INV1-0000", Status: domain.StatusDiscrepancyAmount, BankInvoice: "INV1", BankAmount: 100.00, BookDescription: "INV1", BookAmount: 90.00, Difference: 10.00},
	}
}

func modelResponse(t *testing.T, verdict any) string {
	t.Helper()
	text, err := json.Marshal(verdict)
	if err != nil {
		t.Fatalf("Failed to marshal verdict: %v", err)
	}
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": string(text)}}}},
		},
	}
	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	return string(body)
}

func TestGeminiClient_Annotate(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		raw, _ := json.Marshal(req)
		assert.True(t, strings.Contains(string(raw), "BANK-INV1-0000"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(modelResponse(t, map[string]any{
			"analysisResults": []map[string]any{
				{"id": "BANK-INV1-0000", "analysis": "Digit transposition", "suggestedFix": "Update Book amount to 100.00", "confidence": 0.9},
			},
		})))
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key", "gemini-2.5-flash", log)
	got, err := client.Annotate(context.Background(), enrichmentItems())

	assert.NoError(t, err)
	assert.Equal(t, map[string]domain.Annotation{
		"BANK-INV1-0000": {Analysis: "Digit transposition", SuggestedFix: "Update Book amount to 100.00", Confidence: 0.9},
	}, got)
}

func TestGeminiClient_AnnotateEmptyInput(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)

	// No server: an empty payload never goes over the wire.
	client := NewGeminiClient("http://127.0.0.1:1", "test-key", "gemini-2.5-flash", log)
	got, err := client.Annotate(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestGeminiClient_AnnotateErrors(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
		},
		{
			name: "invalid envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
		},
		{
			name: "garbage verdict text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"oops"}]}}]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewGeminiClient(server.URL, "test-key", "gemini-2.5-flash", log)
			got, err := client.Annotate(context.Background(), enrichmentItems())

			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"daily-plan-assistant/pkg/openai"
)

func newTestClient(t *testing.T, baseURL string) *openai.Client {
	t.Helper()
	client, err := openai.New(openai.Config{
		APIKey:  "test-api-key",
		Model:   "test-model",
		BaseURL: baseURL,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		if _, err := openai.New(openai.Config{}); err == nil {
			t.Error("expected error for empty APIKey")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := openai.Config{APIKey: "k"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if cfg.Model != openai.DefaultModel || cfg.BaseURL != openai.DefaultBaseURL {
			t.Errorf("defaults not applied: %+v", cfg)
		}
		if cfg.HTTPClient == nil || cfg.StreamHTTPClient == nil {
			t.Error("HTTP clients not defaulted")
		}
	})
}

func TestChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req openai.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Stream {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Messages[len(req.Messages)-1].Content == "cause_429" {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit"}}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-123",
			"object": "chat.completion",
			"model": "` + req.Model + `",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "你好！"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 3, "total_tokens": 13}
		}`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.ChatCompletion(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("ChatCompletion: %v", err)
		}
		if resp.Choices[0].Message.Content != "你好！" {
			t.Errorf("content = %q", resp.Choices[0].Message.Content)
		}
		if resp.Usage.TotalTokens != 13 {
			t.Errorf("usage = %+v", resp.Usage)
		}
		if resp.Model != "test-model" {
			t.Errorf("default model not applied, got %q", resp.Model)
		}
	})

	t.Run("API Error Carries Vendor Message", func(t *testing.T) {
		_, err := client.ChatCompletion(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "cause_429"}},
		})
		if err == nil || !strings.Contains(err.Error(), "rate limited") {
			t.Errorf("expected vendor message in error, got %v", err)
		}
	})
}

func TestStreamChatCompletion(t *testing.T) {
	t.Run("Delta Chunks", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"你\"}}]}\n\n"))
			w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"好\"}}]}\n\n"))
			w.Write([]byte("data: not json\n\n"))
			w.Write([]byte("data: {\"choices\":[{\"delta\":{}}]}\n\n"))
			w.Write([]byte("data: [DONE]\n\n"))
			w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"ignored\"}}]}\n\n"))
		}))
		defer ts.Close()

		var chunks []string
		err := newTestClient(t, ts.URL).StreamChatCompletion(context.Background(),
			&openai.Request{Messages: []openai.Message{{Role: "user", Content: "hi"}}},
			func(chunk string) error {
				chunks = append(chunks, chunk)
				return nil
			})
		if err != nil {
			t.Fatalf("StreamChatCompletion: %v", err)
		}
		if got := strings.Join(chunks, ""); got != "你好" {
			t.Errorf("assembled = %q, want 你好 (chunks %v)", got, chunks)
		}
	})

	t.Run("Message Content Fallback", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("data: {\"choices\":[{\"message\":{\"content\":\"whole reply\"}}]}\n\n"))
			w.Write([]byte("data: [DONE]\n\n"))
		}))
		defer ts.Close()

		var got string
		err := newTestClient(t, ts.URL).StreamChatCompletion(context.Background(),
			&openai.Request{Messages: []openai.Message{{Role: "user", Content: "hi"}}},
			func(chunk string) error {
				got += chunk
				return nil
			})
		if err != nil {
			t.Fatalf("StreamChatCompletion: %v", err)
		}
		if got != "whole reply" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("HTTP Error Status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error": {"message": "upstream down"}}`))
		}))
		defer ts.Close()

		err := newTestClient(t, ts.URL).StreamChatCompletion(context.Background(),
			&openai.Request{}, func(string) error { return nil })
		if err == nil || !strings.Contains(err.Error(), "upstream down") {
			t.Errorf("expected upstream error, got %v", err)
		}
	})

	t.Run("OnDelta Error Aborts", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"x\"}}]}\n\n"))
			w.Write([]byte("data: [DONE]\n\n"))
		}))
		defer ts.Close()

		wantErr := context.Canceled
		err := newTestClient(t, ts.URL).StreamChatCompletion(context.Background(),
			&openai.Request{}, func(string) error { return wantErr })
		if err != wantErr {
			t.Errorf("expected onDelta error back, got %v", err)
		}
	})
}

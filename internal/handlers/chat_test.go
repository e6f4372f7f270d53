package handlers

import (
	"net/http"
	"testing"
)

type chatResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
	Source  string `json:"source"`
}

func TestChatAsk_TopicMatch(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/chat", map[string]any{"message": "What skills do you have?"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body chatResponse
	decodeBody(t, resp, &body)
	if !body.Success {
		t.Error("success = false")
	}
	if body.Source != "topic" {
		t.Errorf("source = %q, want topic", body.Source)
	}
	if body.Reply == "" {
		t.Error("empty reply")
	}
}

func TestChatAsk_Fallback(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/chat", map[string]any{"message": "quantum flux capacitors"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body chatResponse
	decodeBody(t, resp, &body)
	if body.Source != "fallback" {
		t.Errorf("source = %q, want fallback", body.Source)
	}
}

func TestChatAsk_EmptyMessage(t *testing.T) {
	app, _, _ := newTestApp(t)

	for _, payload := range []map[string]any{
		{"message": ""},
		{"message": "   "},
		{},
	} {
		resp := postJSON(t, app, "/api/chat", payload)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("payload %v: status = %d, want 400", payload, resp.StatusCode)
		}

		var body envelope
		decodeBody(t, resp, &body)
		if body.Message != "A message is required" {
			t.Errorf("message = %q", body.Message)
		}
	}
}

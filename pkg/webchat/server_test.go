package webchat

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/elicia-ai/elicia/pkg/chat"
)

func newTestServer(t *testing.T, completer chat.Completer) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	assistant := NewAssistant(completer, AssistantConfig{
		SystemPrompt: "sys",
		Welcome:      "welcome aboard",
		Logger:       log,
	})
	ts := httptest.NewServer(NewServer(assistant, log).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func startSession(t *testing.T, ts *httptest.Server) StartSessionResponse {
	t.Helper()
	resp, err := http.Post(ts.URL+"/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("start session: unexpected status %d", resp.StatusCode)
	}

	var started StartSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&started); err != nil {
		t.Fatalf("decode start response: %v", err)
	}
	return started
}

func postMessage(t *testing.T, ts *httptest.Server, sessionID, content string) (int, []Event) {
	t.Helper()
	body := strings.NewReader(`{"content":` + jsonString(content) + `}`)
	resp, err := http.Post(ts.URL+"/sessions/"+sessionID+"/messages", "application/json", body)
	if err != nil {
		t.Fatalf("post message: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp.StatusCode, parseSSE(t, string(raw))
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func parseSSE(t *testing.T, body string) []Event {
	t.Helper()
	var events []Event
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev); err != nil {
			t.Fatalf("parse SSE event %q: %v", line, err)
		}
		events = append(events, ev)
	}
	return events
}

func TestStartSessionReturnsIDAndWelcome(t *testing.T) {
	ts := newTestServer(t, &fakeCompleter{})

	started := startSession(t, ts)
	if started.SessionID == "" {
		t.Fatal("expected a session ID")
	}
	if started.Welcome != "welcome aboard" {
		t.Fatalf("unexpected welcome: %q", started.Welcome)
	}
}

func TestMessageStreamsTokensThenDone(t *testing.T) {
	ts := newTestServer(t, &fakeCompleter{turns: []scriptedTurn{
		{fragments: textFragments("Hi", " there", "!")},
	}})
	started := startSession(t, ts)

	status, events := postMessage(t, ts, started.SessionID, "Hello!")
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	if len(events) != 4 {
		t.Fatalf("expected 3 token events and a done event, got %+v", events)
	}
	for i, want := range []string{"Hi", " there", "!"} {
		if events[i].Type != "token" || events[i].Content != want {
			t.Fatalf("event %d: expected token %q, got %+v", i, want, events[i])
		}
	}
	last := events[3]
	if last.Type != "done" || last.Content != "Hi there!" {
		t.Fatalf("unexpected final event: %+v", last)
	}
}

func TestMessageFailureEmitsErrorEventAndSessionSurvives(t *testing.T) {
	ts := newTestServer(t, &fakeCompleter{turns: []scriptedTurn{
		{err: &chat.RequestError{Op: "chat stream", Err: errors.New("rate limited")}},
		{fragments: textFragments("ok now")},
	}})
	started := startSession(t, ts)

	_, events := postMessage(t, ts, started.SessionID, "Hello!")
	if len(events) != 1 || events[0].Type != "error" {
		t.Fatalf("expected a single error event, got %+v", events)
	}
	if !strings.Contains(events[0].Content, "rate limited") {
		t.Fatalf("error event should carry the failure detail: %+v", events[0])
	}

	_, events = postMessage(t, ts, started.SessionID, "again")
	if len(events) == 0 || events[len(events)-1].Type != "done" {
		t.Fatalf("session should accept the next message, got %+v", events)
	}
}

func TestMessageUnknownSessionReturns404(t *testing.T) {
	ts := newTestServer(t, &fakeCompleter{})

	status, _ := postMessage(t, ts, "nope", "Hello!")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestMessageEmptyContentReturns400(t *testing.T) {
	ts := newTestServer(t, &fakeCompleter{})
	started := startSession(t, ts)

	status, _ := postMessage(t, ts, started.SessionID, "   ")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestEndSessionDiscardsConversation(t *testing.T) {
	ts := newTestServer(t, &fakeCompleter{})
	started := startSession(t, ts)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/sessions/"+started.SessionID, nil)
	if err != nil {
		t.Fatalf("build delete request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete session: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	status, _ := postMessage(t, ts, started.SessionID, "Hello!")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 after session end, got %d", status)
	}
}

func TestHealthReportsActiveSessions(t *testing.T) {
	ts := newTestServer(t, &fakeCompleter{})
	startSession(t, ts)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}

	var health struct {
		Status   string `json:"status"`
		Sessions int    `json:"sessions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	if health.Status != "ok" || health.Sessions != 1 {
		t.Fatalf("unexpected health payload: %+v", health)
	}
}

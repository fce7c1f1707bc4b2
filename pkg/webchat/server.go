package webchat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Event is one server-sent event on the message stream.
// Type is "token", "done" or "error".
type Event struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// StartSessionResponse is the body returned by POST /sessions.
type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	Welcome   string `json:"welcome"`
}

// MessageRequest is the body accepted by POST /sessions/{id}/messages.
type MessageRequest struct {
	Content string `json:"content"`
}

// Server is the HTTP host runtime. It owns session transport and the
// session registry and invokes the Handler hooks; everything
// conversational lives behind the Handler.
type Server struct {
	handler Handler
	log     logrus.FieldLogger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewServer creates a host around the given handler.
func NewServer(handler Handler, log logrus.FieldLogger) *Server {
	return &Server{
		handler:  handler,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Routes returns the HTTP handler for the chat API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /sessions", s.handleStartSession)
	mux.HandleFunc("POST /sessions/{id}/messages", s.handleMessage)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleEndSession)
	mux.HandleFunc("GET /health", s.handleHealth)
	return corsMiddleware(mux)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	sess := NewSession()

	out := &bufferedOutgoing{}
	if err := s.handler.OnChatStart(r.Context(), sess, out); err != nil {
		s.log.Errorf("chat start failed: %v", err)
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()

	s.log.WithField("session_id", sess.ID()).Info("session started")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(StartSessionResponse{
		SessionID: sess.ID(),
		Welcome:   out.String(),
	})
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(r.PathValue("id"))
	if sess == nil {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		http.Error(w, "missing 'content' field", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	out := &sseOutgoing{w: w}

	// One in-flight turn per session.
	sess.mu.Lock()
	err := s.handler.OnMessage(r.Context(), sess, req.Content, out)
	sess.mu.Unlock()

	if err != nil {
		s.log.WithField("session_id", sess.ID()).Errorf("message hook failed: %v", err)
		out.Fail("internal error")
	}
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}
	s.log.WithField("session_id", id).Info("session ended")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	active := len(s.sessions)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": active,
	})
}

func (s *Server) lookup(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

// corsMiddleware handles cross-origin requests from the chat UI.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Cache-Control")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sseOutgoing writes one outgoing message as a server-sent event stream.
type sseOutgoing struct {
	w    http.ResponseWriter
	full strings.Builder
}

func (o *sseOutgoing) StreamToken(text string) {
	o.full.WriteString(text)
	o.send(Event{Type: "token", Content: text})
}

func (o *sseOutgoing) Finalize() {
	o.send(Event{Type: "done", Content: o.full.String()})
}

func (o *sseOutgoing) Fail(message string) {
	o.send(Event{Type: "error", Content: message})
}

func (o *sseOutgoing) send(ev Event) {
	data, _ := json.Marshal(ev)
	fmt.Fprintf(o.w, "data: %s\n\n", data)
	if f, ok := o.w.(http.Flusher); ok {
		f.Flush()
	}
}

// bufferedOutgoing collects an outgoing message into memory. Used for
// the welcome message, which is returned in the start-session response
// rather than streamed.
type bufferedOutgoing struct {
	full strings.Builder
}

func (o *bufferedOutgoing) StreamToken(text string) { o.full.WriteString(text) }
func (o *bufferedOutgoing) Finalize()               {}
func (o *bufferedOutgoing) Fail(message string)     { o.full.Reset(); o.full.WriteString(message) }
func (o *bufferedOutgoing) String() string          { return o.full.String() }

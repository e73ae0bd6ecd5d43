// ABOUTME: Thin HTTP host exposing the dialogue engine per logical user
// ABOUTME: POST /conversation and /reset plus static chat page serving
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/eagles/winechat/internal/models"
	"github.com/eagles/winechat/internal/session"
)

// resetUtterance is the special message that clears a conversation instead of
// being handed to the engine.
const resetUtterance = "reset"

// Server is the HTTP host around the session store. It owns no conversation
// logic; every route is a thin wrapper over HandleTurn/Reset.
type Server struct {
	store     *session.Store
	staticDir string
	mux       *http.ServeMux
}

// conversationRequest is the JSON body of POST /conversation.
type conversationRequest struct {
	Message string `json:"message"`
}

// errorResponse is the JSON shape of every client error.
type errorResponse struct {
	Error string `json:"error"`
}

// New builds the HTTP host. staticDir may be empty to disable the chat page.
func New(store *session.Store, staticDir string) *Server {
	s := &Server{store: store, staticDir: staticDir, mux: http.NewServeMux()}

	s.mux.HandleFunc("POST /conversation", s.handleConversation)
	s.mux.HandleFunc("POST /reset", s.handleReset)
	if staticDir != "" {
		s.mux.Handle("GET /", http.FileServer(http.Dir(staticDir)))
	}

	return s
}

// Handler returns the root handler for ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleConversation(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	var req conversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(w, http.StatusBadRequest, "Empty message")
		return
	}

	rec, err := s.store.Get(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not create session")
		return
	}

	if strings.EqualFold(message, resetUtterance) {
		rec.Reset()
		writeJSON(w, http.StatusOK, models.NewResponse("Session reset. Let's start fresh!", nil))
		return
	}

	writeJSON(w, http.StatusOK, rec.HandleTurn(message))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	s.store.Reset(userID)
	writeJSON(w, http.StatusOK, models.NewResponse("Session reset.", nil))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

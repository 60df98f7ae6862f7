package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/kotanikosei/Emo/pkg/user"
)

// Server wires the handlers over the database and token manager.
type Server struct {
	db     *DB
	tokens *Tokens
}

// NewServer builds the API surface.
func NewServer(db *DB, tokens *Tokens) *Server {
	return &Server{db: db, tokens: tokens}
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", post(s.handleLogin))
	mux.HandleFunc("/api/logout", post(s.handleLogout))
	mux.HandleFunc("/api/user", s.handleUser)
	return mux
}

func post(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h(w, r)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type sessionResponse struct {
	User  user.User `json:"user"`
	Token string    `json:"token,omitempty"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := s.db.UserByEmail(req.Email)
	if errors.Is(err, ErrNotFound) || (err == nil && u.Password != req.Password) {
		writeError(w, http.StatusUnauthorized, "IDまたはパスワードが正しくありません。")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if u.Status == user.StatusSuspended {
		writeError(w, http.StatusForbidden, "このアカウントは停止されています。")
		return
	}
	if req.IsAdmin && !u.IsAdmin {
		writeError(w, http.StatusForbidden, "管理者権限がありません。")
		return
	}

	token, err := s.tokens.Issue(u.ID, u.IsAdmin)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	u.Password = ""
	writeJSON(w, http.StatusOK, sessionResponse{User: u, Token: token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authorize(r); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	// Tokens are stateless; logout succeeds once the caller proves it held one.
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	claims, err := s.authorize(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	u, err := s.db.UserByID(claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	u.Password = ""
	writeJSON(w, http.StatusOK, sessionResponse{User: u})
}

func (s *Server) authorize(r *http.Request) (*Claims, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, ErrInvalidToken
	}
	return s.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/kotanikosei/Emo/pkg/user"
)

func newTestServer(t *testing.T) (*httptest.Server, *DB) {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "emo.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	srv := httptest.NewServer(NewServer(db, NewTokens("test-secret")).Handler())
	t.Cleanup(srv.Close)
	return srv, db
}

func login(t *testing.T, srv *httptest.Server, email, password string, admin bool) (*http.Response, sessionResponse) {
	t.Helper()
	body, _ := json.Marshal(loginRequest{Email: email, Password: password, IsAdmin: admin})
	resp, err := http.Post(srv.URL+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	var session sessionResponse
	_ = json.NewDecoder(resp.Body).Decode(&session)
	resp.Body.Close()
	return resp, session
}

func TestLoginIssuesToken(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, session := login(t, srv, "demo@emocal.com", "000", false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if session.Token == "" {
		t.Fatalf("expected a token")
	}
	if session.User.Password != "" {
		t.Fatalf("password must not be echoed back")
	}
	if session.User.Name != "デモユーザー" {
		t.Fatalf("unexpected user: %+v", session.User)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	userResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("user request: %v", err)
	}
	defer userResp.Body.Close()
	if userResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /api/user, got %d", userResp.StatusCode)
	}
	var current sessionResponse
	if err := json.NewDecoder(userResp.Body).Decode(&current); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if current.User.Email != "demo@emocal.com" {
		t.Fatalf("unexpected current user: %+v", current.User)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, _ := login(t, srv, "demo@emocal.com", "999", false)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLoginRejectsSuspendedUser(t *testing.T) {
	srv, db := newTestServer(t)
	if _, err := db.CreateUser(user.User{
		Name: "停止中", Email: "frozen@emocal.com", Password: "pw", Status: user.StatusSuspended,
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	resp, _ := login(t, srv, "frozen@emocal.com", "pw", false)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestAdminFlagRequiresAdminAccount(t *testing.T) {
	srv, db := newTestServer(t)
	resp, _ := login(t, srv, "demo@emocal.com", "000", true)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.StatusCode)
	}

	if _, err := db.CreateUser(user.User{
		Name: "小谷", Email: "kotani@emocal.com", Password: "admin", IsAdmin: true,
	}); err != nil {
		t.Fatalf("create admin: %v", err)
	}
	resp, session := login(t, srv, "kotani@emocal.com", "admin", true)
	if resp.StatusCode != http.StatusOK || session.Token == "" {
		t.Fatalf("expected admin login to succeed, got %d", resp.StatusCode)
	}
}

func TestUserEndpointRejectsBadToken(t *testing.T) {
	srv, _ := newTestServer(t)
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/user", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens("secret")
	signed, err := tokens.Issue(7, true)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := tokens.Validate(signed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 7 || !claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, err := NewTokens("other").Validate(signed); err == nil {
		t.Fatalf("token signed with another secret must fail")
	}
}

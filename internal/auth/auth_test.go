package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id": "u1", "name": "Julian", "email": "j@example.com", "token": "tok-1"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	session, err := client.Login(context.Background(), "j@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !session.Authenticated() {
		t.Error("session should be authenticated")
	}
	if session.UserID != "u1" || session.Token != "tok-1" {
		t.Errorf("session = %+v", session)
	}
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), "j@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("rejected login = %v, want ErrInvalidCredentials", err)
	}
}

func TestSessionAuthenticated(t *testing.T) {
	if (Session{}).Authenticated() {
		t.Error("empty session must not be authenticated")
	}
	if (Session{Token: "tok"}).Authenticated() {
		t.Error("session without a user id must not be authenticated")
	}
	if !(Session{Token: "tok", UserID: "u1"}).Authenticated() {
		t.Error("complete session should be authenticated")
	}
}

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func decodeMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Msg string `json:"msg"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.Msg
}

func TestSendCodeMissingEmail(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/send-code", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	SendCode(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := decodeMsg(t, rec); msg != "Email is required" {
		t.Errorf("expected %q, got %q", "Email is required", msg)
	}
}

func TestSendCodeInvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/send-code", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()

	SendCode(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestVerifyCodeInvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/verify-code", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()

	VerifyCode(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := decodeMsg(t, rec); msg != "Invalid input" {
		t.Errorf("expected %q, got %q", "Invalid input", msg)
	}
}

func TestSignupMissingPassword(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"email":"ada@example.com","name":"Ada"}`))
	rec := httptest.NewRecorder()

	Signup(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := decodeMsg(t, rec); msg != "Invalid input" {
		t.Errorf("expected %q, got %q", "Invalid input", msg)
	}
}

func TestSignupMissingEmail(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"name":"Ada","password":"hunter2"}`))
	rec := httptest.NewRecorder()

	Signup(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestLoginInvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()

	Login(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := decodeMsg(t, rec); msg != "Invalid input" {
		t.Errorf("expected %q, got %q", "Invalid input", msg)
	}
}

func TestForgotPasswordMissingEmail(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/forgot-password", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	ForgotPassword(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := decodeMsg(t, rec); msg != "Email is required" {
		t.Errorf("expected %q, got %q", "Email is required", msg)
	}
}

func TestResetPasswordMissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/reset-password", strings.NewReader(`{"password":"newpass"}`))
	rec := httptest.NewRecorder()

	ResetPassword(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := decodeMsg(t, rec); msg != "Invalid input" {
		t.Errorf("expected %q, got %q", "Invalid input", msg)
	}
}

func TestResetPasswordMissingPassword(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/reset-password", strings.NewReader(`{"token":"abc"}`))
	rec := httptest.NewRecorder()

	ResetPassword(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

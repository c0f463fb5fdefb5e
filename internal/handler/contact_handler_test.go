package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/estatehub/backend/internal/model"
	"github.com/estatehub/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	createFunc func(ctx context.Context, input model.ContactInput) error
}

func (m *mockContactService) Create(ctx context.Context, input model.ContactInput) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return nil
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured *model.ContactInput
	mock := &mockContactService{
		createFunc: func(ctx context.Context, input model.ContactInput) error {
			captured = &input
			return nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"email":"test@example.com","name":"Alice","message":"Hello!","type":"Viewing"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d, body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Create to be called, got nil")
	}
	if captured.Email != "test@example.com" || captured.Name != "Alice" {
		t.Errorf("unexpected input %+v", captured)
	}
	if captured.Message != "Hello!" || captured.Type != "Viewing" {
		t.Errorf("unexpected input %+v", captured)
	}

	want := `{"success":true,"message":"Contact message received. We will get back to you shortly."}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestContactHandler_Submit_FormBody(t *testing.T) {
	var captured model.ContactInput
	mock := &mockContactService{
		createFunc: func(ctx context.Context, input model.ContactInput) error {
			captured = input
			return nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("name=Bob&email=bob%40example.com&phone=123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Name != "Bob" || captured.Email != "bob@example.com" || captured.Phone != "123" || captured.Type != nil {
		t.Errorf("unexpected input %+v", captured)
	}
}

// TestContactHandler_Submit_NumericOptionalFields verifies phone, type and
// message are passed on with their JSON types.
func TestContactHandler_Submit_NumericOptionalFields(t *testing.T) {
	var captured model.ContactInput
	mock := &mockContactService{
		createFunc: func(ctx context.Context, input model.ContactInput) error {
			captured = input
			return nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Dan","email":"d@example.com","phone":5551234,"message":42}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Phone != json.Number("5551234") || captured.Message != json.Number("42") {
		t.Errorf("expected numbers kept, got %#v/%#v", captured.Phone, captured.Message)
	}
	if captured.Type != nil {
		t.Errorf("expected absent type to be nil, got %#v", captured.Type)
	}
}

// TestContactHandler_Submit_ValidationError verifies the service message is returned as-is.
func TestContactHandler_Submit_ValidationError(t *testing.T) {
	mock := &mockContactService{
		createFunc: func(ctx context.Context, input model.ContactInput) error {
			return &service.ValidationError{Message: "name and email are required", Status: http.StatusBadRequest}
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"name and email are required"}` {
		t.Errorf("unexpected body %s", got)
	}
}

// TestContactHandler_Submit_InvalidJSON verifies that malformed JSON returns 400.
func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	called := false
	mock := &mockContactService{
		createFunc: func(ctx context.Context, input model.ContactInput) error {
			called = true
			return nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("service should not be called for malformed JSON")
	}
}

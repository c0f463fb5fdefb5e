package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/estatehub/backend/internal/model"
	"github.com/estatehub/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock ListingService
// ---------------------------------------------------------------------------

type mockListingService struct {
	listAllFunc func(ctx context.Context) []json.RawMessage
	createFunc  func(ctx context.Context, input model.ListingInput) (*model.Listing, error)
}

func (m *mockListingService) ListAll(ctx context.Context) []json.RawMessage {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return []json.RawMessage{}
}

func (m *mockListingService) Create(ctx context.Context, input model.ListingInput) (*model.Listing, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return &model.Listing{}, nil
}

// ---------------------------------------------------------------------------
// GET /api/listings
// ---------------------------------------------------------------------------

func TestListingHandler_List_EmptyIsArray(t *testing.T) {
	h := NewListingHandler(&mockListingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected [], got %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("expected JSON content type, got %q", ct)
	}
}

func TestListingHandler_List_WritesStoredElements(t *testing.T) {
	mock := &mockListingService{
		listAllFunc: func(ctx context.Context) []json.RawMessage {
			return []json.RawMessage{
				json.RawMessage(`{"id":1,"title":"First","price":100.50}`),
				json.RawMessage(`{"id":2,"title":"<b>Second</b>","price":"on request","image":"/a.jpg"}`),
			}
		},
	}
	h := NewListingHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	want := `[{"id":1,"title":"First","price":100.50},{"id":2,"title":"<b>Second</b>","price":"on request","image":"/a.jpg"}]`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body mismatch\n got: %s\nwant: %s", got, want)
	}
}

// ---------------------------------------------------------------------------
// POST /api/admin/listings
// ---------------------------------------------------------------------------

func TestListingHandler_Create_Success(t *testing.T) {
	var captured model.ListingInput
	mock := &mockListingService{
		createFunc: func(ctx context.Context, input model.ListingInput) (*model.Listing, error) {
			captured = input
			return &model.Listing{
				ID: 1700000000000, Title: input.Title, Location: input.Location,
				Price: input.Price, Beds: "", Baths: "", Size: "",
				Status: "For Sale", CreatedAt: "2023-11-14T22:13:20.000Z",
			}, nil
		},
	}
	h := NewListingHandler(mock)

	body := `{"title":"Loft","location":"Berlin","price":250000.50}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/listings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Title != "Loft" || captured.Location != "Berlin" {
		t.Errorf("unexpected input %+v", captured)
	}
	if n, ok := captured.Price.(json.Number); !ok || n.String() != "250000.50" {
		t.Errorf("expected verbatim number 250000.50, got %#v", captured.Price)
	}
	if captured.Beds != nil {
		t.Errorf("expected absent beds to be nil, got %#v", captured.Beds)
	}

	want := `{"success":true,"listing":{"id":1700000000000,"title":"Loft","location":"Berlin","price":250000.50,"beds":"","baths":"","size":"","status":"For Sale","createdAt":"2023-11-14T22:13:20.000Z"}}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestListingHandler_Create_ValidationError(t *testing.T) {
	mock := &mockListingService{
		createFunc: func(ctx context.Context, input model.ListingInput) (*model.Listing, error) {
			return nil, &service.ValidationError{Message: "title, location, and price are required", Status: http.StatusBadRequest}
		},
	}
	h := NewListingHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/listings", strings.NewReader(`{"location":"X","price":1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"title, location, and price are required"}` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestListingHandler_Create_FormBody(t *testing.T) {
	var captured model.ListingInput
	mock := &mockListingService{
		createFunc: func(ctx context.Context, input model.ListingInput) (*model.Listing, error) {
			captured = input
			return &model.Listing{}, nil
		},
	}
	h := NewListingHandler(mock)

	body := "title=Cottage&location=Lake&price=90000&beds=3"
	req := httptest.NewRequest(http.MethodPost, "/api/admin/listings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Title != "Cottage" || captured.Price != "90000" || captured.Beds != "3" {
		t.Errorf("unexpected input %+v", captured)
	}
	if captured.Baths != nil {
		t.Errorf("expected absent baths to be nil, got %#v", captured.Baths)
	}
}

func TestListingHandler_Create_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{bad json`},
		{"wrong type", `{"title":5,"location":"X","price":1}`},
		{"trailing data", `{"title":"A"} {}`},
		{"not an object", `[1,2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mock := &mockListingService{
				createFunc: func(ctx context.Context, input model.ListingInput) (*model.Listing, error) {
					called = true
					return &model.Listing{}, nil
				},
			}
			h := NewListingHandler(mock)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/listings", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"invalid request body"}` {
				t.Errorf("unexpected body %s", got)
			}
			if called {
				t.Error("service should not be called")
			}
		})
	}
}

func TestListingHandler_Create_EmptyBodyReachesService(t *testing.T) {
	called := false
	mock := &mockListingService{
		createFunc: func(ctx context.Context, input model.ListingInput) (*model.Listing, error) {
			called = true
			return nil, &service.ValidationError{Message: "title, location, and price are required", Status: http.StatusBadRequest}
		},
	}
	h := NewListingHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/listings", nil)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if !called {
		t.Error("expected service to validate an empty body")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

// Only JSON and form bodies are read; anything else counts as no input.
func TestListingHandler_Create_IgnoresOtherContentTypes(t *testing.T) {
	for _, contentType := range []string{"", "text/plain", "application/xml"} {
		t.Run(contentType, func(t *testing.T) {
			var captured *model.ListingInput
			mock := &mockListingService{
				createFunc: func(ctx context.Context, input model.ListingInput) (*model.Listing, error) {
					captured = &input
					return nil, &service.ValidationError{Message: "title, location, and price are required", Status: http.StatusBadRequest}
				},
			}
			h := NewListingHandler(mock)

			body := `{"title":"Loft","location":"Berlin","price":1}`
			req := httptest.NewRequest(http.MethodPost, "/api/admin/listings", strings.NewReader(body))
			if contentType != "" {
				req.Header.Set("Content-Type", contentType)
			}
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if captured == nil {
				t.Fatal("expected service to be called")
			}
			if captured.Title != "" || captured.Price != nil {
				t.Errorf("expected body to be ignored, got %+v", *captured)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"title, location, and price are required"}` {
				t.Errorf("unexpected body %s", got)
			}
		})
	}
}

func TestListingHandler_Create_JSONSuffixMediaType(t *testing.T) {
	var captured model.ListingInput
	mock := &mockListingService{
		createFunc: func(ctx context.Context, input model.ListingInput) (*model.Listing, error) {
			captured = input
			return &model.Listing{}, nil
		},
	}
	h := NewListingHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/listings", strings.NewReader(`{"title":"Loft"}`))
	req.Header.Set("Content-Type", "application/vnd.api+json; charset=utf-8")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if captured.Title != "Loft" {
		t.Errorf("expected JSON body to be read, got %+v", captured)
	}
}

func TestListingHandler_Create_BodyTooLarge(t *testing.T) {
	h := NewListingHandler(&mockListingService{})

	body := `{"title":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/listings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", rec.Code)
	}
}

func TestListingHandler_Create_UnexpectedError(t *testing.T) {
	mock := &mockListingService{
		createFunc: func(ctx context.Context, input model.ListingInput) (*model.Listing, error) {
			return nil, errors.New("boom")
		},
	}
	h := NewListingHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/listings", strings.NewReader(`{"title":"A","location":"B","price":1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"internal server error"}` {
		t.Errorf("unexpected body %s", got)
	}
}

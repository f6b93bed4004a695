package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestClient_Do_SendsBearerAndRefreshCookie verifies the context-carried
// credentials reach the wire in the expected places.
func TestClient_Do_SendsBearerAndRefreshCookie(t *testing.T) {
	var gotAuth, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if ck, err := r.Cookie(RefreshCookieName); err == nil {
			gotCookie = ck.Value
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := WithBearer(context.Background(), "access-123")
	ctx = WithRefreshToken(ctx, "refresh-456")
	if _, err := c.Do(ctx, http.MethodPost, "/refresh-token", nil); err != nil {
		t.Fatalf("Do: %v", err)
	}

	if gotAuth != "Bearer access-123" {
		t.Errorf("Authorization = %q, want Bearer access-123", gotAuth)
	}
	if gotCookie != "refresh-456" {
		t.Errorf("refresh cookie = %q, want refresh-456", gotCookie)
	}
}

// TestClient_Do_404IsErrNotFound verifies the sentinel mapping.
func TestClient_Do_404IsErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"league not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Do(context.Background(), http.MethodGet, "/leagues/nope", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// TestClient_Do_ErrorMessages verifies the server's message survives in the
// returned *Error across the reply shapes the API uses.
func TestClient_Do_ErrorMessages(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error field", http.StatusBadRequest, `{"error":"league name is required"}`, "league name is required"},
		{"message field", http.StatusConflict, `{"message":"email already registered"}`, "email already registered"},
		{"plain text", http.StatusBadRequest, "malformed body", "malformed body"},
		{"empty body", http.StatusBadGateway, "", "request failed: Bad Gateway"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL)
			_, err := c.Do(context.Background(), http.MethodPost, "/leagues", map[string]string{})
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %v, want *Error", err)
			}
			if apiErr.StatusCode != tc.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tc.status)
			}
			if apiErr.Message != tc.want {
				t.Errorf("Message = %q, want %q", apiErr.Message, tc.want)
			}
		})
	}
}

// TestClient_Get_Decodes verifies the typed decode path.
func TestClient_Get_Decodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leagues/l1" {
			t.Errorf("path = %q, want /leagues/l1", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"l1","name":"Harbour"}`))
	}))
	defer srv.Close()

	var out struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	c := NewClient(srv.URL)
	if err := c.Get(context.Background(), "/leagues/l1", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.ID != "l1" || out.Name != "Harbour" {
		t.Errorf("decoded = %+v, want l1/Harbour", out)
	}
}

// TestResponse_NoContent verifies 204 replies decode into nothing.
func TestResponse_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Do(context.Background(), http.MethodPost, "/refresh-token", nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !resp.NoContent() {
		t.Error("NoContent should be true for a 204")
	}
	out := struct{ X string }{X: "untouched"}
	if err := resp.Decode(&out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.X != "untouched" {
		t.Errorf("Decode of empty body changed out: %+v", out)
	}
}

// TestClient_Do_Unreachable verifies transport failures surface as errors,
// not panics.
func TestClient_Do_Unreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	if _, err := c.Do(context.Background(), http.MethodGet, "/leagues", nil); err == nil {
		t.Error("expected an error for an unreachable API")
	}
}

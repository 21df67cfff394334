package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ziadkadry99/edubot/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return NewStore(d)
}

func setupRouter(t *testing.T, adminKey string) (chi.Router, *Store, *bytes.Buffer) {
	t.Helper()
	store := setupTestStore(t)
	var logs bytes.Buffer
	r := chi.NewRouter()
	RegisterRoutes(r, store, adminKey, slog.New(slog.NewTextHandler(&logs, nil)))
	return r, store, &logs
}

// --- Store tests ---

func TestCreateAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first := &Entry{Kind: KindFeedback, Content: "great tutor"}
	if err := store.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected ID to be set")
	}
	if first.UserAgent != "unknown" {
		t.Errorf("user agent = %q, want unknown", first.UserAgent)
	}

	second := &Entry{Kind: KindBugReport, Content: "button broken", UserAgent: "curl/8"}
	if err := store.Create(ctx, second); err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := store.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if all[0].ID != second.ID {
		t.Errorf("expected newest first, got %q", all[0].Content)
	}
	if all[0].Kind != KindBugReport || all[0].UserAgent != "curl/8" {
		t.Errorf("unexpected entry: %+v", all[0])
	}

	bugs, err := store.List(ctx, ListFilter{Kind: KindBugReport})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bugs) != 1 || bugs[0].Content != "button broken" {
		t.Errorf("kind filter returned %+v", bugs)
	}

	limited, err := store.List(ctx, ListFilter{Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit returned %d entries", len(limited))
	}
}

func TestCreateRejectsUnknownKind(t *testing.T) {
	store := setupTestStore(t)
	if err := store.Create(context.Background(), &Entry{Kind: "spam", Content: "x"}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

// --- HTTP tests ---

func TestSubmitFeedback(t *testing.T) {
	r, store, logs := setupRouter(t, "secret")

	body := `{"feedback":"very helpful","timestamp":"2024-01-01T00:00:00Z","user_agent":"Mozilla/5.0"}`
	req := httptest.NewRequest(http.MethodPost, "/submit-feedback", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp SubmitResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "success" || resp.Message != "Feedback submitted successfully" || resp.Timestamp == "" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !strings.Contains(logs.String(), "FEEDBACK_SUBMISSION") {
		t.Errorf("expected FEEDBACK_SUBMISSION log line, got %q", logs.String())
	}

	entries, _ := store.List(context.Background(), ListFilter{})
	if len(entries) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(entries))
	}
	if entries[0].ClientTimestamp != "2024-01-01T00:00:00Z" || entries[0].UserAgent != "Mozilla/5.0" {
		t.Errorf("unexpected stored entry: %+v", entries[0])
	}
}

func TestSubmitBugReport(t *testing.T) {
	r, store, logs := setupRouter(t, "secret")

	req := httptest.NewRequest(http.MethodPost, "/submit-bug-report", strings.NewReader(`{"bug_report":"send button does nothing"}`))
	req.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp SubmitResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != "Bug report submitted successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if !strings.Contains(logs.String(), "BUG_REPORT_SUBMISSION") {
		t.Errorf("expected BUG_REPORT_SUBMISSION log line")
	}

	entries, _ := store.List(context.Background(), ListFilter{Kind: KindBugReport})
	if len(entries) != 1 || entries[0].UserAgent != "test-agent" {
		t.Errorf("unexpected stored entries: %+v", entries)
	}
}

func TestSubmitValidation(t *testing.T) {
	r, _, _ := setupRouter(t, "secret")

	tests := []struct {
		path string
		body string
	}{
		{"/submit-feedback", `{"feedback":""}`},
		{"/submit-feedback", `{"feedback":"   "}`},
		{"/submit-feedback", `not json`},
		{"/submit-bug-report", `{"feedback":"wrong field"}`},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s %s: expected 400, got %d", tt.path, tt.body, w.Code)
		}
	}
}

func TestAdminListRequiresKey(t *testing.T) {
	r, store, _ := setupRouter(t, "secret")
	store.Create(context.Background(), &Entry{Kind: KindFeedback, Content: "hello"})

	tests := []struct {
		name   string
		target string
		header string
		want   int
	}{
		{"no key", "/admin/feedback", "", http.StatusForbidden},
		{"wrong key", "/admin/feedback?admin_key=nope", "", http.StatusForbidden},
		{"query key", "/admin/feedback?admin_key=secret", "", http.StatusOK},
		{"header key", "/admin/feedback", "secret", http.StatusOK},
		{"bad kind", "/admin/feedback?admin_key=secret&kind=spam", "", http.StatusBadRequest},
		{"bad limit", "/admin/feedback?admin_key=secret&limit=abc", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("X-Admin-Key", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestAdminListReturnsEntries(t *testing.T) {
	r, store, _ := setupRouter(t, "secret")
	ctx := context.Background()
	store.Create(ctx, &Entry{Kind: KindFeedback, Content: "one"})
	store.Create(ctx, &Entry{Kind: KindBugReport, Content: "two"})

	req := httptest.NewRequest(http.MethodGet, "/admin/feedback?admin_key=secret&kind=feedback", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp ListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 1 || resp.Entries[0].Content != "one" || resp.Entries[0].Kind != KindFeedback {
		t.Errorf("unexpected listing: %+v", resp)
	}
}

func TestAdminListEmptyKeyDeniesEveryone(t *testing.T) {
	r, _, _ := setupRouter(t, "")

	for _, target := range []string{"/admin/feedback", "/admin/feedback?admin_key="} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s: expected 403, got %d", target, w.Code)
		}
	}
}

func TestAdminListEmptyIsArray(t *testing.T) {
	r, _, _ := setupRouter(t, "secret")
	req := httptest.NewRequest(http.MethodGet, "/admin/feedback?admin_key=secret", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), `"entries":[]`) {
		t.Errorf("expected empty array, got %s", body)
	}
}

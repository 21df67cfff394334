package feedback

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/edubot/internal/logger"
)

// RegisterRoutes mounts the submission endpoints and the admin listing.
// An empty adminKey disables the listing for everyone.
func RegisterRoutes(r chi.Router, store *Store, adminKey string, log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	r.Post("/submit-feedback", submitHandler(store, log, KindFeedback))
	r.Post("/submit-bug-report", submitHandler(store, log, KindBugReport))
	r.Get("/admin/feedback", listHandler(store, adminKey))
}

// submission labels and acknowledgements per kind.
var (
	logLabels = map[Kind]string{
		KindFeedback:  "FEEDBACK_SUBMISSION",
		KindBugReport: "BUG_REPORT_SUBMISSION",
	}
	ackMessages = map[Kind]string{
		KindFeedback:  "Feedback submitted successfully",
		KindBugReport: "Bug report submitted successfully",
	}
	failMessages = map[Kind]string{
		KindFeedback:  "Failed to submit feedback",
		KindBugReport: "Failed to submit bug report",
	}
)

func submitHandler(store *Store, log *slog.Logger, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := decodeSubmission(r, kind)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		if err := store.Create(r.Context(), e); err != nil {
			log.ErrorContext(r.Context(), "storing submission", "kind", kind, logger.Err(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": failMessages[kind]})
			return
		}

		log.InfoContext(r.Context(), logLabels[kind],
			"id", e.ID,
			"content", e.Content,
			"user_agent", e.UserAgent,
			"client_timestamp", e.ClientTimestamp,
		)

		writeJSON(w, http.StatusOK, SubmitResponse{
			Status:    "success",
			Message:   ackMessages[kind],
			Timestamp: e.CreatedAt.Format(time.RFC3339Nano),
		})
	}
}

type badRequest string

func (e badRequest) Error() string { return string(e) }

func decodeSubmission(r *http.Request, kind Kind) (*Entry, error) {
	e := &Entry{Kind: kind}
	switch kind {
	case KindBugReport:
		var req bugReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, badRequest("invalid request body")
		}
		e.Content, e.ClientTimestamp, e.UserAgent = req.BugReport, req.Timestamp, req.UserAgent
	default:
		var req feedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, badRequest("invalid request body")
		}
		e.Content, e.ClientTimestamp, e.UserAgent = req.Feedback, req.Timestamp, req.UserAgent
	}
	if strings.TrimSpace(e.Content) == "" {
		return nil, badRequest(string(kind) + " is required")
	}
	if e.UserAgent == "" {
		e.UserAgent = r.UserAgent()
	}
	return e, nil
}

func listHandler(store *Store, adminKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r, adminKey) {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "Access denied"})
			return
		}

		q := r.URL.Query()
		var filter ListFilter
		if v := q.Get("kind"); v != "" {
			filter.Kind = Kind(v)
			if !filter.Kind.Valid() {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "kind must be feedback or bug_report"})
				return
			}
		}
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a non-negative integer"})
				return
			}
			filter.Limit = n
		}

		entries, err := store.List(r.Context(), filter)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if entries == nil {
			entries = []Entry{}
		}
		writeJSON(w, http.StatusOK, ListResponse{Entries: entries, Count: len(entries)})
	}
}

// authorized checks the admin_key query parameter or the X-Admin-Key header.
func authorized(r *http.Request, adminKey string) bool {
	if adminKey == "" {
		return false
	}
	got := r.Header.Get("X-Admin-Key")
	if got == "" {
		got = r.URL.Query().Get("admin_key")
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(adminKey)) == 1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

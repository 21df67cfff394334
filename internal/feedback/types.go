package feedback

import "time"

// Kind distinguishes general feedback from bug reports.
type Kind string

const (
	KindFeedback  Kind = "feedback"
	KindBugReport Kind = "bug_report"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindFeedback || k == KindBugReport
}

// Entry is one stored submission.
type Entry struct {
	ID              string    `json:"id"`
	Kind            Kind      `json:"type"`
	Content         string    `json:"content"`
	UserAgent       string    `json:"user_agent"`
	ClientTimestamp string    `json:"client_timestamp,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListFilter narrows List results. Zero values mean no filter.
type ListFilter struct {
	Kind  Kind
	Limit int
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// feedbackRequest is the body of POST /submit-feedback.
type feedbackRequest struct {
	Feedback  string `json:"feedback"`
	Timestamp string `json:"timestamp,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// bugReportRequest is the body of POST /submit-bug-report.
type bugReportRequest struct {
	BugReport string `json:"bug_report"`
	Timestamp string `json:"timestamp,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// SubmitResponse acknowledges a submission.
type SubmitResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ListResponse is returned by GET /admin/feedback.
type ListResponse struct {
	Entries []Entry `json:"entries"`
	Count   int     `json:"count"`
}

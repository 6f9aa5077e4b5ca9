package entities

import "time"

// Output describes one written file.
type Output struct {
	Target string
	Locale string
	Format string
	Path   string
	Keys   int
	Digest string
}

// Summary reports the outcome of exporting a set.
type Summary struct {
	Set       string
	StartedAt time.Time
	Outputs   []Output
}

// Severity levels of a check issue.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue codes reported by the bundle check.
const (
	IssueParityMismatch      = "parity_mismatch"
	IssuePlaceholderMismatch = "placeholder_mismatch"
	IssueNotNFC              = "not_nfc"
	IssueCrossSetConflict    = "cross_set_conflict"
)

// Issue is a single finding of the bundle check.
type Issue struct {
	Severity string
	Code     string
	Set      string
	Target   string
	Locale   string
	Key      string
	Detail   string
}

// Report groups the issues found by a check run.
type Report struct {
	Issues []Issue
}

// Errors returns the number of error-level issues.
func (r Report) Errors() int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Warnings returns the number of warning-level issues.
func (r Report) Warnings() int {
	return len(r.Issues) - r.Errors()
}

package pickit

import (
	"fmt"
	"strings"
	"time"
)

// BatchReport contains the full outcome of validating one batch.
type BatchReport struct {
	// Accepted holds the files with no violations, in input order.
	Accepted []File

	// Rejections holds one entry per rejected file, in input order.
	Rejections []Rejection

	// TotalFiles is the size of the input batch.
	TotalFiles int

	// Duration is how long validation took.
	Duration time.Duration
}

// Valid reports whether every file in the batch was accepted.
func (r *BatchReport) Valid() bool {
	return len(r.Rejections) == 0
}

// RejectedFiles returns just the files from the rejection list.
func (r *BatchReport) RejectedFiles() []File {
	if len(r.Rejections) == 0 {
		return nil
	}
	files := make([]File, len(r.Rejections))
	for i, rej := range r.Rejections {
		files[i] = rej.File
	}
	return files
}

// RejectionsFor returns the rejections that include a violation of code.
func (r *BatchReport) RejectionsFor(code ErrorCode) []Rejection {
	var matched []Rejection
	for _, rej := range r.Rejections {
		if rej.HasCode(code) {
			matched = append(matched, rej)
		}
	}
	return matched
}

// Summary returns a human-readable summary of the batch outcome
func (r *BatchReport) Summary() string {
	if r.Valid() {
		return fmt.Sprintf("✓ %d file(s) accepted in %v",
			len(r.Accepted),
			r.Duration.Round(time.Microsecond),
		)
	}

	names := make([]string, len(r.Rejections))
	for i, rej := range r.Rejections {
		names[i] = rej.File.Name
	}
	return fmt.Sprintf("✗ %d of %d file(s) rejected: %s",
		len(r.Rejections),
		r.TotalFiles,
		strings.Join(names, ", "),
	)
}

// AllErrors returns every violation in the report as a single error,
// or nil when the batch is valid.
func (r *BatchReport) AllErrors() error {
	if r.Valid() {
		return nil
	}

	var msgs []string
	for _, rej := range r.Rejections {
		for _, e := range rej.Errors {
			msgs = append(msgs, fmt.Sprintf("%s: %s", rej.File.Name, e.Message))
		}
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

package pickit

import (
	"errors"
)

// ErrorCode identifies a constraint-violation category.
type ErrorCode string

// The closed set of violation categories a file can be rejected for.
const (
	CodeInvalidType  ErrorCode = "file-invalid-type"
	CodeTooLarge     ErrorCode = "file-too-large"
	CodeTooSmall     ErrorCode = "file-too-small"
	CodeTooManyFiles ErrorCode = "too-many-files"
)

// Common errors returned by the gathering and watching helpers
var (
	ErrNotDir         = errors.New("not a directory")
	ErrNotSupported   = errors.New("operation not supported")
	ErrWatcherClosed  = errors.New("watcher already closed")
	ErrNilValidator   = errors.New("validator cannot be nil")
	ErrInvalidPattern = errors.New("invalid selector pattern")
)

// ErrorRecord describes a single violated constraint. Code identifies the
// rule; Message is the user-facing text taken verbatim from the catalog.
type ErrorRecord struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Catalog maps error codes to user-facing messages.
//
// The catalog doubles as a rule switch: a code with no entry disables its
// rule entirely. The lookup failing means the rule can never produce a
// violation, no matter how the underlying condition evaluates. This lets
// callers silence categories of validation without removing the limits that
// drive other behavior.
type Catalog map[ErrorCode]string

// Resolve evaluates one rule outcome against the catalog. It returns the
// resolved record and true only when the catalog has an entry for code and
// satisfied is false. A missing entry always resolves to no violation.
func (c Catalog) Resolve(code ErrorCode, satisfied bool) (ErrorRecord, bool) {
	msg, ok := c[code]
	if !ok || satisfied {
		return ErrorRecord{}, false
	}
	return ErrorRecord{Code: code, Message: msg}, true
}

// DefaultCatalog returns a catalog with an entry for every code, so every
// rule is active out of the box.
func DefaultCatalog() Catalog {
	return Catalog{
		CodeTooManyFiles: "too many files selected",
		CodeInvalidType:  "file type is not accepted",
		CodeTooLarge:     "file is too large",
		CodeTooSmall:     "file is too small",
	}
}

// MergeCatalog overlays custom messages on a base catalog. Entries in
// override win; neither input is modified.
func MergeCatalog(base, override Catalog) Catalog {
	merged := make(Catalog, len(base)+len(override))
	for code, msg := range base {
		merged[code] = msg
	}
	for code, msg := range override {
		merged[code] = msg
	}
	return merged
}

// HasCode reports whether any record in errs carries the given code.
func HasCode(errs []ErrorRecord, code ErrorCode) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}

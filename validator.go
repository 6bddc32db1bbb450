package pickit

import (
	"strings"
	"time"
)

// Rejection pairs a rejected file with the rules it violated, in rule
// evaluation order. A file appears in at most one Rejection per batch.
type Rejection struct {
	File   File          `json:"file"`
	Errors []ErrorRecord `json:"errors"`
}

// HasCode reports whether the rejection includes a violation of code.
func (r Rejection) HasCode(code ErrorCode) bool {
	return HasCode(r.Errors, code)
}

// BatchValidator partitions a batch of candidate files into accepted and
// rejected sets according to its constraints and message catalog.
//
// A validator holds no mutable state: Validate is a pure function of its
// inputs and is safe for concurrent use.
type BatchValidator struct {
	constraints Constraints
	catalog     Catalog
}

// New creates a validator with the given constraints and catalog. A nil
// catalog disables every rule, so every file is accepted.
func New(constraints Constraints, catalog Catalog) *BatchValidator {
	return &BatchValidator{
		constraints: constraints,
		catalog:     catalog,
	}
}

// NewDefault creates a validator with no constraints and the default
// message catalog.
func NewDefault() *BatchValidator {
	return New(DefaultConstraints(), DefaultCatalog())
}

// Constraints returns the validator's constraints.
func (v *BatchValidator) Constraints() Constraints {
	return v.constraints
}

// Catalog returns the validator's message catalog. Callers must treat it
// as read-only.
func (v *BatchValidator) Catalog() Catalog {
	return v.catalog
}

// Validate evaluates every file in the batch against all rules and returns
// one Rejection per rejected file, in input order. Files with no violations
// are omitted. The rules run in a fixed order for every file, with no
// short-circuiting, so a single file can accumulate multiple violations:
//
//  1. too-many-files (batch-scoped: depends on total count, so it applies
//     uniformly to every file when the limit is exceeded)
//  2. file-invalid-type
//  3. file-too-large
//  4. file-too-small
//
// Validate never fails: a missing optional constraint is a no-op and a
// malformed file (empty name, zero size) is still evaluated, never aborting
// the rest of the batch.
func (v *BatchValidator) Validate(files []File) []Rejection {
	countOK := v.countSatisfied(len(files))

	var rejections []Rejection
	for _, f := range files {
		if errs := v.evaluateFile(f, countOK); len(errs) > 0 {
			rejections = append(rejections, Rejection{File: f, Errors: errs})
		}
	}
	return rejections
}

// Partition splits the batch into the accepted files and the rejections,
// both in input order.
func (v *BatchValidator) Partition(files []File) ([]File, []Rejection) {
	countOK := v.countSatisfied(len(files))

	var accepted []File
	var rejections []Rejection
	for _, f := range files {
		if errs := v.evaluateFile(f, countOK); len(errs) > 0 {
			rejections = append(rejections, Rejection{File: f, Errors: errs})
		} else {
			accepted = append(accepted, f)
		}
	}
	return accepted, rejections
}

// Report validates the batch and wraps the outcome in a timed BatchReport.
func (v *BatchValidator) Report(files []File) *BatchReport {
	start := time.Now()
	accepted, rejections := v.Partition(files)
	return &BatchReport{
		Accepted:   accepted,
		Rejections: rejections,
		TotalFiles: len(files),
		Duration:   time.Since(start),
	}
}

// evaluateFile runs all rules for one file in the fixed order, collecting
// the violations the catalog has messages for. countOK is computed once per
// batch since the count rule does not depend on the individual file.
func (v *BatchValidator) evaluateFile(f File, countOK bool) []ErrorRecord {
	checks := [4]struct {
		code      ErrorCode
		satisfied bool
	}{
		{CodeTooManyFiles, countOK},
		{CodeInvalidType, v.formatSatisfied(f)},
		{CodeTooLarge, v.constraints.MaxSize == nil || f.Size <= *v.constraints.MaxSize},
		{CodeTooSmall, v.constraints.MinSize == nil || f.Size >= *v.constraints.MinSize},
	}

	var errs []ErrorRecord
	for _, check := range checks {
		if rec, violated := v.catalog.Resolve(check.code, check.satisfied); violated {
			errs = append(errs, rec)
		}
	}
	return errs
}

func (v *BatchValidator) countSatisfied(total int) bool {
	return v.constraints.MaxFiles == nil || total <= *v.constraints.MaxFiles
}

// formatSatisfied reports whether the file matches any accepted format.
// A nil AcceptedFormats list means the constraint is absent and everything
// matches; an empty non-nil list is a configured constraint nothing can
// satisfy.
func (v *BatchValidator) formatSatisfied(f File) bool {
	if v.constraints.AcceptedFormats == nil {
		return true
	}
	for _, pattern := range v.constraints.AcceptedFormats {
		if MatchesFormat(f, pattern) {
			return true
		}
	}
	return false
}

// MatchesFormat reports whether file satisfies a single accept pattern.
// A pattern starting with "." is a literal, case-sensitive suffix of the
// file name; any other pattern is a literal, case-sensitive prefix of the
// file's MIME type.
func MatchesFormat(file File, pattern string) bool {
	if strings.HasPrefix(pattern, ".") {
		return strings.HasSuffix(file.Name, pattern)
	}
	return strings.HasPrefix(file.Type, pattern)
}

package pickit

import (
	"fmt"

	"github.com/gobwas/glob"
)

// FileSelector filters candidate files before they reach validation.
// Selectors belong to the gathering side of the pipeline: they decide what
// enters a batch, while the validator decides what is rejected from it.
//
// Selectors are composable with And, Or and Not:
//
//	sel := pickit.And(
//	    pickit.MustGlob("*.jpg"),
//	    pickit.FuncSelector(func(f pickit.File) bool {
//	        return f.Size < 10*pickit.MB
//	    }),
//	)
//	files, err := pickit.GatherDir(ctx, "/uploads", sel, true)
type FileSelector interface {
	// Match returns true if the file should be included in the batch.
	Match(file File) bool
}

// AllSelector matches every file.
type AllSelector struct{}

func (AllSelector) Match(File) bool { return true }

// All returns a selector that matches every file.
func All() FileSelector {
	return AllSelector{}
}

// ============================================================================
// Glob - Pattern matching on file names
// ============================================================================

type globSelector struct {
	g glob.Glob
}

// Glob creates a selector matching file names against a glob pattern.
// Supports: *, ?, [abc], [a-z], {alt1,alt2}
//
// Examples:
//
//	Glob("*.txt")          // All .txt files
//	Glob("report_??.csv")  // report_01.csv, etc.
//	Glob("*.{jpg,png}")    // JPEG and PNG files
func Glob(pattern string) (FileSelector, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return &globSelector{g: g}, nil
}

// MustGlob is like Glob but panics on an invalid pattern. Intended for
// patterns known at compile time.
func MustGlob(pattern string) FileSelector {
	s, err := Glob(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *globSelector) Match(file File) bool {
	return s.g.Match(file.Name)
}

// ============================================================================
// Composable Selectors (And, Or, Not)
// ============================================================================

type andSelector struct {
	selectors []FileSelector
}

// And matches only if ALL selectors match.
func And(selectors ...FileSelector) FileSelector {
	return &andSelector{selectors: selectors}
}

func (s *andSelector) Match(file File) bool {
	for _, sel := range s.selectors {
		if !sel.Match(file) {
			return false
		}
	}
	return true
}

type orSelector struct {
	selectors []FileSelector
}

// Or matches if ANY selector matches.
func Or(selectors ...FileSelector) FileSelector {
	return &orSelector{selectors: selectors}
}

func (s *orSelector) Match(file File) bool {
	for _, sel := range s.selectors {
		if sel.Match(file) {
			return true
		}
	}
	return false
}

type notSelector struct {
	selector FileSelector
}

// Not inverts a selector's match result.
func Not(selector FileSelector) FileSelector {
	return &notSelector{selector: selector}
}

func (s *notSelector) Match(file File) bool {
	return !s.selector.Match(file)
}

// ============================================================================
// FuncSelector - Custom logic (escape hatch for any use case)
// ============================================================================

type funcSelector struct {
	fn func(File) bool
}

// FuncSelector creates a selector from a custom function.
//
// Example:
//
//	FuncSelector(func(f pickit.File) bool {
//	    return f.Size > 0 && pickit.IsImageFile(f.Type)
//	})
func FuncSelector(fn func(File) bool) FileSelector {
	return &funcSelector{fn: fn}
}

func (s *funcSelector) Match(file File) bool { return s.fn(file) }

// Filter returns the files matching the selector, preserving order.
// A nil selector matches everything.
func Filter(files []File, selector FileSelector) []File {
	if selector == nil {
		return files
	}
	var matched []File
	for _, f := range files {
		if selector.Match(f) {
			matched = append(matched, f)
		}
	}
	return matched
}

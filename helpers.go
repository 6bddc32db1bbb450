package pickit

import (
	"context"
	"fmt"
	"math"
)

// FormatSizeReadable converts a size in bytes to a human-readable string
func FormatSizeReadable(size int64) string {
	if size < KB {
		return fmt.Sprintf("%d B", size)
	}

	format := func(value float64, unit string) string {
		rounded := math.Round(value*10) / 10
		if rounded == float64(int(rounded)) {
			return fmt.Sprintf("%.0f %s", rounded, unit)
		}
		return fmt.Sprintf("%.1f %s", rounded, unit)
	}

	switch {
	case size < MB:
		return format(float64(size)/float64(KB), "KB")
	case size < GB:
		return format(float64(size)/float64(MB), "MB")
	default:
		return format(float64(size)/float64(GB), "GB")
	}
}

// ValidateDir gathers the immediate children of dir and validates them in
// one step, returning the timed report.
func ValidateDir(ctx context.Context, v *BatchValidator, dir string) (*BatchReport, error) {
	if v == nil {
		return nil, ErrNilValidator
	}

	files, err := GatherDir(ctx, dir, nil, false)
	if err != nil {
		return nil, err
	}
	return v.Report(files), nil
}

// Names returns the file names of a batch, in order. Useful for building
// display lists and test assertions.
func Names(files []File) []string {
	if len(files) == 0 {
		return nil
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

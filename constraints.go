package pickit

// Size constants for easier file size configuration
const (
	KB = int64(1024)
	MB = KB * 1024
	GB = MB * 1024
)

// Constraints defines the configuration for batch validation.
//
// Every field is tri-state: a nil field means the constraint is absent and
// its rule is always satisfied. This is deliberately distinct from a zero
// value — MinSize pointing at 0 and MinSize nil are different statements,
// and only the nil one skips the comparison.
//
// Values are expected to be non-negative and MaxFiles positive. The engine
// performs no validation of its own configuration; negative values are
// undefined behavior rather than being silently clamped.
type Constraints struct {
	// MaxFiles caps the total number of files in a batch. When the batch
	// exceeds it, every file in the batch is rejected, not just the excess.
	MaxFiles *int

	// MaxSize is the maximum allowed file size in bytes, inclusive.
	// Use the provided constants for readable configuration, e.g., 10 * MB.
	MaxSize *int64

	// MinSize is the minimum required file size in bytes, inclusive.
	MinSize *int64

	// AcceptedFormats lists the accepted patterns. A pattern starting with
	// "." is a literal, case-sensitive filename suffix (".png"); any other
	// pattern is a literal, case-sensitive MIME-type prefix ("image/",
	// "text/plain").
	//
	// nil means no format constraint: everything is accepted. A non-nil
	// empty list is a configured constraint that nothing can match, so
	// every file is rejected for its type. The two are not interchangeable.
	AcceptedFormats []string
}

// Count returns a pointer to n, for populating MaxFiles inline.
func Count(n int) *int {
	return &n
}

// Size returns a pointer to n, for populating size bounds inline.
func Size(n int64) *int64 {
	return &n
}

// DefaultConstraints returns an empty constraint set: every rule absent,
// every file accepted.
func DefaultConstraints() Constraints {
	return Constraints{}
}

// ImageOnlyConstraints creates constraints that only accept image files
func ImageOnlyConstraints() Constraints {
	return Constraints{
		AcceptedFormats: []string{"image/"},
		MaxSize:         Size(10 * MB),
	}
}

// DocumentOnlyConstraints creates constraints that only accept document files
func DocumentOnlyConstraints() Constraints {
	return Constraints{
		AcceptedFormats: []string{
			MIMETypeApplicationPDF,
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			MIMETypeTextPlain,
			".rtf",
		},
		MaxSize: Size(50 * MB),
	}
}

// MediaOnlyConstraints creates constraints that only accept audio and video files
func MediaOnlyConstraints() Constraints {
	return Constraints{
		AcceptedFormats: []string{"audio/", "video/"},
		MaxSize:         Size(500 * MB),
	}
}

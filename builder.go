package pickit

// Builder provides a fluent API for constructing batch validators
type Builder struct {
	constraints Constraints
	catalog     Catalog
}

// NewBuilder creates a builder with no constraints and the default catalog
func NewBuilder() *Builder {
	return &Builder{
		catalog: DefaultCatalog(),
	}
}

// Empty creates a builder with no constraints and an empty catalog. Every
// rule starts silenced; use Message to activate the ones you want.
func Empty() *Builder {
	return &Builder{
		catalog: Catalog{},
	}
}

// --- Batch constraints ---

// MaxFiles caps the total number of files per batch
func (b *Builder) MaxFiles(n int) *Builder {
	b.constraints.MaxFiles = Count(n)
	return b
}

// --- Size constraints ---

// MaxSize sets the maximum allowed file size, inclusive
func (b *Builder) MaxSize(size int64) *Builder {
	b.constraints.MaxSize = Size(size)
	return b
}

// MinSize sets the minimum required file size, inclusive
func (b *Builder) MinSize(size int64) *Builder {
	b.constraints.MinSize = Size(size)
	return b
}

// SizeRange sets both minimum and maximum file size
func (b *Builder) SizeRange(minSize, maxSize int64) *Builder {
	return b.MinSize(minSize).MaxSize(maxSize)
}

// --- Format constraints ---

// Accept adds accepted format patterns: dotted extensions (".png") or
// MIME-type prefixes ("image/", "text/plain"). Calling Accept with no
// arguments configures an empty format list, which rejects every file.
func (b *Builder) Accept(patterns ...string) *Builder {
	if b.constraints.AcceptedFormats == nil {
		b.constraints.AcceptedFormats = []string{}
	}
	b.constraints.AcceptedFormats = append(b.constraints.AcceptedFormats, patterns...)
	return b
}

// AcceptImages allows all image types
func (b *Builder) AcceptImages() *Builder {
	return b.Accept("image/")
}

// AcceptDocuments allows common document types
func (b *Builder) AcceptDocuments() *Builder {
	return b.Accept(
		MIMETypeApplicationPDF,
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		MIMETypeTextPlain,
		MIMETypeTextCSV,
	)
}

// AcceptMedia allows all audio and video types
func (b *Builder) AcceptMedia() *Builder {
	return b.Accept("audio/", "video/")
}

// --- Messages ---

// Message sets the user-facing message for one code, activating its rule
func (b *Builder) Message(code ErrorCode, message string) *Builder {
	b.catalog[code] = message
	return b
}

// Messages overlays custom messages on the builder's catalog
func (b *Builder) Messages(override Catalog) *Builder {
	b.catalog = MergeCatalog(b.catalog, override)
	return b
}

// Silence removes the message for a code, which disables its rule even
// when the corresponding constraint is configured.
func (b *Builder) Silence(code ErrorCode) *Builder {
	delete(b.catalog, code)
	return b
}

// WithCatalog replaces the builder's catalog entirely
func (b *Builder) WithCatalog(catalog Catalog) *Builder {
	b.catalog = catalog
	return b
}

// --- Build ---

// Build creates the validator with the configured constraints and catalog
func (b *Builder) Build() *BatchValidator {
	return New(b.constraints, b.catalog)
}

// Constraints returns the current constraints (for inspection)
func (b *Builder) Constraints() Constraints {
	return b.constraints
}

// Catalog returns the current catalog (for inspection)
func (b *Builder) Catalog() Catalog {
	return b.catalog
}

// --- Presets ---

// ForImages creates a builder pre-configured for image selection
func ForImages() *Builder {
	return NewBuilder().
		AcceptImages().
		MaxSize(10 * MB)
}

// ForDocuments creates a builder pre-configured for document selection
func ForDocuments() *Builder {
	return NewBuilder().
		AcceptDocuments().
		MaxSize(50 * MB)
}

// ForMedia creates a builder pre-configured for audio/video selection
func ForMedia() *Builder {
	return NewBuilder().
		AcceptMedia().
		MaxSize(500 * MB)
}

// ForWeb creates a builder for typical web upload forms (images and
// documents, modest batch size)
func ForWeb() *Builder {
	return NewBuilder().
		AcceptImages().
		AcceptDocuments().
		MaxFiles(10).
		MaxSize(25 * MB)
}

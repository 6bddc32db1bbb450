// Package pickit validates user-selected file batches against declarative
// constraints. Given a batch of candidate files and a set of limits (batch
// count, size bounds, accepted formats), it partitions the batch into
// accepted and rejected files, attaching one or more error records to each
// rejected file.
//
// PickIt is part of the beaver toolkit family and is designed to sit behind
// any layer that collects files — upload handlers, drop directories, CLI
// arguments — without owning any of that plumbing itself.
//
// # Quick Start
//
// Using the builder API:
//
//	validator := pickit.NewBuilder().
//	    MaxFiles(5).
//	    MaxSize(10 * pickit.MB).
//	    Accept("image/", ".pdf").
//	    Build()
//
//	rejections := validator.Validate(files)
//	for _, rej := range rejections {
//	    for _, e := range rej.Errors {
//	        fmt.Printf("%s: [%s] %s\n", rej.File.Name, e.Code, e.Message)
//	    }
//	}
//
// Or with presets:
//
//	validator := pickit.ForImages().MaxFiles(3).Build()
//
// # Validation Model
//
// Validation is a pure function of the batch, the constraints and the
// message catalog. Four rules run in a fixed order for every file —
// too-many-files, file-invalid-type, file-too-large, file-too-small — with
// no short-circuiting, so one file can accumulate several violations. The
// count rule depends on the batch total, not the individual file: when the
// limit is exceeded every file in the batch is rejected for it.
//
// Constraints are tri-state. A nil field is an absent constraint whose rule
// is always satisfied; this is distinct from any zero value. The one subtle
// case is AcceptedFormats, where nil accepts everything but a configured
// empty list rejects everything.
//
// # Message Catalog
//
// Every rejection message comes from a Catalog. The catalog also acts as a
// rule switch: a code with no catalog entry can never produce a violation,
// even when its constraint is configured and exceeded. Callers use this to
// silence rule categories while keeping the numeric limits available to
// other parts of their application:
//
//	validator := pickit.NewBuilder().
//	    MaxFiles(5).
//	    Silence(pickit.CodeTooManyFiles). // limit set, rule muted
//	    Build()
//
// # Gathering Batches
//
// Helpers exist to build batches from common sources:
//
//	// From a local directory, with optional glob filtering
//	files, err := pickit.GatherDir(ctx, "/incoming", pickit.MustGlob("*.png"), false)
//
//	// From explicit paths
//	files, err := pickit.GatherPaths("a.txt", "b.txt")
//
//	// From HTTP uploads
//	f := pickit.FileFromHeader(fileHeader)
//
// A BatchWatcher re-validates a directory on every filesystem change:
//
//	watcher, err := pickit.WatchDir("/incoming", validator, nil)
//	defer watcher.Close()
//	for report := range watcher.Reports() {
//	    fmt.Println(report.Summary())
//	}
//
// # Configuration
//
// Defaults can be loaded from the environment (PICKIT_MAX_FILES,
// PICKIT_MAX_SIZE, PICKIT_ACCEPTED_FORMATS, PICKIT_MSG_* overrides):
//
//	validator, err := pickit.NewFromEnv()
//
// # Design Philosophy
//
// The engine treats rejections as domain data, not failures: Validate
// never returns an error and never aborts a batch because one file is
// malformed. Configuration is expected to be well-formed — negative sizes
// or limits are undefined behavior rather than being silently corrected,
// so misconfiguration surfaces instead of being masked.
package pickit

package pickit

import (
	"strings"
	"testing"
)

func TestReport(t *testing.T) {
	v := New(Constraints{MaxSize: Size(10)}, DefaultCatalog())

	report := v.Report([]File{
		textFile("ok.txt", 5),
		textFile("big.txt", 50),
	})

	if report.Valid() {
		t.Error("Valid() = true with a rejected file")
	}
	if report.TotalFiles != 2 {
		t.Errorf("TotalFiles = %d, want 2", report.TotalFiles)
	}
	if len(report.Accepted) != 1 || report.Accepted[0].Name != "ok.txt" {
		t.Errorf("Accepted = %+v, want ok.txt", report.Accepted)
	}
	if got := report.RejectedFiles(); len(got) != 1 || got[0].Name != "big.txt" {
		t.Errorf("RejectedFiles = %+v, want big.txt", got)
	}
	if report.Duration < 0 {
		t.Errorf("Duration = %v, want non-negative", report.Duration)
	}
}

func TestReportValidBatch(t *testing.T) {
	report := NewDefault().Report([]File{textFile("a.txt", 1)})

	if !report.Valid() {
		t.Error("Valid() = false for clean batch")
	}
	if report.RejectedFiles() != nil {
		t.Errorf("RejectedFiles = %+v, want nil", report.RejectedFiles())
	}
	if err := report.AllErrors(); err != nil {
		t.Errorf("AllErrors = %v, want nil", err)
	}
	if got := report.Summary(); !strings.HasPrefix(got, "✓") {
		t.Errorf("Summary = %q, want success marker", got)
	}
}

func TestReportRejectionsFor(t *testing.T) {
	v := New(Constraints{
		MaxSize:         Size(10),
		AcceptedFormats: []string{"image/"},
	}, DefaultCatalog())

	report := v.Report([]File{
		textFile("big.txt", 50),               // invalid type and too large
		{Name: "ok.png", Size: 5, Type: "image/png"}, // accepted
	})

	tooLarge := report.RejectionsFor(CodeTooLarge)
	if len(tooLarge) != 1 || tooLarge[0].File.Name != "big.txt" {
		t.Errorf("RejectionsFor(too-large) = %+v", tooLarge)
	}
	if got := report.RejectionsFor(CodeTooManyFiles); got != nil {
		t.Errorf("RejectionsFor(too-many-files) = %+v, want nil", got)
	}
}

func TestReportSummaryAndErrors(t *testing.T) {
	v := New(Constraints{MaxSize: Size(10)}, Catalog{CodeTooLarge: "too big"})

	report := v.Report([]File{
		textFile("a.txt", 50),
		textFile("b.txt", 50),
	})

	summary := report.Summary()
	if !strings.Contains(summary, "2 of 2") {
		t.Errorf("Summary = %q, want rejection counts", summary)
	}
	if !strings.Contains(summary, "a.txt") || !strings.Contains(summary, "b.txt") {
		t.Errorf("Summary = %q, want rejected file names", summary)
	}

	err := report.AllErrors()
	if err == nil {
		t.Fatal("AllErrors = nil, want combined error")
	}
	if !strings.Contains(err.Error(), "a.txt: too big") {
		t.Errorf("AllErrors = %q, want per-file messages", err)
	}
}

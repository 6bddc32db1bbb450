package pickit

import (
	"errors"
	"reflect"
	"testing"
)

func TestGlobSelector(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"*.txt", "notes.txt", true},
		{"*.txt", "notes.md", false},
		{"report_??.csv", "report_01.csv", true},
		{"report_??.csv", "report_1.csv", false},
		{"*.{jpg,png}", "photo.png", true},
		{"*.{jpg,png}", "photo.gif", false},
	}

	for _, tt := range tests {
		sel, err := Glob(tt.pattern)
		if err != nil {
			t.Fatalf("Glob(%q): %v", tt.pattern, err)
		}
		if got := sel.Match(File{Name: tt.name}); got != tt.want {
			t.Errorf("Glob(%q).Match(%q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
		}
	}
}

func TestGlobInvalidPattern(t *testing.T) {
	if _, err := Glob("[unclosed"); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Glob with invalid pattern: err = %v, want ErrInvalidPattern", err)
	}
}

func TestMustGlobPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGlob did not panic on invalid pattern")
		}
	}()
	MustGlob("[unclosed")
}

func TestComposedSelectors(t *testing.T) {
	small := FuncSelector(func(f File) bool { return f.Size < 100 })
	txt := MustGlob("*.txt")

	file := func(name string, size int64) File { return File{Name: name, Size: size} }

	tests := []struct {
		name     string
		selector FileSelector
		file     File
		want     bool
	}{
		{"and both match", And(small, txt), file("a.txt", 10), true},
		{"and one fails", And(small, txt), file("a.txt", 500), false},
		{"or one matches", Or(small, txt), file("a.md", 10), true},
		{"or none match", Or(small, txt), file("a.md", 500), false},
		{"not inverts", Not(txt), file("a.md", 10), true},
		{"all matches anything", All(), file("", 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.selector.Match(tt.file); got != tt.want {
				t.Errorf("Match(%+v) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	files := []File{
		{Name: "a.txt", Size: 1},
		{Name: "b.png", Size: 2},
		{Name: "c.txt", Size: 3},
	}

	got := Filter(files, MustGlob("*.txt"))
	if want := []string{"a.txt", "c.txt"}; !reflect.DeepEqual(Names(got), want) {
		t.Errorf("Filter = %v, want %v", Names(got), want)
	}

	if got := Filter(files, nil); !reflect.DeepEqual(got, files) {
		t.Error("Filter with nil selector should return the batch unchanged")
	}
}

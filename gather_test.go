package pickit

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGatherDir(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", 10)
	writeTestFile(t, dir, "b.png", 20)
	writeTestFile(t, dir, filepath.Join("nested", "c.txt"), 30)

	t.Run("flat", func(t *testing.T) {
		files, err := GatherDir(context.Background(), dir, nil, false)
		if err != nil {
			t.Fatalf("GatherDir: %v", err)
		}
		if want := []string{"a.txt", "b.png"}; !reflect.DeepEqual(Names(files), want) {
			t.Errorf("files = %v, want %v", Names(files), want)
		}
	})

	t.Run("recursive", func(t *testing.T) {
		files, err := GatherDir(context.Background(), dir, nil, true)
		if err != nil {
			t.Fatalf("GatherDir: %v", err)
		}
		if want := []string{"a.txt", "b.png", "c.txt"}; !reflect.DeepEqual(Names(files), want) {
			t.Errorf("files = %v, want %v", Names(files), want)
		}
	})

	t.Run("with selector", func(t *testing.T) {
		files, err := GatherDir(context.Background(), dir, MustGlob("*.txt"), true)
		if err != nil {
			t.Fatalf("GatherDir: %v", err)
		}
		if want := []string{"a.txt", "c.txt"}; !reflect.DeepEqual(Names(files), want) {
			t.Errorf("files = %v, want %v", Names(files), want)
		}
	})

	t.Run("sizes and types populated", func(t *testing.T) {
		files, err := GatherDir(context.Background(), dir, MustGlob("a.txt"), false)
		if err != nil {
			t.Fatalf("GatherDir: %v", err)
		}
		if len(files) != 1 {
			t.Fatalf("files = %v", Names(files))
		}
		if files[0].Size != 10 {
			t.Errorf("Size = %d, want 10", files[0].Size)
		}
		if files[0].Type != "text/plain" {
			t.Errorf("Type = %q, want text/plain", files[0].Type)
		}
	})
}

func TestGatherDirNotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "file.txt", 1)

	_, err := GatherDir(context.Background(), filepath.Join(dir, "file.txt"), nil, false)
	if !errors.Is(err, ErrNotDir) {
		t.Errorf("err = %v, want ErrNotDir", err)
	}
}

func TestGatherDirMissing(t *testing.T) {
	if _, err := GatherDir(context.Background(), filepath.Join(t.TempDir(), "nope"), nil, false); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestGatherDirCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := GatherDir(ctx, dir, nil, false); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestGatherPaths(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "one.txt", 11)
	writeTestFile(t, dir, "two.png", 22)

	files, err := GatherPaths(
		filepath.Join(dir, "one.txt"),
		filepath.Join(dir, "two.png"),
	)
	if err != nil {
		t.Fatalf("GatherPaths: %v", err)
	}
	if want := []string{"one.txt", "two.png"}; !reflect.DeepEqual(Names(files), want) {
		t.Errorf("files = %v, want %v", Names(files), want)
	}
	if files[1].Size != 22 {
		t.Errorf("Size = %d, want 22", files[1].Size)
	}
}

func TestGatherPathsRejectsDirectory(t *testing.T) {
	if _, err := GatherPaths(t.TempDir()); !errors.Is(err, ErrNotSupported) {
		t.Errorf("err = %v, want ErrNotSupported", err)
	}
}

func TestGatherPathsEmpty(t *testing.T) {
	files, err := GatherPaths()
	if err != nil || files != nil {
		t.Errorf("GatherPaths() = %v, %v; want nil, nil", files, err)
	}
}

// Package integration contains integration tests that run the fileops
// library against the real file system.
package integration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/fileops/pkg/adapters/osfilesystem"
	"github.com/user/fileops/pkg/fileops"
)

// TestWriteConvertReadFlow runs the typical flow end to end: write a
// UTF-8 file, convert it to Shift-JIS, copy the result into a staging
// directory, and read it back.
func TestWriteConvertReadFlow(t *testing.T) {
	dir := t.TempDir()
	ops := fileops.New(osfilesystem.New(), nil)

	original := "統合テスト\nline two"
	utf8Path := filepath.Join(dir, "input.txt")
	sjisPath := filepath.Join(dir, "input_sjis.txt")
	staging := filepath.Join(dir, "staging")

	if err := ops.WriteFile(utf8Path, original, "utf-8"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := ops.ConvertFileCharset(utf8Path, sjisPath, "utf-8", "shift_jis"); err != nil {
		t.Fatalf("ConvertFileCharset: %v", err)
	}
	if err := os.Mkdir(staging, 0755); err != nil {
		t.Fatal(err)
	}
	if err := ops.CopyFiles([]string{utf8Path, sjisPath}, staging, false); err != nil {
		t.Fatalf("CopyFiles: %v", err)
	}

	got, err := ops.ReadFile(filepath.Join(staging, "input_sjis.txt"), "shift_jis")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != original {
		t.Errorf("expected %q, got %q", original, got)
	}

	listed, err := ops.ListFiles(staging, "input", ".txt")
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("expected 2 staged files, got %v", listed)
	}
}

// TestBatchCopyFailureLeavesNothing checks the aggregated missing-file
// error against the real file system.
func TestBatchCopyFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	ops := fileops.New(osfilesystem.New(), nil)

	present := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(present, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")
	if err := os.Mkdir(out, 0755); err != nil {
		t.Fatal(err)
	}

	err := ops.CopyFiles([]string{present, filepath.Join(dir, "gone.txt")}, out, false)
	var nf *fileops.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty destination, found %d entries", len(entries))
	}
}

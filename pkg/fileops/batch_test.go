package fileops

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/user/fileops/pkg/mocks"
)

// Batch-copy failure behavior is easiest to pin down against the mock
// file system, where individual writes can be made to fail.

func TestCopyFiles_MidBatchFailurePropagates(t *testing.T) {
	m := mocks.NewFileSystem()
	m.AddDir("/out")
	m.AddFile("/src/a.txt", []byte("aaa"))
	m.AddFile("/src/b.txt", []byte("bbb"))

	writeErr := errors.New("write /out/b.txt: permission denied")
	m.WriteFileFunc = func(path string, data []byte) error {
		if path == "/out/b.txt" {
			return writeErr
		}
		m.AddFile(path, data)
		return nil
	}

	ops := New(m, nil)
	err := ops.CopyFiles([]string{"/src/a.txt", "/src/b.txt"}, "/out", false)
	if !errors.Is(err, writeErr) {
		t.Fatalf("expected the write error to propagate, got %v", err)
	}

	// The first file was already copied and stays in place.
	if _, ok := m.GetFile("/out/a.txt"); !ok {
		t.Error("expected /out/a.txt to remain after mid-batch failure")
	}
	if _, ok := m.GetFile("/out/b.txt"); ok {
		t.Error("expected /out/b.txt to be absent")
	}
}

func TestCopyFiles_DirectoryCheckErrorPropagates(t *testing.T) {
	m := mocks.NewFileSystem()
	statErr := errors.New("stat /out: permission denied")
	m.IsDirFunc = func(path string) (bool, error) {
		return false, statErr
	}

	ops := New(m, nil)
	err := ops.CopyFiles([]string{"/src/a.txt"}, "/out", false)
	if !errors.Is(err, statErr) {
		t.Fatalf("expected the stat error to propagate, got %v", err)
	}
}

func TestReadFile_OtherErrorsNotTranslated(t *testing.T) {
	m := mocks.NewFileSystem()
	permErr := &fs.PathError{Op: "open", Path: "/secret.txt", Err: fs.ErrPermission}
	m.ReadFileFunc = func(path string) ([]byte, error) {
		return nil, permErr
	}

	ops := New(m, nil)
	_, err := ops.ReadFile("/secret.txt", "utf-8")
	var nf *NotFoundError
	if errors.As(err, &nf) {
		t.Fatal("permission errors must not become *NotFoundError")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected the permission error to propagate, got %v", err)
	}
}

func TestCopyFile_MockDirectoryDisambiguation(t *testing.T) {
	m := mocks.NewFileSystem()
	m.AddDir("/out")
	m.AddFile("/src/a.txt", []byte("payload"))

	ops := New(m, nil)
	if err := ops.CopyFile("/src/a.txt", "/out"); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	if data, ok := m.GetFile("/out/a.txt"); !ok || string(data) != "payload" {
		t.Errorf("expected /out/a.txt with payload, got %q (present=%v)", data, ok)
	}
}

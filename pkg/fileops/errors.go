package fileops

import (
	"fmt"
	"io/fs"
	"strings"
)

// NotFoundError reports that one or more referenced files or directories
// do not exist. Paths keeps the offending paths in their original order.
type NotFoundError struct {
	Paths []string
}

// Error lists all missing paths, comma-joined.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such file or directory: %s", strings.Join(e.Paths, ", "))
}

// Unwrap makes the error match errors.Is(err, fs.ErrNotExist).
func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// DecodeError reports that file bytes are not valid under the declared
// encoding.
type DecodeError struct {
	Path     string
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s as %s: %v", e.Path, e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ParseError reports that a file's content is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

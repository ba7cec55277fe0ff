// Package fileops provides flat file-system utility operations: listing
// files by pattern, reading text, JSON and binary files, writing and
// copying files, and converting a file's character encoding.
//
// Operations are available as methods on Ops, which works against any
// ports.FileSystem, or as package-level functions bound to the host OS.
package fileops

import (
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/user/fileops/pkg/adapters/logger"
	"github.com/user/fileops/pkg/charset"
	"github.com/user/fileops/pkg/ports"
)

// Ops performs file operations through a FileSystem port.
type Ops struct {
	fs  ports.FileSystem
	log ports.Logger
}

// New creates an Ops over the given file system. A nil logger disables
// operation tracing.
func New(filesystem ports.FileSystem, log ports.Logger) *Ops {
	if log == nil {
		log = logger.NewNoop()
	}
	return &Ops{fs: filesystem, log: log.WithComponent("fileops")}
}

// ListFiles returns the paths under dir whose base name starts with
// prefix and ends with suffix. A directory with no matches, or a missing
// directory, yields an empty result without error.
func (o *Ops) ListFiles(dir, prefix, suffix string) ([]string, error) {
	pattern := filepath.Join(dir, prefix+"*"+suffix)
	o.log.Debug("Listing files matching %s", pattern)
	return o.fs.Glob(pattern)
}

// ReadFile reads the file at path and decodes it from the named encoding
// to a UTF-8 string. An empty encoding means UTF-8.
//
// A missing file yields a *NotFoundError; bytes that are not valid under
// the encoding yield a *DecodeError.
func (o *Ops) ReadFile(path, encoding string) (string, error) {
	if encoding == "" {
		encoding = charset.DefaultEncoding
	}
	o.log.Debug("Reading %s as %s", path, encoding)
	data, err := o.readAll(path)
	if err != nil {
		return "", err
	}
	text, err := charset.Decode(encoding, data)
	if err != nil {
		if errors.Is(err, charset.ErrInvalidBytes) {
			return "", &DecodeError{Path: path, Encoding: encoding, Err: err}
		}
		return "", err
	}
	return text, nil
}

// ReadBinaryFile reads the raw bytes of the file at path.
func (o *Ops) ReadBinaryFile(path string) ([]byte, error) {
	return o.readAll(path)
}

// ReadJSONFile reads the file at path as text in the named encoding and
// unmarshals its JSON content into v. Malformed JSON yields a
// *ParseError.
func (o *Ops) ReadJSONFile(path, encoding string, v interface{}) error {
	text, err := o.ReadFile(path, encoding)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// ReadFileLines reads the file at path as text and splits it on "\n".
// Carriage returns are not stripped, so Windows-style line endings leave
// a trailing "\r" on each line.
func (o *Ops) ReadFileLines(path, encoding string) ([]string, error) {
	text, err := o.ReadFile(path, encoding)
	if err != nil {
		return nil, err
	}
	return strings.Split(text, "\n"), nil
}

// WriteFile encodes text under the named encoding and writes it to path,
// creating parent directories as needed.
func (o *Ops) WriteFile(path, text, encoding string) error {
	if encoding == "" {
		encoding = charset.DefaultEncoding
	}
	data, err := charset.Encode(encoding, text)
	if err != nil {
		return err
	}
	o.log.Debug("Writing %d bytes to %s", len(data), path)
	return o.fs.WriteFile(path, data)
}

// WriteBinaryFile writes raw bytes to path, creating parent directories
// as needed.
func (o *Ops) WriteBinaryFile(path string, data []byte) error {
	o.log.Debug("Writing %d bytes to %s", len(data), path)
	return o.fs.WriteFile(path, data)
}

// WriteFileLines joins lines with "\n" and writes them to path.
func (o *Ops) WriteFileLines(path string, lines []string, encoding string) error {
	return o.WriteFile(path, strings.Join(lines, "\n"), encoding)
}

// Exists reports whether a file or directory exists at path.
func (o *Ops) Exists(path string) bool {
	ok, err := o.fs.Exists(path)
	return err == nil && ok
}

// IsDir reports whether path is an existing directory.
func (o *Ops) IsDir(path string) bool {
	ok, err := o.fs.IsDir(path)
	return err == nil && ok
}

// CopyFile copies the file at src to dest. When dest is an existing
// directory the file is copied into it under the base name of src.
// A missing src yields a *NotFoundError.
func (o *Ops) CopyFile(src, dest string) error {
	if isDir, err := o.fs.IsDir(dest); err == nil && isDir {
		dest = filepath.Join(dest, filepath.Base(src))
	}
	return o.copyRegularFile(src, dest)
}

// CopyFiles copies each file in srcList into destDir under its own base
// name. destDir must be an existing directory, otherwise a
// *NotFoundError is returned before anything is copied.
//
// Missing sources are collected up front: unless ignoreMissing is set,
// any missing path aborts the whole batch with a *NotFoundError listing
// every missing path, and nothing is copied. With ignoreMissing set,
// missing paths are skipped silently. A copy failure mid-batch
// propagates immediately; files already copied remain in place.
func (o *Ops) CopyFiles(srcList []string, destDir string, ignoreMissing bool) error {
	isDir, err := o.fs.IsDir(destDir)
	if err != nil {
		return err
	}
	if !isDir {
		return &NotFoundError{Paths: []string{destDir}}
	}

	existing, missing := o.partitionByExistence(srcList)
	if len(missing) > 0 && !ignoreMissing {
		return &NotFoundError{Paths: missing}
	}

	o.log.Debug("Copying %d files to %s", len(existing), destDir)
	for _, src := range existing {
		if err := o.copyRegularFile(src, filepath.Join(destDir, filepath.Base(src))); err != nil {
			return err
		}
	}
	return nil
}

// MoveFile moves the file at src to dest, renaming when possible and
// falling back to copy-and-remove across file systems. When dest is an
// existing directory the file is moved into it under the base name of
// src. A missing src yields a *NotFoundError.
func (o *Ops) MoveFile(src, dest string) error {
	isFile, err := o.fs.IsFile(src)
	if err != nil {
		return err
	}
	if !isFile {
		return &NotFoundError{Paths: []string{src}}
	}
	if isDir, err := o.fs.IsDir(dest); err == nil && isDir {
		dest = filepath.Join(dest, filepath.Base(src))
	}

	o.log.Debug("Moving %s to %s", src, dest)
	if err := o.fs.Rename(src, dest); err == nil {
		return nil
	}
	// Rename fails across devices; copy and remove instead.
	if err := o.copyRegularFile(src, dest); err != nil {
		return err
	}
	return o.fs.Remove(src)
}

// ConvertFileCharset reads srcPath decoded under srcEncoding and writes
// the text to destPath encoded under destEncoding. The write is not
// atomic: a failure partway leaves a partially written destPath behind.
func (o *Ops) ConvertFileCharset(srcPath, destPath, srcEncoding, destEncoding string) error {
	text, err := o.ReadFile(srcPath, srcEncoding)
	if err != nil {
		return err
	}
	o.log.Debug("Converting %s (%s) to %s (%s)", srcPath, srcEncoding, destPath, destEncoding)
	return o.WriteFile(destPath, text, destEncoding)
}

// readAll reads a file, mapping a missing file to *NotFoundError. Other
// file system errors propagate as-is.
func (o *Ops) readAll(path string) ([]byte, error) {
	data, err := o.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Paths: []string{path}}
		}
		return nil, err
	}
	return data, nil
}

// copyRegularFile copies src to the exact path dest.
func (o *Ops) copyRegularFile(src, dest string) error {
	data, err := o.readAll(src)
	if err != nil {
		return err
	}
	o.log.Debug("Copying %s to %s", src, dest)
	return o.fs.WriteFile(dest, data)
}

// partitionByExistence splits paths into those that are existing regular
// files and the rest, preserving relative order within each part. The
// input slice is never modified.
func (o *Ops) partitionByExistence(paths []string) (existing, missing []string) {
	for _, p := range paths {
		if ok, err := o.fs.IsFile(p); err == nil && ok {
			existing = append(existing, p)
		} else {
			missing = append(missing, p)
		}
	}
	return existing, missing
}

package fileops

import (
	"github.com/user/fileops/pkg/adapters/osfilesystem"
)

// defaultOps serves the package-level functions. It works on the host OS
// file system and does not log. For custom dependencies (mock file
// system, tracing logger) use New and the Ops methods instead.
var defaultOps = New(osfilesystem.New(), nil)

// ListFiles lists files on the host file system. See Ops.ListFiles.
func ListFiles(dir, prefix, suffix string) ([]string, error) {
	return defaultOps.ListFiles(dir, prefix, suffix)
}

// ReadFile reads a file from the host file system. See Ops.ReadFile.
func ReadFile(path, encoding string) (string, error) {
	return defaultOps.ReadFile(path, encoding)
}

// ReadBinaryFile reads raw bytes from the host file system. See
// Ops.ReadBinaryFile.
func ReadBinaryFile(path string) ([]byte, error) {
	return defaultOps.ReadBinaryFile(path)
}

// ReadJSONFile reads and unmarshals a JSON file from the host file
// system. See Ops.ReadJSONFile.
func ReadJSONFile(path, encoding string, v interface{}) error {
	return defaultOps.ReadJSONFile(path, encoding, v)
}

// ReadFileLines reads a file from the host file system and splits it on
// "\n". See Ops.ReadFileLines.
func ReadFileLines(path, encoding string) ([]string, error) {
	return defaultOps.ReadFileLines(path, encoding)
}

// WriteFile writes text to the host file system. See Ops.WriteFile.
func WriteFile(path, text, encoding string) error {
	return defaultOps.WriteFile(path, text, encoding)
}

// WriteBinaryFile writes raw bytes to the host file system. See
// Ops.WriteBinaryFile.
func WriteBinaryFile(path string, data []byte) error {
	return defaultOps.WriteBinaryFile(path, data)
}

// WriteFileLines writes lines to the host file system. See
// Ops.WriteFileLines.
func WriteFileLines(path string, lines []string, encoding string) error {
	return defaultOps.WriteFileLines(path, lines, encoding)
}

// Exists reports whether a path exists on the host file system.
func Exists(path string) bool {
	return defaultOps.Exists(path)
}

// IsDir reports whether a path is a directory on the host file system.
func IsDir(path string) bool {
	return defaultOps.IsDir(path)
}

// CopyFile copies a file on the host file system. See Ops.CopyFile.
func CopyFile(src, dest string) error {
	return defaultOps.CopyFile(src, dest)
}

// CopyFiles copies files on the host file system. See Ops.CopyFiles.
func CopyFiles(srcList []string, destDir string, ignoreMissing bool) error {
	return defaultOps.CopyFiles(srcList, destDir, ignoreMissing)
}

// MoveFile moves a file on the host file system. See Ops.MoveFile.
func MoveFile(src, dest string) error {
	return defaultOps.MoveFile(src, dest)
}

// ConvertFileCharset converts a file's character encoding on the host
// file system. See Ops.ConvertFileCharset.
func ConvertFileCharset(srcPath, destPath, srcEncoding, destEncoding string) error {
	return defaultOps.ConvertFileCharset(srcPath, destPath, srcEncoding, destEncoding)
}

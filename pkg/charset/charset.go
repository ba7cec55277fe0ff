// Package charset resolves named character encodings and converts text
// between them and UTF-8.
package charset

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is assumed when no encoding name is given.
const DefaultEncoding = "utf-8"

// ErrInvalidBytes is returned (wrapped) when input bytes are not valid
// under the declared encoding.
var ErrInvalidBytes = errors.New("charset: invalid byte sequence")

// Lookup resolves an encoding name to its x/text encoding. Names are the
// IANA/WHATWG labels, e.g. "utf-8", "shift_jis", "euc-jp", "iso-8859-1".
// An empty name resolves to DefaultEncoding.
func Lookup(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

// Decode converts src from the named encoding to a UTF-8 string.
//
// The x/text decoders substitute U+FFFD for undecodable input instead of
// returning an error, so invalid input is detected by the replacement
// rune appearing in the output. UTF-8 input is validated directly, which
// also keeps a literal U+FFFD in UTF-8 text legal.
func Decode(name string, src []byte) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	if enc == unicode.UTF8 {
		if !utf8.Valid(src) {
			return "", fmt.Errorf("decode as %s: %w", name, ErrInvalidBytes)
		}
		return string(src), nil
	}
	decoded, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return "", fmt.Errorf("decode as %s: %w", name, ErrInvalidBytes)
	}
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", fmt.Errorf("decode as %s: %w", name, ErrInvalidBytes)
	}
	return string(decoded), nil
}

// Encode converts a UTF-8 string to bytes in the named encoding.
// Runes the target encoding cannot represent cause an error.
func Encode(name string, text string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return []byte(text), nil
	}
	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode as %s: %w", name, err)
	}
	return out, nil
}

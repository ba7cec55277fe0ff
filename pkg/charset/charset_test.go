package charset

import (
	"errors"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"utf-8", false},
		{"UTF-8", false},
		{"shift_jis", false},
		{"euc-jp", false},
		{"iso-8859-1", false},
		{"", false}, // resolves to the default
		{"no-such-encoding", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lookup(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("Lookup(%q): unexpected error state: %v", tt.name, err)
			}
		})
	}
}

func TestLookup_UnknownNamesEncoding(t *testing.T) {
	_, err := Lookup("no-such-encoding")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "no-such-encoding") {
		t.Errorf("error should name the encoding: %v", err)
	}
}

func TestDecode_UTF8(t *testing.T) {
	got, err := Decode("utf-8", []byte("héllo 世界"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "héllo 世界" {
		t.Errorf("expected %q, got %q", "héllo 世界", got)
	}
}

func TestDecode_DefaultEncoding(t *testing.T) {
	got, err := Decode("", []byte("plain"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "plain" {
		t.Errorf("expected %q, got %q", "plain", got)
	}
}

func TestDecode_InvalidUTF8(t *testing.T) {
	_, err := Decode("utf-8", []byte{0xff, 0xfe, 0xfd})
	if !errors.Is(err, ErrInvalidBytes) {
		t.Fatalf("expected ErrInvalidBytes, got %v", err)
	}
}

func TestDecode_LiteralReplacementRuneIsValidUTF8(t *testing.T) {
	// U+FFFD written deliberately in UTF-8 text must decode cleanly.
	got, err := Decode("utf-8", []byte("a�b"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "a�b" {
		t.Errorf("expected %q, got %q", "a�b", got)
	}
}

func TestDecode_InvalidShiftJIS(t *testing.T) {
	_, err := Decode("shift_jis", []byte{0xff, 0xff})
	if !errors.Is(err, ErrInvalidBytes) {
		t.Fatalf("expected ErrInvalidBytes, got %v", err)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		encoding string
		text     string
	}{
		{"shift_jis", "日本語のテキスト"},
		{"euc-jp", "文字コード変換"},
		{"iso-8859-1", "café"},
		{"utf-8", "anything at all 🎉"},
	}
	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			encoded, err := Encode(tt.encoding, tt.text)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := Decode(tt.encoding, encoded)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if decoded != tt.text {
				t.Errorf("round trip mismatch: expected %q, got %q", tt.text, decoded)
			}
		})
	}
}

func TestEncode_UnrepresentableRune(t *testing.T) {
	_, err := Encode("shift_jis", "emoji 🎉 is not in Shift-JIS")
	if err == nil {
		t.Fatal("expected an error for an unrepresentable rune")
	}
}

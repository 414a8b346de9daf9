package gedcom

import "strings"

// Encoding identifies the character encodings permitted by GEDCOM 5.5/5.5.1.
type Encoding string

const (
	EncodingASCII   Encoding = "ascii"
	EncodingANSEL   Encoding = "ansel"
	EncodingUTF8    Encoding = "utf8"
	EncodingUTF16LE Encoding = "utf16le"
	EncodingUTF16BE Encoding = "utf16be"
)

// ParseEncoding normalizes a CHAR declaration value.
// UNICODE maps to UTF-16 little-endian; a BOM, when present, overrides.
func ParseEncoding(value string) (Encoding, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ascii":
		return EncodingASCII, true
	case "ansel":
		return EncodingANSEL, true
	case "utf-8", "utf8":
		return EncodingUTF8, true
	case "unicode":
		return EncodingUTF16LE, true
	default:
		return "", false
	}
}

package gedcom

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Unicode decoders. UTF-16 goes through x/text, which substitutes U+FFFD
// for invalid sequences (including a dangling final byte); replacements
// are counted afterwards so the parser can record a warning.

func decodeUTF8(data []byte) (string, int) {
	if utf8.Valid(data) {
		return string(data), 0
	}
	text := strings.ToValidUTF8(string(data), "�")
	return text, strings.Count(text, "�")
}

func decodeUTF16LE(data []byte) (string, int) {
	return decodeUTF16(data, unicode.LittleEndian)
}

func decodeUTF16BE(data []byte) (string, int) {
	return decodeUTF16(data, unicode.BigEndian)
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, int) {
	dec := unicode.UTF16(endianness, unicode.IgnoreBOM).NewDecoder()
	decoded, _, err := transform.Bytes(dec, data)
	if err != nil {
		// The UTF-16 decoder substitutes rather than fails; a hard error
		// means truncated input, which we surface as replacements too.
		decoded = append(decoded, "�"...)
	}
	text := string(decoded)
	return text, strings.Count(text, "�")
}

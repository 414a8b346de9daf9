package gedcom

import (
	"bytes"
	"io"
	"strings"
)

const detectionSampleSize = 1024

// detection is the outcome of sniffing the leading bytes of a stream.
type detection struct {
	encoding Encoding
	// bom is true when the stream starts with a byte-order mark. The
	// encoding-specific readers strip it.
	bom bool
	// declared is the encoding named by the 1 CHAR line found in the
	// sample, or "" when none was found.
	declared Encoding
}

// mismatch reports whether a CHAR declaration disagrees with what the BOM
// or byte pattern dictated. UNICODE (declared as UTF-16LE) agrees with a
// big-endian BOM, which only fixes the byte order.
func (d detection) mismatch() bool {
	if d.declared == EncodingUTF16LE && d.encoding == EncodingUTF16BE {
		return false
	}
	return d.declared != "" && d.declared != d.encoding
}

// detectEncoding determines the character encoding from a sample of the
// stream's leading bytes.
//
// BOMs win outright. Without a BOM, the two-byte encoding of '0' (the level
// of the HEAD line) identifies UTF-16 and its byte order. Otherwise the
// sample is scanned for the mandatory "1 CHAR <encoding>" header line; a
// missing declaration falls back to ANSEL, the GEDCOM default.
func detectEncoding(sample []byte) (detection, error) {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		d := detection{encoding: EncodingUTF8, bom: true}
		d.declared = scanCharDeclaration(string(sample[3:]))
		return d, nil
	}
	if len(sample) >= 2 && sample[0] == 0xFF && sample[1] == 0xFE {
		d := detection{encoding: EncodingUTF16LE, bom: true}
		d.declared = scanCharDeclarationUTF16(sample[2:], false)
		return d, nil
	}
	if len(sample) >= 2 && sample[0] == 0xFE && sample[1] == 0xFF {
		d := detection{encoding: EncodingUTF16BE, bom: true}
		d.declared = scanCharDeclarationUTF16(sample[2:], true)
		return d, nil
	}

	// BOM-less UTF-16: the first character of a GEDCOM file is the digit
	// '0' of "0 HEAD".
	if len(sample) >= 2 && sample[0] == 0x30 && sample[1] == 0x00 {
		return detection{encoding: EncodingUTF16LE}, nil
	}
	if len(sample) >= 2 && sample[0] == 0x00 && sample[1] == 0x30 {
		return detection{encoding: EncodingUTF16BE}, nil
	}

	declared := scanCharDeclaration(string(sample))
	if declared != "" {
		return detection{encoding: declared, declared: declared}, nil
	}
	if containsCharDeclaration(string(sample)) {
		// A CHAR line exists but names an encoding we do not know.
		return detection{}, ErrUnknownEncoding
	}
	return detection{encoding: EncodingANSEL}, nil
}

// scanCharDeclaration finds the "1 CHAR <value>" line in a decoded sample
// and returns the declared encoding, or "" when absent or unrecognized.
func scanCharDeclaration(sample string) Encoding {
	value, ok := charDeclarationValue(sample)
	if !ok {
		return ""
	}
	enc, ok := ParseEncoding(value)
	if !ok {
		return ""
	}
	return enc
}

func containsCharDeclaration(sample string) bool {
	_, ok := charDeclarationValue(sample)
	return ok
}

func charDeclarationValue(sample string) (string, bool) {
	for _, line := range strings.FieldsFunc(sample, func(r rune) bool {
		return r == '\r' || r == '\n'
	}) {
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[0] == "1" && strings.EqualFold(fields[1], "CHAR") {
			return fields[2], true
		}
	}
	return "", false
}

// scanCharDeclarationUTF16 decodes a UTF-16 sample naively (BMP only, which
// covers every character a CHAR line can contain) and scans it.
func scanCharDeclarationUTF16(sample []byte, bigEndian bool) Encoding {
	var sb strings.Builder
	for i := 0; i+1 < len(sample); i += 2 {
		var u uint16
		if bigEndian {
			u = uint16(sample[i])<<8 | uint16(sample[i+1])
		} else {
			u = uint16(sample[i+1])<<8 | uint16(sample[i])
		}
		sb.WriteRune(rune(u))
	}
	return scanCharDeclaration(sb.String())
}

// bufferSample reads up to detectionSampleSize bytes and returns both the
// sample and a reader that replays the full stream from the beginning.
func bufferSample(r io.Reader) ([]byte, io.Reader, error) {
	buf := make([]byte, detectionSampleSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, nil, err
	}
	sample := buf[:n]
	return sample, io.MultiReader(bytes.NewReader(sample), r), nil
}

package gedcom

import (
	"fmt"
	"io"
	"strings"
)

// decodeFunc converts one encoding's raw bytes (BOM already stripped) to
// text, reporting how many invalid sequences were replaced with U+FFFD.
type decodeFunc func(data []byte) (text string, replaced int)

// decoderFor selects the encoding-specific decoder.
func decoderFor(enc Encoding) (decodeFunc, error) {
	switch enc {
	case EncodingASCII:
		return decodeASCII, nil
	case EncodingANSEL:
		return decodeANSEL, nil
	case EncodingUTF8:
		return decodeUTF8, nil
	case EncodingUTF16LE:
		return decodeUTF16LE, nil
	case EncodingUTF16BE:
		return decodeUTF16BE, nil
	default:
		return nil, ErrUnknownEncoding
	}
}

// readLines consumes the remainder of the stream and returns the logical
// lines: decoded, terminator-stripped, blank lines discarded, common
// strings interned. Progress is reported every ReadNotificationRate lines
// and the cancel flag is observed per line.
func (p *Parser) readLines(r io.Reader, d detection) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	data = stripBOM(data, d)

	decode, err := decoderFor(d.encoding)
	if err != nil {
		return nil, err
	}
	text, replaced := decode(data)
	if replaced > 0 {
		p.addWarning(Diagnostic{Message: fmt.Sprintf("replaced %d invalid byte sequence(s) in %s input", replaced, d.encoding)})
	}

	lines, err := p.splitLines(text)
	if err != nil {
		return nil, err
	}
	p.notifyFileObservers(FileProgressEvent{Lines: p.linesRead, Complete: true})
	return lines, nil
}

func stripBOM(data []byte, d detection) []byte {
	if !d.bom {
		return data
	}
	if d.encoding == EncodingUTF8 {
		return data[3:]
	}
	return data[2:]
}

// splitLines walks decoded text and splits it on any of the four
// terminator dialects. \r\n and \n\r each count as one terminator, so
// consecutive distinct terminator characters fold into one line break;
// repeated identical ones produce blank lines, which are discarded.
func (p *Parser) splitLines(text string) ([]string, error) {
	var lines []string
	var sb strings.Builder
	warnedDialect := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\r' && c != '\n' {
			sb.WriteByte(c)
			continue
		}
		dialect := text[i : i+1]
		// Fold a \r\n or \n\r pair into a single terminator.
		if i+1 < len(text) && (text[i+1] == '\r' || text[i+1] == '\n') && text[i+1] != c {
			dialect = text[i : i+2]
			i++
		}
		if p.opts.StrictLineBreaks && !warnedDialect && dialect != "\n" && dialect != "\r\n" {
			p.addWarning(Diagnostic{Message: "non-standard line terminator"})
			warnedDialect = true
		}
		if err := p.emitLine(&lines, &sb); err != nil {
			return nil, err
		}
	}
	if sb.Len() > 0 {
		if err := p.emitLine(&lines, &sb); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

// emitLine appends the buffered line if non-blank, observing cancellation
// and the notification rate.
func (p *Parser) emitLine(lines *[]string, sb *strings.Builder) error {
	if p.opts.Cancel.Load() {
		return ErrCancelled
	}
	if sb.Len() == 0 {
		return nil
	}
	*lines = append(*lines, p.interned.intern(sb.String()))
	sb.Reset()
	p.linesRead++
	if p.linesRead%p.opts.ReadNotificationRate == 0 {
		p.notifyFileObservers(FileProgressEvent{Lines: p.linesRead})
	}
	return nil
}

// decodeASCII passes 7-bit bytes through and replaces the rest.
func decodeASCII(data []byte) (string, int) {
	replaced := 0
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if b < 0x80 {
			sb.WriteByte(b)
		} else {
			sb.WriteRune('�')
			replaced++
		}
	}
	return sb.String(), replaced
}

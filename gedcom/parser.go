package gedcom

import (
	"io"
	"os"
	"sync/atomic"
)

// Parser reads GEDCOM 5.5/5.5.1 data into a Gedcom object graph. A Parser
// is good for any number of sequential parses; each parse starts with
// fresh diagnostics and a fresh graph. Instances are not safe for
// concurrent use, but independent instances are.
type Parser struct {
	opts Options

	// Errors and Warnings are the diagnostics of the most recent parse,
	// in the order they were recorded.
	Errors   []Diagnostic
	Warnings []Diagnostic

	interned  internTable
	linesRead int
	records   int
	pending   []pendingRef
	gedcom    *Gedcom
}

// NewParser returns a parser with the given options applied over the
// defaults.
func NewParser(options ...Option) *Parser {
	opts := defaultParserOptions()
	for _, opt := range options {
		opt(&opts)
	}
	opts = normalizeOptions(opts)
	return &Parser{opts: opts}
}

// Cancel sets the cancel flag. Safe to call from any goroutine; the parse
// in flight fails with ErrCancelled at its next check.
func (p *Parser) Cancel() { p.opts.Cancel.Store(true) }

// Cancelled reports whether the cancel flag is set.
func (p *Parser) Cancelled() bool { return p.opts.Cancel.Load() }

// CancelFlag returns the parser's cancel flag.
func (p *Parser) CancelFlag() *atomic.Bool { return p.opts.Cancel }

// ParseFile parses the GEDCOM file at path. The file is closed on all
// exit paths.
func (p *Parser) ParseFile(path string) (*Gedcom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open " + path, Err: err}
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse reads the stream and returns the populated object graph. Non-fatal
// issues accumulate in p.Errors and p.Warnings without interrupting the
// parse. Fatal conditions return a *ParseError carrying the diagnostics
// collected so far; the partial graph is discarded.
func (p *Parser) Parse(r io.Reader) (*Gedcom, error) {
	p.reset()

	sample, stream, err := bufferSample(r)
	if err != nil {
		return nil, p.fail("detect", &IOError{Op: "read", Err: err})
	}
	det, err := detectEncoding(sample)
	if err != nil {
		return nil, p.fail("detect", err)
	}
	if det.mismatch() {
		p.addWarning(Diagnostic{Message: "declared CHAR encoding disagrees with byte-order mark; BOM wins", Tag: "CHAR"})
	}

	lines, err := p.readLines(stream, det)
	if err != nil {
		return nil, p.fail("read", err)
	}

	parsed := make([]ParsedLine, 0, len(lines))
	for _, text := range lines {
		line, err := p.tokenizeLine(text)
		if err != nil {
			return nil, p.failLine("tokenize", text, err)
		}
		parsed = append(parsed, line)
	}

	roots, err := p.buildTree(parsed)
	if err != nil {
		return nil, p.fail("build", err)
	}

	if err := p.interpret(roots); err != nil {
		return nil, p.fail("interpret", err)
	}

	g := p.gedcom
	p.gedcom = nil
	p.pending = nil
	return g, nil
}

func (p *Parser) reset() {
	p.Errors = nil
	p.Warnings = nil
	p.linesRead = 0
	p.records = 0
	p.pending = nil
	p.gedcom = NewGedcom()
	p.interned = newInternTable(p.opts.InternStrings)
}

func (p *Parser) fail(stage string, err error) error {
	return p.failLine(stage, "", err)
}

func (p *Parser) failLine(stage, line string, err error) error {
	p.gedcom = nil
	p.pending = nil
	return &ParseError{
		Stage:    stage,
		Line:     line,
		Err:      err,
		Errors:   p.Errors,
		Warnings: p.Warnings,
	}
}

func (p *Parser) addError(d Diagnostic) {
	p.Errors = append(p.Errors, d)
}

func (p *Parser) addWarning(d Diagnostic) {
	p.Warnings = append(p.Warnings, d)
}

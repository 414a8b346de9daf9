package gedcom

import "github.com/rs/zerolog/log"

// FileProgressEvent reports line-reading progress.
type FileProgressEvent struct {
	// Lines is the number of logical lines read so far.
	Lines int
	// Complete is true on the final event for a stream.
	Complete bool
}

// ParseProgressEvent reports record-hydration progress.
type ParseProgressEvent struct {
	// Tag is the tag of the record just hydrated ("" on the final event).
	Tag string
	// XRef is the record's cross-reference id, if it has one.
	XRef string
	// Records is the number of top-level records hydrated so far.
	Records int
	// Complete is true on the final event for a parse.
	Complete bool
}

// FileObserver receives file progress events.
type FileObserver func(FileProgressEvent)

// ParseObserver receives parse progress events.
type ParseObserver func(ParseProgressEvent)

// Observers run synchronously on the parsing goroutine. A panicking
// observer must not abort the parse; the panic is logged and swallowed.

func (p *Parser) notifyFileObservers(e FileProgressEvent) {
	for _, obs := range p.opts.FileObservers {
		runObserver(func() { obs(e) })
	}
}

func (p *Parser) notifyParseObservers(e ParseProgressEvent) {
	for _, obs := range p.opts.ParseObservers {
		runObserver(func() { obs(e) })
	}
}

func runObserver(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("gedcom: observer panicked")
		}
	}()
	fn()
}

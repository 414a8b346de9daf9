package gedcom

import (
	"fmt"
	"strings"
)

// recordKind identifies which xref→entity map a reference points into. An
// xref belongs to exactly one kind.
type recordKind int

const (
	kindIndividual recordKind = iota
	kindFamily
	kindMultimedia
	kindNote
	kindSource
	kindRepository
	kindSubmitter
	kindSubmission
)

func (k recordKind) String() string {
	switch k {
	case kindIndividual:
		return "individual"
	case kindFamily:
		return "family"
	case kindMultimedia:
		return "multimedia"
	case kindNote:
		return "note"
	case kindSource:
		return "source"
	case kindRepository:
		return "repository"
	case kindSubmitter:
		return "submitter"
	case kindSubmission:
		return "submission"
	default:
		return "unknown"
	}
}

// pendingRef is a cross-reference recorded during hydration and resolved
// after every record has been walked, so forward references work.
type pendingRef struct {
	xref   string
	kind   recordKind
	tag    string
	assign func(any)
}

// isXRef reports whether a value has cross-reference syntax: @id@ with no
// space or @ inside.
func isXRef(s string) bool {
	if len(s) < 3 || s[0] != '@' || s[len(s)-1] != '@' {
		return false
	}
	return !strings.ContainsAny(s[1:len(s)-1], "@ ")
}

func (p *Parser) deferRef(xref string, kind recordKind, tag string, assign func(any)) {
	p.pending = append(p.pending, pendingRef{xref: xref, kind: kind, tag: tag, assign: assign})
}

func (p *Parser) deferIndividual(xref, tag string, assign func(*Individual)) {
	p.deferRef(xref, kindIndividual, tag, func(e any) { assign(e.(*Individual)) })
}

func (p *Parser) deferFamily(xref, tag string, assign func(*Family)) {
	p.deferRef(xref, kindFamily, tag, func(e any) { assign(e.(*Family)) })
}

func (p *Parser) deferMultimedia(xref, tag string, assign func(*Multimedia)) {
	p.deferRef(xref, kindMultimedia, tag, func(e any) { assign(e.(*Multimedia)) })
}

func (p *Parser) deferNote(xref, tag string, assign func(*Note)) {
	p.deferRef(xref, kindNote, tag, func(e any) { assign(e.(*Note)) })
}

func (p *Parser) deferSource(xref, tag string, assign func(*Source)) {
	p.deferRef(xref, kindSource, tag, func(e any) { assign(e.(*Source)) })
}

func (p *Parser) deferRepository(xref, tag string, assign func(*Repository)) {
	p.deferRef(xref, kindRepository, tag, func(e any) { assign(e.(*Repository)) })
}

func (p *Parser) deferSubmitter(xref, tag string, assign func(*Submitter)) {
	p.deferRef(xref, kindSubmitter, tag, func(e any) { assign(e.(*Submitter)) })
}

func (p *Parser) deferSubmission(xref, tag string, assign func(*Submission)) {
	p.deferRef(xref, kindSubmission, tag, func(e any) { assign(e.(*Submission)) })
}

// resolveRefs processes every pending reference. Hits become direct links;
// misses record a dangling cross-reference error and leave the link
// absent.
func (p *Parser) resolveRefs() {
	g := p.gedcom
	for _, ref := range p.pending {
		var entity any
		var ok bool
		switch ref.kind {
		case kindIndividual:
			var e *Individual
			e, ok = g.Individuals[ref.xref]
			entity = e
		case kindFamily:
			var e *Family
			e, ok = g.Families[ref.xref]
			entity = e
		case kindMultimedia:
			var e *Multimedia
			e, ok = g.Multimedia[ref.xref]
			entity = e
		case kindNote:
			var e *Note
			e, ok = g.Notes[ref.xref]
			entity = e
		case kindSource:
			var e *Source
			e, ok = g.Sources[ref.xref]
			entity = e
		case kindRepository:
			var e *Repository
			e, ok = g.Repositories[ref.xref]
			entity = e
		case kindSubmitter:
			var e *Submitter
			e, ok = g.Submitters[ref.xref]
			entity = e
		case kindSubmission:
			ok = g.Submission != nil && g.Submission.XRef == ref.xref
			entity = g.Submission
		}
		if !ok {
			p.addError(Diagnostic{
				Message: fmt.Sprintf("dangling cross-reference %s of kind %s", ref.xref, ref.kind),
				Tag:     ref.tag,
				XRef:    ref.xref,
			})
			continue
		}
		ref.assign(entity)
	}
	p.pending = nil
}

// slot reserves the next position in list so a link resolved after
// hydration lands in input order. An unresolved link leaves a nil slot.
func slot[T any](list *[]*T) func(*T) {
	*list = append(*list, nil)
	idx := len(*list) - 1
	return func(e *T) { (*list)[idx] = e }
}

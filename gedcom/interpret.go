package gedcom

import (
	"fmt"
	"strconv"
	"strings"
)

// The interpreter makes two passes over the level-0 records. Pass A
// allocates and registers every record that carries an xref so forward
// references resolve. Pass B dispatches each record to its handler and
// hydrates fields; references recorded along the way are resolved at the
// end.

// rootHandlers dispatches level-0 records by tag. Built once.
var rootHandlers = map[string]func(*Parser, *treeNode){
	"HEAD": (*Parser).interpretHeader,
	"SUBM": (*Parser).interpretSubmitterRecord,
	"SUBN": (*Parser).interpretSubmissionRecord,
	"INDI": (*Parser).interpretIndividualRecord,
	"FAM":  (*Parser).interpretFamilyRecord,
	"OBJE": (*Parser).interpretMultimediaRecord,
	"NOTE": (*Parser).interpretNoteRecord,
	"SOUR": (*Parser).interpretSourceRecord,
	"REPO": (*Parser).interpretRepositoryRecord,
	"TRLR": (*Parser).interpretTrailer,
}

func (p *Parser) interpret(roots []*treeNode) error {
	p.discoverRecords(roots)

	for _, root := range roots {
		handler, ok := rootHandlers[root.line.Tag]
		if !ok {
			p.addWarning(Diagnostic{Message: fmt.Sprintf("unknown record tag %s", root.line.Tag), Tag: root.line.Tag, XRef: root.line.XRef})
			p.gedcom.Header.CustomFacts = append(p.gedcom.Header.CustomFacts, customFactFrom(root))
			continue
		}
		handler(p, root)
		p.records++
		p.notifyParseObservers(ParseProgressEvent{Tag: root.line.Tag, XRef: root.line.XRef, Records: p.records})
	}

	p.resolveRefs()
	p.chooseSubmitter()
	p.notifyParseObservers(ParseProgressEvent{Records: p.records, Complete: true})
	return nil
}

// discoverRecords is pass A: register each xref'd record in its kind map.
// A duplicate xref within a kind keeps the first registration and records
// an error.
func (p *Parser) discoverRecords(roots []*treeNode) {
	g := p.gedcom
	for _, root := range roots {
		xref := root.line.XRef
		if xref == "" {
			continue
		}
		switch root.line.Tag {
		case "INDI":
			if p.checkDuplicate(g.Individuals[xref] != nil, root) {
				continue
			}
			g.Individuals[xref] = &Individual{XRef: xref}
		case "FAM":
			if p.checkDuplicate(g.Families[xref] != nil, root) {
				continue
			}
			g.Families[xref] = &Family{XRef: xref}
		case "OBJE":
			if p.checkDuplicate(g.Multimedia[xref] != nil, root) {
				continue
			}
			g.Multimedia[xref] = &Multimedia{XRef: xref}
		case "NOTE":
			if p.checkDuplicate(g.Notes[xref] != nil, root) {
				continue
			}
			g.Notes[xref] = &Note{XRef: xref}
		case "SOUR":
			if p.checkDuplicate(g.Sources[xref] != nil, root) {
				continue
			}
			g.Sources[xref] = &Source{XRef: xref}
		case "REPO":
			if p.checkDuplicate(g.Repositories[xref] != nil, root) {
				continue
			}
			g.Repositories[xref] = &Repository{XRef: xref}
		case "SUBM":
			if p.checkDuplicate(g.Submitters[xref] != nil, root) {
				continue
			}
			g.Submitters[xref] = &Submitter{XRef: xref}
		case "SUBN":
			if p.checkDuplicate(g.Submission != nil, root) {
				continue
			}
			g.Submission = &Submission{XRef: xref}
		}
	}
}

func (p *Parser) checkDuplicate(exists bool, root *treeNode) bool {
	if exists {
		p.addError(Diagnostic{
			Message: fmt.Sprintf("duplicate cross-reference %s for %s record; first occurrence wins", root.line.XRef, root.line.Tag),
			Tag:     root.line.Tag,
			XRef:    root.line.XRef,
		})
	}
	return exists
}

// chooseSubmitter sets the document's principal submitter: the header's,
// or the only one in the file.
func (p *Parser) chooseSubmitter() {
	g := p.gedcom
	if g.Header != nil && g.Header.Submitter != nil {
		g.Submitter = g.Header.Submitter
		return
	}
	if len(g.Submitters) == 1 {
		for _, s := range g.Submitters {
			g.Submitter = s
		}
	}
}

// foldValue returns a node's value with CONT and CONC children folded in:
// CONT inserts a newline before the child's value, CONC appends it
// directly.
func foldValue(n *treeNode) string {
	value := n.line.Value
	var sb *strings.Builder
	for _, c := range n.children {
		switch c.line.Tag {
		case "CONT":
			if sb == nil {
				sb = &strings.Builder{}
				sb.WriteString(value)
			}
			sb.WriteByte('\n')
			sb.WriteString(c.line.Value)
		case "CONC":
			if sb == nil {
				sb = &strings.Builder{}
				sb.WriteString(value)
			}
			sb.WriteString(c.line.Value)
		}
	}
	if sb == nil {
		return value
	}
	return sb.String()
}

// isContinuation reports whether a child only extends its parent's value.
func isContinuation(n *treeNode) bool {
	return n.line.Tag == "CONT" || n.line.Tag == "CONC"
}

// customFactFrom preserves an unrecognized subtree verbatim.
func customFactFrom(n *treeNode) *CustomFact {
	fact := &CustomFact{Tag: n.line.Tag, XRef: n.line.XRef, Value: n.line.Value}
	for _, c := range n.children {
		fact.Children = append(fact.Children, customFactFrom(c))
	}
	return fact
}

// unknownTag records a warning for an unrecognized child tag and preserves
// it in the nearest typed ancestor's custom facts. Underscore-prefixed
// tags stay silent here; the tokenizer already warned under strict mode.
func (p *Parser) unknownTag(n *treeNode, facts *[]*CustomFact) {
	if !strings.HasPrefix(n.line.Tag, "_") {
		p.addWarning(Diagnostic{Message: fmt.Sprintf("unknown tag %s", n.line.Tag), Level: n.line.Level, Tag: n.line.Tag})
	}
	*facts = append(*facts, customFactFrom(n))
}

// parseCount interprets a numeric subtag value. A value that does not
// parse as a 32-bit signed integer leaves the field unset with a warning.
func (p *Parser) parseCount(n *treeNode) *int {
	value := strings.TrimSpace(foldValue(n))
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		p.addWarning(Diagnostic{Message: fmt.Sprintf("value %q of tag %s is not a number", value, n.line.Tag), Level: n.line.Level, Tag: n.line.Tag})
		return nil
	}
	count := int(parsed)
	return &count
}

// singleton warns when a subtag that the format allows once appears again.
// The last-seen value wins.
func (p *Parser) singleton(already bool, n *treeNode) {
	if already {
		p.addWarning(Diagnostic{Message: fmt.Sprintf("tag %s appears more than once; last value wins", n.line.Tag), Level: n.line.Level, Tag: n.line.Tag})
	}
}

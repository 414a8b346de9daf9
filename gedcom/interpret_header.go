package gedcom

// headerHandlers dispatches HEAD children. Built once.
var headerHandlers = map[string]func(*Parser, *Header, *treeNode){
	"SOUR": (*Parser).parseHeaderSource,
	"DEST": func(p *Parser, h *Header, n *treeNode) { h.Destination = foldValue(n) },
	"DATE": (*Parser).parseHeaderDate,
	"SUBM": func(p *Parser, h *Header, n *treeNode) {
		p.deferSubmitter(n.line.Value, n.line.Tag, func(s *Submitter) { h.Submitter = s })
	},
	"SUBN": func(p *Parser, h *Header, n *treeNode) {
		p.deferSubmission(n.line.Value, n.line.Tag, func(s *Submission) { h.Submission = s })
	},
	"FILE": func(p *Parser, h *Header, n *treeNode) { h.FileName = foldValue(n) },
	"COPR": func(p *Parser, h *Header, n *treeNode) { h.Copyright = append(h.Copyright, foldValue(n)) },
	"GEDC": (*Parser).parseGedcomVersion,
	"CHAR": (*Parser).parseCharacterSet,
	"LANG": func(p *Parser, h *Header, n *treeNode) { h.Language = foldValue(n) },
	"PLAC": (*Parser).parsePlaceHierarchy,
	"NOTE": func(p *Parser, h *Header, n *treeNode) { p.parseNote(n, slot(&h.Notes)) },
}

func (p *Parser) interpretHeader(root *treeNode) {
	h := p.gedcom.Header
	for _, c := range root.children {
		handler, ok := headerHandlers[c.line.Tag]
		if !ok {
			p.unknownTag(c, &h.CustomFacts)
			continue
		}
		handler(p, h, c)
	}
}

func (p *Parser) parseHeaderSource(h *Header, n *treeNode) {
	p.singleton(h.SourceSystem != nil, n)
	sys := &SourceSystem{SystemID: foldValue(n)}
	h.SourceSystem = sys
	for _, c := range n.children {
		if isContinuation(c) {
			continue
		}
		switch c.line.Tag {
		case "VERS":
			sys.VersionNum = foldValue(c)
		case "NAME":
			sys.ProductName = foldValue(c)
		case "CORP":
			sys.Corporation = p.parseCorporation(c)
		case "DATA":
			sys.SourceData = p.parseHeaderSourceData(c)
		default:
			p.unknownTag(c, &h.CustomFacts)
		}
	}
}

func (p *Parser) parseCorporation(n *treeNode) *Corporation {
	corp := &Corporation{BusinessName: foldValue(n)}
	for _, c := range n.children {
		if isContinuation(c) {
			continue
		}
		switch c.line.Tag {
		case "ADDR":
			corp.Address = p.parseAddress(c)
		case "PHON":
			corp.PhoneNumbers = append(corp.PhoneNumbers, foldValue(c))
		case "EMAIL":
			corp.Emails = append(corp.Emails, foldValue(c))
		}
	}
	return corp
}

func (p *Parser) parseHeaderSourceData(n *treeNode) *HeaderSourceData {
	data := &HeaderSourceData{Name: foldValue(n)}
	for _, c := range n.children {
		switch c.line.Tag {
		case "DATE":
			data.PublishDate = foldValue(c)
		case "COPR":
			data.Copyright = foldValue(c)
		}
	}
	return data
}

func (p *Parser) parseHeaderDate(h *Header, n *treeNode) {
	h.Date = foldValue(n)
	for _, c := range n.children {
		if c.line.Tag == "TIME" {
			h.Time = foldValue(c)
		}
	}
}

func (p *Parser) parseGedcomVersion(h *Header, n *treeNode) {
	v := &GedcomVersion{}
	h.GedcomVersion = v
	for _, c := range n.children {
		switch c.line.Tag {
		case "VERS":
			v.Version = foldValue(c)
		case "FORM":
			v.Form = foldValue(c)
		}
	}
}

func (p *Parser) parseCharacterSet(h *Header, n *treeNode) {
	cs := &CharacterSet{Value: foldValue(n)}
	h.CharacterSet = cs
	for _, c := range n.children {
		if c.line.Tag == "VERS" {
			cs.Version = foldValue(c)
		}
	}
}

func (p *Parser) parsePlaceHierarchy(h *Header, n *treeNode) {
	for _, c := range n.children {
		if c.line.Tag == "FORM" {
			h.PlaceHierarchy = foldValue(c)
		}
	}
}

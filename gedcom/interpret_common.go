package gedcom

// Shared substructure handlers used by several record kinds.

// parseAddress hydrates an ADDR structure. The address value and its
// continuations are kept verbatim in Lines alongside the structured
// subtags.
func (p *Parser) parseAddress(n *treeNode) *Address {
	addr := &Address{}
	if n.line.Value != "" {
		addr.Lines = append(addr.Lines, n.line.Value)
	}
	for _, c := range n.children {
		switch c.line.Tag {
		case "CONT", "CONC":
			addr.Lines = append(addr.Lines, c.line.Value)
		case "ADR1":
			addr.Addr1 = foldValue(c)
		case "ADR2":
			addr.Addr2 = foldValue(c)
		case "CITY":
			addr.City = foldValue(c)
		case "STAE":
			addr.State = foldValue(c)
		case "POST":
			addr.PostalCode = foldValue(c)
		case "CTRY":
			addr.Country = foldValue(c)
		default:
			// Addresses have no custom fact collection of their own;
			// unknown subtags are dropped with a warning only.
			var facts []*CustomFact
			p.unknownTag(c, &facts)
		}
	}
	return addr
}

// parseChangeDate hydrates a CHAN structure.
func (p *Parser) parseChangeDate(n *treeNode) *ChangeDate {
	chg := &ChangeDate{}
	for _, c := range n.children {
		switch c.line.Tag {
		case "DATE":
			chg.Date = foldValue(c)
			for _, t := range c.children {
				if t.line.Tag == "TIME" {
					chg.Time = foldValue(t)
				}
			}
		case "NOTE":
			p.parseNote(c, slot(&chg.Notes))
		}
	}
	return chg
}

// parseNote handles a NOTE subtag, which either references a note record
// by xref or embeds the note text inline.
func (p *Parser) parseNote(n *treeNode, attach func(*Note)) {
	if value := n.line.Value; isXRef(value) {
		p.deferNote(value, n.line.Tag, attach)
		return
	}
	note := &Note{Text: foldValue(n)}
	for _, c := range n.children {
		if isContinuation(c) {
			continue
		}
		switch c.line.Tag {
		case "SOUR":
			p.parseCitation(c, &note.Citations)
		case "REFN":
			note.UserReferences = append(note.UserReferences, parseUserReference(c))
		case "RIN":
			note.RecIDNumber = foldValue(c)
		case "CHAN":
			note.ChangeDate = p.parseChangeDate(c)
		default:
			p.unknownTag(c, &note.CustomFacts)
		}
	}
	attach(note)
}

// parseCitation handles a SOUR subtag: a citation of a source record by
// xref, or an inline source description.
func (p *Parser) parseCitation(n *treeNode, list *[]*Citation) {
	cit := &Citation{}
	*list = append(*list, cit)

	if value := n.line.Value; isXRef(value) {
		p.deferSource(value, n.line.Tag, func(s *Source) { cit.Source = s })
	} else {
		cit.Description = foldValue(n)
	}

	for _, c := range n.children {
		if isContinuation(c) {
			continue
		}
		switch c.line.Tag {
		case "PAGE":
			cit.Page = foldValue(c)
		case "EVEN":
			cit.EventCited = foldValue(c)
			for _, r := range c.children {
				if r.line.Tag == "ROLE" {
					cit.Role = foldValue(r)
				}
			}
		case "QUAY":
			cit.Certainty = p.parseCount(c)
		case "DATA":
			data := &CitationData{}
			for _, d := range c.children {
				switch d.line.Tag {
				case "DATE":
					data.EntryDate = foldValue(d)
				case "TEXT":
					data.SourceText = append(data.SourceText, foldValue(d))
				}
			}
			cit.Data = append(cit.Data, data)
		case "TEXT":
			// 5.5 allows TEXT directly under an inline citation.
			data := &CitationData{SourceText: []string{foldValue(c)}}
			cit.Data = append(cit.Data, data)
		case "NOTE":
			p.parseNote(c, slot(&cit.Notes))
		case "OBJE":
			p.parseMultimediaLink(c, &cit.Multimedia)
		default:
			p.unknownTag(c, &cit.CustomFacts)
		}
	}
}

// parseMultimediaLink handles an OBJE subtag: a reference to a multimedia
// record, or an inline multimedia structure.
func (p *Parser) parseMultimediaLink(n *treeNode, list *[]*Multimedia) {
	if value := n.line.Value; isXRef(value) {
		p.deferMultimedia(value, n.line.Tag, slot(list))
		return
	}
	inline := &Multimedia{}
	p.hydrateMultimedia(inline, n)
	*list = append(*list, inline)
}

// parsePlace hydrates a PLAC structure.
func (p *Parser) parsePlace(n *treeNode) *Place {
	place := &Place{Name: foldValue(n)}
	for _, c := range n.children {
		if isContinuation(c) {
			continue
		}
		switch c.line.Tag {
		case "NOTE":
			p.parseNote(c, slot(&place.Notes))
		case "SOUR":
			p.parseCitation(c, &place.Citations)
		default:
			p.unknownTag(c, &place.CustomFacts)
		}
	}
	return place
}

func parseUserReference(n *treeNode) *UserReference {
	ref := &UserReference{Number: foldValue(n)}
	for _, c := range n.children {
		if c.line.Tag == "TYPE" {
			ref.Type = foldValue(c)
		}
	}
	return ref
}

// parseEventDetail hydrates the substructures shared by events and
// attributes. Returns false when the child was not consumed so the caller
// can try its own tags.
func (p *Parser) parseEventDetail(detail *EventDetail, c *treeNode) bool {
	switch c.line.Tag {
	case "TYPE":
		detail.Type = foldValue(c)
	case "DATE":
		detail.Date = foldValue(c)
	case "PLAC":
		detail.Place = p.parsePlace(c)
	case "ADDR":
		detail.Address = p.parseAddress(c)
	case "PHON":
		detail.PhoneNumbers = append(detail.PhoneNumbers, foldValue(c))
	case "AGNC":
		detail.Agency = foldValue(c)
	case "CAUS":
		detail.Cause = foldValue(c)
	case "AGE":
		detail.Age = foldValue(c)
	case "RELI":
		detail.ReligiousAffiliation = foldValue(c)
	case "NOTE":
		p.parseNote(c, slot(&detail.Notes))
	case "SOUR":
		p.parseCitation(c, &detail.Citations)
	case "OBJE":
		p.parseMultimediaLink(c, &detail.Multimedia)
	default:
		return false
	}
	return true
}

// parseAnnotations consumes the substructures common to record kinds.
// Returns false when the child was not consumed.
func (p *Parser) parseAnnotations(a *Annotations, c *treeNode) bool {
	switch c.line.Tag {
	case "NOTE":
		p.parseNote(c, slot(&a.Notes))
	case "SOUR":
		p.parseCitation(c, &a.Citations)
	case "OBJE":
		p.parseMultimediaLink(c, &a.Multimedia)
	case "REFN":
		a.UserReferences = append(a.UserReferences, parseUserReference(c))
	case "RIN":
		a.RecIDNumber = foldValue(c)
	case "CHAN":
		a.ChangeDate = p.parseChangeDate(c)
	default:
		return false
	}
	return true
}

package gedcom

// Handlers for the remaining record kinds: SUBM, SUBN, OBJE, NOTE, SOUR,
// REPO, TRLR.

func (p *Parser) interpretSubmitterRecord(root *treeNode) {
	sub, ok := p.gedcom.Submitters[root.line.XRef]
	if !ok {
		p.addWarning(Diagnostic{Message: "SUBM record with no cross-reference id ignored", Tag: root.line.Tag})
		return
	}
	for _, c := range root.children {
		switch c.line.Tag {
		case "NAME":
			p.singleton(sub.Name != "", c)
			sub.Name = foldValue(c)
		case "ADDR":
			sub.Address = p.parseAddress(c)
		case "PHON":
			sub.PhoneNumbers = append(sub.PhoneNumbers, foldValue(c))
		case "EMAIL":
			sub.Emails = append(sub.Emails, foldValue(c))
		case "LANG":
			sub.LanguagePreferences = append(sub.LanguagePreferences, foldValue(c))
		case "RFN":
			sub.RegFileNumber = foldValue(c)
		default:
			if !p.parseAnnotations(&sub.Annotations, c) {
				p.unknownTag(c, &sub.CustomFacts)
			}
		}
	}
}

func (p *Parser) interpretSubmissionRecord(root *treeNode) {
	subn := p.gedcom.Submission
	if subn == nil && root.line.XRef == "" {
		subn = &Submission{}
		p.gedcom.Submission = subn
	}
	if subn == nil || subn.XRef != root.line.XRef {
		// A second SUBN was rejected in pass A.
		return
	}
	for _, c := range root.children {
		switch c.line.Tag {
		case "SUBM":
			p.deferSubmitter(c.line.Value, c.line.Tag, func(s *Submitter) { subn.Submitter = s })
		case "FAMF":
			subn.NameOfFamilyFile = foldValue(c)
		case "TEMP":
			subn.TempleCode = foldValue(c)
		case "ANCE":
			subn.AncestorGenerations = p.parseCount(c)
		case "DESC":
			subn.DescendantGenerations = p.parseCount(c)
		case "ORDI":
			subn.OrdinanceProcessFlag = foldValue(c)
		case "RIN":
			subn.RecIDNumber = foldValue(c)
		default:
			p.unknownTag(c, &subn.CustomFacts)
		}
	}
}

func (p *Parser) interpretMultimediaRecord(root *treeNode) {
	obj, ok := p.gedcom.Multimedia[root.line.XRef]
	if !ok {
		p.addWarning(Diagnostic{Message: "OBJE record with no cross-reference id ignored", Tag: root.line.Tag})
		return
	}
	p.hydrateMultimedia(obj, root)
}

// hydrateMultimedia fills a multimedia entity from its subtree. It accepts
// both the 5.5.1 shape (FILE with FORM/MEDI/TITL under it) and the 5.5
// shape (record-level FORM/TITL, BLOB, OBJE continuation).
func (p *Parser) hydrateMultimedia(obj *Multimedia, root *treeNode) {
	for _, c := range root.children {
		switch c.line.Tag {
		case "FILE":
			file := &MediaFile{Reference: foldValue(c)}
			for _, f := range c.children {
				switch f.line.Tag {
				case "FORM":
					file.Format = foldValue(f)
					for _, m := range f.children {
						if m.line.Tag == "MEDI" {
							file.MediaType = foldValue(m)
						}
					}
				case "TITL":
					file.Title = foldValue(f)
				}
			}
			obj.Files = append(obj.Files, file)
		case "FORM":
			obj.Format = foldValue(c)
		case "TITL":
			obj.Title = foldValue(c)
		case "BLOB":
			for _, b := range c.children {
				if isContinuation(b) {
					obj.Blob = append(obj.Blob, b.line.Value)
				}
			}
		case "OBJE":
			p.deferMultimedia(c.line.Value, c.line.Tag, func(m *Multimedia) { obj.ContinuedObject = m })
		default:
			if !p.parseAnnotations(&obj.Annotations, c) {
				p.unknownTag(c, &obj.CustomFacts)
			}
		}
	}
}

func (p *Parser) interpretNoteRecord(root *treeNode) {
	note, ok := p.gedcom.Notes[root.line.XRef]
	if !ok {
		p.addWarning(Diagnostic{Message: "NOTE record with no cross-reference id ignored", Tag: root.line.Tag})
		return
	}
	note.Text = foldValue(root)
	for _, c := range root.children {
		if isContinuation(c) {
			continue
		}
		switch c.line.Tag {
		case "SOUR":
			p.parseCitation(c, &note.Citations)
		default:
			if !p.parseAnnotations(&note.Annotations, c) {
				p.unknownTag(c, &note.CustomFacts)
			}
		}
	}
}

func (p *Parser) interpretSourceRecord(root *treeNode) {
	src, ok := p.gedcom.Sources[root.line.XRef]
	if !ok {
		p.addWarning(Diagnostic{Message: "SOUR record with no cross-reference id ignored", Tag: root.line.Tag})
		return
	}
	for _, c := range root.children {
		switch c.line.Tag {
		case "TITL":
			src.Title = append(src.Title, foldValue(c))
		case "AUTH":
			src.Author = append(src.Author, foldValue(c))
		case "PUBL":
			src.Publication = append(src.Publication, foldValue(c))
		case "TEXT":
			src.Text = append(src.Text, foldValue(c))
		case "ABBR":
			p.singleton(src.Abbreviation != "", c)
			src.Abbreviation = foldValue(c)
		case "DATA":
			src.EventsRecorded = p.parseSourceData(c)
		case "REPO":
			src.Repository = p.parseRepositoryCitation(c)
		default:
			if !p.parseAnnotations(&src.Annotations, c) {
				p.unknownTag(c, &src.CustomFacts)
			}
		}
	}
}

func (p *Parser) parseSourceData(n *treeNode) *SourceData {
	data := &SourceData{}
	for _, c := range n.children {
		switch c.line.Tag {
		case "EVEN":
			ev := &RecordedEvent{Types: foldValue(c)}
			for _, e := range c.children {
				switch e.line.Tag {
				case "DATE":
					ev.DatePeriod = foldValue(e)
				case "PLAC":
					ev.Jurisdiction = foldValue(e)
				}
			}
			data.Events = append(data.Events, ev)
		case "AGNC":
			data.Agency = foldValue(c)
		case "NOTE":
			p.parseNote(c, slot(&data.Notes))
		default:
			p.unknownTag(c, &data.CustomFacts)
		}
	}
	return data
}

func (p *Parser) parseRepositoryCitation(n *treeNode) *RepositoryCitation {
	cit := &RepositoryCitation{}
	if value := n.line.Value; isXRef(value) {
		p.deferRepository(value, n.line.Tag, func(r *Repository) { cit.Repository = r })
	}
	for _, c := range n.children {
		switch c.line.Tag {
		case "CALN":
			num := &CallNumber{Number: foldValue(c)}
			for _, m := range c.children {
				if m.line.Tag == "MEDI" {
					num.MediaType = foldValue(m)
				}
			}
			cit.CallNumbers = append(cit.CallNumbers, num)
		case "NOTE":
			p.parseNote(c, slot(&cit.Notes))
		}
	}
	return cit
}

func (p *Parser) interpretRepositoryRecord(root *treeNode) {
	repo, ok := p.gedcom.Repositories[root.line.XRef]
	if !ok {
		p.addWarning(Diagnostic{Message: "REPO record with no cross-reference id ignored", Tag: root.line.Tag})
		return
	}
	for _, c := range root.children {
		switch c.line.Tag {
		case "NAME":
			repo.Name = foldValue(c)
		case "ADDR":
			repo.Address = p.parseAddress(c)
		case "PHON":
			repo.PhoneNumbers = append(repo.PhoneNumbers, foldValue(c))
		case "EMAIL":
			repo.Emails = append(repo.Emails, foldValue(c))
		default:
			if !p.parseAnnotations(&repo.Annotations, c) {
				p.unknownTag(c, &repo.CustomFacts)
			}
		}
	}
}

func (p *Parser) interpretTrailer(root *treeNode) {
	p.gedcom.Trailer = &Trailer{}
}

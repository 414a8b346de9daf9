package gedcom

// Tag sets for the event and attribute families on INDI records. Built
// once; EVEN is the generic event.
var individualEventTags = map[string]bool{
	"BIRT": true, "CHR": true, "DEAT": true, "BURI": true, "CREM": true,
	"ADOP": true, "BAPM": true, "BARM": true, "BASM": true, "BLES": true,
	"CHRA": true, "CONF": true, "FCOM": true, "ORDN": true, "NATU": true,
	"EMIG": true, "IMMI": true, "CENS": true, "PROB": true, "WILL": true,
	"GRAD": true, "RETI": true, "EVEN": true,
}

var individualAttributeTags = map[string]bool{
	"CAST": true, "DSCR": true, "EDUC": true, "IDNO": true, "NATI": true,
	"NCHI": true, "NMR": true, "OCCU": true, "PROP": true, "RELI": true,
	"RESI": true, "SSN": true, "TITL": true, "FACT": true,
}

func (p *Parser) interpretIndividualRecord(root *treeNode) {
	ind, ok := p.gedcom.Individuals[root.line.XRef]
	if !ok {
		p.addWarning(Diagnostic{Message: "INDI record with no cross-reference id ignored", Tag: root.line.Tag})
		return
	}
	for _, c := range root.children {
		p.parseIndividualChild(ind, c)
	}
}

func (p *Parser) parseIndividualChild(ind *Individual, c *treeNode) {
	tag := c.line.Tag
	switch {
	case tag == "NAME":
		ind.Names = append(ind.Names, p.parsePersonalName(c))
	case tag == "SEX":
		p.singleton(ind.Sex != "", c)
		ind.Sex = foldValue(c)
	case tag == "RESN":
		ind.RestrictionNotice = foldValue(c)
	case tag == "FAMC":
		p.parseFamilyChildLink(ind, c)
	case tag == "FAMS":
		p.parseFamilySpouseLink(ind, c)
	case tag == "ASSO":
		p.parseAssociation(ind, c)
	case tag == "ALIA":
		ind.Aliases = append(ind.Aliases, foldValue(c))
	case tag == "ANCI":
		p.deferSubmitter(c.line.Value, tag, slot(&ind.AncestorInterest))
	case tag == "DESI":
		p.deferSubmitter(c.line.Value, tag, slot(&ind.DescendantInterest))
	case tag == "RFN":
		ind.PermanentRecFileNumber = foldValue(c)
	case tag == "AFN":
		ind.AncestralFileNumber = foldValue(c)
	case individualAttributeTags[tag]:
		ind.Attributes = append(ind.Attributes, p.parseIndividualAttribute(c))
	case individualEventTags[tag]:
		ind.Events = append(ind.Events, p.parseIndividualEvent(c))
	default:
		if !p.parseAnnotations(&ind.Annotations, c) {
			p.unknownTag(c, &ind.CustomFacts)
		}
	}
}

// parsePersonalName hydrates a NAME structure. The basic form keeps the
// value exactly as written, slashes included.
func (p *Parser) parsePersonalName(n *treeNode) *PersonalName {
	name := &PersonalName{Basic: foldValue(n)}
	for _, c := range n.children {
		if isContinuation(c) {
			continue
		}
		switch c.line.Tag {
		case "NPFX":
			name.Prefix = foldValue(c)
		case "GIVN":
			name.Given = foldValue(c)
		case "NICK":
			name.Nickname = foldValue(c)
		case "SPFX":
			name.SurnamePrefix = foldValue(c)
		case "SURN":
			name.Surname = foldValue(c)
		case "NSFX":
			name.Suffix = foldValue(c)
		case "NOTE":
			p.parseNote(c, slot(&name.Notes))
		case "SOUR":
			p.parseCitation(c, &name.Citations)
		default:
			p.unknownTag(c, &name.CustomFacts)
		}
	}
	return name
}

func (p *Parser) parseIndividualEvent(n *treeNode) *IndividualEvent {
	ev := &IndividualEvent{Tag: n.line.Tag, Value: foldValue(n)}
	for _, c := range n.children {
		if isContinuation(c) {
			continue
		}
		if c.line.Tag == "FAMC" {
			xref := c.line.Value
			p.deferFamily(xref, c.line.Tag, func(f *Family) { ev.ChildFamily = f })
			continue
		}
		if !p.parseEventDetail(&ev.EventDetail, c) {
			p.unknownTag(c, &ev.CustomFacts)
		}
	}
	return ev
}

func (p *Parser) parseIndividualAttribute(n *treeNode) *IndividualAttribute {
	attr := &IndividualAttribute{Tag: n.line.Tag, Value: foldValue(n)}
	for _, c := range n.children {
		if isContinuation(c) {
			continue
		}
		if !p.parseEventDetail(&attr.EventDetail, c) {
			p.unknownTag(c, &attr.CustomFacts)
		}
	}
	return attr
}

func (p *Parser) parseFamilyChildLink(ind *Individual, n *treeNode) {
	link := &FamilyChild{}
	ind.FamiliesWhereChild = append(ind.FamiliesWhereChild, link)
	p.deferFamily(n.line.Value, n.line.Tag, func(f *Family) { link.Family = f })
	for _, c := range n.children {
		switch c.line.Tag {
		case "PEDI":
			link.Pedigree = foldValue(c)
		case "STAT":
			link.Status = foldValue(c)
		case "NOTE":
			p.parseNote(c, slot(&link.Notes))
		default:
			p.unknownTag(c, &link.CustomFacts)
		}
	}
}

func (p *Parser) parseFamilySpouseLink(ind *Individual, n *treeNode) {
	link := &FamilySpouse{}
	ind.FamiliesWhereSpouse = append(ind.FamiliesWhereSpouse, link)
	p.deferFamily(n.line.Value, n.line.Tag, func(f *Family) { link.Family = f })
	for _, c := range n.children {
		switch c.line.Tag {
		case "NOTE":
			p.parseNote(c, slot(&link.Notes))
		default:
			p.unknownTag(c, &link.CustomFacts)
		}
	}
}

func (p *Parser) parseAssociation(ind *Individual, n *treeNode) {
	assoc := &Association{}
	ind.Associations = append(ind.Associations, assoc)
	p.deferIndividual(n.line.Value, n.line.Tag, func(i *Individual) { assoc.Individual = i })
	for _, c := range n.children {
		switch c.line.Tag {
		case "RELA":
			assoc.Relationship = foldValue(c)
		case "NOTE":
			p.parseNote(c, slot(&assoc.Notes))
		case "SOUR":
			p.parseCitation(c, &assoc.Citations)
		default:
			p.unknownTag(c, &assoc.CustomFacts)
		}
	}
}

package gedcom

var familyEventTags = map[string]bool{
	"ANUL": true, "CENS": true, "DIV": true, "DIVF": true, "ENGA": true,
	"MARB": true, "MARC": true, "MARR": true, "MARL": true, "MARS": true,
	"RESI": true, "EVEN": true,
}

// familySeen tracks the singleton reference tags already encountered on
// one FAM record. The struct fields themselves stay nil until pending
// references resolve, so cardinality cannot be checked against them.
type familySeen struct {
	husband bool
	wife    bool
}

func (p *Parser) interpretFamilyRecord(root *treeNode) {
	fam, ok := p.gedcom.Families[root.line.XRef]
	if !ok {
		p.addWarning(Diagnostic{Message: "FAM record with no cross-reference id ignored", Tag: root.line.Tag})
		return
	}
	var seen familySeen
	for _, c := range root.children {
		p.parseFamilyChild(fam, c, &seen)
	}
}

func (p *Parser) parseFamilyChild(fam *Family, c *treeNode, seen *familySeen) {
	tag := c.line.Tag
	switch {
	case tag == "HUSB":
		p.singleton(seen.husband, c)
		seen.husband = true
		// Pending refs resolve in registration order, so the last-seen
		// xref assigns last and wins.
		p.deferIndividual(c.line.Value, tag, func(i *Individual) { fam.Husband = i })
	case tag == "WIFE":
		p.singleton(seen.wife, c)
		seen.wife = true
		p.deferIndividual(c.line.Value, tag, func(i *Individual) { fam.Wife = i })
	case tag == "CHIL":
		p.deferIndividual(c.line.Value, tag, slot(&fam.Children))
	case tag == "NCHI":
		fam.NumChildren = p.parseCount(c)
	case tag == "SUBM":
		p.deferSubmitter(c.line.Value, tag, slot(&fam.Submitters))
	case tag == "RESN":
		fam.RestrictionNotice = foldValue(c)
	case familyEventTags[tag]:
		fam.Events = append(fam.Events, p.parseFamilyEvent(c))
	default:
		if !p.parseAnnotations(&fam.Annotations, c) {
			p.unknownTag(c, &fam.CustomFacts)
		}
	}
}

func (p *Parser) parseFamilyEvent(n *treeNode) *FamilyEvent {
	ev := &FamilyEvent{Tag: n.line.Tag, Value: foldValue(n)}
	for _, c := range n.children {
		if isContinuation(c) {
			continue
		}
		switch c.line.Tag {
		case "HUSB":
			ev.HusbandAge = eventSpouseAge(c)
		case "WIFE":
			ev.WifeAge = eventSpouseAge(c)
		default:
			if !p.parseEventDetail(&ev.EventDetail, c) {
				p.unknownTag(c, &ev.CustomFacts)
			}
		}
	}
	return ev
}

// eventSpouseAge reads the AGE under a HUSB/WIFE structure inside a family
// event.
func eventSpouseAge(n *treeNode) string {
	for _, c := range n.children {
		if c.line.Tag == "AGE" {
			return foldValue(c)
		}
	}
	return ""
}

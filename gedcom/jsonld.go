package gedcom

import (
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/piprate/json-gold/ld"
)

// JSON-LD export of a parsed graph. Individuals and families become nodes
// in one @graph, with family links expressed as node references, and the
// whole document is compacted against a genealogy context.

var jsonldContext = map[string]any{
	"@vocab": "https://terms.gedcomkit.dev/v1/",
	"gedcom": "https://terms.gedcomkit.dev/v1/id/",
	"spouseIn": map[string]any{
		"@id":   "https://terms.gedcomkit.dev/v1/spouseIn",
		"@type": "@id",
	},
	"childIn": map[string]any{
		"@id":   "https://terms.gedcomkit.dev/v1/childIn",
		"@type": "@id",
	},
	"husband": map[string]any{
		"@id":   "https://terms.gedcomkit.dev/v1/husband",
		"@type": "@id",
	},
	"wife": map[string]any{
		"@id":   "https://terms.gedcomkit.dev/v1/wife",
		"@type": "@id",
	},
	"child": map[string]any{
		"@id":   "https://terms.gedcomkit.dev/v1/child",
		"@type": "@id",
	},
}

// ExportJSONLD writes the individuals and families of g as a compacted
// JSON-LD document.
func ExportJSONLD(g *Gedcom, w io.Writer) error {
	doc := buildJSONLDDocument(g)

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	compacted, err := proc.Compact(doc, map[string]any{"@context": jsonldContext}, opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(compacted)
}

func buildJSONLDDocument(g *Gedcom) map[string]any {
	graph := []any{}
	for _, xref := range sortedKeys(g.Individuals) {
		graph = append(graph, individualNode(g.Individuals[xref]))
	}
	for _, xref := range sortedKeys(g.Families) {
		graph = append(graph, familyNode(g.Families[xref]))
	}
	return map[string]any{
		"@context": jsonldContext,
		"@graph":   graph,
	}
}

func individualNode(ind *Individual) map[string]any {
	node := map[string]any{
		"@id":   jsonldID(ind.XRef),
		"@type": "Individual",
	}
	if len(ind.Names) > 0 {
		var names []any
		for _, n := range ind.Names {
			names = append(names, n.Basic)
		}
		node["name"] = names
	}
	if ind.Sex != "" {
		node["sex"] = ind.Sex
	}
	var spouseIn []any
	for _, link := range ind.FamiliesWhereSpouse {
		if link.Family != nil {
			spouseIn = append(spouseIn, jsonldID(link.Family.XRef))
		}
	}
	if len(spouseIn) > 0 {
		node["spouseIn"] = spouseIn
	}
	var childIn []any
	for _, link := range ind.FamiliesWhereChild {
		if link.Family != nil {
			childIn = append(childIn, jsonldID(link.Family.XRef))
		}
	}
	if len(childIn) > 0 {
		node["childIn"] = childIn
	}
	return node
}

func familyNode(fam *Family) map[string]any {
	node := map[string]any{
		"@id":   jsonldID(fam.XRef),
		"@type": "Family",
	}
	if fam.Husband != nil {
		node["husband"] = jsonldID(fam.Husband.XRef)
	}
	if fam.Wife != nil {
		node["wife"] = jsonldID(fam.Wife.XRef)
	}
	var children []any
	for _, c := range fam.Children {
		if c != nil {
			children = append(children, jsonldID(c.XRef))
		}
	}
	if len(children) > 0 {
		node["child"] = children
	}
	return node
}

func jsonldID(xref string) string {
	return "gedcom:" + strings.Trim(xref, "@")
}

func sortedKeys[T any](m map[string]*T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

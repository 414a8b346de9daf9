package gedcom

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseFamilyFixture(t *testing.T) {
	p := NewParser()
	g, err := p.ParseFile(filepath.Join("testdata", "family.ged"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors)
	}
	if len(p.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", p.Warnings)
	}

	if len(g.Individuals) != 3 {
		t.Errorf("individuals = %d, want 3", len(g.Individuals))
	}
	if len(g.Families) != 1 {
		t.Errorf("families = %d, want 1", len(g.Families))
	}
	if len(g.Sources) != 1 || len(g.Multimedia) != 1 || len(g.Notes) != 1 || len(g.Repositories) != 1 {
		t.Errorf("record counts wrong: sources=%d multimedia=%d notes=%d repositories=%d",
			len(g.Sources), len(g.Multimedia), len(g.Notes), len(g.Repositories))
	}

	if g.Submitter == nil || g.Submitter.Name != "H. Eichmann" {
		t.Fatalf("submitter = %+v, want H. Eichmann", g.Submitter)
	}

	sys := g.Header.SourceSystem
	if sys == nil || sys.VersionNum != "6.00" {
		t.Fatalf("source system = %+v, want version 6.00", sys)
	}
	if sys.Corporation == nil || len(sys.Corporation.PhoneNumbers) == 0 ||
		sys.Corporation.PhoneNumbers[0] != "(510) 794-6850" {
		t.Fatalf("corporation = %+v", sys.Corporation)
	}

	fam := g.Families["@F1@"]
	if fam == nil {
		t.Fatal("family @F1@ missing")
	}
	if len(fam.Children) != 1 || fam.Children[0] == nil {
		t.Fatalf("children = %+v, want 1 resolved child", fam.Children)
	}
	if fam.Husband == nil || fam.Husband.Names[0].Basic != "Lawrence Henry /Barnett/" {
		t.Fatalf("husband = %+v", fam.Husband)
	}
	if fam.Wife == nil || fam.Wife.Names[0].Basic != "Velma //" {
		t.Fatalf("wife = %+v", fam.Wife)
	}
	if fam.NumChildren == nil || *fam.NumChildren != 1 {
		t.Fatalf("NumChildren = %v, want 1", fam.NumChildren)
	}

	// The child's spouse/child links point back into the same maps.
	child := fam.Children[0]
	if len(child.FamiliesWhereChild) != 1 || child.FamiliesWhereChild[0].Family != fam {
		t.Fatal("child's FAMC link does not resolve to the same family")
	}
	if len(fam.Husband.FamiliesWhereSpouse) != 1 || fam.Husband.FamiliesWhereSpouse[0].Family != fam {
		t.Fatal("husband's FAMS link does not resolve to the same family")
	}

	src := g.Sources["@S1@"]
	if src == nil || len(src.Title) != 1 || src.Title[0] != "William Barnett Family.FTW" {
		t.Fatalf("source = %+v", src)
	}
	if src.Repository == nil || src.Repository.Repository == nil ||
		src.Repository.Repository.Name != "Warrick County Library" {
		t.Fatalf("repository citation = %+v", src.Repository)
	}

	note := g.Notes["@N1@"]
	want := "This is a note that continues\nacross multiple lines and is concatenated too."
	if note == nil || note.Text != want {
		t.Fatalf("note text = %q, want %q", note.Text, want)
	}

	// The marriage cites the source through an event detail.
	marr := fam.Events[0]
	if marr.Tag != "MARR" || marr.Place == nil || marr.Place.Name != "Indiana" {
		t.Fatalf("marriage = %+v", marr)
	}
	if len(marr.Citations) != 1 || marr.Citations[0].Source != src ||
		marr.Citations[0].Page != "42" {
		t.Fatalf("marriage citation = %+v", marr.Citations)
	}

	// The custom _UID fact is preserved on the individual.
	husb := fam.Husband
	if len(husb.CustomFacts) != 1 || husb.CustomFacts[0].Tag != "_UID" || husb.CustomFacts[0].Value != "12345" {
		t.Fatalf("custom facts = %+v", husb.CustomFacts)
	}

	if g.Submission == nil || g.Submission.Submitter != g.Submitter {
		t.Fatalf("submission = %+v", g.Submission)
	}
	if g.Submission.AncestorGenerations == nil || *g.Submission.AncestorGenerations != 2 {
		t.Fatalf("ancestor generations = %v", g.Submission.AncestorGenerations)
	}
	if g.Trailer == nil {
		t.Fatal("trailer missing")
	}
}

func TestParseCRLFAndLFAgree(t *testing.T) {
	p1 := NewParser()
	lf, err := p1.ParseFile(filepath.Join("testdata", "family.ged"))
	if err != nil {
		t.Fatalf("lf: %v", err)
	}
	p2 := NewParser()
	crlf, err := p2.ParseFile(filepath.Join("testdata", "family_crlf.ged"))
	if err != nil {
		t.Fatalf("crlf: %v", err)
	}
	if !reflect.DeepEqual(lf, crlf) {
		t.Fatal("LF and CRLF fixtures produced different graphs")
	}
}

func TestParseIdempotent(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "family.ged"))
	if err != nil {
		t.Fatal(err)
	}
	first, err := NewParser().Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := NewParser().Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("parsing the same bytes twice produced different graphs")
	}
}

func TestParseDanglingReference(t *testing.T) {
	p := NewParser()
	g, err := p.ParseFile(filepath.Join("testdata", "dangling.ged"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Errors) == 0 {
		t.Fatal("expected dangling cross-reference error")
	}
	found := false
	for _, d := range p.Errors {
		if strings.Contains(d.Message, "dangling cross-reference") && d.XRef == "@F99@" {
			found = true
		}
	}
	if !found {
		t.Fatalf("no dangling error for @F99@ in %v", p.Errors)
	}
	ind := g.Individuals["@I1@"]
	if ind == nil || len(ind.FamiliesWhereSpouse) != 1 {
		t.Fatalf("individual = %+v", ind)
	}
	if ind.FamiliesWhereSpouse[0].Family != nil {
		t.Fatal("dangling link must stay unresolved")
	}
}

func TestParseHeadTrailerOnly(t *testing.T) {
	p := NewParser()
	g, err := p.Parse(strings.NewReader("0 HEAD\n1 CHAR ASCII\n0 TRLR\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Individuals)+len(g.Families)+len(g.Sources)+len(g.Notes) != 0 {
		t.Fatal("expected empty maps")
	}
}

func TestParseEmptyInputMissingHead(t *testing.T) {
	p := NewParser()
	_, err := p.Parse(strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error")
	}
	if Code(err) != ErrCodeMissingHead {
		t.Fatalf("got code %q, want %q", Code(err), ErrCodeMissingHead)
	}
}

func TestParseMissingHeadRecord(t *testing.T) {
	p := NewParser()
	_, err := p.Parse(strings.NewReader("0 @X@ INDI\n0 TRLR\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if !errors.Is(err, ErrMissingHead) {
		t.Fatalf("got %v, want ErrMissingHead", err)
	}
}

func TestParseCancellation(t *testing.T) {
	p := NewParser()
	p.Cancel()
	_, err := p.Parse(strings.NewReader("0 HEAD\n1 CHAR ASCII\n0 TRLR\n"))
	if Code(err) != ErrCodeCancelled {
		t.Fatalf("got code %q (%v), want %q", Code(err), err, ErrCodeCancelled)
	}
}

func TestParseFatalCarriesDiagnostics(t *testing.T) {
	p := NewParser()
	// Leading whitespace records a warning before the missing trailer
	// turns fatal.
	_, err := p.Parse(strings.NewReader("0 HEAD\n  1 CHAR ASCII\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if len(parseErr.Warnings) == 0 {
		t.Fatal("fatal error should carry accumulated warnings")
	}
}

func TestParseUTF16WithBOM(t *testing.T) {
	content := "0 HEAD\r\n1 CHAR UNICODE\r\n0 TRLR\r\n"
	for _, c := range []struct {
		name string
		data []byte
	}{
		{"little endian", append([]byte{0xFF, 0xFE}, encodeUTF16LE(content)...)},
		{"big endian", append([]byte{0xFE, 0xFF}, encodeUTF16BE(content)...)},
	} {
		p := NewParser()
		g, err := p.Parse(strings.NewReader(string(c.data)))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if g.Header.CharacterSet == nil || g.Header.CharacterSet.Value != "UNICODE" {
			t.Fatalf("%s: character set = %+v", c.name, g.Header.CharacterSet)
		}
	}
}

func TestParseUTF16WithoutBOM(t *testing.T) {
	content := "0 HEAD\r\n1 CHAR UNICODE\r\n0 TRLR\r\n"
	p := NewParser()
	if _, err := p.Parse(strings.NewReader(string(encodeUTF16LE(content)))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseUTF8BOMWithoutChar(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("0 HEAD\n0 TRLR\n")...)
	p := NewParser()
	if _, err := p.Parse(strings.NewReader(string(data))); err != nil {
		t.Fatalf("BOM alone must select the encoding: %v", err)
	}
}

func TestParseBOMBeatsCharDeclaration(t *testing.T) {
	content := "0 HEAD\r\n1 CHAR UTF-8\r\n0 TRLR\r\n"
	data := append([]byte{0xFF, 0xFE}, encodeUTF16LE(content)...)
	p := NewParser()
	if _, err := p.Parse(strings.NewReader(string(data))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Warnings) == 0 {
		t.Fatal("expected a warning for CHAR vs BOM mismatch")
	}
}

func TestParseDuplicateXref(t *testing.T) {
	input := `0 HEAD
1 CHAR ASCII
0 @I1@ INDI
1 NAME First /Wins/
0 @I1@ INDI
1 NAME Second /Loses/
0 TRLR
`
	p := NewParser()
	g, err := p.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Errors) == 0 {
		t.Fatal("expected duplicate xref error")
	}
	if len(g.Individuals) != 1 {
		t.Fatalf("individuals = %d, want 1", len(g.Individuals))
	}
}

func TestParseObserversSeeRecords(t *testing.T) {
	var seen []string
	p := NewParser(OptParseObserver(func(e ParseProgressEvent) {
		if !e.Complete {
			seen = append(seen, e.Tag)
		}
	}))
	if _, err := p.ParseFile(filepath.Join("testdata", "dangling.ged")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"HEAD", "INDI", "TRLR"}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("observed %v, want %v", seen, want)
	}
}

func TestParserReusableAcrossParses(t *testing.T) {
	p := NewParser()
	if _, err := p.ParseFile(filepath.Join("testdata", "dangling.ged")); err != nil {
		t.Fatalf("first: %v", err)
	}
	if len(p.Errors) == 0 {
		t.Fatal("first parse should record the dangling error")
	}
	if _, err := p.ParseFile(filepath.Join("testdata", "family.ged")); err != nil {
		t.Fatalf("second: %v", err)
	}
	if len(p.Errors) != 0 {
		t.Fatalf("diagnostics must reset between parses: %v", p.Errors)
	}
}

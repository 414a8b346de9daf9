package gedcom

// Gedcom is the root of a parsed document. The per-kind maps own every
// record; all cross-links between records are plain pointers into these
// maps and share the root's lifetime.
type Gedcom struct {
	Header     *Header
	Submission *Submission
	Trailer    *Trailer

	Individuals  map[string]*Individual
	Families     map[string]*Family
	Multimedia   map[string]*Multimedia
	Notes        map[string]*Note
	Sources      map[string]*Source
	Repositories map[string]*Repository
	Submitters   map[string]*Submitter

	// Submitter is the document's principal submitter, the one the header
	// points at (or the only one in the file).
	Submitter *Submitter
}

// NewGedcom returns an empty document with all record maps allocated.
func NewGedcom() *Gedcom {
	return &Gedcom{
		Header:       &Header{},
		Individuals:  map[string]*Individual{},
		Families:     map[string]*Family{},
		Multimedia:   map[string]*Multimedia{},
		Notes:        map[string]*Note{},
		Sources:      map[string]*Source{},
		Repositories: map[string]*Repository{},
		Submitters:   map[string]*Submitter{},
	}
}

// Header corresponds to the HEAD record.
type Header struct {
	SourceSystem   *SourceSystem
	Destination    string
	Date           string
	Time           string
	Submitter      *Submitter
	Submission     *Submission
	FileName       string
	Copyright      []string
	GedcomVersion  *GedcomVersion
	CharacterSet   *CharacterSet
	Language       string
	PlaceHierarchy string
	Notes          []*Note
	CustomFacts    []*CustomFact
}

// SourceSystem describes the system that produced the file (HEAD.SOUR).
type SourceSystem struct {
	SystemID    string
	VersionNum  string
	ProductName string
	Corporation *Corporation
	SourceData  *HeaderSourceData
}

// Corporation is the business that produces the source system.
type Corporation struct {
	BusinessName string
	Address      *Address
	PhoneNumbers []string
	Emails       []string
}

// HeaderSourceData describes the data source of the producing system.
type HeaderSourceData struct {
	Name        string
	PublishDate string
	Copyright   string
}

// GedcomVersion holds HEAD.GEDC.
type GedcomVersion struct {
	Version string
	Form    string
}

// CharacterSet holds HEAD.CHAR.
type CharacterSet struct {
	Value   string
	Version string
}

// Submission corresponds to the SUBN record.
type Submission struct {
	XRef                  string
	Submitter             *Submitter
	NameOfFamilyFile      string
	TempleCode            string
	AncestorGenerations   *int
	DescendantGenerations *int
	OrdinanceProcessFlag  string
	RecIDNumber           string
	CustomFacts           []*CustomFact
}

// Trailer corresponds to the TRLR record, which carries no data.
type Trailer struct{}

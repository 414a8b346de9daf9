package gedcom

// Annotations collects the substructures that nearly every record kind
// shares: notes, source citations, multimedia links, user reference
// numbers, the automated record id, the change date, and any custom facts.
// It is embedded by value into each record type.
type Annotations struct {
	Notes          []*Note
	Citations      []*Citation
	Multimedia     []*Multimedia
	UserReferences []*UserReference
	RecIDNumber    string
	ChangeDate     *ChangeDate
	CustomFacts    []*CustomFact
}

// Address corresponds to an ADDR structure. Lines preserves the raw
// address value with its continuations; the named fields hold the
// structured subtags when present.
type Address struct {
	Lines      []string
	Addr1      string
	Addr2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// ChangeDate corresponds to a CHAN structure.
type ChangeDate struct {
	Date  string
	Time  string
	Notes []*Note
}

// UserReference corresponds to a REFN structure.
type UserReference struct {
	Number string
	Type   string
}

// CustomFact preserves a tag the interpreter does not recognize, with its
// whole substructure, so no user-supplied data is lost.
type CustomFact struct {
	Tag      string
	XRef     string
	Value    string
	Children []*CustomFact
}

// Citation is a source citation: either a link to a Source record or an
// inline source description.
type Citation struct {
	Source      *Source
	Description string
	Page        string
	EventCited  string
	Role        string
	Certainty   *int
	Data        []*CitationData
	Notes       []*Note
	Multimedia  []*Multimedia
	CustomFacts []*CustomFact
}

// CitationData is a DATA structure under a source citation.
type CitationData struct {
	EntryDate  string
	SourceText []string
}

// PersonalName corresponds to a NAME structure on an individual. Basic is
// the unparsed name as it appears in the file, slashes included.
type PersonalName struct {
	Basic         string
	Prefix        string
	Given         string
	Nickname      string
	SurnamePrefix string
	Surname       string
	Suffix        string
	Annotations
}

// Place corresponds to a PLAC structure.
type Place struct {
	Name        string
	Notes       []*Note
	Citations   []*Citation
	CustomFacts []*CustomFact
}

// EventDetail carries the substructures common to individual and family
// events and to individual attributes.
type EventDetail struct {
	Type                 string
	Date                 string
	Place                *Place
	Address              *Address
	PhoneNumbers         []string
	Agency               string
	Cause                string
	Age                  string
	ReligiousAffiliation string
	Annotations
}

// IndividualEvent is one event (BIRT, DEAT, ...) on an individual. Tag
// records which event it is; Value carries the optional "Y" or descriptive
// payload on the event line itself.
type IndividualEvent struct {
	Tag   string
	Value string
	// ChildFamily links BIRT/CHR/ADOP events to the family they occurred
	// in, when a FAMC subtag is present.
	ChildFamily *Family
	EventDetail
}

// IndividualAttribute is one attribute (OCCU, RESI, ...) on an individual.
type IndividualAttribute struct {
	Tag   string
	Value string
	EventDetail
}

// FamilyEvent is one event (MARR, DIV, ...) on a family.
type FamilyEvent struct {
	Tag        string
	Value      string
	HusbandAge string
	WifeAge    string
	EventDetail
}

// FamilyChild links an individual to a family they are a child in (FAMC).
type FamilyChild struct {
	Family            *Family
	Pedigree          string
	Status            string
	Notes             []*Note
	CustomFacts       []*CustomFact
}

// FamilySpouse links an individual to a family they are a spouse in (FAMS).
type FamilySpouse struct {
	Family      *Family
	Notes       []*Note
	CustomFacts []*CustomFact
}

// Association corresponds to an ASSO structure on an individual.
type Association struct {
	Individual   *Individual
	Relationship string
	Notes        []*Note
	Citations    []*Citation
	CustomFacts  []*CustomFact
}

package gedcom

// Individual corresponds to an INDI record.
type Individual struct {
	XRef                string
	RestrictionNotice   string
	Names               []*PersonalName
	Sex                 string
	Events              []*IndividualEvent
	Attributes          []*IndividualAttribute
	FamiliesWhereChild  []*FamilyChild
	FamiliesWhereSpouse []*FamilySpouse
	Associations        []*Association
	Aliases             []string
	AncestorInterest    []*Submitter
	DescendantInterest  []*Submitter
	PermanentRecFileNumber string
	AncestralFileNumber    string
	Annotations
}

// Family corresponds to a FAM record.
type Family struct {
	XRef              string
	RestrictionNotice string
	Husband           *Individual
	Wife              *Individual
	Children          []*Individual
	NumChildren       *int
	Events            []*FamilyEvent
	Submitters        []*Submitter
	Annotations
}

// Multimedia corresponds to an OBJE record. Files is the 5.5.1 shape;
// Blob carries 5.5 embedded media lines when present.
type Multimedia struct {
	XRef  string
	Files []*MediaFile
	// 5.5 fields
	Format string
	Title  string
	Blob   []string
	ContinuedObject *Multimedia
	Annotations
}

// MediaFile is one FILE structure under a 5.5.1 multimedia record.
type MediaFile struct {
	Reference string
	Format    string
	MediaType string
	Title     string
}

// Note corresponds to a NOTE record, or an inline note substructure.
type Note struct {
	XRef string
	Text string
	Annotations
}

// Source corresponds to a SOUR record.
type Source struct {
	XRef             string
	Title            []string
	Author           []string
	Publication      []string
	Text             []string
	Abbreviation     string
	EventsRecorded   *SourceData
	Repository       *RepositoryCitation
	Annotations
}

// SourceData holds SOUR.DATA on a source record.
type SourceData struct {
	Events      []*RecordedEvent
	Agency      string
	Notes       []*Note
	CustomFacts []*CustomFact
}

// RecordedEvent is one EVEN structure under SOUR.DATA.
type RecordedEvent struct {
	Types        string
	DatePeriod   string
	Jurisdiction string
}

// RepositoryCitation is a REPO link (with call numbers) on a source record.
type RepositoryCitation struct {
	Repository  *Repository
	CallNumbers []*CallNumber
	Notes       []*Note
}

// CallNumber is a CALN structure under a repository citation.
type CallNumber struct {
	Number    string
	MediaType string
}

// Repository corresponds to a REPO record.
type Repository struct {
	XRef         string
	Name         string
	Address      *Address
	PhoneNumbers []string
	Emails       []string
	Annotations
}

// Submitter corresponds to a SUBM record.
type Submitter struct {
	XRef                string
	Name                string
	Address             *Address
	PhoneNumbers        []string
	Emails              []string
	LanguagePreferences []string
	RegFileNumber       string
	Annotations
}

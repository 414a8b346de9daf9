// Package gedcom reads GEDCOM 5.5/5.5.1 genealogical data into an
// in-memory object model.
//
// It focuses on tolerant, diagnostics-rich parsing of real-world files:
//   - Encoding detection over ASCII, ANSEL, UTF-8, UTF-16LE and UTF-16BE,
//     with or without byte-order marks.
//   - Line terminator normalization across \r, \n, \r\n and \n\r.
//   - A two-pass interpreter that resolves forward cross-references into
//     direct links between records.
//   - Structured, non-aborting diagnostics: recoverable issues accumulate
//     as errors and warnings; only truly fatal conditions fail the parse.
//
// Example:
//
//	p := gedcom.NewParser()
//	g, err := p.ParseFile("family.ged")
//	if err != nil {
//	    // handle error; gedcom.Code(err) gives the error class
//	}
//	for xref, ind := range g.Individuals {
//	    // process ind.Names, ind.Events, ind.FamiliesWhereSpouse, ...
//	    _ = xref
//	}
//	for _, w := range p.Warnings {
//	    // inspect recoverable issues
//	    _ = w
//	}
//
// A parse can be observed (OptFileObserver, OptParseObserver) and
// cancelled from another goroutine (OptCancelFlag or Parser.Cancel);
// cancellation surfaces as ErrCancelled.
//
// Serialization back to GEDCOM text, date interpretation, and graph
// validation are out of scope for this package.
package gedcom

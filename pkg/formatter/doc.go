// Package formatter dispatches an ordered sequence of commands against a
// book.Document.
//
// There are three actions:
//
//	display    writes the content (console or reverse)
//	print      writes a header line, then the content (console or reverse)
//	serialize  returns the document as JSON or XML and stops the run
//
// Commands are processed strictly in order. The first serialize command ends
// the run and its text is the result; commands after it are never looked at.
// An unrecognized mode aborts the run with an INVALID_MODE error whose
// message reads "Unknown <action> type: <mode>". Console output written
// before the failing command stays written.
package formatter

// Package rename turns an existing MP3 filename into a normalized one.
//
// A FileName is parsed according to an input model.Format, split on a set
// of single-character delimiters, and re-assembled according to an output
// model.Format:
//
//	in, _ := model.ParseFormat([]string{"artist", "number", "title"})
//	f := rename.New("bob dylan-5-i want you.mp3", rename.Options{
//	    Format:     in,
//	    Separators: "-",
//	})
//	name, ok, err := f.Rename()
//	// name = "Bob Dylan - 05 - I Want You.mp3", ok = true
//
// # Delimiters
//
// Options.Separators is a set, not a literal. "-_" splits on '-' and on '_'
// independently; it never looks for the two character sequence "-_".
//
// # Results
//
// Rename reports three outcomes:
//   - ok == false, err == nil: the name has no accepted suffix; leave the file alone
//   - err != nil: the name does not match the declared format (ErrMalformedInput)
//   - otherwise: the new name, always ending in ".mp3"
//
// Everything in this package is a pure function of its inputs and is safe
// to call from multiple goroutines.
package rename

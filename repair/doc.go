// Package repair normalizes text extracted from PDF content streams.
//
// PDF extraction frequently loses inter-word spacing: glyph runs are
// positioned individually, so "words of the book" can come out as
// "wordsof theBook". [Engine] applies a fixed sequence of boundary
// heuristics that reinsert the most common lost spaces:
//
//  1. a space between a lowercase letter and an uppercase letter
//  2. a space between terminal punctuation (. ! ?) and an uppercase letter
//  3. spaces around a short connective word glued between a lowercase
//     letter and an uppercase letter
//  4. a space between a lowercase letter and a digit
//  5. runs of whitespace collapsed to a single space
//
// The rules are deliberately literal. Rule 1 also splits mixed-case
// identifiers and camel-cased acronyms; that is accepted behavior, not a
// defect to compensate for here. Repair is idempotent: applying it to its
// own output changes nothing.
package repair

// Package xmlerr reports the structural errors the XML definition parser
// treats as fatal. Modeled on the teacher's internal/errors.CompilerError:
// a message plus enough positional context to print a useful diagnostic,
// without pulling in a source-position tracker the XML format doesn't have.
package xmlerr

import "fmt"

// StructuralError is a fatal parse error: an element under classdef that is
// neither enumeration nor dynamic, or a member tag that is neither
// property, method, nor the indexer marker. Content corruption (colon
// splits, digit-prefixed names, comma splits) is never reported through
// this type; it is detected and repaired by the recovery engine instead.
type StructuralError struct {
	Path    string // e.g. "package/classdef[3]/elements"
	Element string // offending element or attribute name, if known
	Message string
}

func (e *StructuralError) Error() string {
	return e.Format()
}

// Format renders the error for CLI display.
func (e *StructuralError) Format() string {
	if e.Element != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Path, e.Message, e.Element)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// New builds a StructuralError.
func New(path, element, message string) *StructuralError {
	return &StructuralError{Path: path, Element: element, Message: message}
}

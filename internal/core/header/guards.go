// Package header contains the pure classification rules deciding whether a C++
// header declares a class PythonQt can wrap.
// Guards are pure functions over the file name and raw header text. They match
// text patterns and never parse C++.
package header

import (
	"fmt"
	"strings"

	"github.com/example/pythonqtwrapper/internal/core/binding"
)

// MetaObjectMarker is the macro a class must declare to take part in Qt's meta-object system.
const MetaObjectMarker = "Q_OBJECT"

// Reason identifies why a header was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNotRegularHeader
	ReasonPimplHeader
	ReasonMissingMetaObjectMarker
	ReasonNoEligibleConstructor
	ReasonPureVirtualMethod
	ReasonUnknownParentClass
	ReasonUnreadable
)

var reasonText = map[Reason]string{
	ReasonNone:                    "accepted",
	ReasonNotRegularHeader:        "not a regular header",
	ReasonPimplHeader:             "private-implementation header (*_p.h)",
	ReasonMissingMetaObjectMarker: "missing " + MetaObjectMarker + " meta-object marker",
	ReasonNoEligibleConstructor:   "no eligible constructor signature",
	ReasonPureVirtualMethod:       "class declares a pure virtual method, abstract classes are not wrappable",
	ReasonUnknownParentClass:      "could not determine parent class",
	ReasonUnreadable:              "header could not be read",
}

// String returns the human-readable explanation.
func (r Reason) String() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// RejectionError reports a rejected header.
type RejectionError struct {
	Path   string
	Reason Reason
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: skipping - %s", e.Path, e.Reason)
}

// Result is the outcome of classifying one header.
type Result struct {
	Path      string
	Accepted  bool
	ClassName string
	Parent    Parent
	Reason    Reason
}

// Error converts the result to an error if the header was rejected.
func (r Result) Error() error {
	if r.Accepted {
		return nil
	}
	return &RejectionError{Path: r.Path, Reason: r.Reason}
}

// Rejected builds a rejection result for path.
func Rejected(path string, reason Reason) Result {
	return Result{Path: path, Reason: reason, ClassName: binding.BaseName(path)}
}

// IsRegularHeader reports whether fileName ends in ".h", ignoring case.
func IsRegularHeader(fileName string) bool {
	return strings.HasSuffix(strings.ToLower(fileName), ".h")
}

// IsPimplHeader reports whether fileName is a private-implementation header ("*_p.h"), ignoring case.
func IsPimplHeader(fileName string) bool {
	return strings.HasSuffix(strings.ToLower(fileName), "_p.h")
}

// HasMetaObjectMarker reports whether any line of text contains Q_OBJECT.
func HasMetaObjectMarker(text string) bool {
	for line := range strings.Lines(text) {
		if strings.Contains(line, MetaObjectMarker) {
			return true
		}
	}
	return false
}

// HasEligibleConstructor reports whether text declares a constructor of
// className the generated factory can call: no argument, or a QObject/QWidget
// pointer that is defaulted, followed by defaulted arguments, or alone.
func HasEligibleConstructor(text, className string) bool {
	return constructorPattern(className).MatchString(text)
}

// HasPureVirtualMethod reports whether text contains "virtual ... = 0;".
func HasPureVirtualMethod(text string) bool {
	return pureVirtualRe.MatchString(text)
}

// ClassifyName applies the rules that only need the file name.
// It lets callers skip reading files that can never be accepted.
func ClassifyName(fileName string) Result {
	if !IsRegularHeader(fileName) {
		return Rejected(fileName, ReasonNotRegularHeader)
	}
	if IsPimplHeader(fileName) {
		return Rejected(fileName, ReasonPimplHeader)
	}
	return Result{Path: fileName, Accepted: true, ClassName: binding.BaseName(fileName)}
}

// Classify decides whether the header at fileName with content text can be wrapped.
// Rules, in order, first failure wins:
// - file name ends in .h
// - file name does not end in _p.h
// - text contains Q_OBJECT
// - text declares an eligible constructor
// - text declares no pure virtual method
// - the parent class can be extracted
func Classify(text, fileName string) Result {
	if r := ClassifyName(fileName); !r.Accepted {
		return r
	}

	if !HasMetaObjectMarker(text) {
		return Rejected(fileName, ReasonMissingMetaObjectMarker)
	}

	className := binding.BaseName(fileName)

	if !HasEligibleConstructor(text, className) {
		return Rejected(fileName, ReasonNoEligibleConstructor)
	}

	if HasPureVirtualMethod(text) {
		return Rejected(fileName, ReasonPureVirtualMethod)
	}

	parent, ok := ExtractParent(text, className)
	if !ok {
		return Rejected(fileName, ReasonUnknownParentClass)
	}

	return Result{
		Path:      fileName,
		Accepted:  true,
		ClassName: className,
		Parent:    parent,
	}
}

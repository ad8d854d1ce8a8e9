package header

// Parent is the capability type a wrappable constructor accepts a pointer to.
// The empty value means the constructor takes no argument.
type Parent string

const (
	NoParent      Parent = ""
	ParentQObject Parent = "QObject"
	ParentQWidget Parent = "QWidget"
)

// HasParent reports whether the constructor takes a parent pointer.
func (p Parent) HasParent() bool {
	return p != NoParent
}

// String returns a printable form; NoParent prints as "none".
func (p Parent) String() string {
	if p == NoParent {
		return "none"
	}
	return string(p)
}

// ExtractParent infers the parent class of className's constructor.
// Patterns are tried in a fixed priority order, zero-argument first, then
// QObject, then QWidget; the first pattern that matches anywhere in text wins
// regardless of where the match sits in the file.
// ok is false when no pattern matches.
func ExtractParent(text, className string) (parent Parent, ok bool) {
	if noParentPattern(className).MatchString(text) {
		return NoParent, true
	}
	for _, base := range []Parent{ParentQObject, ParentQWidget} {
		if parentPattern(className, base).MatchString(text) {
			return base, true
		}
	}
	return NoParent, false
}

package header

import (
	"regexp"
	"strings"
)

// These expressions are heuristics over raw header text, not a C++ parser.
// Known false positives: matches inside comments or string literals, and
// constructors of other classes whose name ends with the class name when
// preceded by a non-word character. Known false negatives: constructors whose
// pointer argument spans a ';' and parent types other than QObject/QWidget.

// notDestructor anchors a constructor name so that "~Foo(" and "MyFoo(" do not match.
const notDestructor = `(?:^|[^~\w])`

// nullDefault matches "= 0", "= NULL" or "= nullptr".
const nullDefault = `=\s*(?:0|NULL|nullptr)\b`

// parentArgTail accepts a pointer argument that is defaulted to null, followed by
// further defaulted arguments within the same declaration, or the sole argument.
const parentArgTail = `\s*\*\s*\w+\s*(?:` + nullDefault + `|,[^;]*=[^;]*\)|\))`

var pureVirtualRe = regexp.MustCompile(`virtual[\w\s*()&:,<>]+=\s*(?:0|NULL)\s*;`)

// noParentPattern matches a zero-argument constructor of className.
func noParentPattern(className string) *regexp.Regexp {
	return regexp.MustCompile(notDestructor + regexp.QuoteMeta(className) + `\s*\(\s*\)`)
}

// parentPattern matches a constructor of className taking a pointer to base.
func parentPattern(className string, base Parent) *regexp.Regexp {
	return regexp.MustCompile(notDestructor + regexp.QuoteMeta(className) +
		`\s*\(\s*` + string(base) + parentArgTail)
}

// constructorPattern matches any constructor shape the generator can call.
func constructorPattern(className string) *regexp.Regexp {
	bases := strings.Join([]string{string(ParentQObject), string(ParentQWidget)}, "|")
	return regexp.MustCompile(notDestructor + regexp.QuoteMeta(className) +
		`\s*\(\s*(?:\)|(?:` + bases + `)` + parentArgTail + `)`)
}

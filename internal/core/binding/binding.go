// Package binding contains the pure naming rules for generated PythonQt bindings.
// Nothing here touches the filesystem.
package binding

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultNamespace is the wrapping namespace used when none is configured.
const DefaultNamespace = "org.commontk.foo"

// NamespacePattern is the textual form of the namespace invariant, shown to users.
const NamespacePattern = `[a-zA-Z0-9]+(.[a-zA-Z0-9]+)*`

var namespaceRe = regexp.MustCompile(`^[A-Za-z0-9]+(\.[A-Za-z0-9]+)*$`)

var (
	// ErrNamespaceRequired is returned when the wrapping namespace is empty.
	ErrNamespaceRequired = errors.New("wrapping namespace not specified")

	// ErrInvalidNamespace is returned when the wrapping namespace breaks the dotted identifier rule.
	ErrInvalidNamespace = errors.New("invalid wrapping namespace. Should match: " + NamespacePattern)

	// ErrTargetNameRequired is returned when several headers are given without a target name.
	ErrTargetNameRequired = errors.New("target name not specified")
)

// Namespace is a validated dotted wrapping namespace such as "org.commontk.foo".
type Namespace string

// IsValidNamespace reports whether s is a dotted alphanumeric identifier.
func IsValidNamespace(s string) bool {
	return namespaceRe.MatchString(s)
}

// ParseNamespace validates s and returns it as a Namespace.
func ParseNamespace(s string) (Namespace, error) {
	if s == "" {
		return "", ErrNamespaceRequired
	}
	if !IsValidNamespace(s) {
		return "", fmt.Errorf("%w (got %q)", ErrInvalidNamespace, s)
	}
	return Namespace(s), nil
}

// String returns the dotted form.
func (n Namespace) String() string {
	return string(n)
}

// Underscore returns the namespace with dots replaced by underscores.
func (n Namespace) Underscore() string {
	return Underscore(string(n))
}

// Underscore replaces every dot in s with an underscore.
// Underscore(Underscore(s)) == Underscore(s) for any s.
func Underscore(s string) string {
	return strings.ReplaceAll(s, ".", "_")
}

// BaseName returns the file name of path without any extension:
// "include/ctkFoo.tpl.h" -> "ctkFoo".
func BaseName(path string) string {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// ResolveTarget picks the generation target.
// An explicit name always wins. Otherwise the base name of the input is used,
// but only when exactly one input was supplied.
func ResolveTarget(explicit string, inputs []string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if len(inputs) == 1 {
		return BaseName(inputs[0]), nil
	}
	return "", ErrTargetNameRequired
}

// Stem returns "<namespace_underscore>_<target>", the prefix shared by every
// generated directory, file and symbol name.
func Stem(ns Namespace, target string) string {
	return ns.Underscore() + "_" + target
}

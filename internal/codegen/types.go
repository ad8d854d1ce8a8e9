// Package codegen renders PythonQt wrapper classes and registration code.
package codegen

import "github.com/example/pythonqtwrapper/internal/core/binding"

// Fixed lexical prefixes of generated symbols.
const (
	WrapperPrefix = "PythonQtWrapper" // wrapper classes: PythonQtWrapper_<Class>
	InitPrefix    = "PythonQt_init"   // entry point: PythonQt_init_<ns>_<target>
	GeneratedDir  = "generated_cpp"
)

// Banner identifies the tool in the header of every generated file.
type Banner struct {
	Tool    string
	Version string
}

// ClassDescriptor describes one class accepted for wrapping.
type ClassDescriptor struct {
	ClassName   string // "ctkSlider"
	ParentClass string // "QObject", "QWidget" or "" for a no-argument constructor
	HeaderPath  string // path of the header that declared it
}

// WrapperClass returns the name of the generated wrapper class.
func (d ClassDescriptor) WrapperClass() string {
	return WrapperPrefix + "_" + d.ClassName
}

// AssembleRequest holds everything needed to build the two output files.
type AssembleRequest struct {
	Namespace binding.Namespace
	Target    string
	// Headers lists every collected input header, in input order.
	Headers []string
	// Classes lists the accepted classes, in input order.
	Classes []ClassDescriptor
}

// GeneratedFile is a file to write, relative to the output directory.
type GeneratedFile struct {
	Path    string
	Content string
}

// Artifact is the result of one generation run.
type Artifact struct {
	Dir    string // generated_cpp/<ns>_<target>
	Header GeneratedFile
	Init   GeneratedFile
}

// Files returns the generated files in write order.
func (a *Artifact) Files() []GeneratedFile {
	return []GeneratedFile{a.Header, a.Init}
}

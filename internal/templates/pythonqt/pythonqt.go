// Package pythonqt provides the templates for PythonQt glue code.
package pythonqt

import (
	"embed"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/example/pythonqtwrapper/internal/core/binding"
)

// Template names.
const (
	Banner        = "banner.tmpl"
	WrapperClass  = "wrapper_class.h.tmpl"
	RegisterClass = "register_class.cpp.tmpl"
	Header        = "header.h.tmpl"
	Init          = "init.cpp.tmpl"
)

//go:embed *.tmpl
var pythonqtTemplates embed.FS

// GetTemplate returns the content of a single template.
func GetTemplate(name string) (string, error) {
	content, err := pythonqtTemplates.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Parse parses every template into one set so templates can include each other.
func Parse() (*template.Template, error) {
	return template.New("pythonqt").
		Option("missingkey=error").
		Funcs(TemplateFuncs()).
		ParseFS(pythonqtTemplates, "*.tmpl")
}

// TemplateFuncs returns the function map for PythonQt templates:
// the sprig text functions plus C++ naming helpers.
func TemplateFuncs() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["underscore"] = binding.Underscore
	return funcs
}

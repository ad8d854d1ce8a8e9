package codegen

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/example/pythonqtwrapper/internal/templates/pythonqt"
)

// Generator renders PythonQt glue code from templates.
// It performs no file I/O.
type Generator struct {
	banner    Banner
	templates *template.Template
}

// NewGenerator creates a new Generator stamping banner into generated files.
func NewGenerator(banner Banner) (*Generator, error) {
	set, err := pythonqt.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Generator{
		banner:    banner,
		templates: set,
	}, nil
}

// Banner returns the banner stamped into generated files.
func (g *Generator) Banner() Banner {
	return g.banner
}

type classData struct {
	ClassName    string
	ParentClass  string
	WrapperClass string
	TargetName   string
}

// GenerateWrapperClass renders the PythonQtWrapper_<Class> declaration.
// The factory slot takes a parent pointer defaulting to 0 when the class has a
// parent class, and no argument otherwise. The delete slot is the only release
// path for instances the factory hands to Python.
func (g *Generator) GenerateWrapperClass(class ClassDescriptor) (string, error) {
	return g.render(pythonqt.WrapperClass, classData{
		ClassName:    class.ClassName,
		ParentClass:  class.ParentClass,
		WrapperClass: class.WrapperClass(),
	})
}

// GenerateRegistration renders the registerClass call binding className's
// meta-object to its wrapper under targetName.
func (g *Generator) GenerateRegistration(className, targetName string) (string, error) {
	return g.render(pythonqt.RegisterClass, classData{
		ClassName:    className,
		WrapperClass: ClassDescriptor{ClassName: className}.WrapperClass(),
		TargetName:   targetName,
	})
}

// render executes a named template.
func (g *Generator) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := g.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

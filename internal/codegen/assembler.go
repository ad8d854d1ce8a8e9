package codegen

import (
	"fmt"
	"path"

	"github.com/example/pythonqtwrapper/internal/core/binding"
	"github.com/example/pythonqtwrapper/internal/templates/pythonqt"
)

type headerData struct {
	Banner        Banner
	Namespace     string
	Target        string
	Includes      []string
	WrapperBlocks []string
}

type initData struct {
	Banner             Banner
	Namespace          string
	Target             string
	InitPrefix         string
	HeaderFile         string
	RegistrationBlocks []string
}

// OutputDir returns "generated_cpp/<ns>_<target>".
func OutputDir(ns binding.Namespace, target string) string {
	return path.Join(GeneratedDir, binding.Stem(ns, target))
}

// HeaderFileName returns "<ns>_<target>0.h".
func HeaderFileName(ns binding.Namespace, target string) string {
	return binding.Stem(ns, target) + "0.h"
}

// InitFileName returns "<ns>_<target>_init.cpp".
func InitFileName(ns binding.Namespace, target string) string {
	return binding.Stem(ns, target) + "_init.cpp"
}

// InitFunction returns the name of the registration entry point.
func InitFunction(ns binding.Namespace, target string) string {
	return InitPrefix + "_" + binding.Stem(ns, target)
}

// Assemble builds the wrapper header and the registration source for req.
// Paths in the returned artifact are relative to the output directory.
func (g *Generator) Assemble(req AssembleRequest) (*Artifact, error) {
	if req.Target == "" {
		return nil, binding.ErrTargetNameRequired
	}

	includes := make([]string, 0, len(req.Headers))
	for _, h := range req.Headers {
		includes = append(includes, binding.BaseName(h)+".h")
	}

	wrappers := make([]string, 0, len(req.Classes))
	registrations := make([]string, 0, len(req.Classes))
	for _, class := range req.Classes {
		wrapper, err := g.GenerateWrapperClass(class)
		if err != nil {
			return nil, fmt.Errorf("failed to generate wrapper for %s: %w", class.ClassName, err)
		}
		wrappers = append(wrappers, wrapper)

		registration, err := g.GenerateRegistration(class.ClassName, req.Target)
		if err != nil {
			return nil, fmt.Errorf("failed to generate registration for %s: %w", class.ClassName, err)
		}
		registrations = append(registrations, registration)
	}

	headerFile := HeaderFileName(req.Namespace, req.Target)
	header, err := g.render(pythonqt.Header, headerData{
		Banner:        g.banner,
		Namespace:     req.Namespace.String(),
		Target:        req.Target,
		Includes:      includes,
		WrapperBlocks: wrappers,
	})
	if err != nil {
		return nil, err
	}

	initSrc, err := g.render(pythonqt.Init, initData{
		Banner:             g.banner,
		Namespace:          req.Namespace.String(),
		Target:             req.Target,
		InitPrefix:         InitPrefix,
		HeaderFile:         headerFile,
		RegistrationBlocks: registrations,
	})
	if err != nil {
		return nil, err
	}

	dir := OutputDir(req.Namespace, req.Target)
	return &Artifact{
		Dir:    dir,
		Header: GeneratedFile{Path: path.Join(dir, headerFile), Content: header},
		Init:   GeneratedFile{Path: path.Join(dir, InitFileName(req.Namespace, req.Target)), Content: initSrc},
	}, nil
}

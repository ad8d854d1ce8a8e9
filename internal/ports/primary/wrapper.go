// Package primary defines the primary ports (driving adapters) for the application.
package primary

import (
	"context"
	"errors"

	"github.com/example/pythonqtwrapper/internal/codegen"
	"github.com/example/pythonqtwrapper/internal/core/binding"
	"github.com/example/pythonqtwrapper/internal/core/header"
)

var (
	// ErrNoInputs is returned when no header path was supplied.
	ErrNoInputs = errors.New("<path-to-cpp-header-file> not specified")

	// ErrInputNotFound is returned when a supplied header path does not exist.
	ErrInputNotFound = errors.New("header file doesn't exist")

	// ErrOutputDir is returned when the output directory is missing or unreadable.
	ErrOutputDir = errors.New("output directory non existent or non readable")

	// ErrAllRejected is returned when every supplied header was rejected.
	ErrAllRejected = errors.New("all specified headers have been rejected")

	// ErrTargetNameRequired is returned when several headers are given without a target name.
	ErrTargetNameRequired = binding.ErrTargetNameRequired
)

// WrapperService defines the primary port for PythonQt wrapper generation.
type WrapperService interface {
	// CollectHeaders checks that each path exists, in order.
	// It stops at the first missing path and returns ErrInputNotFound.
	CollectHeaders(ctx context.Context, paths []string) (*CollectHeadersResponse, error)

	// ValidateHeaders classifies every header independently. Rejections are
	// counted, never returned as errors.
	ValidateHeaders(ctx context.Context, headers []string) (*ValidateHeadersResponse, error)

	// GenerateBindings renders and writes the wrapper header and init source.
	GenerateBindings(ctx context.Context, req GenerateBindingsRequest) (*GenerateBindingsResponse, error)

	// Run executes collect, validate and, unless CheckOnly is set, generate.
	Run(ctx context.Context, req RunRequest) (*RunResponse, error)
}

// CollectHeadersResponse contains the headers that exist, in input order.
type CollectHeadersResponse struct {
	Headers []string
}

// ValidateHeadersResponse contains the classification of every header.
type ValidateHeadersResponse struct {
	Results  []header.Result
	Rejected int
}

// Accepted returns the accepted results in input order.
func (r *ValidateHeadersResponse) Accepted() []header.Result {
	var accepted []header.Result
	for _, res := range r.Results {
		if res.Accepted {
			accepted = append(accepted, res)
		}
	}
	return accepted
}

// GenerateBindingsRequest contains parameters for writing generated files.
type GenerateBindingsRequest struct {
	Namespace binding.Namespace
	Target    string
	OutputDir string
	Headers   []string
	Results   []header.Result
}

// GenerateBindingsResponse describes what was written.
type GenerateBindingsResponse struct {
	Artifact *codegen.Artifact
	Files    []string // paths written, joined with the output directory
}

// RunRequest contains parameters for a full run.
type RunRequest struct {
	Namespace  binding.Namespace
	TargetName string // optional when exactly one path is given
	OutputDir  string
	Paths      []string
	CheckOnly  bool
}

// RunResponse contains the outcome of a full run.
// Fields after Rejected are only set when generation ran.
type RunResponse struct {
	Headers  []string
	Results  []header.Result
	Rejected int

	Target   string
	Artifact *codegen.Artifact
	Files    []string
}

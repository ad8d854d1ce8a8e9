package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/example/pythonqtwrapper/internal/codegen"
	"github.com/example/pythonqtwrapper/internal/core/binding"
	"github.com/example/pythonqtwrapper/internal/core/header"
	"github.com/example/pythonqtwrapper/internal/ports/primary"
	"github.com/example/pythonqtwrapper/internal/ports/secondary"
)

// WrapperServiceImpl implements the WrapperService interface.
type WrapperServiceImpl struct {
	headers   secondary.HeaderSource
	writer    secondary.ArtifactWriter
	generator *codegen.Generator
	log       *zap.SugaredLogger
}

// NewWrapperService creates a new WrapperService with injected dependencies.
func NewWrapperService(
	headers secondary.HeaderSource,
	writer secondary.ArtifactWriter,
	generator *codegen.Generator,
	log *zap.SugaredLogger,
) *WrapperServiceImpl {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &WrapperServiceImpl{
		headers:   headers,
		writer:    writer,
		generator: generator,
		log:       log,
	}
}

// CollectHeaders checks that each path exists, stopping at the first missing one.
func (s *WrapperServiceImpl) CollectHeaders(ctx context.Context, paths []string) (*primary.CollectHeadersResponse, error) {
	resp := &primary.CollectHeadersResponse{}
	for _, path := range paths {
		exists, err := s.headers.Exists(ctx, path)
		if err != nil {
			return resp, err
		}
		if !exists {
			s.log.Warnw("input header doesn't exist", "path", path)
			return resp, fmt.Errorf("%w: %s", primary.ErrInputNotFound, path)
		}
		s.log.Debugf("setInput [%s]", path)
		resp.Headers = append(resp.Headers, path)
	}
	return resp, nil
}

// ValidateHeaders classifies every header. A rejection never stops the batch.
func (s *WrapperServiceImpl) ValidateHeaders(ctx context.Context, headers []string) (*primary.ValidateHeadersResponse, error) {
	resp := &primary.ValidateHeadersResponse{}
	for _, path := range headers {
		if err := ctx.Err(); err != nil {
			return resp, err
		}

		result := s.validate(ctx, path)
		resp.Results = append(resp.Results, result)
		if !result.Accepted {
			resp.Rejected++
			s.log.Debugw("header rejected", "path", path, "reason", result.Reason.String())
		}
	}
	return resp, nil
}

// validate classifies one header, reading it only when its name can pass.
func (s *WrapperServiceImpl) validate(ctx context.Context, path string) header.Result {
	s.log.Debugf("validate [%s]", path)

	if r := header.ClassifyName(path); !r.Accepted {
		return r
	}

	text, err := s.headers.ReadHeader(ctx, path)
	if err != nil {
		s.log.Warnw("failed to read header", "path", path, "error", err)
		return header.Rejected(path, header.ReasonUnreadable)
	}

	result := header.Classify(text, path)
	if result.Accepted {
		s.log.Debugf("className [%s]", result.ClassName)
		s.log.Debugf("parentClassName [%s]", result.Parent)
	}
	return result
}

// GenerateBindings writes the wrapper header and the init source for the accepted results.
func (s *WrapperServiceImpl) GenerateBindings(ctx context.Context, req primary.GenerateBindingsRequest) (*primary.GenerateBindingsResponse, error) {
	var classes []codegen.ClassDescriptor
	for _, r := range req.Results {
		if !r.Accepted {
			continue
		}
		classes = append(classes, codegen.ClassDescriptor{
			ClassName:   r.ClassName,
			ParentClass: string(r.Parent),
			HeaderPath:  r.Path,
		})
	}

	artifact, err := s.generator.Assemble(codegen.AssembleRequest{
		Namespace: req.Namespace,
		Target:    req.Target,
		Headers:   req.Headers,
		Classes:   classes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate bindings: %w", err)
	}

	dir := filepath.Join(req.OutputDir, filepath.FromSlash(artifact.Dir))
	s.log.Debugf("setOutput [%s]", dir)
	if err := s.writer.CreateDirectory(ctx, dir); err != nil {
		return nil, err
	}

	resp := &primary.GenerateBindingsResponse{Artifact: artifact}
	for _, f := range artifact.Files() {
		path := filepath.Join(req.OutputDir, filepath.FromSlash(f.Path))
		if err := s.writer.WriteFile(ctx, path, f.Content); err != nil {
			return resp, err
		}
		s.log.Infow("generated", "path", path)
		resp.Files = append(resp.Files, path)
	}

	return resp, nil
}

// Run executes the whole pipeline in order: output directory check, input
// collection, validation, then generation unless req.CheckOnly is set.
func (s *WrapperServiceImpl) Run(ctx context.Context, req primary.RunRequest) (*primary.RunResponse, error) {
	ns, err := binding.ParseNamespace(req.Namespace.String())
	if err != nil {
		return nil, err
	}

	if err := s.writer.CheckDirectory(ctx, req.OutputDir); err != nil {
		return nil, fmt.Errorf("%w [%s]: %v", primary.ErrOutputDir, req.OutputDir, err)
	}

	if len(req.Paths) == 0 {
		return nil, primary.ErrNoInputs
	}

	collected, err := s.CollectHeaders(ctx, req.Paths)
	if err != nil {
		return nil, err
	}

	validation, err := s.ValidateHeaders(ctx, collected.Headers)
	if err != nil {
		return nil, err
	}

	resp := &primary.RunResponse{
		Headers:  collected.Headers,
		Results:  validation.Results,
		Rejected: validation.Rejected,
	}

	if req.CheckOnly {
		return resp, nil
	}

	if validation.Rejected == len(req.Paths) {
		return resp, primary.ErrAllRejected
	}

	target, err := binding.ResolveTarget(req.TargetName, req.Paths)
	if err != nil {
		return resp, err
	}
	resp.Target = target

	generated, err := s.GenerateBindings(ctx, primary.GenerateBindingsRequest{
		Namespace: ns,
		Target:    target,
		OutputDir: req.OutputDir,
		Headers:   collected.Headers,
		Results:   validation.Results,
	})
	if err != nil {
		return resp, err
	}
	resp.Artifact = generated.Artifact
	resp.Files = generated.Files

	return resp, nil
}

var _ primary.WrapperService = (*WrapperServiceImpl)(nil)

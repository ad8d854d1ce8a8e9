// Package wire provides dependency injection for the PythonQtWrapper application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/example/pythonqtwrapper/internal/adapters/filesystem"
	"github.com/example/pythonqtwrapper/internal/app"
	"github.com/example/pythonqtwrapper/internal/codegen"
	"github.com/example/pythonqtwrapper/internal/logger"
	"github.com/example/pythonqtwrapper/internal/ports/primary"
	"github.com/example/pythonqtwrapper/internal/version"
)

var (
	wrapperService primary.WrapperService
	initErr        error
	once           sync.Once
)

// WrapperService returns the singleton WrapperService working on the OS filesystem.
// Initialize the logger before the first call; the service keeps the logger it was built with.
func WrapperService() (primary.WrapperService, error) {
	once.Do(initServices)
	return wrapperService, initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	wrapperService, initErr = NewWrapperService(afero.NewOsFs(), logger.Logger)
}

// Banner returns the banner stamped into generated files.
func Banner() codegen.Banner {
	return codegen.Banner{Tool: version.ProgramName, Version: version.Short()}
}

// NewWrapperService builds a WrapperService on fs. Each call creates a new service.
func NewWrapperService(fs afero.Fs, log *zap.SugaredLogger) (primary.WrapperService, error) {
	gen, err := codegen.NewGenerator(Banner())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}
	store := filesystem.NewHeaderStore(fs)
	return app.NewWrapperService(store, store, gen, log), nil
}

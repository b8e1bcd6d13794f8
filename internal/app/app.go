package app

import (
	"github.com/madrazzl3/solbuild/internal/config"
	"github.com/madrazzl3/solbuild/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	BuildProject      *usecase.BuildProject
	CompileTarget     *usecase.CompileTarget
	CompileFromSource *usecase.CompileFromSource
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	buildProject *usecase.BuildProject,
	compileTarget *usecase.CompileTarget,
	compileFromSource *usecase.CompileFromSource,
) (*App, error) {
	return &App{
		Config:            cfg,
		BuildProject:      buildProject,
		CompileTarget:     compileTarget,
		CompileFromSource: compileFromSource,
	}, nil
}

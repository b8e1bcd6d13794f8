package config

import (
	"time"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
)

// RuntimeConfig is the resolved configuration for one CLI invocation.
type RuntimeConfig struct {
	// ProjectRoot is the absolute path of the Foundry project.
	ProjectRoot string

	// FoundryConfig is the layout resolved from foundry.toml.
	FoundryConfig *FoundryConfig

	// Debug enables verbose logging.
	Debug bool

	// Timeout bounds one invocation; zero means no timeout.
	Timeout time.Duration
}

// Project builds the compiler-facing project value from the resolved layout.
func (c *RuntimeConfig) Project() *compiler.Project {
	return &compiler.Project{
		Root:       c.ProjectRoot,
		SourcesDir: c.FoundryConfig.Src,
		TestDir:    c.FoundryConfig.Test,
		ScriptDir:  c.FoundryConfig.Script,
		OutDir:     c.FoundryConfig.Out,
		LibDirs:    c.FoundryConfig.Libs,
	}
}

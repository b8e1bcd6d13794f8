//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/madrazzl3/solbuild/internal/adapters/etherscan"
	"github.com/madrazzl3/solbuild/internal/adapters/progress"
	"github.com/madrazzl3/solbuild/internal/adapters/solc"
	"github.com/madrazzl3/solbuild/internal/config"
	"github.com/madrazzl3/solbuild/internal/logging"
	"github.com/madrazzl3/solbuild/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		solc.NewForgeCompiler,
		wire.Bind(new(usecase.Compiler), new(*solc.ForgeCompiler)),
		solc.NewGraphAdapter,
		wire.Bind(new(usecase.GraphResolver), new(*solc.GraphAdapter)),
		solc.NewSvmResolver,
		wire.Bind(new(usecase.SolcResolver), new(*solc.SvmResolver)),
		etherscan.NewSourceBuilder,
		wire.Bind(new(usecase.SourceProjectBuilder), new(*etherscan.SourceBuilder)),
		progress.NewSpinnerSink,
		wire.Bind(new(usecase.ProgressSink), new(*progress.SpinnerSink)),

		// Use cases
		usecase.NewBuildProject,
		usecase.NewCompileTarget,
		usecase.NewCompileFromSource,

		// App
		NewApp,
	)
	return nil, nil
}

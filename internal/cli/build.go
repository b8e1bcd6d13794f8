package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madrazzl3/solbuild/internal/cli/render"
	"github.com/madrazzl3/solbuild/internal/domain/compiler"
	"github.com/madrazzl3/solbuild/internal/usecase"
)

// NewBuildCmd creates the build command
func NewBuildCmd() *cobra.Command {
	var (
		printNames bool
		printSizes bool
		skipFlags  []string
		silent     bool
		verify     bool
	)

	cmd := &cobra.Command{
		Use:   "build [target.sol]",
		Short: "Compile the project, or a single target file",
		Long: `Compile the project through the Foundry toolchain.

With no argument the whole project is compiled, honoring --skip filters via
sparse output selection. With a target path, the target is compiled as a
project member when it is part of the dependency graph, or directly as a
standalone file otherwise.

Examples:
  solbuild build                         # compile everything
  solbuild build --skip test --skip script
  solbuild build --sizes                 # audit deployed sizes (EIP-170)
  solbuild build script/Deploy.s.sol     # compile one target
  solbuild build src/Token.sol --verify  # require graph membership`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			project := app.Config.Project()
			skip := compiler.ParseSkipFilters(append(app.Config.FoundryConfig.Skip, skipFlags...))
			ctx := cmd.Context()

			var result *usecase.BuildResult
			if len(args) == 1 {
				result, err = app.CompileTarget.Run(ctx, project, args[0], usecase.CompileTargetOptions{
					Silent:     silent,
					Verify:     verify,
					Skip:       skip,
					PrintNames: printNames,
					PrintSizes: printSizes,
				})
			} else {
				result, err = app.BuildProject.Run(ctx, project, usecase.BuildOptions{
					PrintNames: printNames,
					PrintSizes: printSizes,
					Skip:       skip,
					Silent:     silent,
				})
			}
			if err != nil {
				return err
			}

			if !silent {
				renderer := render.NewBuildRenderer(cmd.OutOrStdout(), true)
				if err := renderer.RenderBuildResult(result); err != nil {
					return err
				}
			}

			// distinct failure outcome, after the report has been rendered
			if result.ExceededSizeLimit {
				return fmt.Errorf("%w (%d bytes)", compiler.ErrSizeLimitExceeded, result.SizeReport.MaxSize())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&printNames, "names", false, "Print compiled contract names per compiler version")
	cmd.Flags().BoolVar(&printSizes, "sizes", false, "Print deployed bytecode sizes and enforce the EIP-170 limit")
	cmd.Flags().StringArrayVar(&skipFlags, "skip", nil, "Exclude matching sources from artifact output (test, script, or a pattern)")
	cmd.Flags().BoolVar(&silent, "silent", false, "Suppress all compiler output")
	cmd.Flags().BoolVar(&verify, "verify", false, "Fail if the target is not part of the project dependency graph")

	return cmd
}

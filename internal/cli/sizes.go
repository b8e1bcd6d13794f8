package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madrazzl3/solbuild/internal/cli/render"
	"github.com/madrazzl3/solbuild/internal/domain/compiler"
	"github.com/madrazzl3/solbuild/internal/usecase"
)

// NewSizesCmd creates the sizes command, a build that always audits sizes.
func NewSizesCmd() *cobra.Command {
	var skipFlags []string

	cmd := &cobra.Command{
		Use:   "sizes",
		Short: "Compile and audit deployed bytecode sizes",
		Long: `Compile the project and print the deployed size of every non-dev
contract against the EIP-170 limit of 24576 bytes. Exits non-zero when any
non-dev contract exceeds the limit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.BuildProject.Run(cmd.Context(), app.Config.Project(), usecase.BuildOptions{
				PrintSizes: true,
				Skip:       compiler.ParseSkipFilters(append(app.Config.FoundryConfig.Skip, skipFlags...)),
			})
			if err != nil {
				return err
			}

			renderer := render.NewBuildRenderer(cmd.OutOrStdout(), true)
			if err := renderer.RenderBuildResult(result); err != nil {
				return err
			}

			if result.ExceededSizeLimit {
				return fmt.Errorf("%w (%d bytes)", compiler.ErrSizeLimitExceeded, result.SizeReport.MaxSize())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&skipFlags, "skip", nil, "Exclude matching sources from artifact output (test, script, or a pattern)")

	return cmd
}

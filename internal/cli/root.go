package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madrazzl3/solbuild/internal/app"
	"github.com/madrazzl3/solbuild/internal/config"
)

// contextKey is the type for context keys
type contextKey string

// appKey is the context key for the app instance
const appKey contextKey = "app"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "solbuild",
		Short: "Selective compilation and contract-size governance for Foundry projects",
		Long: `solbuild drives the Foundry toolchain to compile Solidity projects
selectively and audits deployed bytecode against the EIP-170 size limit.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// finalizers run even when RunE fails, PostRun does not
				cobra.OnFinalize(cancel)
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort the invocation after this duration (0 disables)")

	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewSizesCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance, ok := cmd.Context().Value(appKey).(*app.App)
	if !ok {
		return nil, fmt.Errorf("app not initialized")
	}
	return appInstance, nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"signal9.de/certext/internal/app"
	"signal9.de/certext/internal/infra/clock"
	"signal9.de/certext/internal/infra/config"
	"signal9.de/certext/internal/infra/crypto/extensions"
	"signal9.de/certext/internal/infra/logging"
	"signal9.de/certext/internal/pathutil"
)

// AppContext holds all the dependencies for the application.
// It is attached to the command's context for access in RunE functions.
type AppContext struct {
	App *app.Application
}

var appContextKey = &struct{}{}

var rootCmd = &cobra.Command{
	Use:   "certext",
	Short: "CertExt encodes and inspects X.509 certificate extensions.",
	Long: `CertExt turns the textual extension mini-language known from OpenSSL
configuration files ("critical,CA:TRUE,pathlen:0") into DER-encoded
X.509 extensions and renders existing certificate extensions back as
text, including a spoofing-safe subjectAltName printer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		// Dependency Injection
		var logger *logging.FileLogger
		logFile, err := cmd.Flags().GetString("log-file")
		if err != nil {
			return err
		}
		if logFile != "" {
			logger, err = logging.NewFileLogger(pathutil.ExpandHomePath(logFile))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		} else {
			logger = logging.NewDiscardLogger()
		}

		names := extensions.NewRegistry()
		application := app.NewApplication(
			logger,
			config.NewYAMLProfileLoader(),
			names,
			extensions.NewEncoder(names),
			extensions.NewFormatter(names),
			clock.NewService(),
		)

		ctx := context.WithValue(cmd.Context(), appContextKey, &AppContext{App: application})
		cmd.SetContext(ctx)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-file", "", "Append operation log to this file")

	// Add subcommands
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(profileCmd)
}

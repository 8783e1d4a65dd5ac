package commands

import (
	"github.com/spf13/cobra"
	"signal9.de/certext/internal/app"
)

// getApp retrieves the application context from the command.
func getApp(cmd *cobra.Command) *app.Application {
	return cmd.Context().Value(appContextKey).(*AppContext).App
}

// certContextFlags reads the optional --subject and --issuer
// certificate path flags shared by the encoding commands.
func certContextFlags(cmd *cobra.Command) (subjectPath, issuerPath string) {
	subjectPath, _ = cmd.Flags().GetString("subject")
	issuerPath, _ = cmd.Flags().GetString("issuer")
	return subjectPath, issuerPath
}

package commands

import (
	"github.com/spf13/cobra"
	"signal9.de/certext/internal/pathutil"
	"signal9.de/certext/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <certificate>",
	Short: "Show a certificate with its extensions rendered as text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := getApp(cmd)

		cert, exts, err := app.InspectCertificate(cmd.Context(), pathutil.ExpandHomePath(args[0]))
		if err != nil {
			return err
		}
		ui.PrintCertInfo(cert, exts, app.Now())
		return nil
	},
}

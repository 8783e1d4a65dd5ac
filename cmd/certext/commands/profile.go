package commands

import (
	"github.com/spf13/cobra"
	"signal9.de/certext/internal/pathutil"
	"signal9.de/certext/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Work with extension profiles (YAML)",
}

// profile encode
var profileEncodeCmd = &cobra.Command{
	Use:   "encode <profile.yaml>",
	Short: "Encode every extension in a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := getApp(cmd)
		subjectPath, issuerPath := certContextFlags(cmd)

		name, exts, err := app.EncodeProfile(cmd.Context(), pathutil.ExpandHomePath(args[0]), subjectPath, issuerPath)
		if err != nil {
			return err
		}

		ui.Action("Profile %q", name)
		ui.PrintExtensions(app.DisplayExtensions(exts))
		ui.Success("Encoded %d extensions", len(exts))
		return nil
	},
}

// profile validate
var profileValidateCmd = &cobra.Command{
	Use:   "validate <profile.yaml>",
	Short: "Validate a profile against the schema without encoding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := getApp(cmd)
		path := pathutil.ExpandHomePath(args[0])

		ui.Action("Validating %s", path)
		if err := app.ValidateProfile(cmd.Context(), path); err != nil {
			return err
		}
		ui.Success("Profile is valid")
		return nil
	},
}

func init() {
	profileEncodeCmd.Flags().String("subject", "", "Subject certificate (PEM or DER) for value syntaxes that need one")
	profileEncodeCmd.Flags().String("issuer", "", "Issuer certificate (PEM or DER) for value syntaxes that need one")

	profileCmd.AddCommand(profileEncodeCmd)
	profileCmd.AddCommand(profileValidateCmd)
}

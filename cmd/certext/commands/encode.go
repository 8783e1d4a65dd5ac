package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"signal9.de/certext/internal/infra/crypto/extensions"
	"signal9.de/certext/internal/pathutil"
	"signal9.de/certext/internal/ui"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <type> <value>",
	Short: "Encode an extension from its textual value",
	Long: `Encode a single extension, e.g.

  certext encode basicConstraints "CA:TRUE,pathlen:1" --critical
  certext encode subjectAltName "DNS:example.com,email:ops@example.com"
  certext encode subjectKeyIdentifier hash --subject cert.pem`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := getApp(cmd)
		critical, _ := cmd.Flags().GetBool("critical")
		subjectPath, issuerPath := certContextFlags(cmd)

		ext, err := app.EncodeExtension(cmd.Context(), args[0], critical, args[1], subjectPath, issuerPath)
		if err != nil {
			return err
		}

		ui.PrintExtensions(app.DisplayExtensions([]*extensions.Extension{ext}))

		if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
			outPath = pathutil.ExpandHomePath(outPath)
			if err := os.WriteFile(outPath, ext.PKIX().Value, 0o644); err != nil {
				return fmt.Errorf("could not write %s: %w", outPath, err)
			}
			ui.Success("Wrote DER payload to %s", outPath)
		}
		return nil
	},
}

func init() {
	encodeCmd.Flags().Bool("critical", false, "Mark the extension critical")
	encodeCmd.Flags().String("subject", "", "Subject certificate (PEM or DER) for value syntaxes that need one")
	encodeCmd.Flags().String("issuer", "", "Issuer certificate (PEM or DER) for value syntaxes that need one")
	encodeCmd.Flags().String("out", "", "Write the DER-encoded payload to this file")
}

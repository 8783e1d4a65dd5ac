package commands

import (
	"github.com/spf13/cobra"
	"signal9.de/certext/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported extension types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := getApp(cmd)

		table := ui.NewExtensionTable()
		table.Header([]string{"Name", "OID"})
		for _, info := range app.ListExtensionTypes() {
			table.Append([]string{info.Name, info.OID})
		}
		return table.Render()
	},
}

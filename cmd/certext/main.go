package main

import (
	"os"
	"regexp"
	"strings"

	"signal9.de/certext/cmd/certext/commands"
	"signal9.de/certext/internal/ui"
)

var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		errorMsg := strings.ToUpper(err.Error()[:1]) + err.Error()[1:]
		errorMsg = strings.ReplaceAll(errorMsg, "\n", "\n  ")

		// Remove schema references from error messages
		schemaRefRe := regexp.MustCompile(` with '[^']*#'`)
		errorMsg = schemaRefRe.ReplaceAllString(errorMsg, "")

		ui.Error("%s", errorMsg)
		os.Exit(1)
	}
}

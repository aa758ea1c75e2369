package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/addrbook/addrbook-cli/internal/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate merged address book files against the JSON Schema",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logging.Success(fmt.Sprintf("Address book is valid (%d persons)", len(book.PersonList())))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/addrbook/addrbook-cli/internal/command"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newUI(cmd).Run(command.ListCommand{})
			return err
		},
	}
	rootCmd.AddCommand(cmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive prompt: find, list, help, exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newUI(cmd).Shell()
		},
	}
	rootCmd.AddCommand(cmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/addrbook/addrbook-cli/internal/command"
	"github.com/addrbook/addrbook-cli/internal/parser"
)

func init() {
	cmd := &cobra.Command{
		Use:   "find [c/] n/NAME... t/TAG...",
		Short: "Find contacts matching ALL name and tag keywords",
		Long:  command.FindMessageUsage,
		// c/, n/ and t/ are plain args; the find parser handles them.
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := newUI(cmd)
			if len(args) == 0 {
				return ui.PromptFind()
			}
			fc, err := parser.ParseFind(joinArgs(args))
			if err != nil {
				return err
			}
			_, err = ui.Run(fc)
			return err
		},
	}
	rootCmd.AddCommand(cmd)
}

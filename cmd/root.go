package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/addrbook/addrbook-cli/internal/assets"
	"github.com/addrbook/addrbook-cli/internal/config"
	"github.com/addrbook/addrbook-cli/internal/logging"
	"github.com/addrbook/addrbook-cli/internal/model"
	"github.com/addrbook/addrbook-cli/internal/storage"
	"github.com/addrbook/addrbook-cli/internal/ui/console"
)

var cfgFile string
var version = "dev"

// book is loaded once per invocation before any subcommand runs.
var book *model.Manager

var rootCmd = &cobra.Command{
	Use:           "addrbook",
	Short:         "Personal address book",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd)
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.Error(err.Error())
	}
	logging.Close()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML settings file")
	rootCmd.PersistentFlags().String("data-dir", "", "directory with address book YAML files; all *.yaml in it are merged (default ~/.config/addrbook/data)")
	rootCmd.PersistentFlags().String("log-dir", "", "directory for addrbook.log (default ~/.config/addrbook/logs)")
	rootCmd.PersistentFlags().String("table-style", "", "table style: light, rounded, bold, double, default")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "show detailed steps")
	rootCmd.Version = version
}

func initApp(cmd *cobra.Command) error {
	s, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logging.SetVerbose(s.Verbose)
	if err := logging.Init(s.LogDir); err != nil {
		logging.Gray("file log disabled: " + err.Error())
	}
	// Seed an empty data directory so a first run has something to search.
	if err := assets.WriteSampleIfMissing(s.DataDir); err != nil {
		return err
	}
	persons, err := storage.LoadDir(s.DataDir)
	if err != nil {
		return fmt.Errorf("address book error: %w", err)
	}
	logging.Debug(fmt.Sprintf("loaded %d persons from %s", len(persons), s.DataDir))
	book = model.New(persons)
	return nil
}

func newUI(cmd *cobra.Command) *console.ConsoleUI {
	return console.NewConsoleUI(book, config.Get().TableStyle).WithOutput(cmd.OutOrStdout())
}

func joinArgs(args []string) string {
	return " " + strings.Join(args, " ")
}

package commands

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "menu-builder",
	Short: "Menu Builder - convert restaurant menu documents into structured menus",
	Long: `Menu Builder fetches restaurant menu images and PDFs from URLs, sends them
to a multimodal extraction model, and produces a structured menu with
categories, items, extras and options, plus a flat CSV report.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

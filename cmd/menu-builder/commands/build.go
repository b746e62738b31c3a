package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yingyang-dd/AI-menu-building-competitation/cmd/menu-builder/ui"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/config"
	"github.com/yingyang-dd/AI-menu-building-competitation/pkg/menubuilder"
)

var (
	buildURLs       []string
	buildOutputPath string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a structured menu from menu document URLs",
	Long:  "Fetch menu images or PDFs from the given URLs, extract a structured menu, and write a flat CSV report.",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringArrayVarP(&buildURLs, "url", "u", nil, "Menu document URL (repeatable, required)")
	buildCmd.Flags().StringVarP(&buildOutputPath, "output", "o", "menu.csv", "Output path for the CSV report")
	buildCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.Observability.LogLevel = "debug"
		cfg.Observability.LogFormat = "console"
	}

	ui.InitUI(noColor, verbose)

	ui.Section("Menu Build")
	for _, u := range buildURLs {
		ui.Info("URL: %s", u)
	}
	ui.Newline()

	client, err := menubuilder.NewClientWithConfig(cfg)
	if err != nil {
		return err
	}

	spinner := ui.NewSpinner("Extracting menu...")
	spinner.Start()
	result, err := client.Build(ctx, buildURLs)
	spinner.Stop()

	if err != nil {
		return fmt.Errorf("menu build failed: %w", err)
	}

	rows := menubuilder.Flatten(result.Menu)

	out, err := os.Create(buildOutputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()
	if err := menubuilder.WriteCSV(out, rows); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	ui.Success("Menu build completed")
	ui.Newline()
	ui.Section("Build Summary")
	ui.Table([]string{"Metric", "Value"}, [][]string{
		{"Run ID", result.RunID.String()},
		{"Valid menu", result.IsValidMenu},
		{"Input quality", fmt.Sprintf("%d", result.InputQuality)},
		{"Complexity", result.MenuComplexity},
		{"Confidence", fmt.Sprintf("%d", result.Confidence)},
		{"Categories", fmt.Sprintf("%d", len(result.Menu.Categories))},
		{"Report rows", fmt.Sprintf("%d", len(rows))},
		{"Duration", ui.FormatDuration(result.Duration)},
	})

	if len(result.Skipped) > 0 {
		ui.Newline()
		ui.Section("Skipped URLs")
		for _, s := range result.Skipped {
			ui.Warning("%s: %s", s.URL, s.Reason)
		}
	}

	ui.Newline()
	ui.Success("Report saved to: %s", buildOutputPath)

	return nil
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"
)

var (
	publishMode  bool
	dryRunMode   bool
	dryRunLookup bool
	rowLimit     int
	logPath      string
	templatePath string
	debugMode    bool
)

var rootCmd = &cobra.Command{
	Use:   "pagegen <csv-file>",
	Short: "Bulk-create local service pages in WordPress from CSV data",
	Long: `Reads a CSV with columns service, city, neighborhood and price_from,
composes one location page per row and creates it through the WordPress
REST API. Outcomes are written to a CSV log.

Credentials come from the environment (or a .env file):
WP_URL, WP_USERNAME and WP_APP_PASSWORD.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Load .env if present; real environment wins
		gotenv.Load()

		if debugMode {
			SetDebugMode(true)
		}

		if err := ensureConfigExists(); err != nil {
			log.Fatalf("Failed to prepare config: %v", err)
		}

		settings, err := loadSettings(GetConfigPath("settings.yaml"))
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}

		clientCfg, err := loadClientConfig(settings)
		if err != nil {
			log.Fatalf("Setup error: %v", err)
		}

		rows, err := LoadRows(args[0])
		if err != nil {
			log.Fatalf("Setup error: %v", err)
		}

		composer, err := NewComposer(settings.FeaturedImageURL, templatePath)
		if err != nil {
			log.Fatalf("Setup error: %v", err)
		}

		generator := NewPageGenerator(NewPageClient(*clientCfg), composer, GeneratorOptions{
			Publish:      publishMode,
			DryRun:       dryRunMode,
			DryRunLookup: dryRunLookup,
			Limit:        rowLimit,
		})

		records := generator.Run(rows)

		out := logPath
		if out == "" {
			out = settings.OutputLog
		}
		if err := WriteLog(out, records); err != nil {
			log.Fatalf("Failed to write output log: %v", err)
		}

		log.Printf("Wrote %d record(s) to %s", len(records), out)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&publishMode, "publish", false, "Publish pages immediately instead of saving as drafts")
	rootCmd.Flags().BoolVar(&dryRunMode, "dry-run", false, "Preview pages without creating them in WordPress")
	rootCmd.Flags().BoolVar(&dryRunLookup, "dry-run-lookup", false, "Still perform the read-only duplicate lookup during a dry run")
	rootCmd.Flags().IntVar(&rowLimit, "limit", 0, "Limit the number of rows to process (0 = all)")
	rootCmd.Flags().StringVar(&logPath, "log", "", "Path of the output log CSV (default from settings)")
	rootCmd.Flags().StringVar(&templatePath, "template", "", "Path to a custom page template file")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

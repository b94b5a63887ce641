package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pr0nt0-Zz/StorageCleaner/internal/advisor"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/catalog"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/cleaner"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/config"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/history"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/platform"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/reporter"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/security"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/ui"
	"github.com/pr0nt0-Zz/StorageCleaner/pkg/utils"
)

var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath  string
	verbose     bool
	minSizeMB   int
	maxDepth    int
	outputFmt   string
	outputFile  string
	interactive bool
	noSave      bool
	dryRun      bool
	force       bool
	histLimit   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "storagecleaner",
	Short: "Storage scan and deletion advisor",
	Long: `StorageCleaner scans local storage and scores files 0-100 on how
likely they are to be safe to delete, combining rule-based heuristics,
statistical outlier detection, and exact duplicate detection.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

var scanCmd = &cobra.Command{
	Use:   "scan <root>",
	Short: "Scan a directory and score deletion candidates",
	Long: `Scans the given root for files above the minimum size, scores each
one, and reports the result. Nothing is deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		adv, err := buildAdvisor(cfg)
		if err != nil {
			return err
		}

		opts, err := scanOptions(cmd, cfg)
		if err != nil {
			return err
		}

		startedAt := time.Now()

		var result *advisor.ScanResult
		if interactive {
			result, err = ui.RunScan(adv, args[0], opts)
		} else {
			fmt.Printf("Scanning %s...\n", args[0])
			result, err = adv.Scan(context.Background(), args[0], opts)
		}
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if cfg.History.Enabled && !noSave {
			if err := saveHistory(cfg, args[0], startedAt, result); err != nil && verbose {
				fmt.Fprintf(os.Stderr, "warning: could not save scan history: %v\n", err)
			}
		}

		return report(result)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <root>",
	Short: "Scan and write a detailed report",
	Long:  `Scans the given root and writes a detailed report, optionally to a file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		adv, err := buildAdvisor(cfg)
		if err != nil {
			return err
		}

		opts, err := scanOptions(cmd, cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Scanning %s...\n", args[0])
		result, err := adv.Scan(context.Background(), args[0], opts)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if outputFile != "" {
			if err := reporter.SaveToFile(result, outputFile, parseFormat(outputFmt)); err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}
			fmt.Printf("Report saved to: %s\n", outputFile)
			return nil
		}

		return report(result)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean <root>",
	Short: "Scan a directory and delete files scored safe",
	Long: `Scans the given root and deletes files classified as safe to delete
(score >= 60). Protected paths are always refused. Use --dry-run to
preview.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("dry-run") {
			cfg.DryRun = dryRun
		}

		adv, err := buildAdvisor(cfg)
		if err != nil {
			return err
		}

		opts, err := scanOptions(cmd, cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Scanning %s...\n", args[0])
		result, err := adv.Scan(context.Background(), args[0], opts)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		var safe []advisor.FileInfo
		for _, fi := range result.Files {
			if fi.Safety == catalog.TierSafe {
				safe = append(safe, fi)
			}
		}

		if len(safe) == 0 {
			fmt.Println("No files scored safe to delete.")
			return nil
		}

		var safeSize int64
		for _, fi := range safe {
			safeSize += fi.Size
		}
		fmt.Printf("\n%d files scored safe to delete (%s)\n",
			len(safe), utils.FormatBytes(safeSize))

		if !force && !cfg.DryRun {
			fmt.Print("Proceed with deletion? (y/N): ")
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Deletion cancelled")
				return nil
			}
		}

		if cfg.DryRun {
			fmt.Println("\n[DRY RUN MODE] No files will be deleted.")
		}

		clnr := cleaner.New(adv.Registry(), cfg.DryRun)
		cleanResult := clnr.Delete(safe)

		fmt.Printf("\nDeleted: %d files (%s)\n",
			len(cleanResult.DeletedFiles),
			utils.FormatBytes(cleanResult.DeletedSize))
		if len(cleanResult.SkippedFiles) > 0 {
			fmt.Printf("Skipped: %d files\n", len(cleanResult.SkippedFiles))
		}
		if len(cleanResult.Errors) > 0 {
			fmt.Printf("\n%s", cleaner.FormatErrorSummary(cleanResult.Errors))
		}

		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scans",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.ListScans(histLimit)
		if err != nil {
			return fmt.Errorf("failed to list scans: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No saved scans.")
			return nil
		}

		fmt.Printf("%-5s %-20s %-30s %8s %6s %12s\n",
			"ID", "Date", "Root", "Files", "Dups", "Reclaimable")
		for _, r := range records {
			root := r.Root
			if len(root) > 30 {
				root = "..." + root[len(root)-27:]
			}
			fmt.Printf("%-5d %-20s %-30s %8d %6d %12s\n",
				r.ID, r.StartedAt.Format("2006-01-02 15:04"), root,
				r.FilesReturned, r.DuplicatesFound,
				utils.FormatBytes(r.TotalReclaimable))
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Printf("Config file: %s\n", cfgPath)
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			fmt.Println("Config file does not exist. Using default configuration.")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("Min file size: %s\n", cfg.Scan.MinFileSize)
		fmt.Printf("Max depth: %d\n", cfg.Scan.MaxDepth)
		fmt.Printf("History enabled: %v\n", cfg.History.Enabled)
		fmt.Printf("Dry run: %v\n", cfg.DryRun)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")

	for _, cmd := range []*cobra.Command{scanCmd, reportCmd, cleanCmd} {
		cmd.Flags().IntVar(&minSizeMB, "min-size", 0, "minimum file size in MB (default from config)")
		cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum traversal depth (default from config)")
	}

	scanCmd.Flags().StringVar(&outputFmt, "output", "summary", "output format (summary, table, json, yaml)")
	scanCmd.Flags().BoolVar(&interactive, "interactive", false, "show a live progress view")
	scanCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record this scan in history")

	reportCmd.Flags().StringVar(&outputFmt, "output", "table", "output format (summary, table, json, yaml)")
	reportCmd.Flags().StringVar(&outputFile, "file", "", "save report to file")

	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be deleted without deleting")
	cleanCmd.Flags().BoolVar(&force, "force", false, "skip confirmation prompts")

	historyCmd.Flags().IntVar(&histLimit, "limit", 20, "number of scans to list")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cfgPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}
	return config.Load(cfgPath)
}

// buildAdvisor creates the advisor from platform defaults plus any
// extra protections from the config.
func buildAdvisor(cfg *config.Config) (*advisor.Advisor, error) {
	info, err := platform.GetInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to detect platform: %w", err)
	}

	dirs := append(append([]string{}, info.ProtectedDirs...), cfg.ProtectedPaths...)
	exts := append(append([]string{}, info.ProtectedExtensions...), cfg.ProtectedExtensions...)
	reg := security.NewRegistry(dirs, exts)
	return advisor.New(reg, info.JunkDirs), nil
}

func scanOptions(cmd *cobra.Command, cfg *config.Config) (advisor.Options, error) {
	opts := advisor.Options{
		MaxDepth: cfg.Scan.MaxDepth,
	}

	minBytes, err := cfg.MinSizeBytes()
	if err != nil {
		return opts, fmt.Errorf("invalid configured min size: %w", err)
	}
	opts.MinSizeMB = int(minBytes / (1024 * 1024))

	if cmd.Flags().Changed("min-size") {
		opts.MinSizeMB = minSizeMB
	}
	if cmd.Flags().Changed("max-depth") {
		opts.MaxDepth = maxDepth
	}
	return opts, nil
}

func report(result *advisor.ScanResult) error {
	rptr := reporter.New(os.Stdout, parseFormat(outputFmt))
	return rptr.Report(result)
}

func parseFormat(name string) reporter.OutputFormat {
	switch name {
	case "json":
		return reporter.FormatJSON
	case "yaml":
		return reporter.FormatYAML
	case "table":
		return reporter.FormatTable
	default:
		return reporter.FormatSummary
	}
}

func openHistory(cfg *config.Config) (*history.Store, error) {
	path := cfg.History.Path
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return history.Open(path)
}

func saveHistory(cfg *config.Config, root string, startedAt time.Time, result *advisor.ScanResult) error {
	store, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveScan(root, startedAt, result)
	return err
}

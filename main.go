package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seo-optimizer/core/analyzer"
	"github.com/seo-optimizer/core/config"
	"github.com/seo-optimizer/core/logging"
	"github.com/seo-optimizer/core/page"
	"github.com/seo-optimizer/core/redirect"
	"github.com/seo-optimizer/core/robots"
	"github.com/seo-optimizer/core/stats"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seocore",
	Short: "Content SEO analysis, redirect matching and robots.txt tooling",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		var err error
		logger, err = logging.New(cfg.Environment)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var (
	analyzeKeyword string
	analyzeURL     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [html-file]",
	Short: "Score an HTML page and print the full analysis as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		html, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read page: %w", err)
		}

		pageURL := analyzeURL
		if pageURL == "" {
			pageURL = cfg.SiteURL
		}

		input, err := page.Extract(string(html), pageURL, analyzeKeyword)
		if err != nil {
			return err
		}

		a := analyzer.New(cfg.Analysis, analyzer.WithLogger(logger))
		analysis := a.Analyze(uuid.New(), input)

		return printJSON(analysis)
	},
}

var redirectRulesFile string

var redirectsCmd = &cobra.Command{
	Use:   "redirects",
	Short: "Work with redirect rules",
}

var redirectsTestCmd = &cobra.Command{
	Use:   "test [url]",
	Short: "Trace a URL through the rule set, reporting chains and loops",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := loadRedirects()
		if err != nil {
			return err
		}
		return printJSON(svc.TestURL(args[0]))
	},
}

var redirectsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Validate a CSV rules file and report the import summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, result, err := loadRedirects()
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func loadRedirects() (*redirect.Service, redirect.ImportResult, error) {
	opts := []redirect.Option{redirect.WithLogger(logger)}
	if storage, err := stats.NewStorage(cfg.DataDir, stats.WithLogger(logger)); err == nil {
		opts = append(opts, redirect.WithStats(storage))
	} else {
		logger.Warn("stats storage unavailable", zap.Error(err))
	}
	svc := redirect.NewService(cfg.Redirect, opts...)

	if redirectRulesFile == "" {
		return svc, redirect.ImportResult{}, nil
	}
	csv, err := os.ReadFile(redirectRulesFile)
	if err != nil {
		return nil, redirect.ImportResult{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	return svc, svc.ImportCSV(string(csv)), nil
}

var robotsCmd = &cobra.Command{
	Use:   "robots",
	Short: "Generate and inspect robots.txt",
}

var robotsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print the generated robots.txt for the configured site",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := robots.NewEngine(cfg.SiteURL, cfg.Robots, robots.WithLogger(logger))
		fmt.Print(engine.Generate())
		return nil
	},
}

var (
	robotsFile  string
	robotsAgent string
)

var robotsCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check whether a path is allowed for a user agent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(robotsFile)
		if err != nil {
			return fmt.Errorf("failed to read robots.txt: %w", err)
		}

		doc := robots.Parse(string(content))
		if doc.IsAllowed(args[0], robotsAgent) {
			fmt.Printf("allowed: %s for %s\n", args[0], robotsAgent)
		} else {
			fmt.Printf("disallowed: %s for %s\n", args[0], robotsAgent)
		}
		return nil
	},
}

var robotsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a robots.txt file",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(robotsFile)
		if err != nil {
			return fmt.Errorf("failed to read robots.txt: %w", err)
		}

		engine := robots.NewEngine(cfg.SiteURL, cfg.Robots)
		return printJSON(engine.Validate(string(content)))
	},
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	analyzeCmd.Flags().StringVar(&analyzeKeyword, "keyword", "", "focus keyword to score against")
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "canonical URL of the page (defaults to SITE_URL)")

	redirectsCmd.PersistentFlags().StringVar(&redirectRulesFile, "rules", "", "CSV file of redirect rules")
	redirectsCmd.AddCommand(redirectsTestCmd, redirectsImportCmd)

	robotsCmd.PersistentFlags().StringVar(&robotsFile, "file", "robots.txt", "robots.txt file to inspect")
	robotsCheckCmd.Flags().StringVar(&robotsAgent, "agent", "*", "user agent to check")
	robotsCmd.AddCommand(robotsGenerateCmd, robotsCheckCmd, robotsValidateCmd)

	rootCmd.AddCommand(analyzeCmd, redirectsCmd, robotsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

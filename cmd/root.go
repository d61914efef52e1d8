package cmd

import (
	"fmt"
	"os"

	"blog/pkg/config"
	"blog/pkg/logger"
	"blog/pkg/models"
	"blog/pkg/services"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

var flagContent string

var rootCmd = &cobra.Command{
	Use:   "blog",
	Short: "Localized personal blog",
	Long:  "blog serves and exports a multi-language article catalog read from a markdown content tree.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init()
		if flagContent != "" {
			config.ContentPath = flagContent
		}
		logger.Init(config.LogLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "path to the content tree (overrides CONTENT_PATH)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "blog %s (commit: %s)\n", version, commit)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app wires the content services from the loaded configuration.
type app struct {
	repo    *services.FileRepository
	cache   *services.ArticleCache
	catalog *services.Catalog
	site    *models.SiteConfig
}

func newApp() (*app, error) {
	repo := services.NewFileRepository(config.ContentPath, logger.Logger)
	site, err := repo.LoadSite()
	if err != nil {
		return nil, err
	}
	config.ApplySite(site)

	langs, err := services.NewLanguages(config.DefaultLanguage, config.Languages)
	if err != nil {
		return nil, err
	}
	cache := services.NewArticleCache(repo)
	return &app{
		repo:  repo,
		cache: cache,
		catalog: &services.Catalog{
			Units: cache,
			Langs: langs,
			Gate:  services.NewPublicationGate(config.PreviewFuture),
		},
		site: site,
	}, nil
}

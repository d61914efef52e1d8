package cmd

import (
	"fmt"

	"blog/pkg/config"
	"blog/pkg/logger"
	"blog/pkg/services"

	"github.com/spf13/cobra"
)

var flagOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export per-language article listings as static JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		out := flagOut
		if out == "" {
			out = config.PublicPath
		}
		report, err := services.BuildSite(a.catalog, a.repo, out, logger.Logger)
		if err != nil {
			return err
		}
		for _, lang := range report.Languages {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d articles\n", lang, report.Articles[lang])
		}
		if n := len(report.TitleCollisions); n > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "warning: %d shared title(s): %v\n", n, report.TitleCollisions)
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&flagOut, "out", "", "output directory (defaults to PUBLIC_PATH)")
}

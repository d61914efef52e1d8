package cmd

import (
	"fmt"
	"time"

	"blog/pkg/models"

	"github.com/spf13/cobra"
)

var (
	flagNewLang   string
	flagNewTitle  string
	flagNewAuthor string
	flagNewTags   []string
	flagNewFormat string
)

var newCmd = &cobra.Command{
	Use:   "new SLUG",
	Short: "Create a localized article skeleton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		lang := a.catalog.Langs.Default
		if flagNewLang != "" {
			if lang, err = a.catalog.Langs.Lookup(flagNewLang); err != nil {
				return err
			}
		}
		title := flagNewTitle
		if title == "" {
			title = args[0]
		}
		article := models.Article{
			Title:       title,
			Author:      flagNewAuthor,
			Tags:        flagNewTags,
			PublishedAt: time.Now().Unix(),
		}
		path, err := a.repo.CreateArticle(args[0], lang, article, flagNewFormat)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&flagNewLang, "lang", "", "language (defaults to the site default)")
	newCmd.Flags().StringVar(&flagNewTitle, "title", "", "article title (defaults to the slug)")
	newCmd.Flags().StringVar(&flagNewAuthor, "author", "", "author name")
	newCmd.Flags().StringSliceVar(&flagNewTags, "tag", nil, "tag, repeatable")
	newCmd.Flags().StringVar(&flagNewFormat, "format", "yaml", "front matter format: yaml, toml or json")
}

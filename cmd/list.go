package cmd

import (
	"fmt"
	"io"
	"time"

	"blog/pkg/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	flagLang  string
	flagQuery string
	flagTags  []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the article list of a language, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		lang := a.catalog.Langs.Default
		if flagLang != "" {
			if lang, err = a.catalog.Langs.Lookup(flagLang); err != nil {
				return err
			}
		}
		store, _, err := a.catalog.Store(lang)
		if err != nil {
			return err
		}
		store.SetQuery(flagQuery)
		store.SetTags(flagTags)

		empty := a.site.UIString(lang, a.catalog.Langs.Default, "articles.empty")
		store.Subscribe(func(set models.ArticleSet) {
			printListing(cmd.OutOrStdout(), set, empty)
		})
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagLang, "lang", "", "language (defaults to the site default)")
	listCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "title substring")
	listCmd.Flags().StringSliceVarP(&flagTags, "tag", "t", nil, "tag filter, repeatable")
}

func printListing(w io.Writer, set models.ArticleSet, emptyMessage string) {
	if len(set) == 0 {
		fmt.Fprintln(w, emptyMessage)
		return
	}
	yearStyle := color.New(color.FgCyan, color.Bold)
	langStyle := color.New(color.FgYellow)
	for _, year := range set.Years() {
		yearStyle.Fprintln(w, year)
		for _, art := range set[year] {
			date := time.Unix(art.PublishedAt, 0).UTC().Format("2006-01-02")
			fmt.Fprintf(w, "  %s  %s ", date, art.Title)
			langStyle.Fprintf(w, "[%s]", art.Language)
			fmt.Fprintln(w)
		}
	}
}

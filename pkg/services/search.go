package services

import (
	"sort"
	"strings"

	"blog/pkg/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GroupByYear partitions articles by publication year, keeping their order.
func GroupByYear(articles []models.Article) models.ArticleSet {
	set := make(models.ArticleSet)
	for _, a := range articles {
		y := a.Year()
		set[y] = append(set[y], a)
	}
	return set
}

// Project filters set by a title substring (case-insensitive, not trimmed) and
// by tags (any selected tag, exact match). Years left empty are dropped. The
// input set is not modified.
func Project(set models.ArticleSet, query string, tags []string) models.ArticleSet {
	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	out := make(models.ArticleSet)
	for year, articles := range set {
		var filtered []models.Article
		for _, a := range articles {
			if !strings.Contains(lower.String(a.Title), needle) {
				continue
			}
			if len(tags) > 0 && !hasAnyTag(a.Tags, tags) {
				continue
			}
			filtered = append(filtered, a)
		}
		if len(filtered) > 0 {
			out[year] = filtered
		}
	}
	return out
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// CollectTags returns every distinct tag, sorted.
func CollectTags(articles []models.Article) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, a := range articles {
		for _, t := range a.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}

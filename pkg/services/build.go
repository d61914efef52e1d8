package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"blog/pkg/models"
)

// BuildReport summarizes a static export.
type BuildReport struct {
	Languages       []string       `json:"languages"`
	Articles        map[string]int `json:"articles"`
	TitleCollisions []string       `json:"title_collisions,omitempty"`
}

// BuildSite exports, for every language, the article listing and the about
// page as JSON under outDir/<lang>/, plus an index.json describing the site.
func BuildSite(catalog *Catalog, repo *FileRepository, outDir string, logger *slog.Logger) (*BuildReport, error) {
	if logger == nil {
		logger = slog.Default()
	}
	units, err := catalog.Units.ListUnits()
	if err != nil {
		return nil, err
	}

	report := &BuildReport{
		Languages:       catalog.Langs.All(),
		Articles:        make(map[string]int),
		TitleCollisions: TitleCollisions(units),
	}
	for _, title := range report.TitleCollisions {
		logger.Warn("units share a title; fallback selection may hide one of them", "title", title)
	}

	for _, lang := range report.Languages {
		listing, err := catalog.Search(lang, models.SearchState{})
		if err != nil {
			return nil, err
		}
		report.Articles[lang] = listing.Articles.Len()
		if err := writeJSON(filepath.Join(outDir, lang, "articles.json"), listing); err != nil {
			return nil, err
		}

		about, err := repo.FetchAbout(lang, catalog.Langs.Default)
		switch {
		case errors.Is(err, ErrNotFound):
			logger.Info("no about page", "lang", lang)
		case err != nil:
			return nil, err
		default:
			if err := writeJSON(filepath.Join(outDir, lang, "about.json"), about); err != nil {
				return nil, err
			}
		}
		logger.Info("exported language", "lang", lang, "articles", report.Articles[lang])
	}

	index := map[string]interface{}{
		"default_language": catalog.Langs.Default,
		"languages":        report.Languages,
	}
	if err := writeJSON(filepath.Join(outDir, "index.json"), index); err != nil {
		return nil, err
	}
	return report, nil
}

// TitleCollisions lists titles carried by more than one unit in the unit's
// first language, the version used when falling back.
func TitleCollisions(units models.Units) []string {
	var titles []string
	for _, u := range units {
		if len(u.Languages) == 0 {
			continue
		}
		titles = append(titles, u.Items[u.Languages[0]].Title)
	}
	return FindDuplicates(titles)
}

func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"blog/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSite(t *testing.T) {
	root := newContentTree(t)
	writeFile(t, root, "articles/zz-copy/en.md", article("Go Deep", 1700000000, "go"))
	writeFile(t, root, "articles/zz-copy/pt.md", article("Go Deep", 1700000000, "go"))
	repo := NewFileRepository(root, nil)
	langs, err := NewLanguages("en", []string{"pt"})
	require.NoError(t, err)
	catalog := &Catalog{
		Units: NewArticleCache(repo),
		Langs: langs,
		Gate:  PublicationGate{Now: func() time.Time { return time.Unix(1800000000, 0) }},
	}
	out := t.TempDir()

	report, err := BuildSite(catalog, repo, out, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "pt"}, report.Languages)
	assert.Equal(t, 3, report.Articles["en"])
	assert.Equal(t, 3, report.Articles["pt"])
	assert.Equal(t, []string{"Go Deep"}, report.TitleCollisions)

	data, err := os.ReadFile(filepath.Join(out, "pt", "articles.json"))
	require.NoError(t, err)
	var listing struct {
		Language string                       `json:"lang"`
		Years    []int                        `json:"years"`
		Articles map[string][]models.Article `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(data, &listing))
	assert.Equal(t, "pt", listing.Language)
	assert.Equal(t, []int{2023, 2022}, listing.Years)
	assert.Len(t, listing.Articles["2023"], 2)

	about, err := os.ReadFile(filepath.Join(out, "pt", "about.json"))
	require.NoError(t, err)
	assert.Contains(t, string(about), `"fallback": true`)

	_, err = os.Stat(filepath.Join(out, "index.json"))
	assert.NoError(t, err)
}

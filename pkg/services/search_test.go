package services

import (
	"testing"
	"time"

	"blog/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yearTS(year int) int64 {
	return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC).Unix()
}

func sampleSet() models.ArticleSet {
	return models.ArticleSet{
		2023: {{ID: "go-deep", Title: "Go Deep", Tags: []string{"go"}, PublishedAt: yearTS(2023)}},
		2022: {{ID: "rust-basics", Title: "Rust Basics", Tags: []string{"rust"}, PublishedAt: yearTS(2022)}},
	}
}

func TestProject_QueryOnly(t *testing.T) {
	got := Project(sampleSet(), "go", nil)

	require.Len(t, got, 1)
	require.Len(t, got[2023], 1)
	assert.Equal(t, "Go Deep", got[2023][0].Title)
	assert.Equal(t, []int{2023}, got.Years())
}

func TestProject_TagsOnly(t *testing.T) {
	got := Project(sampleSet(), "", []string{"rust"})

	require.Len(t, got, 1)
	require.Len(t, got[2022], 1)
	assert.Equal(t, "Rust Basics", got[2022][0].Title)
}

func TestProject_EmptyInputsKeepEverything(t *testing.T) {
	set := sampleSet()

	got := Project(set, "", []string{})

	assert.Equal(t, set, got)
	assert.Equal(t, []int{2023, 2022}, got.Years())
}

func TestProject_CaseInsensitiveQuery(t *testing.T) {
	assert.Len(t, Project(sampleSet(), "DEEP", nil), 1)
	assert.Len(t, Project(sampleSet(), "rUsT b", nil), 1)
}

func TestProject_WhitespaceIsLiteral(t *testing.T) {
	got := Project(sampleSet(), " ", nil)
	assert.Len(t, got, 2, "both titles contain a space")

	got = Project(sampleSet(), "  ", nil)
	assert.Empty(t, got)

	got = Project(sampleSet(), " go", nil)
	assert.Empty(t, got, "query is not trimmed")
}

func TestProject_TagsAreExactAndOred(t *testing.T) {
	assert.Empty(t, Project(sampleSet(), "", []string{"Go"}))
	assert.Len(t, Project(sampleSet(), "", []string{"go", "rust"}), 2)
	assert.Empty(t, Project(sampleSet(), "deep", []string{"rust"}))
}

func TestProject_PrunesEmptyYearsAndKeepsOrder(t *testing.T) {
	set := models.ArticleSet{
		2021: {
			{Title: "Go one", Tags: []string{"go"}},
			{Title: "Other", Tags: []string{"misc"}},
			{Title: "Go two", Tags: []string{"go"}},
		},
		2020: {{Title: "Nothing here"}},
	}

	got := Project(set, "go", nil)

	require.Len(t, got, 1)
	_, has2020 := got[2020]
	assert.False(t, has2020)
	require.Len(t, got[2021], 2)
	assert.Equal(t, "Go one", got[2021][0].Title)
	assert.Equal(t, "Go two", got[2021][1].Title)
	for _, items := range got {
		assert.NotEmpty(t, items)
	}
}

func TestProject_IsPureAndIdempotent(t *testing.T) {
	set := sampleSet()
	before := Project(set, "", nil)

	first := Project(set, "go", []string{"go"})
	second := Project(set, "go", []string{"go"})

	assert.Equal(t, first, second)
	assert.Equal(t, before, set, "input must not change")
}

func TestProject_ReleasingTagsRequalifiesItems(t *testing.T) {
	set := sampleSet()
	narrowed := Project(set, "", []string{"go"})
	require.Len(t, narrowed, 1)

	released := Project(set, "", nil)
	assert.Len(t, released, 2)
}

func TestGroupByYear(t *testing.T) {
	articles := []models.Article{
		{Title: "a", PublishedAt: yearTS(2022)},
		{Title: "b", PublishedAt: yearTS(2023)},
		{Title: "c", PublishedAt: yearTS(2022)},
	}

	set := GroupByYear(articles)

	assert.Equal(t, []int{2023, 2022}, set.Years())
	require.Len(t, set[2022], 2)
	assert.Equal(t, "a", set[2022][0].Title)
	assert.Equal(t, "c", set[2022][1].Title)
	assert.Equal(t, 3, set.Len())
}

func TestCollectTags(t *testing.T) {
	articles := []models.Article{
		{Tags: []string{"rust", "go"}},
		{Tags: []string{"go", "Go"}},
		{Tags: []string{}},
	}
	assert.Equal(t, []string{"Go", "go", "rust"}, CollectTags(articles))
	assert.Nil(t, CollectTags(nil))
}

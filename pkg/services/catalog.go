package services

import (
	"blog/pkg/models"
)

// Catalog answers per-language article queries over a content repository.
type Catalog struct {
	Units ContentRepository
	Langs *Languages
	Gate  PublicationGate
}

// Listing is what the article list page renders.
type Listing struct {
	Language string            `json:"lang"`
	Years    []int             `json:"years"`
	Articles models.ArticleSet `json:"articles"`
	Tags     []string          `json:"tags"`
	Query    string            `json:"q"`
	Selected []string          `json:"selected_tags"`
}

func (l Listing) Empty() bool {
	return len(l.Articles) == 0
}

// Articles returns the published articles for lang in unit order.
func (c *Catalog) Articles(lang string) ([]models.Article, error) {
	units, err := c.Units.ListUnits()
	if err != nil {
		return nil, err
	}
	return ResolvePublished(units, lang, c.Langs.Default, c.Gate), nil
}

// Store returns a search store over the published articles of lang grouped
// by year, along with every tag of those articles.
func (c *Catalog) Store(lang string) (*SearchStore, []string, error) {
	articles, err := c.Articles(lang)
	if err != nil {
		return nil, nil, err
	}
	tags := CollectTags(articles)
	if tags == nil {
		tags = []string{}
	}
	return NewSearchStore(GroupByYear(articles)), tags, nil
}

// Search builds the listing for lang filtered by state. Tags are collected
// from the whole published catalog so deselected tags stay visible.
func (c *Catalog) Search(lang string, state models.SearchState) (Listing, error) {
	store, tags, err := c.Store(lang)
	if err != nil {
		return Listing{}, err
	}
	store.Apply(state)
	return NewListing(lang, store, tags), nil
}

// NewListing snapshots the store's current result and state.
func NewListing(lang string, store *SearchStore, tags []string) Listing {
	result := store.Result()
	state := store.State()
	selected := state.Tags
	if selected == nil {
		selected = []string{}
	}
	return Listing{
		Language: lang,
		Years:    result.Years(),
		Articles: result,
		Tags:     tags,
		Query:    state.Query,
		Selected: selected,
	}
}

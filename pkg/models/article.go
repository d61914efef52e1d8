package models

import (
	"sort"
	"time"
)

// Article is one language's version of a content unit.
type Article struct {
	ID          string   `json:"id"`
	Path        string   `json:"path"`
	Title       string   `json:"title"`
	Author      string   `json:"author,omitempty"`
	Tags        []string `json:"tags"`
	PublishedAt int64    `json:"published_at"`
	Language    string   `json:"lang,omitempty"`
	Body        string   `json:"body,omitempty"`
	Format      string   `json:"format,omitempty"` // yaml, toml, json
}

// Year returns the UTC year of the publication timestamp.
func (a Article) Year() int {
	return time.Unix(a.PublishedAt, 0).UTC().Year()
}

// ContentUnit groups the localized versions of one article directory.
// Languages keeps discovery order; it is the enumeration order used for fallback.
type ContentUnit struct {
	ID        string
	Languages []string
	Items     map[string]*Article
}

func NewContentUnit(id string) *ContentUnit {
	return &ContentUnit{ID: id, Items: make(map[string]*Article)}
}

// Add registers a localized article. It returns false when the language is
// already present, leaving the unit unchanged.
func (u *ContentUnit) Add(lang string, a *Article) bool {
	if _, exists := u.Items[lang]; exists {
		return false
	}
	u.Languages = append(u.Languages, lang)
	u.Items[lang] = a
	return true
}

func (u *ContentUnit) Has(lang string) bool {
	_, ok := u.Items[lang]
	return ok
}

// Units is a collection of content units in natural key order.
type Units []*ContentUnit

func (us Units) Sort() {
	sort.Slice(us, func(i, j int) bool { return us[i].ID < us[j].ID })
}

// IDs returns the unit identifiers in collection order.
func (us Units) IDs() []string {
	ids := make([]string, 0, len(us))
	for _, u := range us {
		ids = append(ids, u.ID)
	}
	return ids
}

// ArticleSet partitions articles by publication year.
type ArticleSet map[int][]Article

// Years returns the year keys, most recent first.
func (s ArticleSet) Years() []int {
	years := make([]int, 0, len(s))
	for y := range s {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Len counts the articles across all years.
func (s ArticleSet) Len() int {
	n := 0
	for _, items := range s {
		n += len(items)
	}
	return n
}

package services

import (
	"time"

	"blog/pkg/models"
)

// PublicationGate decides whether an article may be shown now. With Preview
// set, future-dated articles are shown as well.
type PublicationGate struct {
	Now     func() time.Time
	Preview bool
}

func NewPublicationGate(preview bool) PublicationGate {
	return PublicationGate{Now: time.Now, Preview: preview}
}

func (g PublicationGate) Allows(publishedAt int64) bool {
	if g.Preview {
		return true
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return publishedAt <= now().Unix()
}

// Filter keeps the allowed articles in their original order.
func (g PublicationGate) Filter(articles []models.Article) []models.Article {
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if g.Allows(a.PublishedAt) {
			out = append(out, a)
		}
	}
	return out
}

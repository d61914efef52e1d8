package services

import (
	"sync"

	"blog/pkg/models"
)

// ArticleCache memoizes the unit listing of a repository until invalidated.
type ArticleCache struct {
	repo ContentRepository

	mu     sync.Mutex
	units  models.Units
	loaded bool
}

func NewArticleCache(repo ContentRepository) *ArticleCache {
	return &ArticleCache{repo: repo}
}

func (c *ArticleCache) ListUnits() (models.Units, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.units, nil
	}

	units, err := c.repo.ListUnits()
	if err != nil {
		return nil, err
	}
	c.units = units
	c.loaded = true
	return c.units, nil
}

func (c *ArticleCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.units = nil
}

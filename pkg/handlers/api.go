package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blog/pkg/models"
	"blog/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const searchStateKey = "search_state"

type API struct {
	Catalog *services.Catalog
	Repo    *services.FileRepository
	Cache   *services.ArticleCache
	Site    *models.SiteConfig
	Logger  *slog.Logger
}

// Register mounts the API routes on r. The session middleware must already
// be installed.
func (a *API) Register(r gin.IRouter) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	{
		api.GET("/:lang/articles", a.ListArticles)
		api.GET("/:lang/about", a.GetAbout)
		api.PUT("/search", a.SaveSearch)
		api.DELETE("/search", a.ClearSearch)
		api.POST("/search/tags", a.ToggleSearchTag)
		api.POST("/reload", a.Reload)
	}
}

type searchQuery struct {
	Query *string  `form:"q" binding:"omitempty,max=200"`
	Tags  []string `form:"tag" binding:"omitempty,max=50,dive,max=100"`
}

// ListArticles returns the published articles of a language grouped by year
// and filtered by q/tag. Without q and tag the visitor's saved search applies.
func (a *API) ListArticles(c *gin.Context) {
	lang := a.Catalog.Langs.FromPath(c.Param("lang"))

	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	state := loadSearchState(c)
	if q.Query != nil || len(q.Tags) > 0 {
		state = models.SearchState{Tags: q.Tags}
		if q.Query != nil {
			state.Query = *q.Query
		}
	}

	store, tags, ok := a.searchStore(c, lang)
	if !ok {
		return
	}
	store.Apply(state)
	c.JSON(http.StatusOK, a.listingResponse(lang, store, tags))
}

// searchStore writes the error response itself and reports false on failure.
func (a *API) searchStore(c *gin.Context, lang string) (*services.SearchStore, []string, bool) {
	store, tags, err := a.Catalog.Store(lang)
	if err != nil {
		a.Logger.Error("listing articles", "lang", lang, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return nil, nil, false
	}
	return store, tags, true
}

func (a *API) listingResponse(lang string, store *services.SearchStore, tags []string) gin.H {
	listing := services.NewListing(lang, store, tags)
	resp := gin.H{
		"listing":            listing,
		"search_placeholder": a.Site.UIString(lang, a.Catalog.Langs.Default, "input.search"),
	}
	if listing.Empty() {
		resp["empty_message"] = a.Site.UIString(lang, a.Catalog.Langs.Default, "articles.empty")
	}
	return resp
}

func (a *API) GetAbout(c *gin.Context) {
	lang := a.Catalog.Langs.FromPath(c.Param("lang"))
	about, err := a.Repo.FetchAbout(lang, a.Catalog.Langs.Default)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "About page not found"})
			return
		}
		a.Logger.Error("reading about page", "lang", lang, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read about page"})
		return
	}
	c.JSON(http.StatusOK, about)
}

func (a *API) SaveSearch(c *gin.Context) {
	var state models.SearchState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search: " + err.Error()})
		return
	}
	if err := saveSearchState(c, state); err != nil {
		a.Logger.Error("saving search state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save search"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// ClearSearch forgets the saved search and returns the unfiltered listing of
// the language given by ?lang= (default language when absent).
func (a *API) ClearSearch(c *gin.Context) {
	lang := a.Catalog.Langs.FromPath(c.Query("lang"))
	store, tags, ok := a.searchStore(c, lang)
	if !ok {
		return
	}
	store.Apply(loadSearchState(c))
	store.Reset()

	session := sessions.Default(c)
	session.Delete(searchStateKey)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear search"})
		return
	}
	c.JSON(http.StatusOK, a.listingResponse(lang, store, tags))
}

type toggleTagRequest struct {
	Tag string `json:"tag" binding:"required,max=100"`
}

// ToggleSearchTag adds the tag to the saved selection, or removes it when
// already selected, and returns the resulting listing for ?lang=.
func (a *API) ToggleSearchTag(c *gin.Context) {
	var req toggleTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	lang := a.Catalog.Langs.FromPath(c.Query("lang"))
	store, tags, ok := a.searchStore(c, lang)
	if !ok {
		return
	}
	store.Apply(loadSearchState(c))
	store.ToggleTag(req.Tag)

	state := store.State()
	if len(state.Tags) > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Too many selected tags"})
		return
	}
	if err := saveSearchState(c, state); err != nil {
		a.Logger.Error("saving search state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save search"})
		return
	}
	c.JSON(http.StatusOK, a.listingResponse(lang, store, tags))
}

func (a *API) Reload(c *gin.Context) {
	a.Cache.Invalidate()
	units, err := a.Cache.ListUnits()
	if err != nil {
		a.Logger.Error("reloading content", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded", "units": len(units), "ids": units.IDs()})
}

func loadSearchState(c *gin.Context) models.SearchState {
	var state models.SearchState
	raw, ok := sessions.Default(c).Get(searchStateKey).(string)
	if !ok {
		return state
	}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return models.SearchState{}
	}
	return state
}

func saveSearchState(c *gin.Context, state models.SearchState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	session := sessions.Default(c)
	session.Set(searchStateKey, string(raw))
	return session.Save()
}

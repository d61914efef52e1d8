package cmd

import (
	"blog/pkg/config"
	"blog/pkg/handlers"
	"blog/pkg/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the article API and the exported site",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		// Warm the cache so content errors surface at startup.
		if _, err := a.cache.ListUnits(); err != nil {
			return err
		}

		r := gin.New()
		r.Use(gin.Recovery(), logger.Middleware())

		// Session Setup
		store := cookie.NewStore([]byte(config.SessionSecret))
		r.Use(sessions.Sessions(config.SessionName, store))

		r.Static(config.SiteURL, config.PublicPath)

		api := &handlers.API{
			Catalog: a.catalog,
			Repo:    a.repo,
			Cache:   a.cache,
			Site:    a.site,
			Logger:  logger.Logger,
		}
		api.Register(r)

		logger.Logger.Info("listening", "port", config.Port, "languages", a.catalog.Langs.All())
		return r.Run(":" + config.Port)
	},
}

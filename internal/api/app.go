package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mitchleonard/pebble-path/internal"
	"github.com/mitchleonard/pebble-path/internal/store"
)

type App interface {
	Logger() internal.Logger
	Stores() *store.Manager
}

// Routes registers every journal endpoint behind the auth middleware.
// Shared between cmd/server and the HTTP tests.
func Routes(r *gin.Engine, app App, authMW gin.HandlerFunc) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	g := r.Group("/api", authMW)
	g.GET("/day/:date", GetDay(app))
	g.PUT("/day/:date", PutDay(app))
	g.GET("/presets", GetPresets(app))
	g.PUT("/presets", PutPresets(app))
	g.GET("/summary", GetSummary(app))
	g.GET("/insights", GetInsights(app))
	g.POST("/ask", PostAsk(app))
	g.GET("/export", GetExport(app))
	g.POST("/logout", PostLogout(app))
}

// currentUser pulls the user the auth middleware resolved.
func currentUser(c *gin.Context) *internal.User {
	return c.MustGet("user").(*internal.User)
}

package api

import (
	"github.com/gin-gonic/gin"
)

// PostLogout drops the caller's pooled store after flushing pending
// writes. The next authenticated request re-hydrates from persistence.
func PostLogout(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		app.Stores().Evict(user.ID)
		HandleSuccess(c, app.Logger(), gin.H{"logged_out": true}, nil)
	}
}

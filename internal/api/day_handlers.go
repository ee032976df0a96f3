package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mitchleonard/pebble-path/internal/dateutil"
	"github.com/mitchleonard/pebble-path/internal/service"
)

// GetDay returns the stored entry for a date, or a fresh default when
// nothing is stored yet. The default is never persisted by a read.
func GetDay(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		date := c.Param("date")
		if !dateutil.IsValidISO(date) {
			HandleError(c, app.Logger(), errors.New(date), 400, "Invalid date key, want YYYY-MM-DD")
			return
		}

		st := app.Stores().ForUser(c.Request.Context(), user.ID)
		entry := st.Day(date)
		HandleSuccess(c, app.Logger(), entry, map[string]any{
			"display": dateutil.ToDisplay(date),
		})
	}
}

// PutDay replaces the whole entry for a date.
func PutDay(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		date := c.Param("date")

		var body service.DayEntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateDayEntryRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		st := app.Stores().ForUser(c.Request.Context(), user.ID)
		entry, err := service.UpsertDay(c.Request.Context(), st, date, &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Rejected day entry")
			return
		}
		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

// GetPresets returns the user's quick-add preset lists.
func GetPresets(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		st := app.Stores().ForUser(c.Request.Context(), user.ID)
		HandleSuccess(c, app.Logger(), st.Presets(), nil)
	}
}

// PutPresets replaces both preset lists.
func PutPresets(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body service.PresetsRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidatePresetsRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		st := app.Stores().ForUser(c.Request.Context(), user.ID)
		next := service.UpdatePresets(c.Request.Context(), st, &body)
		HandleSuccess(c, app.Logger(), next, nil)
	}
}

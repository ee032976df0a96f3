package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mitchleonard/pebble-path/internal/dateutil"
	"github.com/mitchleonard/pebble-path/internal/service"
)

// rangeParams reads ?start&end, defaulting to the last 7 days.
func rangeParams(c *gin.Context) (string, string, error) {
	end := c.DefaultQuery("end", dateutil.TodayISO())
	start := c.DefaultQuery("start", dateutil.AddDaysISO(end, -6))
	if !dateutil.IsValidISO(start) || !dateutil.IsValidISO(end) {
		return "", "", errors.New("start and end must be YYYY-MM-DD")
	}
	if start > end {
		return "", "", errors.New("start must not be after end")
	}
	return start, end, nil
}

// GetSummary returns averages, the food frequency table and chart series
// for a date range.
func GetSummary(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		start, end, err := rangeParams(c)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid range")
			return
		}

		st := app.Stores().ForUser(c.Request.Context(), user.ID)
		summary := service.Summarize(st.Days(), start, end)
		HandleSuccess(c, app.Logger(), summary, nil)
	}
}

// GetInsights runs the heuristic battery over a date range.
func GetInsights(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		start, end, err := rangeParams(c)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid range")
			return
		}

		st := app.Stores().ForUser(c.Request.Context(), user.ID)
		entries := service.FilterRange(st.Days(), start, end)
		insights := service.BuildInsights(entries)
		HandleSuccess(c, app.Logger(), insights, map[string]any{
			"entries": len(entries),
		})
	}
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

// PostAsk answers a free-text question with a canned statistic over the
// whole journal (not range-filtered).
func PostAsk(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body askRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Question required")
			return
		}

		st := app.Stores().ForUser(c.Request.Context(), user.ID)
		answer := service.AnswerQuestion(st.Days(), body.Question)
		HandleSuccess(c, app.Logger(), gin.H{"answer": answer}, nil)
	}
}

// GetExport streams the flat CSV projection for a date range.
func GetExport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		start, end, err := rangeParams(c)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid range")
			return
		}

		st := app.Stores().ForUser(c.Request.Context(), user.ID)
		entries := service.FilterRange(st.Days(), start, end)

		filename := fmt.Sprintf("pebble-path_%s_%s.csv", start, end)
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Status(http.StatusOK)
		if err := service.WriteCSV(c.Writer, entries); err != nil {
			app.Logger().Errorf("export: failed to write csv: %v", err)
		}
	}
}

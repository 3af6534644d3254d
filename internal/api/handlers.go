package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tphakala/vocalization-go/internal/datastore"
	"github.com/tphakala/vocalization-go/internal/logger"
	"github.com/tphakala/vocalization-go/internal/vocalization"
)

const (
	maxSearchLimit = 500
	chartDays      = 7
	chartTopLimit  = 10
)

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleVocalizations returns stored results filtered by the query
// parameters limit, offset, type, species and date.
func (s *Server) handleVocalizations(c echo.Context) error {
	filters := datastore.SearchFilters{
		Species:  c.QueryParam("species"),
		Category: c.QueryParam("type"),
		Date:     c.QueryParam("date"),
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filters.Limit = min(limit, maxSearchLimit)
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid offset")
		}
		filters.Offset = offset
	}

	results, err := s.store.Search(filters)
	if err != nil {
		s.log.Error("Vocalization search failed", logger.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	if results == nil {
		results = []datastore.Vocalization{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"vocalizations": results,
		"count":         len(results),
	})
}

// handleStats returns result totals, per-category counts with localized
// names and the model inventory.
func (s *Server) handleStats(c echo.Context) error {
	stats, err := s.store.GetStats()
	if err != nil {
		s.log.Error("Stats query failed", logger.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "stats failed")
	}

	byCategory := make([]map[string]any, 0, len(stats.ByCategory))
	for _, category := range []string{vocalization.CategorySong, vocalization.CategoryCall, vocalization.CategoryAlarm} {
		count, ok := stats.ByCategory[category]
		if !ok {
			continue
		}
		byCategory = append(byCategory, map[string]any{
			"category": category,
			"display":  vocalization.DisplayCategory(category, s.settings.Language),
			"count":    count,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total":        stats.Total,
		"by_category":  byCategory,
		"species_seen": stats.SpeciesSeen,
		"models": map[string]any{
			"count":   s.models.ModelCount(),
			"species": s.models.AvailableSpecies(),
		},
	})
}

// handleCharts returns the data for the dashboard charts: daily result
// counts over the last week and the most frequent species. Days without
// results are filled with zero so the chart axis is continuous.
func (s *Server) handleCharts(c echo.Context) error {
	counts, err := s.store.GetDailyCounts(chartDays)
	if err != nil {
		s.log.Error("Daily counts query failed", logger.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "charts failed")
	}

	byDate := make(map[string]int64, len(counts))
	for _, dc := range counts {
		byDate[dc.Date] = dc.Count
	}

	daily := make([]datastore.DailyCount, chartDays)
	start := time.Now().AddDate(0, 0, -(chartDays - 1))
	for i := range daily {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		daily[i] = datastore.DailyCount{Date: date, Count: byDate[date]}
	}

	topSpecies, err := s.store.GetTopSpecies(chartDays, chartTopLimit)
	if err != nil {
		s.log.Error("Top species query failed", logger.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "charts failed")
	}
	if topSpecies == nil {
		topSpecies = []datastore.SpeciesCount{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"daily":       daily,
		"top_species": topSpecies,
	})
}

// feedbackRequest is the POST /feedback body.
type feedbackRequest struct {
	VocalizationID  uint   `json:"vocalization_id"`
	CorrectCategory string `json:"correct_category"`
	Comment         string `json:"comment"`
}

// handleFeedback stores a user correction for a stored result.
func (s *Server) handleFeedback(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.VocalizationID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "vocalization_id is required")
	}

	category := strings.ToLower(strings.TrimSpace(req.CorrectCategory))
	switch category {
	case vocalization.CategorySong, vocalization.CategoryCall, vocalization.CategoryAlarm, "":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
	}

	if _, err := s.store.Get(req.VocalizationID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "vocalization not found")
	}

	feedback := &datastore.Feedback{
		VocalizationID:  req.VocalizationID,
		CorrectCategory: category,
		Comment:         req.Comment,
	}
	if err := s.store.SaveFeedback(feedback); err != nil {
		s.log.Error("Saving feedback failed", logger.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "saving feedback failed")
	}

	return c.JSON(http.StatusCreated, map[string]any{"id": feedback.ID})
}

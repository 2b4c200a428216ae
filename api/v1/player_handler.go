package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wordrush/WordRush/api/middleware"
	"github.com/wordrush/WordRush/internal/stats"
)

var StatsService *stats.Service

func RegisterPlayerRoutes(g *echo.Group, svc *stats.Service) {
	StatsService = svc
	g.GET("/stats", PlayerStatsHandler)
	g.GET("/history", PlayerHistoryHandler)
	g.GET("/report", PlayerReportHandler)
}

func PlayerStatsHandler(c echo.Context) error {
	username := middleware.CurrentUsername(c)
	playerStats, err := StatsService.GetPlayerStats(username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, playerStats)
}

func PlayerHistoryHandler(c echo.Context) error {
	username := middleware.CurrentUsername(c)
	history, err := StatsService.GetHistory(username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, history)
}

func PlayerReportHandler(c echo.Context) error {
	username := middleware.CurrentUsername(c)
	report, err := StatsService.GetUserReport(username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

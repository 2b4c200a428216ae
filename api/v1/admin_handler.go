package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/wordrush/WordRush/internal/game"
	"github.com/wordrush/WordRush/internal/word"
)

var WordService *word.Service

type AddWordRequest struct {
	Word string `json:"word"`
}

func RegisterAdminRoutes(g *echo.Group, wordSvc *word.Service) {
	WordService = wordSvc
	g.POST("/words", AddWordHandler)
	g.GET("/reports", AdminReportsHandler)
	g.GET("/reports/wins", WinReportsHandler)
	g.GET("/reports/daily", DailyReportHandler)
	g.GET("/reports/users/:username", UserReportHandler)
	g.GET("/stats", SystemStatsHandler)
}

func AddWordHandler(c echo.Context) error {
	var req AddWordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	w, err := WordService.AddWord(req.Word)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "word '" + w.Text + "' added successfully",
	})
}

func AdminReportsHandler(c echo.Context) error {
	reports, err := StatsService.GetAdminReports(time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

func WinReportsHandler(c echo.Context) error {
	reports, err := StatsService.GetWinReports()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

func DailyReportHandler(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = today()
	}
	if _, err := time.Parse(game.DateLayout, date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	}
	report, err := StatsService.GetDailyReport(date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

func UserReportHandler(c echo.Context) error {
	username := c.Param("username")
	report, err := StatsService.GetUserReport(username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

func SystemStatsHandler(c echo.Context) error {
	systemStats, err := StatsService.GetSystemStats(today())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, systemStats)
}

package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/wordrush/WordRush/api/middleware"
	"github.com/wordrush/WordRush/internal/game"
)

var GameService *game.GameService

type GuessRequest struct {
	Word string `json:"word"`
}

func RegisterGameRoutes(g *echo.Group, svc *game.GameService) {
	GameService = svc
	g.POST("", StartGameHandler)
	g.GET("/daily-status", DailyStatusHandler)
	g.GET("/:id", GameStatusHandler)
	g.POST("/:id/guesses", SubmitGuessHandler)
}

func today() string {
	return time.Now().UTC().Format(game.DateLayout)
}

func StartGameHandler(c echo.Context) error {
	username := middleware.CurrentUsername(c)
	resp, err := GameService.StartGame(username, today())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func SubmitGuessHandler(c echo.Context) error {
	username := middleware.CurrentUsername(c)
	var req GuessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	result, err := GameService.SubmitGuess(username, c.Param("id"), req.Word)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func GameStatusHandler(c echo.Context) error {
	username := middleware.CurrentUsername(c)
	status, err := GameService.GetStatus(username, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

func DailyStatusHandler(c echo.Context) error {
	username := middleware.CurrentUsername(c)
	status, err := GameService.GetDailyStatus(username, today())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wordrush/WordRush/internal/user"
)

const INVALID_REQUEST = "invalid request"

var UserService *user.UserService

func RegisterAuthRoutes(g *echo.Group, svc *user.UserService) {
	UserService = svc
	g.POST("/register", RegisterHandler)
	g.POST("/login", LoginHandler)
}

func RegisterHandler(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	resp, err := UserService.Register(creds)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func LoginHandler(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	resp, err := UserService.Login(creds)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

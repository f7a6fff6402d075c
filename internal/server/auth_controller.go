package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/namanpunn/logikxmind-uat/internal/models"
	"github.com/namanpunn/logikxmind-uat/internal/usecase"
)

type AuthController interface {
	Login(c echo.Context) error
}

type authController struct {
	authUsecase *usecase.AuthUsecase
}

func NewAuthController(authUsecase *usecase.AuthUsecase) AuthController {
	return &authController{
		authUsecase: authUsecase,
	}
}

func (ac *authController) Login(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := ac.authUsecase.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
		}
		return err
	}

	return c.JSON(http.StatusOK, response)
}

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/namanpunn/logikxmind-uat/internal/models"
	"github.com/namanpunn/logikxmind-uat/internal/usecase"
)

type Controller interface {
	Chat(c echo.Context) error
	Health(c echo.Context) error
}

type controller struct {
	chatUsecase usecase.ChatUsecase
}

func NewController(chatUsecase usecase.ChatUsecase) Controller {
	return &controller{
		chatUsecase: chatUsecase,
	}
}

func (h *controller) Chat(c echo.Context) error {
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	resp, err := h.chatUsecase.ProcessChat(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "mentor-api",
	})
}

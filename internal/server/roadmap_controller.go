package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/namanpunn/logikxmind-uat/internal/models"
	"github.com/namanpunn/logikxmind-uat/internal/usecase"
)

type RoadmapController interface {
	Generate(c echo.Context) error
	GetLatest(c echo.Context) error
}

type roadmapController struct {
	roadmapUsecase usecase.RoadmapUsecase
}

func NewRoadmapController(roadmapUsecase usecase.RoadmapUsecase) RoadmapController {
	return &roadmapController{
		roadmapUsecase: roadmapUsecase,
	}
}

func (rc *roadmapController) Generate(c echo.Context) error {
	var user models.UserData
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	roadmap, err := rc.roadmapUsecase.GenerateRoadmap(ctx, user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, roadmap)
}

func (rc *roadmapController) GetLatest(c echo.Context) error {
	ctx := c.Request().Context()
	roadmap, err := rc.roadmapUsecase.GetLatest(ctx, c.Param("user_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, roadmap)
}

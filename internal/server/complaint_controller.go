package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/namanpunn/logikxmind-uat/internal/models"
	"github.com/namanpunn/logikxmind-uat/internal/usecase"
)

type ComplaintController interface {
	Raise(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	UpdateStatus(c echo.Context) error
	Delete(c echo.Context) error
}

type complaintController struct {
	complaintUsecase usecase.ComplaintUsecase
}

func NewComplaintController(complaintUsecase usecase.ComplaintUsecase) ComplaintController {
	return &complaintController{
		complaintUsecase: complaintUsecase,
	}
}

func (cc *complaintController) Raise(c echo.Context) error {
	var req models.RaiseComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	complaint, err := cc.complaintUsecase.Raise(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":      "complaint raised successfully",
		"complaint_id": complaint.ID.Hex(),
	})
}

func (cc *complaintController) List(c echo.Context) error {
	ctx := c.Request().Context()
	complaints, err := cc.complaintUsecase.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"complaints": complaints,
	})
}

func (cc *complaintController) Get(c echo.Context) error {
	ctx := c.Request().Context()
	complaint, err := cc.complaintUsecase.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, complaint)
}

func (cc *complaintController) UpdateStatus(c echo.Context) error {
	var req models.UpdateComplaintStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	complaint, err := cc.complaintUsecase.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, complaint)
}

func (cc *complaintController) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	if err := cc.complaintUsecase.Delete(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "complaint deleted successfully",
	})
}

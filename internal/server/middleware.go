package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/namanpunn/logikxmind-uat/internal/models"
	"github.com/namanpunn/logikxmind-uat/internal/repo/llm"
)

// errorHandler maps domain errors to HTTP statuses. Generation pipeline
// failures stay 500 but keep the failing stage in the message so the
// client can tell an empty model reply from a malformed one.
func errorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			// already shaped by a handler or middleware
		case errors.Is(err, models.ErrNotFound):
			he = &echo.HTTPError{
				Code:    http.StatusNotFound,
				Message: "not found",
			}
		case errors.Is(err, llm.ErrEmptyResponse),
			errors.Is(err, llm.ErrNoJSONFound),
			errors.Is(err, llm.ErrMalformedReply):
			he = &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: err.Error(),
			}
		default:
			he = &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: http.StatusText(http.StatusInternalServerError),
			}
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				err = c.NoContent(he.Code)
			} else {
				err = c.JSON(he.Code, he)
			}
			if err != nil {
				c.Logger().Error(err)
			}
		}
	}
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	cerrors "github.com/umalmyha/customer-search/internal/errors"
	"github.com/umalmyha/customer-search/internal/validation"
)

// ErrorHandler logs error raised by handler and converts it to response with corresponding status
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		logrus.WithError(err).WithField("path", c.Request().URL.Path).Error("error occurred on http request processing")

		if c.Response().Committed {
			return
		}

		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) {
			if jsonErr := c.JSON(http.StatusBadRequest, pldErr); jsonErr != nil {
				logrus.WithError(jsonErr).Error("failed to send payload error")
			}
			return
		}

		e.DefaultHTTPErrorHandler(toHTTPError(err), c)
	}
}

func toHTTPError(err error) error {
	var nfErr *cerrors.EntryNotFoundErr
	if errors.As(err, &nfErr) {
		return echo.NewHTTPError(http.StatusNotFound, nfErr.Error())
	}

	var fetchErr *cerrors.FetchFailure
	if errors.As(err, &fetchErr) {
		return echo.NewHTTPError(http.StatusBadGateway, fetchErr.Error())
	}

	return err
}

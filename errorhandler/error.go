package errorhandler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/AirHelp/numstats/api"
)

// HTTPErrorHandler renders every handler error as {"error": message}
func HTTPErrorHandler(err error, c echo.Context) {
	var code int
	var message string

	var apiErr api.Error
	var httpErr *echo.HTTPError

	if errors.As(err, &apiErr) {
		code = apiErr.Code
		message = apiErr.Message
	} else if errors.As(err, &httpErr) {
		if httpErr.Internal != nil {
			if herr, ok := httpErr.Internal.(*echo.HTTPError); ok {
				httpErr = herr
			}
		}

		code = httpErr.Code
		message = http.StatusText(httpErr.Code)
	} else {
		code = http.StatusInternalServerError
		message = http.StatusText(http.StatusInternalServerError)

		zap.S().With("path", c.Request().URL.Path).Errorf("unhandled error: %v", err)
	}

	if c.Response().Committed {
		return
	}

	var sendErr error

	if c.Request().Method == http.MethodHead {
		sendErr = c.NoContent(code)
	} else {
		sendErr = c.JSON(code, api.Err(code, message))
	}

	if sendErr != nil {
		zap.S().Warnf("failed to send error response: %v", sendErr)
	}
}

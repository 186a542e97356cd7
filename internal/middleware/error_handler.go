package middleware

import (
	"errors"
	"fmt"
	"myBestDeals/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler renders every unhandled error as {"message": ...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		logger.Error("Unhandled request error", "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Message: message})
	}
	if err != nil {
		logger.Error("Failed to write error response", "error", err)
	}
}

package handler

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"wardrobe/internal/auth"
	"wardrobe/internal/errors"
)

const (
	msgInvalidBody = "Invalid request body"
	msgInvalidID   = "Invalid id"
)

// respondError converts err into the JSON error envelope. Server-side
// failures are logged with the request id and never echoed to the client.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		c.Logger().Errorf("request_id=%s %s %s: %v",
			c.Response().Header().Get(echo.HeaderXRequestID),
			c.Request().Method, c.Path(), err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  "VALIDATION_ERROR",
	})
}

// validationMessage turns the first failed validator rule into a sentence.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return msgInvalidBody
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}

// currentUserID returns the authenticated caller, or a 401 if the auth
// middleware did not run.
func currentUserID(c echo.Context) (uint, error) {
	id, ok := auth.UserID(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "Missing or invalid Authorization header",
			Code:  "UNAUTHORIZED",
		})
	}
	return id, nil
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, badRequest(msgInvalidID)
	}
	return uint(id), nil
}

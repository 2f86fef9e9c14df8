package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"carelink/internal/errors"
)

const dateLayout = "2006-01-02"

var timeLayouts = []string{"15:04", "15:04:05"}

// respondError translates a domain error into the standardized error payload.
func respondError(err error) error {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// parseDate parses a required YYYY-MM-DD form value.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected "+dateLayout)
	}
	return t, nil
}

// parseOptionalDate parses a YYYY-MM-DD value, returning the zero time when
// the value is empty so the service can apply its default.
func parseOptionalDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return parseDate(value)
}

// parseClockTime validates an HH:MM or HH:MM:SS value and returns it unchanged.
func parseClockTime(value string) (string, error) {
	for _, layout := range timeLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return value, nil
		}
	}
	return "", echo.NewHTTPError(http.StatusBadRequest, "invalid time, expected HH:MM")
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/uuid"
)

// respondWithError hands the error to the error middleware and stops the
// chain.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// getUserID returns the authenticated user's ID placed on the context by
// the auth middleware.
func getUserID(c *gin.Context) (string, bool) {
	id := c.GetString("userID")
	if id == "" {
		respondWithError(c, errors.ErrUnauthorized)
		return "", false
	}
	return id, true
}

// parseUUIDParam validates a path parameter as a UUID.
func parseUUIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !uuid.IsValid(id) {
		respondWithError(c, errors.WithMessage(errors.ErrInvalidInput, "Invalid "+name))
		return "", false
	}
	return id, true
}

// parseMonthYear validates the :month/:year path parameters.
func parseMonthYear(c *gin.Context) (month, year int, ok bool) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		respondWithError(c, errors.WithMessage(errors.ErrInvalidInput, "Month must be between 1 and 12"))
		return 0, 0, false
	}
	year, err = strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		respondWithError(c, errors.WithMessage(errors.ErrInvalidInput, "Year must be between 2000 and 2100"))
		return 0, 0, false
	}
	return month, year, true
}

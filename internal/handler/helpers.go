package handler

import (
	"errors"
	"strconv"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parseID parses a numeric path parameter
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseOptionalID normalizes an optional form reference: an empty
// selection becomes nil
func parseOptionalID(value string) (*uint, error) {
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, err
	}
	v := uint(id)
	return &v, nil
}

// redirectError converts a service error into a user-facing notice and
// a redirect to a safe fallback view. Raw errors never reach the client.
func redirectError(c *gin.Context, err error, entity, fallback string) {
	var ve *apperrors.ValidationError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		utils.RedirectWithError(c, fallback, entity+" not found")
	case errors.As(err, &ve):
		utils.RedirectWithError(c, fallback, "Invalid input: "+ve.Message)
	default:
		utils.RedirectWithError(c, fallback, "Failed to access the database")
	}
}

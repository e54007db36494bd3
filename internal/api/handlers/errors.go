package handlers

import (
	"errors"

	apperrors "ml-league-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// isValidationError reports whether err stems from request validation,
// either a struct-tag failure or a domain invariant violation. Both map
// to HTTP 400.
func isValidationError(err error) bool {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return true
	}
	var ve *apperrors.ValidationError
	return errors.As(err, &ve)
}

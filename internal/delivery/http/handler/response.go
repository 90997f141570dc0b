package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gdugdh24/heartline-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error kinds returned in ErrorResponse.Kind.
const (
	KindValidation  = "validation"
	KindNotFound    = "not_found"
	KindConflict    = "conflict"
	KindInternal    = "internal"
	KindUnavailable = "unavailable"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// MessageResponse confirms a mutation
type MessageResponse struct {
	ID      int    `json:"id,omitempty"`
	Message string `json:"message"`
}

func abortWithError(c *gin.Context, status int, kind, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, Kind: kind})
}

// bindingErrorMessage describes why a JSON body failed to bind.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	var missing, invalid []string
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			missing = append(missing, name)
		} else {
			invalid = append(invalid, name)
		}
	}

	parts := make([]string, 0, 2)
	if len(missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "out of range fields: "+strings.Join(invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// writeDomainError maps use case errors onto status codes. Unknown errors are
// reported as internal without leaking their text.
func writeDomainError(c *gin.Context, err error, notFoundMessage, internalMessage string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		abortWithError(c, http.StatusBadRequest, KindValidation, err.Error())
	case errors.Is(err, domain.ErrProfileNotFound):
		abortWithError(c, http.StatusNotFound, KindNotFound, notFoundMessage)
	case errors.Is(err, domain.ErrUserEmailTaken):
		abortWithError(c, http.StatusConflict, KindConflict, err.Error())
	case errors.Is(err, domain.ErrCacheUnavailable):
		_ = c.Error(err)
		abortWithError(c, http.StatusServiceUnavailable, KindUnavailable, "profile cache unavailable, try again later")
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, KindInternal, internalMessage)
	}
}

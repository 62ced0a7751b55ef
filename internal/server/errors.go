package server

import (
	"net/http"

	"github.com/titanhire/titanhire/internal/auth"
	"github.com/titanhire/titanhire/internal/generator"
	"github.com/titanhire/titanhire/internal/jobs"
	"github.com/titanhire/titanhire/internal/storage"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch e := err.(type) {
	case *auth.ErrEmailAlreadyExists:
		return http.StatusConflict
	case *auth.ErrInvalidCredentials, *auth.ErrNotAuthenticated:
		return http.StatusUnauthorized
	case *auth.Error:
		return http.StatusBadRequest
	case *jobs.InvalidCompletionError, *jobs.InvalidJobError:
		return http.StatusBadRequest
	case *generator.GenerationError:
		if e.Timeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	case *storage.PersistenceError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

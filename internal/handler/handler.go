package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/middleware"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a service error to an HTTP response. Domain errors
// carry their own code; anything else is a generic 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var derr *model.DomainError
	if errors.As(err, &derr) {
		status := statusForCode(derr.Code)
		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).Msg("handler error")
		} else {
			logger.Debug().Err(err).Msg("request rejected")
		}
		writeJSON(w, status, model.ErrorResponse{Error: derr.Code, Message: derr.Message})
		return
	}

	logger.Error().Err(err).Msg("handler error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:   model.ErrCodeInternalError,
		Message: "internal server error",
	})
}

func statusForCode(code string) int {
	switch code {
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeSlugTaken, model.ErrCodeEmailTaken, model.ErrCodeAllergenTaken:
		return http.StatusConflict
	case model.ErrCodeInvalidJSON, model.ErrCodeMissingField, model.ErrCodeInvalidPrice, model.ErrCodeCrossMenuParent:
		return http.StatusBadRequest
	case model.ErrCodeInvalidCredentials, model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeTranslationFormat:
		return http.StatusBadGateway
	case model.ErrCodeTranslationTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// actorFrom converts the authenticated caller in the request context into a
// model actor. Returns nil on unauthenticated requests.
func actorFrom(r *http.Request) *model.Actor {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		return nil
	}
	return &model.Actor{ID: user.ID, Role: user.Role}
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Request body is not valid JSON")
	}
	return nil
}

// pathUUID parses a UUID path segment registered as {name} on the route.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeMissingField, "Invalid "+name+" in path")
	}
	return id, nil
}

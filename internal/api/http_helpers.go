package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"blackjackd/internal/apperrors"
)

// errorBody is the structured error payload returned for every failure.
type errorBody struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Status  int               `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

func decodeJSON(r *http.Request, dest any) error {
	if r.Body == nil {
		return errors.New("request body required")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError maps a domain error to its HTTP status and structured body.
// Errors without a domain code become opaque 500s.
func respondError(w http.ResponseWriter, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		respondJSON(w, http.StatusInternalServerError, errorBody{
			Message: "internal server error",
			Code:    "INTERNAL",
			Status:  http.StatusInternalServerError,
		})
		return
	}

	status := statusForCode(appErr.Code)
	respondJSON(w, status, errorBody{
		Message: appErr.Message,
		Code:    string(appErr.Code),
		Status:  status,
		Details: appErr.Details,
	})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorBody{
		Message: message,
		Code:    "BAD_REQUEST",
		Status:  http.StatusBadRequest,
	})
}

// statusForCode is the single place domain codes meet HTTP semantics.
func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.CodeInvalidPlayerCount,
		apperrors.CodeDuplicatePlayer,
		apperrors.CodeInvalidEmail,
		apperrors.CodeInvalidPassword:
		return http.StatusBadRequest
	case apperrors.CodeInvalidCredentials,
		apperrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.CodePlayerNotInGame,
		apperrors.CodeGameFinished,
		apperrors.CodeNotCreator,
		apperrors.CodeNotInvitee:
		return http.StatusForbidden
	case apperrors.CodeGameNotFound,
		apperrors.CodeCardNotFound,
		apperrors.CodeInvitationNotFound:
		return http.StatusNotFound
	case apperrors.CodeNotYourTurn,
		apperrors.CodeGameNotFinished,
		apperrors.CodeInvitationNotPending,
		apperrors.CodeUserExists:
		return http.StatusConflict
	case apperrors.CodeEmptyDeck:
		return http.StatusGone
	case apperrors.CodeRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

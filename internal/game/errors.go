package game

import "blackjackd/internal/apperrors"

// Sentinel errors returned by the session core. All are expected,
// recoverable-by-caller conditions; the HTTP layer maps each code to a
// status/error-code pair.
var (
	ErrGameNotFound    = apperrors.New(apperrors.CodeGameNotFound, "game not found")
	ErrDuplicatePlayer = apperrors.New(apperrors.CodeDuplicatePlayer, "player already in game")
	ErrPlayerNotInGame = apperrors.New(apperrors.CodePlayerNotInGame, "player not found in this game")
	ErrNotYourTurn     = apperrors.New(apperrors.CodeNotYourTurn, "it's not your turn")
	ErrGameFinished    = apperrors.New(apperrors.CodeGameFinished, "game is already finished")
	ErrGameNotFinished = apperrors.New(apperrors.CodeGameNotFinished, "game is not finished yet")
	ErrCardNotFound    = apperrors.New(apperrors.CodeCardNotFound, "card not found in player's hand")
)

package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrGameNotFound        = errors.New("game not found")
	ErrInvalidMove         = errors.New("invalid move")
	ErrInvalidMark         = errors.New("invalid player mark")
	ErrUnknownStrategyKind = errors.New("unknown strategy kind")
	ErrNoAvailableMoves    = errors.New("no available moves")
)

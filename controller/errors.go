package controller

import (
	"errors"
	"fmt"
)

// The two error families callers are expected to branch on. Every failure in
// this package unwraps to one of them; all are per-operation and recoverable
// by supplying corrected input.
var (
	ErrValidation  = errors.New("validation error")
	ErrConsistency = errors.New("consistency error")
)

var (
	ErrEmptyName         = fmt.Errorf("%w: player name must not be empty", ErrValidation)
	ErrInvalidSkillLevel = fmt.Errorf("%w: skill level must be between 1 and 10", ErrValidation)
	ErrUnknownPlayer     = fmt.Errorf("%w: unknown player", ErrValidation)
	ErrDuplicatePlayer   = fmt.Errorf("%w: duplicate player in roster", ErrValidation)
	ErrUnknownAlgorithm  = fmt.Errorf("%w: unknown team generation algorithm", ErrValidation)
	ErrUnknownResult     = fmt.Errorf("%w: unknown game result", ErrValidation)
	ErrNegativeDuration  = fmt.Errorf("%w: game duration must not be negative", ErrValidation)

	ErrDuplicateGamePlayer = fmt.Errorf("%w: a player appears more than once in the game", ErrConsistency)
	ErrTeamNotInRoster     = fmt.Errorf("%w: team contains a player not assigned to the playing day", ErrConsistency)
)

// InvalidRosterSizeError reports a roster that cannot be partitioned into
// two-player teams, identifying the offending size.
type InvalidRosterSizeError struct {
	Size int
}

func (e *InvalidRosterSizeError) Error() string {
	return fmt.Sprintf("roster size must be an even number of at least 2 players, got %d", e.Size)
}

func (e *InvalidRosterSizeError) Unwrap() error {
	return ErrValidation
}

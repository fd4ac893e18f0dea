package game

import (
	"errors"
	"fmt"
)

// ErrInvariant is the base error for precondition failures. It is fatal to the current match.
var ErrInvariant = errors.New("invariant violation")

var (
	ErrUnknownPlayer    = fmt.Errorf("%w: unknown player", ErrInvariant)
	ErrTooManyImpostors = fmt.Errorf("%w: impostor count must be below player count", ErrInvariant)
	ErrNoImpostors      = fmt.Errorf("%w: at least one impostor is required", ErrInvariant)
	ErrRolesAssigned    = fmt.Errorf("%w: roles already assigned", ErrInvariant)
	ErrRosterExists     = fmt.Errorf("%w: roster already created", ErrInvariant)
	ErrEmptyRoster      = fmt.Errorf("%w: no players", ErrInvariant)
	ErrNotReady         = fmt.Errorf("%w: roster or roles missing", ErrInvariant)
	ErrInvalidSelection = fmt.Errorf("%w: selection out of range", ErrInvariant)
	ErrBadTransition    = fmt.Errorf("%w: illegal status transition", ErrInvariant)
)

// ErrMatchFinished is returned by engine operations once the match has ended
var ErrMatchFinished = errors.New("match already finished")

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("domain: not found")
	ErrDuplicateISRC = errors.New("domain: duplicate ISRC")
	ErrInvalidArg    = errors.New("domain: invalid argument")
)

// MinPlaylistTracks is the smallest selection worth turning into a playlist.
const MinPlaylistTracks = 5

// NotEnoughTracksError reports a catalog search that came back too thin.
type NotEnoughTracksError struct {
	Found int
}

func (e *NotEnoughTracksError) Error() string {
	return fmt.Sprintf("not enough tracks (%d)", e.Found)
}

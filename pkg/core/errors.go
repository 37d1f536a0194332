package core

import (
	"errors"
)

var (
	ErrInvalidInput             = errors.New("peeraddr: invalid input")
	ErrInvalidLength            = errors.New("peeraddr: invalid length")
	ErrInvalidStartingCharacter = errors.New("peeraddr: invalid starting character")
	ErrNoPayload                = errors.New("peeraddr: no payload")
	ErrCorrupt                  = errors.New("peeraddr: corrupt data")
)

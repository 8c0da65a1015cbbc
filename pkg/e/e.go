package e

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrLeavePending    = errors.New("leave confirmation already pending")
	ErrNoPendingLeave  = errors.New("no pending leave to resolve")
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

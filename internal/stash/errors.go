package stash

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTargetUnavailable marks failures to reach the console or the game
	// process.
	ErrTargetUnavailable = errors.New("target unavailable")
	// ErrUnsupportedVersion marks a running title that is not the target game
	// or a build with no offset profile.
	ErrUnsupportedVersion = errors.New("unsupported game version")
	// ErrMemoryRead marks a failed or rejected process memory read.
	ErrMemoryRead = errors.New("memory read failure")
	// ErrAllocation marks a read that returned less data than requested.
	ErrAllocation = errors.New("allocation failure")
	// ErrEmptyResult marks a successful scan that found no entries.
	ErrEmptyResult = errors.New("shiny stash is empty")
)

// Wrap builds an error message with scan context while tagging it with the
// provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrMemoryRead
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "scan failure"
	}
	return strings.Join(parts, ": ")
}

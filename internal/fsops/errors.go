package fsops

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks unusable roots or settings; the run never starts.
	ErrConfiguration = errors.New("configuration error")
	// ErrFilesystem marks a failed filesystem operation; the run stops where
	// it is, leaving the target tree consistent but partially synchronized.
	ErrFilesystem = errors.New("filesystem error")
)

// Wrap tags err with marker and operation context. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, operation, detail string, err error) error {
	if marker == nil {
		marker = ErrFilesystem
	}
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if detail = strings.TrimSpace(detail); detail != "" {
		parts = append(parts, detail)
	}
	joined := strings.Join(parts, " ")
	if joined == "" {
		joined = "filesystem operation"
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, joined, err)
	}
	return fmt.Errorf("%w: %s", marker, joined)
}

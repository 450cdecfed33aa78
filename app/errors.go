package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// CompileError reports a malformed pattern. Pos is the rune offset in Pattern
// where compilation stopped.
type CompileError struct {
	Pattern string
	Pos     int
	Reason  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid pattern %q at position %d: %s", e.Pattern, e.Pos, e.Reason)
}

// isCompileError unwraps err looking for a *CompileError.
func isCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}

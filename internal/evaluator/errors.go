package evaluator

import (
	"errors"
	"fmt"
)

// ErrIntegrity reports a broken invariant in table construction or lookup.
// It never describes caller misuse; retrying reproduces it.
var ErrIntegrity = errors.New("evaluator: table integrity violated")

func integrityf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIntegrity, fmt.Sprintf(format, args...))
}

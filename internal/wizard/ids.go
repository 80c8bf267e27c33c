// Package wizard implements the multi-step CV builder: per-section editors,
// the step controller, and the aggregate document they maintain.
package wizard

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDFunc generates identifiers for new entries. Editors receive one at
// construction so tests can supply a deterministic generator.
type IDFunc func() string

// UUIDs returns an IDFunc backed by random UUIDs.
func UUIDs() IDFunc {
	return uuid.NewString
}

// Sequential returns an IDFunc producing "1", "2", "3", ... Useful for
// deterministic tests.
func Sequential() IDFunc {
	var n atomic.Uint64
	return func() string {
		return strconv.FormatUint(n.Add(1), 10)
	}
}

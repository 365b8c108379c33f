package dtw

import (
	"errors"
	"fmt"
	"math"
)

// MemoryMode controls how Distance stores its DP matrix.
//
//   - FullMatrix: keep the whole (n+1)×(m+1) matrix; required for WithPath.
//   - TwoRows: keep the previous and current rows only; O(m) memory.
type MemoryMode int

const (
	// FullMatrix stores every row and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows stores two rows and returns the distance only.
	TwoRows
)

// String returns the mode name used in configuration.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full"
	case TwoRows:
		return "tworows"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// ParseMemoryMode maps "full" or "tworows" to a MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch s {
	case "full", "":
		return FullMatrix, nil
	case "tworows":
		return TwoRows, nil
	default:
		return 0, fmt.Errorf("%w: memory mode %q", ErrBadOption, s)
	}
}

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("dtw: input sequences must be non-empty")

	// ErrPathNeedsFullMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsFullMatrix = errors.New("dtw: path requires MemoryMode=FullMatrix")

	// ErrBadOption indicates an invalid option value.
	ErrBadOption = errors.New("dtw: invalid option")
)

// options holds the resolved configuration of one Distance call.
type options struct {
	window  int // 0 = unconstrained
	penalty float64
	path    bool
	mode    MemoryMode
}

// Option configures Distance.
type Option func(*options) error

// WithWindow limits alignment to the Sakoe–Chiba band |i−j| ≤ w.
// w == 0 removes the constraint.
func WithWindow(w int) Option {
	return func(o *options) error {
		if w < 0 {
			return fmt.Errorf("%w: window %d < 0", ErrBadOption, w)
		}
		o.window = w
		return nil
	}
}

// WithSlopePenalty adds p to every insertion or deletion step.
func WithSlopePenalty(p float64) Option {
	return func(o *options) error {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: slope penalty %v", ErrBadOption, p)
		}
		o.penalty = p
		return nil
	}
}

// WithPath requests the optimal alignment path.
func WithPath() Option {
	return func(o *options) error {
		o.path = true
		return nil
	}
}

// WithMemoryMode selects the DP storage strategy.
func WithMemoryMode(m MemoryMode) Option {
	return func(o *options) error {
		if m != FullMatrix && m != TwoRows {
			return fmt.Errorf("%w: %s", ErrBadOption, m)
		}
		o.mode = m
		return nil
	}
}

// Result is the outcome of a Distance call.
//
// Path lists aligned index pairs (i into a, j into b) from (0,0) to
// (n-1,m-1); it is nil unless WithPath was given.
type Result struct {
	Distance float64
	Path     [][2]int
}

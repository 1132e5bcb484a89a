package grid

import "errors"

// Result reports the outcome of a grid operation.
//
// Invalid requests never panic; they leave the grid untouched and return one
// of the Rejected values.
type Result uint8

const (
	// Applied means the operation changed grid state.
	Applied Result = iota
	// Unchanged means the request was valid but had no effect.
	Unchanged
	RejectedInsufficientSelection
	RejectedEmptySelection
	RejectedCovered
	RejectedNotDragging
	RejectedOutOfBounds
	RejectedSpanConflict
)

var (
	ErrInsufficientSelection = errors.New("grid: merge needs at least two selected cells")
	ErrEmptySelection        = errors.New("grid: no selection")
	ErrCovered               = errors.New("grid: cell is covered by a merged span")
	ErrNotDragging           = errors.New("grid: no selection drag in progress")
	ErrOutOfBounds           = errors.New("grid: position out of bounds")
	ErrSpanConflict          = errors.New("grid: operation would split a merged span")
)

// OK reports whether the request was accepted (Applied or Unchanged).
func (r Result) OK() bool { return r == Applied || r == Unchanged }

// Err returns the sentinel error for a rejected result, or nil.
func (r Result) Err() error {
	switch r {
	case RejectedInsufficientSelection:
		return ErrInsufficientSelection
	case RejectedEmptySelection:
		return ErrEmptySelection
	case RejectedCovered:
		return ErrCovered
	case RejectedNotDragging:
		return ErrNotDragging
	case RejectedOutOfBounds:
		return ErrOutOfBounds
	case RejectedSpanConflict:
		return ErrSpanConflict
	default:
		return nil
	}
}

func (r Result) String() string {
	switch r {
	case Applied:
		return "applied"
	case Unchanged:
		return "unchanged"
	case RejectedInsufficientSelection:
		return "rejected: insufficient selection"
	case RejectedEmptySelection:
		return "rejected: empty selection"
	case RejectedCovered:
		return "rejected: covered cell"
	case RejectedNotDragging:
		return "rejected: not dragging"
	case RejectedOutOfBounds:
		return "rejected: out of bounds"
	case RejectedSpanConflict:
		return "rejected: span conflict"
	default:
		return "unknown"
	}
}

package conncomp

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/pixelgrid/cclabel/grid"
)

// Sentinel errors for component finding.
var (
	// ErrNilAccessor is returned when Find is given a nil pixel accessor.
	ErrNilAccessor = errors.New("conncomp: pixel accessor is nil")

	// ErrNilClassifier is returned when Find is given a nil pixel classifier.
	ErrNilClassifier = errors.New("conncomp: pixel classifier is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("conncomp: invalid option supplied")
)

// Component is the set of coordinates sharing one label. Membership is
// the observable property; iteration order is not.
type Component = mapset.Set[grid.Coord]

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: S, E, N, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: the full (Δrow,Δcol) ∈ {-1,0,1}²
	// ring around the cell.
	Conn8
)

// String returns "Conn4" or "Conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "Conn4"
	case Conn8:
		return "Conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Option configures Find via functional arguments. If an Option is
// invalid (e.g. an unknown connectivity), it is recorded internally and
// surfaced as ErrOptionViolation when Find is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing Find.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// OnSeed is called when a new component's seed pixel is labeled,
	// before its flood fill starts.
	OnSeed func(pos grid.Coord, label int)

	// OnLabel is called for every non-seed pixel the moment it is labeled
	// (at enqueue time).
	OnLabel func(pos grid.Coord, label int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Conn4 connectivity
//   - no-op hooks (OnSeed, OnLabel)
func DefaultOptions() Options {
	return Options{
		Conn:    Conn4,
		OnSeed:  func(grid.Coord, int) {},
		OnLabel: func(grid.Coord, int) {},
		err:     nil,
	}
}

// WithConnectivity selects Conn4 or Conn8.
// Any other value is invalid → ErrOptionViolation.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Conn = c
	}
}

// WithOnSeed registers a callback to run when a component seed is labeled.
func WithOnSeed(fn func(pos grid.Coord, label int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSeed = fn
		}
	}
}

// WithOnLabel registers a callback to run when a non-seed pixel is labeled.
func WithOnLabel(fn func(pos grid.Coord, label int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}

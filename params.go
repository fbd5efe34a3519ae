// Package argon2 implements the Argon2 memory-hard password hashing
// function (version 0x10, both the Argon2d and Argon2i addressing
// variants) together with a PHC-string encoder/verifier.
package argon2

import "fmt"

// Variant selects how a hash call picks reference blocks while filling
// memory: Argon2d uses the contents of the previously filled block (fast,
// but timing leaks data-dependent access patterns); Argon2i uses an independent
// pseudo-random stream (side-channel resistant, the usual password-hashing
// choice).
type Variant uint32

const (
	Argon2d Variant = iota
	Argon2i
)

func (v Variant) String() string {
	if v == Argon2i {
		return "argon2i"
	}
	return "argon2d"
}

// ParamErrorKind identifies which parameter constraint New rejected.
type ParamErrorKind int

const (
	ErrTooFewPasses ParamErrorKind = iota
	ErrTooFewLanes
	ErrMinKiB
)

// ParamError reports an invalid parameter combination passed to New. It is
// the only error New ever returns; Hash itself never fails on bad
// parameters because it only accepts an already-validated *Params.
type ParamError struct {
	Kind ParamErrorKind
	// Min is the smallest acceptable KiB value; populated only when Kind
	// is ErrMinKiB. uint64 so it never truncates 8*Lanes for large Lanes.
	Min uint64
}

func (e *ParamError) Error() string {
	switch e.Kind {
	case ErrTooFewPasses:
		return "argon2: passes must be at least 1"
	case ErrTooFewLanes:
		return "argon2: lanes must be at least 1"
	case ErrMinKiB:
		return fmt.Sprintf("argon2: memory must be at least %d KiB for this lane count", e.Min)
	default:
		return "argon2: invalid parameters"
	}
}

// Params is an immutable, validated set of Argon2 parameters. Construct one
// with New; the zero value is not usable.
type Params struct {
	Passes, Lanes, KiB uint32
	Variant            Variant

	// laneLen is the derived per-lane block count: KiB/(4*Lanes)*4,
	// rounded down to a multiple of 4 so each lane splits evenly into
	// four slices.
	laneLen uint32
}

// New validates passes, lanes, and kib and returns the corresponding
// Params, or a *ParamError describing the first constraint violated:
// passes and lanes must each be at least 1, and kib must be at least
// 8*lanes so every lane gets at least two blocks per slice.
func New(passes, lanes, kib uint32, variant Variant) (*Params, error) {
	if passes < 1 {
		return nil, &ParamError{Kind: ErrTooFewPasses}
	}
	if lanes < 1 {
		return nil, &ParamError{Kind: ErrTooFewLanes}
	}
	// lanes is a caller-chosen uint32; computing the minimum and the
	// derived lane length in uint64 avoids silently wrapping for large
	// lane counts (8*lanes or 4*lanes overflowing uint32 would otherwise
	// let an invalid combination slip past this check).
	min := 8 * uint64(lanes)
	if uint64(kib) < min {
		return nil, &ParamError{Kind: ErrMinKiB, Min: min}
	}
	return &Params{
		Passes:  passes,
		Lanes:   lanes,
		KiB:     kib,
		Variant: variant,
		laneLen: uint32(uint64(kib) / (4 * uint64(lanes)) * 4),
	}, nil
}

// LaneLen returns the derived per-lane block count.
func (p *Params) LaneLen() uint32 { return p.laneLen }

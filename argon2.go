package argon2

import (
	"context"

	"github.com/opd-ai/go-argon2/internal/core"
)

// defaultPasses, defaultLanes, defaultKiB and defaultTagLen are the
// convenience defaults used by Argon2iSimple/Argon2dSimple, matching the
// reference run.c defaults (3 passes, 1 lane, 4096 KiB, 64-byte tag).
//
// The original Rust crate this package's algorithm is grounded on has a
// bug in its own default-parameter constructor: it passes the lane count
// where the memory size belongs, producing a 1 KiB matrix instead of a
// 4096 KiB one. That is not reproduced here; New is always called with the
// correct four defaults below.
const (
	defaultPasses = 3
	defaultLanes  = 1
	defaultKiB    = 4096
	defaultTagLen = 64
)

// Hash fills out with the Argon2 tag for password under salt (and
// optionally key and associatedData), using the already-validated params.
// len(out) must be at least 4 bytes and fit in 32 bits; violating either
// is a programming error and panics rather than returning an error, since
// it can never happen from untrusted input alone.
func Hash(params *Params, out, password, salt, key, associatedData []byte) {
	d := core.NewDriver(params.Passes, params.Lanes, params.LaneLen(), params.KiB, core.Variant(params.Variant))
	d.Hash(out, password, salt, key, associatedData)
}

// HashContext is Hash guarded by a context: if ctx is already done before
// the (non-interruptible) memory-hard fill begins, it returns ctx.Err()
// instead of starting. Argon2's fill loop has no natural cancellation
// point partway through, so a context can only bound the wait before it
// starts, not abort it mid-flight.
func HashContext(ctx context.Context, params *Params, out, password, salt, key, associatedData []byte) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	Hash(params, out, password, salt, key, associatedData)
	return nil
}

// Argon2iSimple hashes password under salt with the Argon2i variant and
// the reference default parameters (3 passes, 1 lane, 4096 KiB, 64-byte
// tag), for callers that don't need to tune the cost parameters.
func Argon2iSimple(password, salt string) [defaultTagLen]byte {
	return simple(password, salt, Argon2i)
}

// Argon2dSimple is Argon2iSimple for the Argon2d variant.
func Argon2dSimple(password, salt string) [defaultTagLen]byte {
	return simple(password, salt, Argon2d)
}

func simple(password, salt string, variant Variant) [defaultTagLen]byte {
	params, err := New(defaultPasses, defaultLanes, defaultKiB, variant)
	if err != nil {
		// Unreachable: the defaults always satisfy New's constraints.
		panic(err)
	}
	var out [defaultTagLen]byte
	Hash(params, out[:], []byte(password), []byte(salt), nil, nil)
	return out
}

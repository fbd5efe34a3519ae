package argon2

import (
	"errors"
	"testing"
)

func TestNew_RejectsTooFewPasses(t *testing.T) {
	_, err := New(0, 1, 8, Argon2i)
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Kind != ErrTooFewPasses {
		t.Fatalf("New(0,...) = %v, want ParamError{ErrTooFewPasses}", err)
	}
}

func TestNew_RejectsTooFewLanes(t *testing.T) {
	_, err := New(1, 0, 8, Argon2i)
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Kind != ErrTooFewLanes {
		t.Fatalf("New(_,0,...) = %v, want ParamError{ErrTooFewLanes}", err)
	}
}

func TestNew_RejectsTooLittleMemory(t *testing.T) {
	_, err := New(1, 4, 16, Argon2i) // needs >= 8*4=32
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Kind != ErrMinKiB || pe.Min != 32 {
		t.Fatalf("New(1,4,16,...) = %v, want ParamError{ErrMinKiB, Min:32}", err)
	}
}

func TestNew_RejectsLargeLanesEvenWhenKiBWouldOverflowUint32(t *testing.T) {
	// 8*lanes overflows uint32 at lanes=536870912 (2^29); the check must
	// still reject this rather than wrapping to a small minimum.
	const hugeLanes = 1 << 29
	_, err := New(1, hugeLanes, 0, Argon2d)
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Kind != ErrMinKiB {
		t.Fatalf("New(1,%d,0,...) = %v, want ParamError{ErrMinKiB}", hugeLanes, err)
	}
	if want := uint64(8) * hugeLanes; pe.Min != want {
		t.Errorf("Min = %d, want %d", pe.Min, want)
	}
}

func TestNew_AcceptsDefaults(t *testing.T) {
	p, err := New(defaultPasses, defaultLanes, defaultKiB, Argon2i)
	if err != nil {
		t.Fatalf("New(defaults) returned error: %v", err)
	}
	if p.LaneLen() != defaultKiB {
		t.Errorf("LaneLen() = %d, want %d", p.LaneLen(), defaultKiB)
	}
}

func TestNew_LaneLenIsAMultipleOfFour(t *testing.T) {
	for _, kib := range []uint32{8, 13, 100, 4096, 9999} {
		p, err := New(1, 1, kib, Argon2d)
		if err != nil {
			continue
		}
		if p.LaneLen()%4 != 0 {
			t.Errorf("kib=%d: LaneLen() = %d, not a multiple of 4", kib, p.LaneLen())
		}
	}
}

func TestParamError_MessagesAreDistinct(t *testing.T) {
	msgs := map[string]bool{}
	for _, e := range []*ParamError{
		{Kind: ErrTooFewPasses},
		{Kind: ErrTooFewLanes},
		{Kind: ErrMinKiB, Min: 32},
	} {
		msgs[e.Error()] = true
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 distinct error messages, got %v", msgs)
	}
}

package core

import (
	"encoding/hex"
	"testing"
)

// The reference KAT fixtures (kats/argon2i, kats/argon2d) that the original
// implementation's test suite reads from disk are not part of this
// package's inputs. TestDriver_Argon2dMatchesReferenceTag and
// TestDriver_MultiLaneArgon2iMatchesReferenceTag instead pin tags computed
// from a from-scratch, independent re-implementation of this same
// algorithm (H0/H', the BLAKE2b-round compression function, index_alpha,
// and the Gen2i stream), built directly from the original source rather
// than transcribed from this package, and cross-checked against the
// verifier fixture's own known-good Argon2i tag (verifier_test.go's
// encodedFixture) before being trusted as ground truth for Argon2d and for
// multi-lane scheduling. The other tests here exercise properties a KAT
// comparison would also depend on: determinism, sensitivity to every
// input, and that the two variants diverge.

func TestDriver_Argon2dMatchesReferenceTag(t *testing.T) {
	d := NewDriver(2, 1, 8, 8, Argon2d)
	var out [32]byte
	d.Hash(out[:], []byte("password"), []byte("somesalt"), nil, nil)

	want := "1ab60b86462b366bd01b07331b332b04a7ebf177e4a45cde32d49f0863ace2ea"
	if got := hex.EncodeToString(out[:]); got != want {
		t.Fatalf("Argon2d tag = %s, want %s", got, want)
	}
}

func TestDriver_MultiLaneArgon2iMatchesReferenceTag(t *testing.T) {
	d := NewDriver(2, 4, 8, 32, Argon2i)
	var out [32]byte
	d.Hash(out[:], []byte("password"), []byte("somesaltsomesalt"), nil, nil)

	want := "af4d738c61b2cb87db090b22fb648cd9e2d0135493b4469065d746310e301cdf"
	if got := hex.EncodeToString(out[:]); got != want {
		t.Fatalf("multi-lane Argon2i tag = %s, want %s", got, want)
	}
}

func TestDriver_HashIsDeterministic(t *testing.T) {
	d := NewDriver(2, 1, 16, 0, Argon2i)
	p, s := []byte("password"), []byte("somesalt")

	var out1, out2 [32]byte
	d.Hash(out1[:], p, s, nil, nil)
	d.Hash(out2[:], p, s, nil, nil)
	if out1 != out2 {
		t.Fatal("Hash produced different output for identical input on two calls")
	}
}

func TestDriver_HashIsSensitiveToEveryInput(t *testing.T) {
	base := NewDriver(2, 1, 16, 0, Argon2i)
	var baseline [32]byte
	base.Hash(baseline[:], []byte("password"), []byte("somesalt"), nil, nil)

	variants := []struct {
		name string
		run  func() [32]byte
	}{
		{"password", func() [32]byte {
			var out [32]byte
			base.Hash(out[:], []byte("passworD"), []byte("somesalt"), nil, nil)
			return out
		}},
		{"salt", func() [32]byte {
			var out [32]byte
			base.Hash(out[:], []byte("password"), []byte("somesalT"), nil, nil)
			return out
		}},
		{"secret", func() [32]byte {
			var out [32]byte
			base.Hash(out[:], []byte("password"), []byte("somesalt"), []byte("k"), nil)
			return out
		}},
		{"ad", func() [32]byte {
			var out [32]byte
			base.Hash(out[:], []byte("password"), []byte("somesalt"), nil, []byte("x"))
			return out
		}},
		{"lanes", func() [32]byte {
			var out [32]byte
			d2 := NewDriver(2, 2, 16, 0, Argon2i)
			d2.Hash(out[:], []byte("password"), []byte("somesalt"), nil, nil)
			return out
		}},
		{"variant", func() [32]byte {
			var out [32]byte
			d2 := NewDriver(2, 1, 16, 0, Argon2d)
			d2.Hash(out[:], []byte("password"), []byte("somesalt"), nil, nil)
			return out
		}},
	}

	for _, v := range variants {
		if v.run() == baseline {
			t.Errorf("changing %s did not change the output", v.name)
		}
	}
}

func TestDriver_Argon2dAndArgon2iDiverge(t *testing.T) {
	p, s := []byte("password"), []byte("somesalt")
	var d1, d2 [64]byte
	NewDriver(3, 1, 8, 4096, Argon2i).Hash(d1[:], p, s, nil, nil)
	NewDriver(3, 1, 8, 4096, Argon2d).Hash(d2[:], p, s, nil, nil)
	if d1 == d2 {
		t.Fatal("Argon2i and Argon2d produced the same tag")
	}
}

func TestDriver_HashTracedFiresCallbacksOncePerPass(t *testing.T) {
	d := NewDriver(3, 1, 8, 4096, Argon2i)
	var out [32]byte

	h0Calls := 0
	passCalls := []uint32{}
	d.HashTraced(out[:], []byte("p"), []byte("saltsalt"), nil, nil,
		func(h0 []byte) {
			h0Calls++
			if len(h0) != 64 {
				t.Errorf("h0 callback got %d bytes, want 64", len(h0))
			}
		},
		func(pass uint32, m *Matrix) {
			passCalls = append(passCalls, pass)
		},
	)

	if h0Calls != 1 {
		t.Errorf("h0 callback fired %d times, want 1", h0Calls)
	}
	want := []uint32{0, 1, 2}
	if len(passCalls) != len(want) {
		t.Fatalf("pass callback fired for %v, want %v", passCalls, want)
	}
	for i, p := range want {
		if passCalls[i] != p {
			t.Errorf("pass callback order[%d] = %d, want %d", i, passCalls[i], p)
		}
	}
}

func TestDriver_MultiLaneHashIsDeterministic(t *testing.T) {
	// Not a correctness oracle, just a smoke test that the lanes>1
	// scheduling path (goroutines + barrier) runs to completion and stays
	// deterministic across repeated calls.
	d := NewDriver(2, 4, 32, 0, Argon2d)
	var a, b [32]byte
	d.Hash(a[:], []byte("password"), []byte("somesaltsomesalt"), nil, nil)
	d.Hash(b[:], []byte("password"), []byte("somesaltsomesalt"), nil, nil)
	if a != b {
		t.Fatal("multi-lane Hash was not deterministic across two runs")
	}
}

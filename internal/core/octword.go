// Package core implements the Argon2 memory-hard mixing primitives: the
// octword/block/matrix representation, the BLAKE2b-based compression
// function, the H' derivation, reference-index selection, and the
// lane-parallel fill driver. None of it validates user-facing parameters;
// the root package does that before handing off to a Driver.
package core

// Octword is a pair of u64 lanes, the unit the Argon2 compression function
// operates on. The reference implementation packs two u64 block words into
// a single SIMD lane so that one arithmetic op updates both at once; here
// the pair is just a struct and every op applies independently to A0 and A1.
type Octword struct {
	A0, A1 uint64
}

func (o Octword) XOR(r Octword) Octword {
	return Octword{o.A0 ^ r.A0, o.A1 ^ r.A1}
}

func (o Octword) Add(r Octword) Octword {
	return Octword{o.A0 + r.A0, o.A1 + r.A1}
}

// LowerMult multiplies the low 32 bits of each lane as unsigned 32-bit
// values, widening to 64 bits, independently per lane.
func (o Octword) LowerMult(r Octword) Octword {
	return Octword{
		(o.A0 & 0xffffffff) * (r.A0 & 0xffffffff),
		(o.A1 & 0xffffffff) * (r.A1 & 0xffffffff),
	}
}

func (o Octword) RotateRight(n uint) Octword {
	return Octword{rotr64(o.A0, n), rotr64(o.A1, n)}
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// CrossSwap re-pairs two octwords diagonally: given (v4,v5) and (v6,v7) it
// returns ((v7,v4), (v5,v6)). It exists to swap lanes between the two
// octword arguments that feed the diagonal step of a BLAKE2b round when
// those lanes are packed two-at-a-time.
func (o Octword) CrossSwap(r Octword) (Octword, Octword) {
	return Octword{r.A1, o.A0}, Octword{o.A1, r.A0}
}

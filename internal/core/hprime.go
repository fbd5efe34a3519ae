package core

const argon2Version = 0x10

// H0Len is the size of the pre-hash buffer: 64 bytes of BLAKE2b digest
// followed by 8 bytes of scratch space the fill driver overwrites per lane
// and per starting block (counters 0 and 1 of the first slice).
const H0Len = 72

// H0 computes the 72-byte pre-hash buffer shared by every lane: the first
// 64 bytes are fixed for the whole hash call, the last 8 are left zero for
// the caller to fill in.
func H0(lanes, outLen, kib, passes uint32, variant Variant, p, s, k, x []byte) [H0Len]byte {
	var buf [H0Len]byte
	sum := blake2bHash(64,
		le32(lanes), le32(outLen), le32(kib), le32(passes),
		le32(argon2Version), le32(uint32(variant)),
		lenPrefixed(p), p,
		lenPrefixed(s), s,
		lenPrefixed(k), k,
		lenPrefixed(x), x,
	)
	copy(buf[:64], sum)
	return buf
}

// HPrime is the variable-length hash H': for outputs of 64 bytes or less
// it's a single BLAKE2b call over (len32(outlen), input); for longer
// outputs it chains BLAKE2b-512 calls, taking the first half of each
//64-byte digest as output and feeding the whole digest into the next
// round, until the remainder fits in one final call sized to what's left.
func HPrime(out []byte, input []byte) {
	outLen := uint32(len(out))
	if len(out) <= 64 {
		copy(out, blake2bHash(len(out), le32(outLen), input))
		return
	}

	v := blake2bHash(64, le32(outLen), input)
	copy(out[:32], v[:32])
	pos := 32

	stream, err := NewBlake2bStream(64, nil)
	if err != nil {
		panic("argon2: blake2b: " + err.Error())
	}
	for len(out)-pos > 64 {
		stream.Write(v)
		v = stream.Sum()
		copy(out[pos:pos+32], v[:32])
		pos += 32
		stream.Reset()
	}

	tail := len(out) - pos
	copy(out[pos:], blake2bHash(tail, v))
}

package core

// gb is one BLAKE2b quarter-round applied to four octwords at once, which
// runs the underlying mixing function on both packed lanes simultaneously.
func gb(a, b, c, d Octword) (Octword, Octword, Octword, Octword) {
	lm := a.LowerMult(b)
	a = a.Add(b).Add(lm).Add(lm)
	d = d.XOR(a).RotateRight(32)

	lm = c.LowerMult(d)
	c = c.Add(d).Add(lm).Add(lm)
	b = b.XOR(c).RotateRight(24)

	lm = a.LowerMult(b)
	a = a.Add(b).Add(lm).Add(lm)
	d = d.XOR(a).RotateRight(16)

	lm = c.LowerMult(d)
	c = c.Add(d).Add(lm).Add(lm)
	b = b.XOR(c).RotateRight(63)

	return a, b, c, d
}

// p8 runs one full BLAKE2b permutation round (four column quarter-rounds,
// then four diagonal quarter-rounds) over 8 octwords that together cover
// 16 scalar block words: v[0]=(w0,w1), v[1]=(w2,w3), ..., v[7]=(w14,w15).
func p8(v [8]Octword) [8]Octword {
	v[0], v[2], v[4], v[6] = gb(v[0], v[2], v[4], v[6])
	v[1], v[3], v[5], v[7] = gb(v[1], v[3], v[5], v[7])

	v7v4, v5v6 := v[2].CrossSwap(v[3])
	v15v12, v13v14 := v[6].CrossSwap(v[7])

	v[0], v5v6, v[5], v15v12 = gb(v[0], v5v6, v[5], v15v12)
	v[1], v7v4, v[4], v13v14 = gb(v[1], v7v4, v[4], v13v14)

	v[2], v[3] = v5v6.CrossSwap(v7v4)
	v[6], v[7] = v13v14.CrossSwap(v15v12)

	return v
}

// pRow applies p8 to the 8 octwords of one row (a row holds 16 scalar
// block words, stored contiguously since the block is row-major).
func pRow(b *Block, row int) {
	base := 8 * row
	var v [8]Octword
	copy(v[:], b[base:base+8])
	v = p8(v)
	copy(b[base:base+8], v[:])
}

// pCol applies p8 to the 8 octwords of one column (strided by 8 across the
// 8x8 octword grid).
func pCol(b *Block, col int) {
	var v [8]Octword
	for i := 0; i < 8; i++ {
		v[i] = b[8*i+col]
	}
	v = p8(v)
	for i := 0; i < 8; i++ {
		b[8*i+col] = v[i]
	}
}

// G is the Argon2 compression function: dest = P(P(lhs^rhs)) ^ lhs ^ rhs,
// where the inner P sweeps all 8 rows then all 8 columns of the block
// viewed as an 8x8 octword matrix.
func G(dest, lhs, rhs *Block) {
	for i := range dest {
		dest[i] = lhs[i].XOR(rhs[i])
	}
	for row := 0; row < 8; row++ {
		pRow(dest, row)
	}
	for col := 0; col < 8; col++ {
		pCol(dest, col)
	}
	for i := range dest {
		dest[i] = dest[i].XOR(lhs[i]).XOR(rhs[i])
	}
}

// G2 is G applied twice against a zero block, G(0, G(0, src)): each round
// runs the row and column P sweep and XORs the result with that round's
// own input (src for the first round, the first round's output for the
// second). It is used only to generate the
// Argon2i pseudo-random index stream, never for filling memory directly.
func G2(dest, src *Block) {
	*dest = *src
	for row := 0; row < 8; row++ {
		pRow(dest, row)
	}
	for col := 0; col < 8; col++ {
		pCol(dest, col)
	}
	for i := range dest {
		dest[i] = dest[i].XOR(src[i])
	}

	tmp := *dest
	for row := 0; row < 8; row++ {
		pRow(dest, row)
	}
	for col := 0; col < 8; col++ {
		pCol(dest, col)
	}
	for i := range dest {
		dest[i] = dest[i].XOR(tmp[i])
	}
}

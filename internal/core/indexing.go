package core

// indexAlpha computes the reference block index for the current (pass,
// lane, slice, sliceidx) position, given the J1/J2 pseudo-random values
// already selected for that position. It mirrors opt.c's addressing: first
// the size R of the eligible reference window, then a quadratic-biased
// relative position inside it, then where that window starts.
func indexAlpha(pass, lane, slice, lanes, sliceidx, slicelen uint32, j1, j2 uint32) uint32 {
	lanelen := slicelen * 4
	sameLane := j2%lanes == lane

	var r uint32
	switch {
	case pass == 0 && slice == 0:
		r = sliceidx - 1
	case pass == 0 && !sameLane:
		r = slice * slicelen
		if sliceidx == 0 {
			r--
		}
	case pass == 0 && sameLane:
		r = slice*slicelen + sliceidx - 1
	case !sameLane:
		r = lanelen - slicelen
		if sliceidx == 0 {
			r--
		}
	default:
		r = lanelen - slicelen + sliceidx - 1
	}

	r64, j1_64 := uint64(r), uint64(j1)
	relpos := uint32(r64 - 1 - (r64*(j1_64*j1_64>>32)>>32))

	if pass == 0 || slice == 3 {
		return relpos % lanelen
	}
	return (slicelen*(slice+1) + relpos) % lanelen
}

// argon2iVariantCode is the value packed into the Gen2i argument block;
// Gen2i only ever generates the Argon2i stream.
const argon2iVariantCode = 1

// gen2i produces the Argon2i pseudo-random (J1,J2) stream for one
// (pass,lane,slice): 128 u64 words of output per G2 call, packed two to a
// block-word pair, refilled on demand via an incrementing counter.
type gen2i struct {
	arg     Block
	pseudos Block
	idx     int
}

func newGen2i(startAt int, pass, lane, slice, totBlocks, totPasses uint32) *gen2i {
	g := &gen2i{idx: startAt}
	g.arg[0] = Octword{uint64(pass), uint64(lane)}
	g.arg[1] = Octword{uint64(slice), uint64(totBlocks)}
	g.arg[2] = Octword{uint64(totPasses), uint64(argon2iVariantCode)}
	g.more()
	return g
}

func (g *gen2i) more() {
	g.arg[3].A0++
	G2(&g.pseudos, &g.arg)
}

func (g *gen2i) next() (uint32, uint32) {
	v := g.pseudos.U64(g.idx)
	g.idx = (g.idx + 1) % 128
	if g.idx == 0 {
		g.more()
	}
	return uint32(v & 0xffffffff), uint32(v >> 32)
}

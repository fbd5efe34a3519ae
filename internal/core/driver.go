package core

import "encoding/binary"

// Variant selects the reference-block addressing rule: Argon2d picks
// references data-dependently from the previously filled block, Argon2i from
// an independent pseudo-random stream.
type Variant uint32

const (
	Argon2d Variant = 0
	Argon2i Variant = 1
)

func (v Variant) String() string {
	if v == Argon2i {
		return "argon2i"
	}
	return "argon2d"
}

const slicesPerLane = 4

// Driver runs the memory-hard fill and final tag extraction for one set of
// already-validated parameters. It has no notion of ParamError: the root
// package is responsible for constructing a Driver only from parameters it
// has already checked.
type Driver struct {
	Passes, Lanes, LaneLen, KiB uint32
	Variant                     Variant
}

func NewDriver(passes, lanes, laneLen, kib uint32, variant Variant) *Driver {
	return &Driver{Passes: passes, Lanes: lanes, LaneLen: laneLen, KiB: kib, Variant: variant}
}

// Hash fills a fresh matrix and writes the derived tag into out.
func (d *Driver) Hash(out, p, s, k, x []byte) {
	d.HashTraced(out, p, s, k, x, nil, nil)
}

// HashTraced is Hash with optional hooks fired after H0 is computed and
// after each pass finishes, so tests can inspect intermediate state without
// the driver itself knowing anything about test fixtures.
func (d *Driver) HashTraced(out, p, s, k, x []byte, onH0 func(h0 []byte), onPass func(pass uint32, m *Matrix)) {
	if len(out) < 4 {
		panic("argon2: output length must be at least 4 bytes")
	}
	if uint64(len(out)) > 0xffffffff {
		panic("argon2: output length must fit in 32 bits")
	}

	m := NewMatrix(d.Lanes, d.LaneLen)
	defer m.Release()

	h0 := H0(d.Lanes, uint32(len(out)), d.KiB, d.Passes, d.Variant, p, s, k, x)
	if onH0 != nil {
		onH0(h0[:64])
	}

	workers := NewWorkers(d.Lanes)

	workers.Run(func(lane uint32) {
		d.fillFirstSlice(m, h0, lane)
	})
	for slice := uint32(1); slice < slicesPerLane; slice++ {
		workers.Run(func(lane uint32) {
			d.fillSlice(m, 0, lane, slice, 0)
		})
	}
	if onPass != nil {
		onPass(0, m)
	}

	for pass := uint32(1); pass < d.Passes; pass++ {
		for slice := uint32(0); slice < slicesPerLane; slice++ {
			workers.Run(func(lane uint32) {
				d.fillSlice(m, pass, lane, slice, 0)
			})
		}
		if onPass != nil {
			onPass(pass, m)
		}
	}

	last := m.Col(d.LaneLen - 1)
	var xored Block
	for _, b := range last {
		xored.XOR(b)
	}
	HPrime(out, xored.Bytes())
}

func (d *Driver) fillFirstSlice(m *Matrix, h0 [H0Len]byte, lane uint32) {
	binary.LittleEndian.PutUint32(h0[68:72], lane)

	binary.LittleEndian.PutUint32(h0[64:68], 0)
	b0 := make([]byte, BlockBytes)
	HPrime(b0, h0[:])
	m.At(lane, 0).SetBytes(b0)

	binary.LittleEndian.PutUint32(h0[64:68], 1)
	b1 := make([]byte, BlockBytes)
	HPrime(b1, h0[:])
	m.At(lane, 1).SetBytes(b1)

	d.fillSlice(m, 0, lane, 0, 2)
}

func (d *Driver) fillSlice(m *Matrix, pass, lane, slice, offset uint32) {
	sliceLen := d.LaneLen / slicesPerLane

	var gen *gen2i
	if d.Variant == Argon2i {
		gen = newGen2i(int(offset), pass, lane, slice, d.Lanes*d.LaneLen, d.Passes)
	}

	for idx := offset; idx < sliceLen; idx++ {
		var j1, j2 uint32
		if d.Variant == Argon2i {
			j1, j2 = gen.next()
		} else {
			col := prevCol(slice*sliceLen+idx, d.LaneLen)
			v := m.At(lane, col).U64(0)
			j1, j2 = uint32(v&0xffffffff), uint32(v>>32)
		}
		d.fillBlock(m, pass, lane, slice, idx, sliceLen, j1, j2)
	}
}

func (d *Driver) fillBlock(m *Matrix, pass, lane, slice, idx, sliceLen, j1, j2 uint32) {
	z := indexAlpha(pass, lane, slice, d.Lanes, idx, sliceLen, j1, j2)

	zLane := lane
	if !(pass == 0 && slice == 0) {
		zLane = j2 % d.Lanes
	}

	curCol := slice*sliceLen + idx
	preCol := prevCol(curCol, d.LaneLen)

	wr, rd, ref := m.Get3(lane, curCol, lane, preCol, zLane, z)
	G(wr, rd, ref)
}

func prevCol(col, laneLen uint32) uint32 {
	if col > 0 {
		return col - 1
	}
	return laneLen - 1
}

package core

import "encoding/binary"

// BlockBytes is the size of one Argon2 memory block.
const BlockBytes = 1024

// octwordsPerBlock is BlockBytes/16: a block viewed as an 8x8 matrix of
// octwords, row-major (octword at row r, column c lives at index 8*r+c).
const octwordsPerBlock = BlockBytes / 16

// Block is one 1 KiB memory block, addressable as 64 octwords (8x8 grid,
// used by the compression function) or equivalently as 128 little-endian
// u64 words (used for byte I/O and reference-index seeding).
type Block [octwordsPerBlock]Octword

// XOR xors other into b in place.
func (b *Block) XOR(other *Block) {
	for i := range b {
		b[i] = b[i].XOR(other[i])
	}
}

// U64 reads the flat little-endian u64 word at index i (0..127).
func (b *Block) U64(i int) uint64 {
	o := b[i/2]
	if i%2 == 0 {
		return o.A0
	}
	return o.A1
}

// SetU64 writes the flat little-endian u64 word at index i (0..127).
func (b *Block) SetU64(i int, v uint64) {
	if i%2 == 0 {
		b[i/2].A0 = v
	} else {
		b[i/2].A1 = v
	}
}

// Bytes returns the block's 1024-byte little-endian encoding.
func (b *Block) Bytes() []byte {
	out := make([]byte, BlockBytes)
	for i := 0; i < 128; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], b.U64(i))
	}
	return out
}

// SetBytes loads a 1024-byte little-endian encoding into the block.
func (b *Block) SetBytes(data []byte) {
	for i := 0; i < 128; i++ {
		b.SetU64(i, binary.LittleEndian.Uint64(data[i*8:]))
	}
}

// Matrix is the full Argon2 memory array: lanes rows of laneLen blocks
// each, stored row-major in one flat slice.
type Matrix struct {
	lanes, laneLen uint32
	blocks         []Block
}

// NewMatrix allocates a zeroed lanes x laneLen matrix.
func NewMatrix(lanes, laneLen uint32) *Matrix {
	return &Matrix{lanes: lanes, laneLen: laneLen, blocks: make([]Block, uint64(lanes)*uint64(laneLen))}
}

func (m *Matrix) Lanes() uint32  { return m.lanes }
func (m *Matrix) LaneLen() uint32 { return m.laneLen }

func (m *Matrix) index(lane, col uint32) uint32 {
	return lane*m.laneLen + col
}

// At returns a pointer to the block at (lane, col).
func (m *Matrix) At(lane, col uint32) *Block {
	return &m.blocks[m.index(lane, col)]
}

// Get3 borrows one writable block and two read-only blocks at once, the
// way the compression step needs (destination, previous, reference). It
// panics if the destination aliases either source, which the fill
// scheduler is required to avoid by construction.
func (m *Matrix) Get3(wrLane, wrCol, rd0Lane, rd0Col, rd1Lane, rd1Col uint32) (wr, rd0, rd1 *Block) {
	wi, r0i, r1i := m.index(wrLane, wrCol), m.index(rd0Lane, rd0Col), m.index(rd1Lane, rd1Col)
	if wi == r0i || wi == r1i {
		panic("argon2: aliased block triple in fill step")
	}
	return &m.blocks[wi], &m.blocks[r0i], &m.blocks[r1i]
}

// Col returns the block at the given column for every lane, in lane order.
func (m *Matrix) Col(col uint32) []*Block {
	out := make([]*Block, m.lanes)
	for l := uint32(0); l < m.lanes; l++ {
		out[l] = m.At(l, col)
	}
	return out
}

// Release zeroes every block, so secret-derived memory doesn't linger once
// a hash call returns.
func (m *Matrix) Release() {
	for i := range m.blocks {
		m.blocks[i] = Block{}
	}
}

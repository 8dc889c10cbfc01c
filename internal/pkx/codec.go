package pkx

import "encoding/binary"

const (
	// RecordLen is the full encrypted record size (0x158).
	RecordLen = 344

	// HeaderLen covers the encryption constant, sanity, and checksum fields;
	// the key stream starts after it.
	HeaderLen = 8

	// BlockLen is the size of each of the four shuffled payload blocks.
	BlockLen = 80

	// SpeciesOffset locates the 16-bit species ordinal inside the decrypted
	// region.
	SpeciesOffset = 8

	lcrngMult = 0x41C64E6D
	lcrngAdd  = 0x00006073
)

// blockOrder maps a shuffle value to the input block feeding each output
// position. The game only ever produces shuffle values 0..23; entries 24..31
// repeat entries 0..7, matching the source format's table verbatim.
var blockOrder = [32][4]uint8{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 3, 1, 2}, {0, 2, 3, 1}, {0, 3, 2, 1},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {2, 0, 1, 3}, {3, 0, 1, 2}, {2, 0, 3, 1}, {3, 0, 2, 1},
	{1, 2, 0, 3}, {1, 3, 0, 2}, {2, 1, 0, 3}, {3, 1, 0, 2}, {2, 3, 0, 1}, {3, 2, 0, 1},
	{1, 2, 3, 0}, {1, 3, 2, 0}, {2, 1, 3, 0}, {3, 1, 2, 0}, {2, 3, 1, 0}, {3, 2, 1, 0},
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 3, 1, 2}, {0, 2, 3, 1}, {0, 3, 2, 1},
	{1, 0, 2, 3}, {1, 0, 3, 2},
}

// Decrypt converts data in place from wire form to cleartext. data must be at
// least HeaderLen+4*BlockLen bytes; the key stream and shuffle both derive
// from the leading encryption constant.
func Decrypt(data []byte) {
	ec := binary.LittleEndian.Uint32(data)
	cryptStream(data, ec)
	applyOrder(data, blockOrder[shuffleValue(ec)])
}

// Encrypt converts cleartext back to wire form: inverse block shuffle first,
// then the identical forward key stream (XOR is its own inverse).
func Encrypt(data []byte) {
	ec := binary.LittleEndian.Uint32(data)
	applyOrder(data, invertOrder(blockOrder[shuffleValue(ec)]))
	cryptStream(data, ec)
}

// Species reads the species ordinal from a decrypted record.
func Species(data []byte) uint16 {
	return binary.LittleEndian.Uint16(data[SpeciesOffset:])
}

func shuffleValue(ec uint32) uint32 {
	return (ec >> 13) & 31
}

// cryptStream XORs the LCRNG key stream over every 16-bit word past the
// header. The generator must advance exactly once per word, before use, to
// reproduce the source stream.
func cryptStream(data []byte, seed uint32) {
	for off := HeaderLen; off+1 < len(data); off += 2 {
		seed = seed*lcrngMult + lcrngAdd
		word := binary.LittleEndian.Uint16(data[off:])
		binary.LittleEndian.PutUint16(data[off:], word^uint16(seed>>16))
	}
}

// applyOrder rebuilds the four payload blocks so output position b receives
// input block order[b].
func applyOrder(data []byte, order [4]uint8) {
	var scratch [4 * BlockLen]byte
	for b := 0; b < 4; b++ {
		src := HeaderLen + int(order[b])*BlockLen
		copy(scratch[b*BlockLen:(b+1)*BlockLen], data[src:src+BlockLen])
	}
	copy(data[HeaderLen:HeaderLen+4*BlockLen], scratch[:])
}

func invertOrder(order [4]uint8) [4]uint8 {
	var inverse [4]uint8
	for b, src := range order {
		inverse[src] = uint8(b)
	}
	return inverse
}

package betterchess

import (
	"testing"
)

func TestCountBits(t *testing.T) {
	testcases := []struct {
		bitboard uint64
		expected int
	}{
		{0x0, 0},
		{0x1, 1},
		{0xF0000, 4},
		{ALL_SQUARES, 64},
	}

	for _, tc := range testcases {
		if got := CountBits(tc.bitboard); got != tc.expected {
			t.Fatalf("expected %d, got %d", tc.expected, got)
		}
	}
}

func TestBitScan(t *testing.T) {
	testcases := []struct {
		bitboard uint64
		expected int
	}{
		{0xF0000, 16},
		{0x1, 0},
		{1 << 63, 63},
		{A4 | H8, SA4},
	}

	for _, tc := range testcases {
		if got := bitScan(tc.bitboard); got != tc.expected {
			t.Fatalf("expected %d, got %d", tc.expected, got)
		}
	}
}

func TestBitScanReverse(t *testing.T) {
	testcases := []struct {
		bitboard uint64
		expected int
	}{
		{0xF0000, 19},
		{0x1, 0},
		{1 << 63, 63},
		{A4 | H8, SH8},
		{0x0, -1},
	}

	for _, tc := range testcases {
		if got := bitScanReverse(tc.bitboard); got != tc.expected {
			t.Fatalf("expected %d, got %d", tc.expected, got)
		}
	}
}

func TestPopLSB(t *testing.T) {
	bitboard := A4 | D5 | H8

	if got := popLSB(&bitboard); got != SA4 {
		t.Fatalf("expected %d, got %d", SA4, got)
	}
	if bitboard != D5|H8 {
		t.Fatalf("expected the LSB to be cleared, got %x", bitboard)
	}
	if got := popLSB(&bitboard); got != SD5 {
		t.Fatalf("expected %d, got %d", SD5, got)
	}
	if got := popLSB(&bitboard); got != SH8 {
		t.Fatalf("expected %d, got %d", SH8, got)
	}
	if bitboard != 0 {
		t.Fatalf("expected an empty bitboard, got %x", bitboard)
	}
}

// The shift helpers must drop the squares that would wrap around an edge.
func TestShifts(t *testing.T) {
	testcases := []struct {
		name     string
		shift    func(uint64) uint64
		bitboard uint64
		expected uint64
	}{
		{"north D4", shiftNorth, D4, D5},
		{"north D8", shiftNorth, D8, 0},
		{"south D4", shiftSouth, D4, D3},
		{"south D1", shiftSouth, D1, 0},
		{"east H4", shiftEast, H4, 0},
		{"west A4", shiftWest, A4, 0},
		{"north-east H4", shiftNorthEast, H4, 0},
		{"north-east D4", shiftNorthEast, D4, E5},
		{"north-west A4", shiftNorthWest, A4, 0},
		{"south-east H4", shiftSouthEast, H4, 0},
		{"south-west A4", shiftSouthWest, A4, 0},
		{"south-west D4", shiftSouthWest, D4, C3},
		{"north-north D2", shiftNorthNorth, D2, D4},
		{"south-south D7", shiftSouthSouth, D7, D5},
		{"NNE G6", shiftNNE, G6, H8},
		{"NNE H6", shiftNNE, H6, 0},
		{"ENE B1", shiftENE, B1, D2},
		{"ENE G1", shiftENE, G1, 0},
		{"WSW C2", shiftWSW, C2, A1},
		{"WSW B2", shiftWSW, B2, 0},
		{"SSW A3", shiftSSW, A3, 0},
		{"SSW B3", shiftSSW, B3, A1},
	}

	for _, tc := range testcases {
		if got := tc.shift(tc.bitboard); got != tc.expected {
			t.Fatalf("test %q: expected %x, got %x", tc.name, tc.expected, got)
		}
	}
}

// Rays run from the square to the board edge; between masks are empty for
// unaligned pairs and exclusive on both ends for aligned ones.
func TestRaysAndBetween(t *testing.T) {
	if got := rays[dirNorth][SD4]; got != D5|D6|D7|D8 {
		t.Fatalf("north ray from d4: got %x", got)
	}
	if got := rays[dirSouthWest][SD4]; got != C3|B2|A1 {
		t.Fatalf("south-west ray from d4: got %x", got)
	}

	if got := between[SD4][SD8]; got != D5|D6|D7 {
		t.Fatalf("between d4 and d8: got %x", got)
	}
	if got := between[SD8][SD4]; got != D5|D6|D7 {
		t.Fatalf("between d8 and d4: got %x", got)
	}
	if got := between[SA1][SH8]; got != B2|C3|D4|E5|F6|G7 {
		t.Fatalf("between a1 and h8: got %x", got)
	}
	if got := between[SD4][SE6]; got != 0 {
		t.Fatalf("between unaligned squares must be empty, got %x", got)
	}
	if got := between[SD4][SD5]; got != 0 {
		t.Fatalf("between adjacent squares must be empty, got %x", got)
	}
}

// The geometric masks partition the board.
func TestGeometricMasks(t *testing.T) {
	if fileMasks[0] != 0x0101010101010101 || fileMasks[7] != 0x8080808080808080 {
		t.Fatal("file masks out of place")
	}
	if rankMasks[1] != rank2Mask || rankMasks[6] != rank7Mask {
		t.Fatal("rank masks out of place")
	}

	var all uint64
	for _, m := range diagMasks {
		all |= m
	}
	if all != ALL_SQUARES {
		t.Fatal("diagonals do not cover the board")
	}

	all = 0
	for _, m := range antiDiagMasks {
		all |= m
	}
	if all != ALL_SQUARES {
		t.Fatal("anti-diagonals do not cover the board")
	}

	if diagMasks[7]&A1 == 0 || diagMasks[7]&H8 == 0 {
		t.Fatal("main diagonal misses its corners")
	}
	if antiDiagMasks[7]&A8 == 0 || antiDiagMasks[7]&H1 == 0 {
		t.Fatal("main anti-diagonal misses its corners")
	}
}

func BenchmarkCountBits(b *testing.B) {
	for b.Loop() {
		CountBits(0xFFFF00000000FFFF)
	}
}

func BenchmarkBitScan(b *testing.B) {
	for b.Loop() {
		bitScan(0xF0000)
	}
}

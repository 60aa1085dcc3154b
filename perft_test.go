package betterchess

import (
	"testing"
)

// The six standard perft positions with their reference node counts.
// See https://www.chessprogramming.org/Perft_Results
var perftCases = []struct {
	name  string
	fen   string
	nodes [3]uint64
}{
	{
		"initial",
		InitialPos,
		[3]uint64{20, 400, 8902},
	},
	{
		"kiwipete",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		[3]uint64{48, 2039, 97862},
	},
	{
		"position 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		[3]uint64{14, 191, 2812},
	},
	{
		"position 4",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		[3]uint64{6, 264, 9467},
	},
	{
		"position 5",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		[3]uint64{44, 1486, 62379},
	},
	{
		"position 6",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		[3]uint64{46, 2079, 89890},
	},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		p := mustParseFEN(t, tc.fen)

		for depth := 1; depth <= 3; depth++ {
			got := Perft(&p, depth)
			if got != tc.nodes[depth-1] {
				t.Errorf("%s depth %d: expected %d nodes, got %d",
					tc.name, depth, tc.nodes[depth-1], got)
			}
		}
	}
}

// The perft recurrence itself: the node count at depth d must equal the
// sum of the child counts at depth d-1.
func TestPerftRecurrence(t *testing.T) {
	p := mustParseFEN(t, perftCases[1].fen)

	l := MoveList{}
	GenLegalMoves(&p, &l)

	var sum uint64
	for i := range l.LastMoveIndex {
		undo := p.MakeMove(l.Moves[i])
		sum += Perft(&p, 2)
		p.UnmakeMove(l.Moves[i], undo)
	}

	if total := Perft(&p, 3); sum != total {
		t.Fatalf("expected the children to sum to %d, got %d", total, sum)
	}
}

func TestPerftParallel(t *testing.T) {
	for _, tc := range perftCases {
		p := mustParseFEN(t, tc.fen)

		if got := PerftParallel(p, 3); got != tc.nodes[2] {
			t.Errorf("%s: expected %d nodes, got %d", tc.name, tc.nodes[2], got)
		}
	}
}

func TestPerftDetail(t *testing.T) {
	testcases := []struct {
		name     string
		fen      string
		depth    int
		nodes    uint64
		expected PerftCounters
	}{
		{
			"kiwipete depth 1", perftCases[1].fen, 1, 48,
			PerftCounters{Captures: 8, Castles: 2},
		},
		{
			"kiwipete depth 2", perftCases[1].fen, 2, 2039,
			PerftCounters{Captures: 351, EnPassants: 1, Castles: 91, Checks: 3},
		},
		{
			"position 3 depth 1", perftCases[2].fen, 1, 14,
			PerftCounters{Captures: 1, Checks: 2},
		},
	}

	for _, tc := range testcases {
		p := mustParseFEN(t, tc.fen)

		counters := PerftCounters{}
		nodes := PerftDetail(&p, tc.depth, &counters)

		if nodes != tc.nodes {
			t.Errorf("%s: expected %d nodes, got %d", tc.name, tc.nodes, nodes)
		}
		if counters != tc.expected {
			t.Errorf("%s: expected counters %+v, got %+v", tc.name,
				tc.expected, counters)
		}
	}
}

// Every legal move of every reference position must make and unmake back
// to a bit-identical state, caches included.
func TestMakeUnmakeInverse(t *testing.T) {
	for _, tc := range perftCases {
		p := mustParseFEN(t, tc.fen)

		l := MoveList{}
		GenLegalMoves(&p, &l)
		before := p

		for i := range l.LastMoveIndex {
			m := l.Moves[i]

			undo := p.MakeMove(m)
			checkInvariants(t, &p)
			p.UnmakeMove(m, undo)

			if p != before {
				t.Fatalf("%s: unmaking %s did not restore the position",
					tc.name, Move2UCI(m))
			}
		}
	}
}

func BenchmarkPerft(b *testing.B) {
	p := mustParseFEN(b, InitialPos)

	for b.Loop() {
		Perft(&p, 3)
	}
}

func BenchmarkPerftParallel(b *testing.B) {
	p := mustParseFEN(b, InitialPos)

	for b.Loop() {
		PerftParallel(p, 3)
	}
}

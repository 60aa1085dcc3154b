/*
perft.go implements the performance test: the count of leaf nodes reached
by exhaustive legal move enumeration to a given depth.  Perft is the
correctness oracle for the move generator; the counts for the standard
positions are pinned in perft_test.go.

See https://www.chessprogramming.org/Perft
*/

package betterchess

import (
	"sync"
	"sync/atomic"
)

// Perft walks the legal move tree below p to the given depth and returns
// the number of leaf nodes, exercising make/unmake on every edge above the
// last ply.  The last ply is counted from the move list without being played.
func Perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	l := MoveList{}
	GenLegalMoves(p, &l)

	// The moves one ply above the horizon are the leaves themselves.
	if depth == 1 {
		return uint64(l.LastMoveIndex)
	}

	var nodes uint64
	for i := range l.LastMoveIndex {
		undo := p.MakeMove(l.Moves[i])
		nodes += Perft(p, depth-1)
		p.UnmakeMove(l.Moves[i], undo)
	}

	return nodes
}

// PerftCounters breaks the horizon moves down by kind.  Checkmates are a
// subset of checks, en passants a subset of captures.
type PerftCounters struct {
	Captures     uint64
	EnPassants   uint64
	Castles      uint64
	Promotions   uint64
	Checks       uint64
	DoubleChecks uint64
	Checkmates   uint64
}

// PerftDetail follows the same principle as [Perft], additionally
// classifying every horizon move.  Use it to debug invalid branches in the
// move generation tree, not to measure performance: every leaf pays for a
// full generation pass to settle the check and mate flags.
func PerftDetail(p *Position, depth int, c *PerftCounters) uint64 {
	if depth == 0 {
		return 1
	}

	l := MoveList{}
	GenLegalMoves(p, &l)

	var nodes uint64
	for i := range l.LastMoveIndex {
		m := l.Moves[i]

		if depth == 1 {
			nodes++

			switch m.Type() {
			case MoveCapture:
				c.Captures++
			case MoveEnPassant:
				c.Captures++
				c.EnPassants++
			case MoveCastling:
				c.Castles++
			case MovePromotion:
				c.Promotions++
				if p.GetPieceFromSquare(1<<m.To()) != PieceNone {
					c.Captures++
				}
			}

			undo := p.MakeMove(m)
			scratch := MoveList{}
			GenLegalMoves(p, &scratch)
			if p.IsCheck() {
				c.Checks++
				if p.IsDoubleCheck() {
					c.DoubleChecks++
				}
				if p.IsCheckmate() {
					c.Checkmates++
				}
			}
			p.UnmakeMove(m, undo)
			continue
		}

		undo := p.MakeMove(m)
		nodes += PerftDetail(p, depth-1, c)
		p.UnmakeMove(m, undo)
	}

	return nodes
}

// PerftParallel splits the tree at the root, one goroutine per root move.
// Each worker drives its own copy of the position, so no locking is needed
// below the root.
func PerftParallel(p Position, depth int) uint64 {
	if depth <= 1 {
		return Perft(&p, depth)
	}

	l := MoveList{}
	GenLegalMoves(&p, &l)

	var nodes atomic.Uint64
	var wg sync.WaitGroup

	for i := range l.LastMoveIndex {
		m := l.Moves[i]

		wg.Add(1)
		go func(child Position) {
			defer wg.Done()
			child.MakeMove(m)
			nodes.Add(Perft(&child, depth-1))
		}(p)
	}

	wg.Wait()
	return nodes.Load()
}

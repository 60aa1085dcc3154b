/*
position.go defines the Position structure and it's methods for chessboard
state management: piece placement, the per-ply legality caches, and
make/unmake with full state restoration.
*/

package betterchess

/*
derived holds the per-ply legality caches recomputed before move
generation for the side to move.
*/
type derived struct {
	// Squares the enemy attacks, with the own king removed from the
	// occupancy so that sliders keep attacking the squares behind it.
	attacked uint64
	// Enemy pieces currently checking the own king: 0, 1 or 2 bits.
	checkers uint64
	// Squares that interpose against a single slider check.  Empty for
	// contact checks and double checks.
	blockMask uint64
	// Allowed-target masks for own pieces pinned to the king, indexed by
	// the pinned piece's square.  Zero means unrestricted.
	pinned [64]uint64

	isCheck       bool
	isDoubleCheck bool
	isCheckmate   bool
}

/*
Position represents a chessboard state that can be converted to or parsed
from the FEN string.

Bitboards 0-11 hold the pieces, 12 and 13 the white and black occupancies,
14 the total occupancy.  A Position is a plain value: copying it yields a
fully independent state.
*/
type Position struct {
	Bitboards      [15]uint64
	ActiveColor    Color
	CastlingRights CastlingRights
	// Square behind the pawn that just advanced two ranks, or -1.
	EPTarget    int
	HalfmoveCnt int
	FullmoveCnt int
	KingSquares [2]int

	derived derived
}

/*
Undo stores everything [Position.MakeMove] destroys, so that
[Position.UnmakeMove] can restore the previous state bit-for-bit.
*/
type Undo struct {
	Captured       Piece
	CastlingRights CastlingRights
	EPTarget       int
	HalfmoveCnt    int
	KingSquares    [2]int

	derived derived
}

// IsCheck reports whether the side to move is in check.  Valid after
// [Position.UpdateCaches] or a [GenLegalMoves] call.
func (p *Position) IsCheck() bool { return p.derived.isCheck }

// IsDoubleCheck reports whether two enemy pieces check the king at once.
func (p *Position) IsDoubleCheck() bool { return p.derived.isDoubleCheck }

// IsCheckmate reports whether the side to move has been mated.  It is set
// by [GenLegalMoves]; a position that was never generated from reports false.
func (p *Position) IsCheckmate() bool { return p.derived.isCheckmate }

// Checkers returns the bitboard of enemy pieces checking the king.
func (p *Position) Checkers() uint64 { return p.derived.checkers }

/*
MakeMove modifies the position by applying the specified move and returns
the record needed to take it back.  It is the caller’s responsibility to
only pass moves obtained from [GenLegalMoves] on this very position.

Not only is the piece placement updated, but also the entire position,
including castling rights, en passant target, halfmove counter, fullmove
counter, and the active color.  The legality caches are recomputed lazily
by the next [GenLegalMoves] or [Position.UpdateCaches] call.
*/
func (p *Position) MakeMove(m Move) Undo {
	u := Undo{
		Captured:       PieceNone,
		CastlingRights: p.CastlingRights,
		EPTarget:       p.EPTarget,
		HalfmoveCnt:    p.HalfmoveCnt,
		KingSquares:    p.KingSquares,
		derived:        p.derived,
	}

	c := p.ActiveColor
	to := uint64(1 << m.To())
	from := uint64(1 << m.From())
	moved := PieceOf(m.Kind(), c)

	// Clear the origin square.
	p.removePiece(moved, from)

	// Increment halfmove counter to detect 50-move rule draw.
	// This will be reset if the move is a capture or a pawn push.
	p.HalfmoveCnt++

	// Remove the captured piece from the board.  This skips en passant
	// captures, since the captured pawn does not occupy the square the
	// capturing pawn moves to.
	if captured := p.GetPieceFromSquare(to); captured != PieceNone {
		p.removePiece(captured, to)
		u.Captured = captured
		p.HalfmoveCnt = 0
	}

	switch m.Type() {
	case MovePromotion:
		// The placed piece is the promotion piece, not the pawn.
		p.placePiece(PieceOf(PromotionKind(m.PromoPiece()), c), to)

	case MoveEnPassant:
		p.placePiece(moved, to)
		// Remove the captured pawn from the rank behind the target square.
		if c == ColorWhite {
			p.removePiece(BPawn, to>>8)
		} else {
			p.removePiece(WPawn, to<<8)
		}
		u.Captured = PieceOf(KindPawn, 1^c)

	case MoveCastling:
		p.placePiece(moved, to)
		// Update the rook position.
		v := m.Variant()
		rook := PieceOf(KindRook, c)
		p.removePiece(rook, 1<<castlingRookFrom[v])
		p.placePiece(rook, 1<<castlingRookTo[v])

	default:
		p.placePiece(moved, to)
	}

	// Reset the halfmove counter after pawn moves.
	if m.Kind() == KindPawn {
		p.HalfmoveCnt = 0
	}

	// Moving the king or touching a rook's original square, from either
	// side of the move, forfeits the corresponding castling rights.
	p.CastlingRights &= castlingRightsMask[m.From()] & castlingRightsMask[m.To()]

	// The en passant capture is only legal for one move.
	p.EPTarget = -1
	if m.Type() == MoveDoublePush {
		p.EPTarget = (m.From() + m.To()) / 2
	}

	if m.Kind() == KindKing {
		p.KingSquares[c] = m.To()
	}

	// Increment the full move counter after black moves.
	if c == ColorBlack {
		p.FullmoveCnt++
	}

	// Switch the active color.
	p.ActiveColor ^= 1

	return u
}

/*
UnmakeMove reverts the specified move using its undo record.  Applying
MakeMove and UnmakeMove in LIFO order restores every observable field of
the position, the legality caches included.
*/
func (p *Position) UnmakeMove(m Move, u Undo) {
	// Switch the active color back; c is the side that made the move.
	p.ActiveColor ^= 1
	c := p.ActiveColor

	if c == ColorBlack {
		p.FullmoveCnt--
	}

	to := uint64(1 << m.To())
	from := uint64(1 << m.From())
	moved := PieceOf(m.Kind(), c)

	switch m.Type() {
	case MovePromotion:
		p.removePiece(PieceOf(PromotionKind(m.PromoPiece()), c), to)
		p.placePiece(moved, from)
		// Restore the captured piece, if any.
		if u.Captured != PieceNone {
			p.placePiece(u.Captured, to)
		}

	case MoveEnPassant:
		p.removePiece(moved, to)
		p.placePiece(moved, from)
		// Restore the captured pawn behind the target square.
		if c == ColorWhite {
			p.placePiece(BPawn, to>>8)
		} else {
			p.placePiece(WPawn, to<<8)
		}

	case MoveCastling:
		p.removePiece(moved, to)
		p.placePiece(moved, from)
		v := m.Variant()
		rook := PieceOf(KindRook, c)
		p.removePiece(rook, 1<<castlingRookTo[v])
		p.placePiece(rook, 1<<castlingRookFrom[v])

	default:
		p.removePiece(moved, to)
		p.placePiece(moved, from)
		if u.Captured != PieceNone {
			p.placePiece(u.Captured, to)
		}
	}

	p.CastlingRights = u.CastlingRights
	p.EPTarget = u.EPTarget
	p.HalfmoveCnt = u.HalfmoveCnt
	p.KingSquares = u.KingSquares
	p.derived = u.derived
}

/*
UpdateCaches recomputes the per-ply legality caches for the side to move:
the attacked-by-enemy mask (own king removed), the checking pieces, the
check block mask, and the pin restriction table.  [GenLegalMoves] calls it
on entry; call it directly when fresh check flags are needed without
generating moves.
*/
func (p *Position) UpdateCaches() {
	c := p.ActiveColor
	enemy := 1 ^ c
	kingSq := p.KingSquares[c]

	// Remove the own king from the occupancy before computing the enemy
	// attack mask.  A slider X-raying through the king must keep attacking
	// the squares behind it, or the king could step along the ray and stay
	// in check.
	bitboards := p.Bitboards
	bitboards[14] &^= p.Bitboards[WKing+c]
	p.derived.attacked = genAttacks(bitboards, enemy)

	checkers := p.kingAttackers(c)
	p.derived.checkers = checkers
	p.derived.isCheck = checkers != 0
	p.derived.isDoubleCheck = CountBits(checkers) >= 2
	p.derived.isCheckmate = false

	// Squares that block a single slider check.  Contact checkers leave the
	// mask empty: the only non-king answers are captures of the checker.
	p.derived.blockMask = 0
	if p.derived.isCheck && !p.derived.isDoubleCheck {
		p.derived.blockMask = between[kingSq][bitScan(checkers)]
	}

	p.computePins()
}

/*
kingAttackers returns the bitboard of enemy pieces attacking the king of
the specified color, against the full occupancy.
*/
func (p *Position) kingAttackers(c Color) uint64 {
	enemy := 1 ^ c
	kingSq := p.KingSquares[c]
	occupancy := p.Bitboards[14]

	return pawnAttacks[c][kingSq]&p.Bitboards[WPawn+enemy] |
		knightAttacks[kingSq]&p.Bitboards[WKnight+enemy] |
		lookupBishopAttacks(kingSq, occupancy)&
			(p.Bitboards[WBishop+enemy]|p.Bitboards[WQueen+enemy]) |
		lookupRookAttacks(kingSq, occupancy)&
			(p.Bitboards[WRook+enemy]|p.Bitboards[WQueen+enemy])
}

/*
computePins rebuilds the pin restriction table.  Walking each of the eight
rays from the king: if the nearest occupied square holds an own piece, and
the next occupied square beyond it holds an enemy slider moving along that
ray, the own piece is pinned and may only move between the king and the
pinner, or capture the pinner.
*/
func (p *Position) computePins() {
	clear(p.derived.pinned[:])

	c := p.ActiveColor
	enemy := 1 ^ c
	kingSq := p.KingSquares[c]
	occupancy := p.Bitboards[14]
	own := p.Bitboards[12+c]

	orthogonal := p.Bitboards[WRook+enemy] | p.Bitboards[WQueen+enemy]
	diagonal := p.Bitboards[WBishop+enemy] | p.Bitboards[WQueen+enemy]

	for d := range 8 {
		blockers := rays[d][kingSq] & occupancy
		if blockers == 0 {
			continue
		}

		var first int
		if positiveDir(d) {
			first = bitScan(blockers)
		} else {
			first = bitScanReverse(blockers)
		}
		if 1<<first&own == 0 {
			continue
		}

		blockers &^= 1 << first
		if blockers == 0 {
			continue
		}
		var second int
		if positiveDir(d) {
			second = bitScan(blockers)
		} else {
			second = bitScanReverse(blockers)
		}

		sliders := orthogonal
		if d >= dirNorthEast {
			sliders = diagonal
		}
		if 1<<second&sliders != 0 {
			p.derived.pinned[first] = between[kingSq][second] | 1<<second
		}
	}
}

/*
GetPieceFromSquare returns the type of the piece that stands on the
specified square, or [PieceNone] if the square is empty.
*/
func (p *Position) GetPieceFromSquare(square uint64) Piece {
	if square&p.Bitboards[14] == 0 {
		return PieceNone
	}
	for i := WPawn; i <= BKing; i++ {
		if square&p.Bitboards[i] != 0 {
			return i
		}
	}
	return PieceNone
}

/*
GetPiece returns the piece of the specified color standing on the square,
or [PieceNone].
*/
func (p *Position) GetPiece(c Color, square uint64) Piece {
	if square&p.Bitboards[12+c] == 0 {
		return PieceNone
	}
	for i := WPawn + c; i <= BKing; i += 2 {
		if square&p.Bitboards[i] != 0 {
			return i
		}
	}
	return PieceNone
}

/*
placePiece places the piece on the specified square as well as updates the
occupancy and allies bitboards.
*/
func (p *Position) placePiece(piece Piece, square uint64) {
	// Place the piece.
	p.Bitboards[piece] |= square
	// Update allies bitboard.
	p.Bitboards[12+piece%2] |= square
	// Update occupancy bitboard.
	p.Bitboards[14] |= square
}

/*
removePiece removes the piece from the specified square as well as updates
the occupancy and allies bitboards.

NOTE: If a piece of the specified type is not present on the specified
square, it will be placed rather than removed.
*/
func (p *Position) removePiece(piece Piece, square uint64) {
	// Remove the piece.
	p.Bitboards[piece] ^= square
	// Update allies bitboard.
	p.Bitboards[12+piece%2] ^= square
	// Update occupancy bitboard.
	p.Bitboards[14] ^= square
}

/*
calculateMaterial sums the piece weights of both sides into one total,
kings excluded.  Used to determine a draw by insufficient material.
*/
func (p *Position) calculateMaterial() (material int) {
	for piece := range WKing {
		material += CountBits(p.Bitboards[piece]) * pieceWeights[piece]
	}
	return material
}

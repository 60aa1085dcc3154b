// movegen.go implements fully legal move generation using the Magic
// Bitboards approach.  The generator emits no pseudo-legal surplus: pins,
// checks, king safety, castling paths, and the en passant discovered check
// are all resolved before a move is pushed.

package betterchess

/*
GenLegalMoves clears the given move list and fills it with the legal moves
of the side to move.  The position's legality caches are refreshed first.

In double check every answer is a king move, so the non-king generators are
skipped entirely.  The checkmate flag is set once generation is complete.
*/
func GenLegalMoves(p *Position, l *MoveList) {
	l.Clear()

	p.UpdateCaches()

	if !p.derived.isDoubleCheck {
		genPawnMoves(p, l)
		genKnightMoves(p, l)
		genSliderMoves(p, l)
	}

	genKingMoves(p, l)

	p.derived.isCheckmate = p.derived.isCheck && l.LastMoveIndex == 0
}

/*
processTargets filters a candidate target bitboard through the pin and
check restrictions and pushes the surviving moves.  Pawn targets on the
last rank fan out into the four promotions.

The moveType parameter carries the capture/quiet classification decided by
the caller; promotions keep their own move type.
*/
func processTargets(p *Position, l *MoveList, targets uint64, from int,
	kind Kind, moveType MoveType) {

	if kind != KindKing {
		// A pinned piece may still move, but only along the pin ray.
		if pin := p.derived.pinned[from]; pin != 0 {
			targets &= pin
		}
		// In check, captures must take a checker and quiet moves must
		// interpose on the checking ray.
		if p.derived.isCheck {
			if moveType == MoveCapture {
				targets &= p.derived.checkers
			} else {
				targets &= p.derived.blockMask
			}
		}
	}

	for targets > 0 {
		to := popLSB(&targets)

		if kind == KindPawn && 1<<to&(rank1Mask|rank8Mask) != 0 {
			l.Push(NewPromotionMove(to, from, PromotionKnight))
			l.Push(NewPromotionMove(to, from, PromotionBishop))
			l.Push(NewPromotionMove(to, from, PromotionRook))
			l.Push(NewPromotionMove(to, from, PromotionQueen))
		} else {
			l.Push(NewMove(to, from, kind, moveType))
		}
	}
}

// genPawnMoves appends legal pawn moves to the given move list: pushes,
// double pushes, captures, promotions, and the en passant capture.
func genPawnMoves(p *Position, l *MoveList) {
	c := p.ActiveColor
	occupancy := p.Bitboards[14]
	enemies := p.Bitboards[12+(1^c)]
	pawns := p.Bitboards[WPawn+c]

	for pawns > 0 {
		from := popLSB(&pawns)

		pushes := pawnPushes[c][from] &^ occupancy
		processTargets(p, l, pushes, from, KindPawn, MoveQuiet)

		// The double push needs the single push square to be empty too.
		if pushes != 0 {
			doubles := pawnDoublePushes[c][from] &^ occupancy
			processTargets(p, l, doubles, from, KindPawn, MoveDoublePush)
		}

		captures := pawnAttacks[c][from] & enemies
		processTargets(p, l, captures, from, KindPawn, MoveCapture)

		if p.EPTarget >= 0 && pawnAttacks[c][from]&(1<<p.EPTarget) != 0 {
			genEnPassant(p, l, from)
		}
	}
}

/*
genEnPassant validates and emits the en passant capture from the given
square.  The capture empties two squares of the same rank at once, so the
pin table cannot cover the case where both pawns together shielded the king
from a rook or queen.  The move is replayed on a scratch copy instead, and
kept only if the king stays out of check.
*/
func genEnPassant(p *Position, l *MoveList, from int) {
	c := p.ActiveColor

	capturedSq := p.EPTarget - 8
	if c == ColorBlack {
		capturedSq = p.EPTarget + 8
	}

	tmp := *p
	tmp.removePiece(WPawn+c, 1<<from)
	tmp.removePiece(WPawn+(1^c), 1<<capturedSq)
	tmp.placePiece(WPawn+c, 1<<p.EPTarget)

	if tmp.kingAttackers(c) == 0 {
		l.Push(NewMove(p.EPTarget, from, KindPawn, MoveEnPassant))
	}
}

// genKnightMoves appends legal knight moves to the given move list.
func genKnightMoves(p *Position, l *MoveList) {
	c := p.ActiveColor
	enemies := p.Bitboards[12+(1^c)]
	knights := p.Bitboards[WKnight+c]

	for knights > 0 {
		from := popLSB(&knights)

		targets := knightAttacks[from] &^ p.Bitboards[12+c]

		processTargets(p, l, targets&enemies, from, KindKnight, MoveCapture)
		processTargets(p, l, targets&^enemies, from, KindKnight, MoveQuiet)
	}
}

// genSliderMoves appends legal moves for bishops, rooks, and queens to the
// given move list.
func genSliderMoves(p *Position, l *MoveList) {
	c := p.ActiveColor
	allies := p.Bitboards[12+c]
	enemies := p.Bitboards[12+(1^c)]
	occupancy := p.Bitboards[14]

	for kind := KindBishop; kind <= KindQueen; kind++ {
		pieces := p.Bitboards[PieceOf(kind, c)]
		for pieces > 0 {
			from := popLSB(&pieces)

			var attacks uint64
			switch kind {
			case KindBishop:
				attacks = lookupBishopAttacks(from, occupancy)
			case KindRook:
				attacks = lookupRookAttacks(from, occupancy)
			case KindQueen:
				attacks = lookupQueenAttacks(from, occupancy)
			}

			targets := attacks &^ allies
			processTargets(p, l, targets&enemies, from, kind, MoveCapture)
			processTargets(p, l, targets&^enemies, from, kind, MoveQuiet)
		}
	}
}

// genKingMoves appends legal moves for the king on the given position to
// the specified move list, castling included.
func genKingMoves(p *Position, l *MoveList) {
	c := p.ActiveColor
	from := p.KingSquares[c]
	enemies := p.Bitboards[12+(1^c)]

	// The attacked mask was computed with the king removed, so squares
	// behind the king along a checking ray stay excluded.
	targets := kingAttacks[from] &^ p.Bitboards[12+c] &^ p.derived.attacked

	processTargets(p, l, targets&enemies, from, KindKing, MoveCapture)
	processTargets(p, l, targets&^enemies, from, KindKing, MoveQuiet)

	// No castling out of check.
	if p.derived.isCheck {
		return
	}

	first, last := VariantWhiteShort, VariantWhiteLong
	if c == ColorBlack {
		first, last = VariantBlackShort, VariantBlackLong
	}
	for variant := first; variant <= last; variant++ {
		if p.CastlingRights&(1<<variant) == 0 {
			continue
		}
		// The rook must still stand on its original square: rights parsed
		// from a foreign FEN are not trusted blindly.
		if p.Bitboards[WRook+c]&(1<<castlingRookFrom[variant]) == 0 {
			continue
		}
		// All squares between king and rook must be empty, and no square on
		// the king's path may be attacked.
		if p.Bitboards[14]&castlingBetween[variant] != 0 {
			continue
		}
		if p.derived.attacked&castlingKingPath[variant] != 0 {
			continue
		}

		l.Push(NewCastlingMove(castlingKingTo[variant], from, variant))
	}
}

/*
genAttacks generates the bitboard of squares attacked by pieces of the
specified color.  The main purpose of this function is to generate a
bitboard of squares to which the king is forbidden to move.

NOTE: The king of the defending side must be excluded from the occupancy
(bitboards[14]) beforehand to avoid blocking the attacks of slider pieces.
Otherwise, the king may appear to be able to move into check.
*/
func genAttacks(bitboards [15]uint64, c Color) (attacks uint64) {
	for i := WBishop + c; i <= WQueen+c; i += 2 {
		bitboard := bitboards[i]
		for bitboard > 0 {
			slider := popLSB(&bitboard)

			switch i {
			case WBishop, BBishop:
				attacks |= lookupBishopAttacks(slider, bitboards[14])
			case WRook, BRook:
				attacks |= lookupRookAttacks(slider, bitboards[14])
			case WQueen, BQueen:
				attacks |= lookupQueenAttacks(slider, bitboards[14])
			}
		}
	}

	attacks |= genPawnAttacks(bitboards[WPawn+c], c)
	attacks |= genKnightAttacks(bitboards[WKnight+c])
	attacks |= genKingAttacks(bitboards[WKing+c])

	return attacks
}

// genPawnAttacks returns a bitboard of squares attacked by pawns.
//
// Use this function only to generate attacks for multiple pawns
// simultaneously.  To get attacks for a single pawn, use the
// pawnAttacks lookup table.
func genPawnAttacks(pawns uint64, c Color) uint64 {
	if c == ColorWhite {
		return shiftNorthWest(pawns) | shiftNorthEast(pawns)
	}
	// Handle black pawns.
	return shiftSouthWest(pawns) | shiftSouthEast(pawns)
}

// genKnightAttacks returns a bitboard of squares attacked by knights.
//
// Use this function only to generate attacks for multiple knights
// simultaneously.  To get attacks for a single knight, use the
// knightAttacks lookup table.
func genKnightAttacks(knights uint64) uint64 {
	return shiftNNE(knights) | shiftENE(knights) |
		shiftESE(knights) | shiftSSE(knights) |
		shiftSSW(knights) | shiftWSW(knights) |
		shiftWNW(knights) | shiftNNW(knights)
}

// genKingAttacks returns a bitboard of squares attacked by a king.
func genKingAttacks(king uint64) uint64 {
	return shiftNorth(king) | shiftSouth(king) |
		shiftEast(king) | shiftWest(king) |
		shiftNorthEast(king) | shiftNorthWest(king) |
		shiftSouthEast(king) | shiftSouthWest(king)
}

// genBishopAttacks returns a bitboard of squares attacked by a bishop.
// Occupied squares that block movement in each direction are taken into
// account.  The resulting bitboard includes the occupied squares.
//
// This function cannot generate attacks for multiple bishops simultaneously.
func genBishopAttacks(bishop, occupancy uint64) (attacks uint64) {
	for i := shiftSouthWest(bishop); i != 0; i = shiftSouthWest(i) {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}

	for i := shiftSouthEast(bishop); i != 0; i = shiftSouthEast(i) {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}

	for i := shiftNorthWest(bishop); i != 0; i = shiftNorthWest(i) {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}

	for i := shiftNorthEast(bishop); i != 0; i = shiftNorthEast(i) {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}

	return attacks
}

// genRookAttacks returns a bitboard of squares attacked by a rook.
// Occupied squares that block movement in each direction are taken into
// account.  The resulting bitboard includes the occupied squares.
//
// This function cannot generate attacks for multiple rooks simultaneously.
func genRookAttacks(rook, occupancy uint64) (attacks uint64) {
	for i := shiftWest(rook); i != 0; i = shiftWest(i) {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}

	for i := shiftEast(rook); i != 0; i = shiftEast(i) {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}

	for i := shiftSouth(rook); i != 0; i = shiftSouth(i) {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}

	for i := shiftNorth(rook); i != 0; i = shiftNorth(i) {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}

	return attacks
}

// lookupBishopAttacks returns a bitboard of squares attacked by a bishop.
// The bitboard is taken from the bishopAttacks using magic hashing scheme.
func lookupBishopAttacks(square int, occupancy uint64) uint64 {
	occupancy &= bishopOccupancy[square]
	occupancy *= bishopMagicNumbers[square]
	occupancy >>= 64 - bishopBitCount[square]
	return bishopAttacks[square][occupancy]
}

// lookupRookAttacks returns a bitboard of squares attacked by a rook.
// The bitboard is taken from the rookAttacks using magic hashing scheme.
func lookupRookAttacks(square int, occupancy uint64) uint64 {
	occupancy &= rookOccupancy[square]
	occupancy *= rookMagicNumbers[square]
	occupancy >>= 64 - rookBitCount[square]
	return rookAttacks[square][occupancy]
}

// lookupQueenAttacks returns a bitboard of squares attacked by a queen.
// The bitboard is calculated as the logical disjunction of the bishop and
// rook attack bitboards.
func lookupQueenAttacks(square int, occupancy uint64) uint64 {
	return lookupBishopAttacks(square, occupancy) |
		lookupRookAttacks(square, occupancy)
}

// fen.go implements conversions between Forsyth-Edwards Notation (FEN)
// strings and positions.  Parsing validates the whole grammar and reports
// a malformed FEN error naming the offending field; serialization emits
// the canonical six-field form, so parse and emit round-trip exactly.

package betterchess

import (
	"fmt"
	"strconv"
	"strings"
)

// Each FEN string consists of six parts, separated by a space:
//  1. Piece placement: will be parsed into the array of bitboards.
//  2. Active color:
//     "w" means that White is to move;
//     "b" means that Black is to move.
//  3. Castling rights: if neither side has the ability to castle,
//     this field uses the character "-".
//  4. En passant target square: if there is no en passant target square,
//     this field uses the character "-".
//  5. Halfmove clock: used for the fifty-move rule.
//  6. Fullmove number: The number of the full moves.

// ParseFEN parses the given FEN string into a [Position].  The returned
// position has its occupancy, king square, and legality caches recomputed.
func ParseFEN(fen string) (Position, error) {
	p := Position{EPTarget: -1, KingSquares: [2]int{-1, -1}}

	fields := strings.Split(strings.TrimSpace(fen), " ")
	if len(fields) != 6 {
		return p, fmt.Errorf("malformed FEN: expected 6 fields, got %d", len(fields))
	}

	// Parse piece placement.
	var err error
	p.Bitboards, err = parseBitboards(fields[0])
	if err != nil {
		return p, err
	}

	if CountBits(p.Bitboards[WKing]) != 1 || CountBits(p.Bitboards[BKing]) != 1 {
		return p, fmt.Errorf("malformed FEN: each side needs exactly one king")
	}
	p.KingSquares[ColorWhite] = bitScan(p.Bitboards[WKing])
	p.KingSquares[ColorBlack] = bitScan(p.Bitboards[BKing])

	// Parse active color.
	switch fields[1] {
	case "w":
		p.ActiveColor = ColorWhite
	case "b":
		p.ActiveColor = ColorBlack
	default:
		return p, fmt.Errorf("malformed FEN: bad active color %q", fields[1])
	}

	// Parse castling rights.
	if fields[2] != "-" {
		if fields[2] == "" {
			return p, fmt.Errorf("malformed FEN: empty castling field")
		}
		for i := 0; i < len(fields[2]); i++ {
			var right CastlingRights
			switch fields[2][i] {
			case 'K':
				right = CastlingWhiteShort
			case 'Q':
				right = CastlingWhiteLong
			case 'k':
				right = CastlingBlackShort
			case 'q':
				right = CastlingBlackLong
			default:
				return p, fmt.Errorf("malformed FEN: bad castling field %q", fields[2])
			}
			// Each letter may appear once, in KQkq order.
			if p.CastlingRights >= right {
				return p, fmt.Errorf("malformed FEN: bad castling field %q", fields[2])
			}
			p.CastlingRights |= right
		}
	}

	// Parse en passant target square.
	if fields[3] != "-" {
		square, err := parseSquare(fields[3])
		if err != nil {
			return p, err
		}
		// The target sits behind a pawn that just advanced two ranks, so it
		// can only be on the third or the sixth rank.
		if r := square / 8; r != 2 && r != 5 {
			return p, fmt.Errorf("malformed FEN: bad en passant square %q", fields[3])
		}
		p.EPTarget = square
	}

	// Parse halfmove counter.
	p.HalfmoveCnt, err = strconv.Atoi(fields[4])
	if err != nil || p.HalfmoveCnt < 0 {
		return p, fmt.Errorf("malformed FEN: bad halfmove clock %q", fields[4])
	}

	// Parse fullmove counter.
	p.FullmoveCnt, err = strconv.Atoi(fields[5])
	if err != nil || p.FullmoveCnt < 1 {
		return p, fmt.Errorf("malformed FEN: bad fullmove number %q", fields[5])
	}

	p.UpdateCaches()

	return p, nil
}

// SerializeFEN serializes the specified [Position] into a FEN string.
func SerializeFEN(p Position) string {
	var fen strings.Builder
	fen.Grow(64)

	// 1 field: piece placement.
	fen.WriteString(serializeBitboards(p.Bitboards))

	// 2 field: active color.
	if p.ActiveColor == ColorWhite {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	// 3 field: castling rights.
	cnt := 4
	if p.CastlingRights&CastlingWhiteShort != 0 {
		fen.WriteByte('K')
		cnt--
	}
	if p.CastlingRights&CastlingWhiteLong != 0 {
		fen.WriteByte('Q')
		cnt--
	}
	if p.CastlingRights&CastlingBlackShort != 0 {
		fen.WriteByte('k')
		cnt--
	}
	if p.CastlingRights&CastlingBlackLong != 0 {
		fen.WriteByte('q')
		cnt--
	}
	if cnt == 4 {
		fen.WriteByte('-')
	}
	fen.WriteByte(' ')

	// 4 field: en passant target square.
	if p.EPTarget < 0 {
		fen.WriteString("- ")
	} else {
		fen.WriteString(Square2String[p.EPTarget])
		fen.WriteByte(' ')
	}

	// 5 field: the number of halfmoves.
	fen.WriteString(strconv.Itoa(p.HalfmoveCnt))
	fen.WriteByte(' ')

	// 6 field: the number of fullmoves.
	fen.WriteString(strconv.Itoa(p.FullmoveCnt))

	return fen.String()
}

// parseBitboards converts the first field of a FEN string into an array of
// bitboards.
func parseBitboards(piecePlacement string) ([15]uint64, error) {
	var bitboards [15]uint64

	ranks := strings.Split(piecePlacement, "/")
	if len(ranks) != 8 {
		return bitboards, fmt.Errorf("malformed FEN: expected 8 ranks, got %d",
			len(ranks))
	}

	// Piece placement data describes each rank beginning from the eighth.
	for i, rank := range ranks {
		square := 8 * (7 - i)
		file := 0

		for j := 0; j < len(rank); j++ {
			char := rank[j]

			// Number of consecutive empty squares.
			if char >= '1' && char <= '8' {
				file += int(char - '0')
				square += int(char - '0')
				continue
			}

			var piece Piece
			// Manual switch construction is ~3x faster than map approach.
			switch char {
			case 'P':
				piece = WPawn
			case 'N':
				piece = WKnight
			case 'B':
				piece = WBishop
			case 'R':
				piece = WRook
			case 'Q':
				piece = WQueen
			case 'K':
				piece = WKing
			case 'p':
				piece = BPawn
			case 'n':
				piece = BKnight
			case 'b':
				piece = BBishop
			case 'r':
				piece = BRook
			case 'q':
				piece = BQueen
			case 'k':
				piece = BKing
			default:
				return bitboards, fmt.Errorf("malformed FEN: unknown piece %q",
					string(char))
			}

			if file >= 8 {
				return bitboards, fmt.Errorf("malformed FEN: rank %d overflows",
					8-i)
			}

			// Set the bit on the bitboards to place a piece.
			bb := uint64(1 << square)

			bitboards[piece] |= bb
			bitboards[12+piece%2] |= bb
			bitboards[14] |= bb

			file++
			square++
		}

		if file != 8 {
			return bitboards, fmt.Errorf("malformed FEN: rank %d sums to %d squares",
				8-i, file)
		}
	}

	return bitboards, nil
}

// serializeBitboards converts the array of bitboards into the first field
// of a FEN string.
func serializeBitboards(bitboards [15]uint64) string {
	// Used to add characters to a string without extra memory allocations.
	b := strings.Builder{}
	b.Grow(20)

	var board [64]byte

	for i := WPawn; i <= BKing; i++ {
		// Go through all pieces on a bitboard.
		for bitboards[i] > 0 {
			square := popLSB(&bitboards[i])
			// Add piece on board.
			board[square] = PieceSymbols[i]
		}
	}

	emptySquares := byte(0)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			square := 8*rank + file
			char := board[square]

			if char == 0 { // Empty square.
				emptySquares++
			} else { // Piece on square.
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				b.WriteByte(char)
			}
		}
		if emptySquares > 0 {
			b.WriteByte('0' + emptySquares)
			emptySquares = 0
		}
		// Do not add a separator at the end of the string.
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	return b.String()
}

// parseSquare parses an algebraic square name into its index.
func parseSquare(str string) (int, error) {
	if len(str) != 2 || str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return -1, fmt.Errorf("malformed FEN: bad square %q", str)
	}
	return int(str[0]-'a') + 8*int(str[1]-'1'), nil
}

// printer.go renders bitboards and positions for terminals.  It is used by
// the interactive console game, the perft tool, and to visualize failing
// tests.

package betterchess

import (
	"fmt"
	"strings"

	"github.com/clinaresl/table"
)

// pieceGlyphs maps each piece type to its figurine rune.
var pieceGlyphs = [12]rune{
	'♙', '♟', '♘', '♞', '♗', '♝',
	'♖', '♜', '♕', '♛', '♔', '♚',
}

// FormatBitboard formats a single bitboard into a string, marking the set
// squares with the symbol of the specified piece.
func FormatBitboard(bitboard uint64, piece Piece) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			square := uint64(1 << (8*rank + file))

			symbol := pieceGlyphs[piece]
			if bitboard&square == 0 {
				symbol = '.'
			}

			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}

// FormatPosition renders the full position as a bordered board followed by
// the active color, the en passant target, and the castling rights.  The
// move clocks are not printed.
func FormatPosition(p Position) string {
	// Render the board grid with utf-8 characters.
	tab, _ := table.NewTable("||cccccccc||")
	tab.AddDoubleRule()

	for rank := 7; rank >= 0; rank-- {
		line := make([]any, 8)
		for file := 0; file < 8; file++ {
			square := uint64(1 << (8*rank + file))

			piece := p.GetPieceFromSquare(square)
			if piece == PieceNone {
				// Empty squares show their color.
				if (rank+file)%2 == 0 {
					line[file] = "▒"
				} else {
					line[file] = " "
				}
			} else {
				line[file] = string(pieceGlyphs[piece])
			}
		}
		tab.AddRow(line...)
	}
	tab.AddDoubleRule()

	var b strings.Builder
	fmt.Fprintf(&b, "%v", tab)

	b.WriteString("Active color: ")
	if p.ActiveColor == ColorWhite {
		b.WriteString("white")
	} else {
		b.WriteString("black")
	}

	b.WriteString("\nEn passant: ")
	if p.EPTarget < 0 {
		b.WriteString("none")
	} else {
		b.WriteString(Square2String[p.EPTarget])
	}

	b.WriteString("\nCastling rights: ")
	if p.CastlingRights == 0 {
		b.WriteByte('-')
	}
	if p.CastlingRights&CastlingWhiteShort != 0 {
		b.WriteByte('K')
	}
	if p.CastlingRights&CastlingWhiteLong != 0 {
		b.WriteByte('Q')
	}
	if p.CastlingRights&CastlingBlackShort != 0 {
		b.WriteByte('k')
	}
	if p.CastlingRights&CastlingBlackLong != 0 {
		b.WriteByte('q')
	}
	b.WriteByte('\n')

	return b.String()
}

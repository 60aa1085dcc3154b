// uci.go implements the long algebraic (wire) move notation used by
// external layers.  Examples: e2e4, e7e5, e1g1 (white short castling),
// e7e8q (promotion).  External layers never synthesize moves from it
// directly; the squares are resolved against the legal move list.

package betterchess

import (
	"fmt"
	"strings"
)

// Move2UCI converts the move into its long algebraic notation string.
func Move2UCI(m Move) string {
	var b strings.Builder
	b.Grow(5)

	b.WriteString(Square2String[m.From()])
	b.WriteString(Square2String[m.To()])

	if m.Type() == MovePromotion {
		switch m.PromoPiece() {
		case PromotionKnight:
			b.WriteByte('n')
		case PromotionBishop:
			b.WriteByte('b')
		case PromotionRook:
			b.WriteByte('r')
		case PromotionQueen:
			b.WriteByte('q')
		}
	}

	return b.String()
}

// ParseUCIMove splits a long algebraic move string into its origin and
// destination squares and an optional promotion piece (negative when
// absent).  Only the square pair is decoded here; legality is decided by
// looking the pair up in the move list.
func ParseUCIMove(str string) (from, to int, promoPiece PromotionFlag, err error) {
	if len(str) != 4 && len(str) != 5 {
		return 0, 0, -1, fmt.Errorf("bad move %q", str)
	}

	from, err = parseSquare(str[:2])
	if err != nil {
		return 0, 0, -1, fmt.Errorf("bad move %q", str)
	}
	to, err = parseSquare(str[2:4])
	if err != nil {
		return 0, 0, -1, fmt.Errorf("bad move %q", str)
	}

	promoPiece = -1
	if len(str) == 5 {
		switch str[4] {
		case 'n':
			promoPiece = PromotionKnight
		case 'b':
			promoPiece = PromotionBishop
		case 'r':
			promoPiece = PromotionRook
		case 'q':
			promoPiece = PromotionQueen
		default:
			return 0, 0, -1, fmt.Errorf("bad promotion piece %q", string(str[4]))
		}
	}

	return from, to, promoPiece, nil
}

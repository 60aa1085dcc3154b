/*
game.go implements chess game state management on top of the engine core:
the running legal move list, move application by lookup, and the game
ending predicates.
*/

package betterchess

import "errors"

// Sentinel errors surfaced by the game layer.
var (
	// ErrNoSuchMove is returned when no legal move matches a request.
	ErrNoSuchMove = errors.New("no such legal move")
	// ErrMissingPromotion is returned when a promotion is requested without
	// naming the promotion piece.
	ErrMissingPromotion = errors.New("promotion piece not specified")
)

// historyEntry records one applied move together with everything needed to
// take it back and to bound repetition lookups.
type historyEntry struct {
	move Move
	undo Undo
	// A capture, castling, promotion, or pawn move can never recur, so
	// positions before it are excluded from repetition counting.
	// See https://www.chessprogramming.org/Irreversible_Moves
	irreversible bool
}

/*
Game represents a running chess game.  It owns a [Position], keeps its
legal move list current, and records the move history for undo and for
threefold repetition detection.

Draw claims (fifty-move rule, threefold repetition) are surfaced as
predicates; whether and when to claim is up to the caller.  Not safe for
concurrent use.
*/
type Game struct {
	LegalMoves MoveList
	Result     Result

	position Position
	history  []historyEntry
	// Zobrist keys of every reached position; keys[0] is the starting one.
	keys []uint64
}

// NewGame creates a game from the standard initial position.
func NewGame() *Game {
	g, _ := NewGameFromFEN(InitialPos)
	return g
}

// NewGameFromFEN creates a game from an arbitrary starting position.
func NewGameFromFEN(fen string) (*Game, error) {
	p, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	g := &Game{position: p}
	GenLegalMoves(&g.position, &g.LegalMoves)
	g.keys = append(g.keys, zobristKey(g.position))
	g.updateResult()

	return g, nil
}

// Position returns a copy of the current position.
func (g *Game) Position() Position { return g.position }

/*
FindMove resolves a (from, to) square pair against the current legal move
list.  Promotions share their square pair, so promoPiece selects among
them; pass a negative value for non-promotion moves.  Returns
[ErrNoSuchMove] if nothing matches and [ErrMissingPromotion] if the pair
names a promotion but no piece was picked.
*/
func (g *Game) FindMove(from, to int, promoPiece PromotionFlag) (Move, error) {
	for i := range g.LegalMoves.LastMoveIndex {
		m := g.LegalMoves.Moves[i]
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Type() != MovePromotion {
			return m, nil
		}
		if promoPiece < 0 {
			return Move(0), ErrMissingPromotion
		}
		if m.PromoPiece() == promoPiece {
			return m, nil
		}
	}
	return Move(0), ErrNoSuchMove
}

/*
PushMove applies a move from the current legal move list and regenerates
the list for the opponent.  Moves not present in the list are rejected
with [ErrNoSuchMove]; the underlying position never applies an illegal
move.
*/
func (g *Game) PushMove(m Move) error {
	if !g.LegalMoves.Contains(m) {
		return ErrNoSuchMove
	}

	irreversible := m.Kind() == KindPawn ||
		m.Type() == MoveCapture || m.Type() == MoveCastling ||
		g.position.GetPieceFromSquare(1<<m.To()) != PieceNone

	undo := g.position.MakeMove(m)
	GenLegalMoves(&g.position, &g.LegalMoves)

	g.history = append(g.history, historyEntry{m, undo, irreversible})
	g.keys = append(g.keys, zobristKey(g.position))
	g.updateResult()

	return nil
}

// PopMove takes back the most recently applied move.  It reports false
// when there is nothing to undo.
func (g *Game) PopMove() bool {
	if len(g.history) == 0 {
		return false
	}

	last := g.history[len(g.history)-1]
	g.position.UnmakeMove(last.move, last.undo)

	g.history = g.history[:len(g.history)-1]
	g.keys = g.keys[:len(g.keys)-1]

	GenLegalMoves(&g.position, &g.LegalMoves)
	g.updateResult()

	return true
}

// updateResult refreshes the game outcome after a state change.  Draw
// claims are not applied here: they belong to the players.
func (g *Game) updateResult() {
	switch {
	case g.position.IsCheckmate():
		g.Result = ResultCheckmate
	case !g.position.IsCheck() && g.LegalMoves.LastMoveIndex == 0:
		g.Result = ResultStalemate
	default:
		g.Result = ResultUnknown
	}
}

/*
IsCheckmate returns true if both of the following statements are true:
  - There are no legal moves available for the current turn.
  - The king of the side to move is in check.

NOTE: If there are no legal moves, but the king is not in check, the
position is a stalemate.
*/
func (g *Game) IsCheckmate() bool { return g.Result == ResultCheckmate }

// IsStalemate reports whether the side to move has no legal moves while
// not being in check.
func (g *Game) IsStalemate() bool { return g.Result == ResultStalemate }

/*
IsThreefoldRepetition checks whether the current position has occurred at
least three times.  Two positions are identical when the same side is to
move, pieces occupy the same squares, the castling rights match, and the
en passant target file matches; a target left by a double push counts even
when no pawn can capture on it.  Positions separated by an irreversible
move can never repeat and are skipped.
*/
func (g *Game) IsThreefoldRepetition() bool {
	current := g.keys[len(g.keys)-1]
	cnt := 0

	for i := len(g.keys) - 1; i >= 0; i-- {
		if g.keys[i] == current {
			cnt++
			if cnt >= 3 {
				return true
			}
		}
		if i > 0 && g.history[i-1].irreversible {
			break
		}
	}
	return false
}

// IsFiftyMove reports whether the fifty-move rule draw is claimable: one
// hundred halfmoves without a pawn move or a capture.
func (g *Game) IsFiftyMove() bool { return g.position.HalfmoveCnt >= 100 }

/*
IsInsufficientMaterial returns true if one of the following statements is
true:
  - Both sides have a bare king.
  - One side has a king and a minor piece against a bare king.
  - Both sides have a king and a bishop, the bishops standing on the same color.
  - Both sides have a king and a knight.
*/
func (g *Game) IsInsufficientMaterial() bool {
	// Bitmask for all dark squares.
	dark := uint64(0xAA55AA55AA55AA55)
	material := g.position.calculateMaterial()

	if material == 0 || (material == 3 && g.position.Bitboards[WPawn] == 0 &&
		g.position.Bitboards[BPawn] == 0) {
		return true
	}

	if material == 6 {
		wb := g.position.Bitboards[WBishop]
		bb := g.position.Bitboards[BBishop]

		// If there are two bishops both standing on the same colored squares.
		return (wb != 0 && bb != 0 && ((wb&dark > 0 && bb&dark > 0) ||
			(wb&dark == 0 && bb&dark == 0))) ||
			// Or if there are two knights.
			(g.position.Bitboards[WKnight] != 0 &&
				g.position.Bitboards[BKnight] != 0)
	}
	return false
}

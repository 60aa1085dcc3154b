package betterchess

import (
	"errors"
	"testing"
)

// pushUCI feeds a wire-form move into the game, failing the test on any
// resolution error.
func pushUCI(t *testing.T, g *Game, str string) {
	t.Helper()

	from, to, promoPiece, err := ParseUCIMove(str)
	if err != nil {
		t.Fatalf("parsing %q: %v", str, err)
	}
	m, err := g.FindMove(from, to, promoPiece)
	if err != nil {
		t.Fatalf("resolving %q: %v", str, err)
	}
	if err := g.PushMove(m); err != nil {
		t.Fatalf("pushing %q: %v", str, err)
	}
}

func TestFindMove(t *testing.T) {
	g := NewGame()

	m, err := g.FindMove(SE2, SE4, -1)
	if err != nil {
		t.Fatal(err)
	}
	if m.Type() != MoveDoublePush {
		t.Fatalf("expected a double push, got %v", m.Type())
	}

	if _, err := g.FindMove(SE2, SE5, -1); !errors.Is(err, ErrNoSuchMove) {
		t.Fatalf("expected ErrNoSuchMove, got %v", err)
	}
}

func TestFindMovePromotion(t *testing.T) {
	g, err := NewGameFromFEN("4k3/8/8/8/8/8/1p6/4K3 b - - 0 40")
	if err != nil {
		t.Fatal(err)
	}

	// The pair names four moves; without a piece the request is ambiguous.
	if _, err := g.FindMove(SB2, SB1, -1); !errors.Is(err, ErrMissingPromotion) {
		t.Fatalf("expected ErrMissingPromotion, got %v", err)
	}

	m, err := g.FindMove(SB2, SB1, PromotionKnight)
	if err != nil {
		t.Fatal(err)
	}
	if m.PromoPiece() != PromotionKnight {
		t.Fatalf("expected a knight promotion, got %v", m.PromoPiece())
	}
}

func TestPushMoveRejectsIllegal(t *testing.T) {
	g := NewGame()

	// e2e5 is no pawn move; the move list cannot contain it.
	bogus := NewMove(SE5, SE2, KindPawn, MoveQuiet)
	if err := g.PushMove(bogus); !errors.Is(err, ErrNoSuchMove) {
		t.Fatalf("expected ErrNoSuchMove, got %v", err)
	}

	// The rejected move must not have touched the position.
	if got := SerializeFEN(g.Position()); got != InitialPos {
		t.Fatalf("position changed: %s", got)
	}
}

func TestPushPopMove(t *testing.T) {
	g := NewGame()

	pushUCI(t, g, "e2e4")
	pushUCI(t, g, "c7c5")

	if !g.PopMove() || !g.PopMove() {
		t.Fatal("expected two moves to pop")
	}
	if g.PopMove() {
		t.Fatal("expected an empty history")
	}

	if got := SerializeFEN(g.Position()); got != InitialPos {
		t.Fatalf("expected the initial position back, got %s", got)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	g := NewGame()

	// Shuffle the knights until the initial position occurs a third time.
	moves := []string{
		"g1f3", "g8f6", "f3g1", "f6g8",
		"g1f3", "g8f6", "f3g1",
	}
	for _, str := range moves {
		if g.IsThreefoldRepetition() {
			t.Fatalf("premature repetition claim before %s", str)
		}
		pushUCI(t, g, str)
	}

	pushUCI(t, g, "f6g8")
	if !g.IsThreefoldRepetition() {
		t.Fatal("expected a threefold repetition")
	}
}

func TestFiftyMove(t *testing.T) {
	g, err := NewGameFromFEN("4k3/8/8/8/8/8/8/4K2R w - - 99 80")
	if err != nil {
		t.Fatal(err)
	}
	if g.IsFiftyMove() {
		t.Fatal("no claim at 99 halfmoves")
	}

	pushUCI(t, g, "h1h2")
	if !g.IsFiftyMove() {
		t.Fatal("expected a fifty-move claim at 100 halfmoves")
	}
}

func TestInsufficientMaterial(t *testing.T) {
	testcases := []struct {
		fen      string
		expected bool
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		// Bishops on same-colored squares.
		{"3bk3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		// A pawn can still win.
		{"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		// A rook mates.
		{"4k3/8/8/8/8/8/8/4K2R w - - 0 1", false},
	}

	for _, tc := range testcases {
		g, err := NewGameFromFEN(tc.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := g.IsInsufficientMaterial(); got != tc.expected {
			t.Fatalf("%s: expected %t, got %t", tc.fen, tc.expected, got)
		}
	}
}

func TestGameCheckmate(t *testing.T) {
	g := NewGame()

	// Fool's mate.
	for _, str := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		pushUCI(t, g, str)
	}

	if !g.IsCheckmate() || g.Result != ResultCheckmate {
		t.Fatal("expected a checkmate")
	}
	if g.LegalMoves.Size() != 0 {
		t.Fatalf("expected an empty move list, got %d moves", g.LegalMoves.Size())
	}
}

func TestGameStalemate(t *testing.T) {
	g, err := NewGameFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if !g.IsStalemate() || g.Result != ResultStalemate {
		t.Fatal("expected a stalemate")
	}
}

func TestZobristKeyEPDependence(t *testing.T) {
	a := mustParseFEN(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	b := mustParseFEN(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")

	if zobristKey(a) == zobristKey(b) {
		t.Fatal("expected the en passant file to change the key")
	}
}

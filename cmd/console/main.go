// Command console runs an interactive two-player chess game in the
// terminal.  Moves are entered in long algebraic notation (e2e4, e7e8q);
// draw claims and resignation are plain commands.  All rule decisions come
// from the engine; this program only renders and relays.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/newlysama/betterchess"
	"github.com/newlysama/betterchess/internal/logging"
)

func main() {
	log := logging.GetLog("console")

	fen := flag.String("fen", betterchess.InitialPos, "Starting position")
	flag.Parse()

	game, err := betterchess.NewGameFromFEN(*fen)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Enter moves like e2e4 or e7e8q.  Commands: draw, undo, resign.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		position := game.Position()
		fmt.Print(betterchess.FormatPosition(position))

		if over := announce(game, position); over {
			return
		}

		prompt := "white> "
		if position.ActiveColor == betterchess.ColorBlack {
			prompt = "black> "
		}
		fmt.Print(prompt)

		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "":
			continue

		case "resign":
			fmt.Println("resignation, game over")
			return

		case "undo":
			if !game.PopMove() {
				fmt.Println("nothing to undo")
			}
			continue

		case "draw":
			// The engine stays silent about draw claims; the players make
			// them here, and the game only verifies the grounds.
			if game.IsFiftyMove() {
				fmt.Println("draw claimed: fifty-move rule")
				return
			}
			if game.IsThreefoldRepetition() {
				fmt.Println("draw claimed: threefold repetition")
				return
			}
			fmt.Println("no draw claimable")
			continue
		}

		from, to, promoPiece, err := betterchess.ParseUCIMove(input)
		if err != nil {
			fmt.Println(err)
			continue
		}

		move, err := game.FindMove(from, to, promoPiece)
		switch {
		case errors.Is(err, betterchess.ErrMissingPromotion):
			fmt.Println("name the promotion piece, e.g. e7e8q")
			continue
		case err != nil:
			fmt.Println("illegal move")
			continue
		}

		if err := game.PushMove(move); err != nil {
			log.Errorf("pushing %s: %v", betterchess.Move2UCI(move), err)
		}
	}
}

// announce reports finished games and claim-free draws.  It returns true
// when the game is over.
func announce(game *betterchess.Game, position betterchess.Position) bool {
	switch {
	case game.IsCheckmate():
		winner := "white"
		if position.ActiveColor == betterchess.ColorWhite {
			winner = "black"
		}
		fmt.Printf("checkmate, %s wins\n", winner)
		return true

	case game.IsStalemate():
		fmt.Println("stalemate")
		return true

	case game.IsInsufficientMaterial():
		fmt.Println("draw: insufficient material")
		return true
	}

	if position.IsCheck() {
		fmt.Println("check!")
	}
	return false
}

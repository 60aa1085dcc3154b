// movelist.go implements the fixed-capacity container the move generator
// fills in.

package betterchess

/*
MoveList is used to store moves.  The main idea behind it is to preallocate
an array with enough capacity to store all possible moves and avoid dynamic
memory allocations.
*/
type MoveList struct {
	// Maximum number of moves per chess position is equal to 218, so 256
	// slots are never exhausted.
	// See https://www.talkchess.com/forum/viewtopic.php?t=61792
	Moves [256]Move
	// To keep track of the next move index.
	LastMoveIndex byte
}

// Push adds the move to the end of the move list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.LastMoveIndex] = m
	l.LastMoveIndex++
}

// Clear resets the move list without releasing its storage.
func (l *MoveList) Clear() { l.LastMoveIndex = 0 }

// Size returns the number of stored moves.
func (l *MoveList) Size() int { return int(l.LastMoveIndex) }

// Find returns the first stored move with the given origin and destination
// squares, or the zero Move if there is none.  Promotion moves share their
// (from, to) pair; callers that care must inspect the returned move's type
// and pick the promotion piece themselves.
func (l *MoveList) Find(from, to int) Move {
	for i := range l.LastMoveIndex {
		if l.Moves[i].From() == from && l.Moves[i].To() == to {
			return l.Moves[i]
		}
	}
	return Move(0)
}

// Contains reports whether the list stores a move equal to m.
func (l *MoveList) Contains(m Move) bool {
	for i := range l.LastMoveIndex {
		if l.Moves[i] == m {
			return true
		}
	}
	return false
}

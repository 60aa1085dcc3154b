// types.go contains declarations of custom types and predefined constants.

package betterchess

/*
Move represents a chess move, encoded as a 32 bit unsigned integer:
  - 0-5:   To (destination) square index.
  - 6-11:  From (origin/source) square index.
  - 12-14: Kind of the moved piece (see [Kind]).
  - 15-17: Move type (see [MoveType]).
  - 18-19: Promotion piece (see [PromotionFlag]).
  - 20-21: Castling variant (see [CastlingVariant]).

The zero Move is "no move": its origin and destination coincide.
*/
type Move uint32

// NewMove creates a new move of the specified type.
func NewMove(to, from int, kind Kind, moveType MoveType) Move {
	return Move(to | from<<6 | kind<<12 | moveType<<15)
}

// NewPromotionMove creates a pawn promotion move with the specified
// promotion piece.
func NewPromotionMove(to, from int, promoPiece PromotionFlag) Move {
	return Move(to | from<<6 | KindPawn<<12 | MovePromotion<<15 | promoPiece<<18)
}

// NewCastlingMove creates a king castling move of the specified variant.
func NewCastlingMove(to, from int, variant CastlingVariant) Move {
	return Move(to | from<<6 | KindKing<<12 | MoveCastling<<15 | variant<<20)
}

func (m Move) To() int                   { return int(m & 0x3F) }
func (m Move) From() int                 { return int(m>>6) & 0x3F }
func (m Move) Kind() Kind                { return Kind(m>>12) & 0x7 }
func (m Move) Type() MoveType            { return MoveType(m>>15) & 0x7 }
func (m Move) PromoPiece() PromotionFlag { return PromotionFlag(m>>18) & 0x3 }
func (m Move) Variant() CastlingVariant  { return CastlingVariant(m>>20) & 0x3 }

// IsSet reports whether m holds an actual move.  No chess move starts and
// ends on the same square, so the zero Move is never a real one.
func (m Move) IsSet() bool { return m.From() != m.To() }

// Piece is an allias type to avoid bothersome conversion between
// int and Piece.
type Piece = int

// Piece constants are interleaved by color, so that the piece of a given
// kind and color is kind*2 + color.
const (
	WPawn Piece = iota
	BPawn
	WKnight
	BKnight
	WBishop
	BBishop
	WRook
	BRook
	WQueen
	BQueen
	WKing
	BKing
	// To avoid magic numbers.
	PieceNone Piece = -1
)

// Kind is an allias type for a colorless piece type.
type Kind = int

const (
	KindPawn Kind = iota
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

// PieceOf composes a piece from its kind and color.
func PieceOf(kind Kind, c Color) Piece { return kind*2 + c }

// KindOf strips the color from a piece.
func KindOf(piece Piece) Kind { return piece / 2 }

// ColorOf returns the color of a piece.
func ColorOf(piece Piece) Color { return piece % 2 }

// PromotionFlag is an allias type to avoid bothersome conversion between
// int and PromotionFlag.
type PromotionFlag = int

// 00 - knight, 01 - bishop, 10 - rook, 11 - queen.
const (
	PromotionKnight PromotionFlag = iota
	PromotionBishop
	PromotionRook
	PromotionQueen
)

// PromotionKind maps a promotion flag to the kind of the placed piece.
func PromotionKind(f PromotionFlag) Kind {
	switch f {
	case PromotionKnight:
		return KindKnight
	case PromotionBishop:
		return KindBishop
	case PromotionRook:
		return KindRook
	default:
		return KindQueen
	}
}

// Color is an allias type to avoid bothersome conversion between int and Color.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

// MoveType is an allias type to avoid bothersome conversion between
// int and MoveType.
type MoveType = int

const (
	// Non-capturing, non-special move.
	MoveQuiet MoveType = iota
	// Capture of an enemy piece standing on the destination square.
	MoveCapture
	// Two-rank pawn advance from its initial rank.
	MoveDoublePush
	// Special pawn capture of the en passant target.
	MoveEnPassant
	// King & queen side castling.
	MoveCastling
	// Knight & Bishop & Rook & Queen promotions.
	MovePromotion
)

/*
CastlingRights defines the player's rights to perform castlings.
  - 0 bit: white king can O-O.
  - 1 bit: white king can O-O-O.
  - 2 bit: black king can O-O.
  - 3 bit: black king can O-O-O.
*/
type CastlingRights = int

const (
	CastlingWhiteShort CastlingRights = 1
	CastlingWhiteLong  CastlingRights = 2
	CastlingBlackShort CastlingRights = 4
	CastlingBlackLong  CastlingRights = 8
)

// CastlingVariant indexes the four castling variants.  It equals the bit
// position of the corresponding castling right.
type CastlingVariant = int

const (
	VariantWhiteShort CastlingVariant = iota
	VariantWhiteLong
	VariantBlackShort
	VariantBlackLong
)

// Result represents the possible outcomes of a chess game.
type Result int

const (
	ResultUnknown Result = iota // Default value: the game isn't finished yet.
	ResultCheckmate
	ResultStalemate
	ResultInsufficientMaterial
	ResultFiftyMove
	ResultThreefoldRepetition
	ResultResignation
	ResultDrawByAgreement
)

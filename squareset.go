package chess

// SquareSet is a thin set-of-squares view over a Bitboard, offering
// set-algebraic spellings of the same bit operations BaseBoard and the move
// generator use directly. Grounded on the teacher's bitboard.Mapping/Squares
// convenience methods, generalized into a named type with operators instead
// of ad hoc map/slice conversions.
type SquareSet Bitboard

// NewSquareSet builds a SquareSet from individual squares.
func NewSquareSet(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s |= SquareSet(sq.Bb())
	}
	return s
}

// Contains reports whether sq is a member.
func (s SquareSet) Contains(sq Square) bool { return Bitboard(s).Occupied(sq) }

// Add returns s with sq inserted.
func (s SquareSet) Add(sq Square) SquareSet { return s | SquareSet(sq.Bb()) }

// Discard returns s with sq removed.
func (s SquareSet) Discard(sq Square) SquareSet { return s &^ SquareSet(sq.Bb()) }

// Union returns the set union of s and other.
func (s SquareSet) Union(other SquareSet) SquareSet { return s | other }

// Intersection returns the set intersection of s and other.
func (s SquareSet) Intersection(other SquareSet) SquareSet { return s & other }

// Difference returns the squares in s but not in other.
func (s SquareSet) Difference(other SquareSet) SquareSet { return s &^ other }

// SymmetricDifference returns the squares in exactly one of s, other.
func (s SquareSet) SymmetricDifference(other SquareSet) SquareSet { return s ^ other }

// Len returns the number of member squares.
func (s SquareSet) Len() int { return Bitboard(s).Popcount() }

// IsEmpty reports whether the set has no members.
func (s SquareSet) IsEmpty() bool { return s == 0 }

// Squares returns the member squares in ascending order.
func (s SquareSet) Squares() []Square { return Bitboard(s).Squares() }

// Bitboard exposes the underlying mask.
func (s SquareSet) Bitboard() Bitboard { return Bitboard(s) }

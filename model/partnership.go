package model

// PairKey identifies an unordered pair of players. The lower id is always
// stored first so that (A,B) and (B,A) collapse to the same key.
type PairKey struct {
	A string
	B string
}

func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// Partnership aggregates how often, and how successfully, two players have
// been teammates. It is derived data, always reconstructible by replaying
// the game log.
type Partnership struct {
	Pair          PairKey
	TimesTogether int
	WinsTogether  int
}

func (p Partnership) WinRateTogether() float64 {
	if p.TimesTogether == 0 {
		return 0
	}
	return float64(p.WinsTogether) / float64(p.TimesTogether)
}

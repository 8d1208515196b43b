package gamedomain

import "math"

// SignedEntry is one of the other three players' point cells while a game is
// being composed. Value is the number typed in; Negative is the sign toggle
// that flips it.
type SignedEntry struct {
	Value    float64 `json:"value"`
	Negative bool    `json:"negative"`
	Present  bool    `json:"present"`
}

// Signed returns the value with the toggle applied.
func (e SignedEntry) Signed() float64 {
	if e.Negative {
		return -e.Value
	}
	return e.Value
}

// AutoBalance returns the top player's point so the table sums to zero. It is
// 0 until all three other cells are filled.
func AutoBalance(others []SignedEntry) float64 {
	if len(others) != PlayersPerGame-1 {
		return 0
	}
	sum := 0.0
	for _, e := range others {
		if !e.Present {
			return 0
		}
		sum += e.Signed()
	}
	return Round1(-sum)
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0 // no negative zero in output
	}
	return r
}

// EstimateScore derives a raw table score from a point when only points were
// entered.
func EstimateScore(point float64, base int) int {
	return int(math.Round(point*1000)) + base
}

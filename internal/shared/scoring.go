package shared

// Mode selects how scoring and turn ownership behave for a session.
type Mode string

const (
	ModeSolo      Mode = "solo"
	ModeTwoPlayer Mode = "two_player"
)

// Valid reports whether the mode is one the game knows.
func (m Mode) Valid() bool {
	return m == ModeSolo || m == ModeTwoPlayer
}

// Scores holds the per-player score buckets. Solo games only ever touch
// Player1.
type Scores struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

// CreditScore awards the points of a matched pair. Solo mode always credits
// player 1; two-player mode credits whoever holds the turn.
func CreditScore(mode Mode, activePlayer int, points int, scores Scores) Scores {
	if mode == ModeTwoPlayer && activePlayer == 2 {
		scores.Player2 += points
	} else {
		scores.Player1 += points
	}
	return scores
}

// AdvanceTurn returns the active player after a resolution. Only a mismatch
// in two-player mode hands the turn over; a successful match keeps it with
// the same player, and solo mode never switches.
func AdvanceTurn(mode Mode, activePlayer int, matched bool) int {
	if mode != ModeTwoPlayer || matched {
		return activePlayer
	}
	if activePlayer == 1 {
		return 2
	}
	return 1
}

// Package challenge implements the self-contained timed mini-games. Each one
// runs on the same tick as the world and reports a single 0..100 score.
package challenge

// Challenge is a running mini-game.
type Challenge interface {
	// Update advances the mini-game by dt seconds.
	Update(dt float64)
	// Done reports whether the score is final.
	Done() bool
	// Score returns the current 0..100 score.
	Score() int
}

func percent(n, of int) int {
	if of <= 0 {
		return 0
	}
	return n * 100 / of
}

package challenge

import "math/rand"

// Prompt is one key the player must press before its window closes.
type Prompt struct {
	Key    string
	Window float64 // seconds
}

// QuickTime shows prompts one at a time; a correct press scores a hit, a
// wrong press or an expired window scores a miss.
type QuickTime struct {
	prompts []Prompt
	current int
	elapsed float64
	hits    int

	// OnComplete fires once with the final score
	OnComplete func(score int)
}

// NewQuickTime creates a quick-time challenge over the given prompts.
func NewQuickTime(prompts []Prompt) *QuickTime {
	return &QuickTime{prompts: prompts}
}

// RandomPrompts builds n prompts from keys using rng.
func RandomPrompts(rng *rand.Rand, keys []string, n int, window float64) []Prompt {
	prompts := make([]Prompt, n)
	for i := range prompts {
		prompts[i] = Prompt{Key: keys[rng.Intn(len(keys))], Window: window}
	}
	return prompts
}

// Current returns the active prompt and the seconds left in its window.
func (q *QuickTime) Current() (Prompt, float64, bool) {
	if q.Done() {
		return Prompt{}, 0, false
	}
	p := q.prompts[q.current]
	return p, p.Window - q.elapsed, true
}

// Update expires the current prompt when its window runs out.
func (q *QuickTime) Update(dt float64) {
	if q.Done() {
		return
	}
	q.elapsed += dt
	if q.elapsed >= q.prompts[q.current].Window {
		q.advance()
	}
}

// Press answers the current prompt. It returns true on a hit.
func (q *QuickTime) Press(key string) bool {
	if q.Done() {
		return false
	}
	hit := q.prompts[q.current].Key == key
	if hit {
		q.hits++
	}
	q.advance()
	return hit
}

func (q *QuickTime) advance() {
	q.current++
	q.elapsed = 0
	if q.Done() && q.OnComplete != nil {
		q.OnComplete(q.Score())
	}
}

// Done reports whether every prompt has been answered or expired.
func (q *QuickTime) Done() bool {
	return q.current >= len(q.prompts)
}

// Score returns hits as a percentage of all prompts.
func (q *QuickTime) Score() int {
	return percent(q.hits, len(q.prompts))
}

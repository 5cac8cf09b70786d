package analytics

import (
	"math"
	"sort"
)

// Percentage returns round(100 * part / whole), or 0 when whole is 0.
func Percentage(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

// tally accumulates the metrics shared by every dimensional row. Null
// response times and complexity scores are skipped, not counted as zero.
type tally struct {
	total       int
	correct     int
	timed       int
	timeSumMs   int64
	scored      int
	scoreSum    float64
	lastAtMs    int64
	hasLastSeen bool
}

func (t *tally) add(correct bool, responseMs *int64, complexity *float64, atMs int64) {
	t.total++
	if correct {
		t.correct++
	}
	if responseMs != nil {
		t.timed++
		t.timeSumMs += *responseMs
	}
	if complexity != nil {
		t.scored++
		t.scoreSum += *complexity
	}
	if !t.hasLastSeen || atMs > t.lastAtMs {
		t.lastAtMs = atMs
		t.hasLastSeen = true
	}
}

func (t *tally) accuracy() int {
	return Percentage(t.correct, t.total)
}

func (t *tally) avgResponseMs() int {
	if t.timed == 0 {
		return 0
	}
	return int(math.Round(float64(t.timeSumMs) / float64(t.timed)))
}

func (t *tally) avgComplexity() float64 {
	if t.scored == 0 {
		return 0
	}
	return round2(t.scoreSum / float64(t.scored))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// groups is an insertion-ordered set of tallies keyed by a dimension value.
type groups struct {
	keys  []string
	byKey map[string]*tally
}

func newGroups() *groups {
	return &groups{byKey: make(map[string]*tally)}
}

func (g *groups) get(key string) *tally {
	t, ok := g.byKey[key]
	if !ok {
		t = &tally{}
		g.byKey[key] = t
		g.keys = append(g.keys, key)
	}
	return t
}

// byVolume returns the keys ordered by attempt count, most practiced
// first, ties by key.
func (g *groups) byVolume() []string {
	keys := append([]string(nil), g.keys...)
	sort.SliceStable(keys, func(i, j int) bool {
		ti, tj := g.byKey[keys[i]], g.byKey[keys[j]]
		if ti.total != tj.total {
			return ti.total > tj.total
		}
		return keys[i] < keys[j]
	})
	return keys
}

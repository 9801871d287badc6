package ibge

import (
	"sort"
	"strconv"
)

// DecadeCount is the frequency of a name over one decade of the census.
type DecadeCount struct {
	Decade int
	Count  int64
}

// Label renders the decade in display form, e.g. "1930s".
func (d DecadeCount) Label() string {
	return strconv.Itoa(d.Decade) + "s"
}

// NameSeries is the per-decade frequency curve of a single name.
type NameSeries struct {
	Name    string
	Decades []DecadeCount
}

// RankingEntry is one row of the most-frequent-names ranking.
type RankingEntry struct {
	Rank  int
	Name  string
	Count int64
}

// normalizeDecades sorts counts by decade ascending and merges duplicate
// decades by summing their counts, so callers always see a strictly
// increasing decade sequence.
func normalizeDecades(counts []DecadeCount) []DecadeCount {
	if len(counts) == 0 {
		return counts
	}

	byDecade := make(map[int]int64, len(counts))
	for _, c := range counts {
		byDecade[c.Decade] += c.Count
	}

	merged := make([]DecadeCount, 0, len(byDecade))
	for decade, count := range byDecade {
		merged = append(merged, DecadeCount{Decade: decade, Count: count})
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Decade < merged[j].Decade
	})
	return merged
}

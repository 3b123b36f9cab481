package langstats

import (
	"math"
	"sort"
)

// OtherLabel is the label of the overflow bucket appended after the top N
// languages when the distinct-language count exceeds N.
const OtherLabel = "Other"

// Entry is one row of a ranking: a language name (or [OtherLabel]) and its
// share of all counted bytes, rounded to one decimal place.
type Entry struct {
	Label   string
	Percent float64
}

// Rank converts totals into a descending percentage ranking with at most
// topN language entries. If languages remain past the cutoff they are
// collapsed into a single trailing [OtherLabel] entry whose share is
// computed from the raw byte totals of the overflow set, not from
// already-rounded values.
//
// Ties in byte count keep the order the languages were first seen during
// aggregation. A zero total (no languages, or only zero-size edges) yields
// an empty ranking; callers decide whether that is acceptable output.
// topN == 0 yields a single Other entry covering 100%.
func Rank(t Totals, topN int) []Entry {
	total := t.Sum()
	if total == 0 {
		return nil
	}
	if topN < 0 {
		topN = 0
	}

	type pair struct {
		name  string
		bytes int64
	}
	pairs := make([]pair, 0, len(t.order))
	for _, name := range t.order {
		pairs = append(pairs, pair{name: name, bytes: t.bytes[name]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].bytes > pairs[j].bytes
	})

	cut := min(topN, len(pairs))
	entries := make([]Entry, 0, cut+1)
	for _, p := range pairs[:cut] {
		entries = append(entries, Entry{Label: p.name, Percent: percent(p.bytes, total)})
	}

	if rest := pairs[cut:]; len(rest) > 0 {
		var restBytes int64
		for _, p := range rest {
			restBytes += p.bytes
		}
		entries = append(entries, Entry{Label: OtherLabel, Percent: percent(restBytes, total)})
	}
	return entries
}

// percent returns part/total as a percentage rounded to one decimal place.
func percent(part, total int64) float64 {
	return math.Round(float64(part)/float64(total)*1000) / 10
}

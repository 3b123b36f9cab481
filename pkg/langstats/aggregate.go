// Package langstats computes per-language byte statistics across a set of
// repositories and ranks them into a bounded percentage distribution.
//
// The package is the pure core of toplangs: [Aggregate] folds raw
// per-repository language breakdowns into cumulative byte totals, and
// [Rank] turns those totals into a descending, percentage-normalized
// ranking capped at N entries plus an overflow bucket. Neither function
// performs I/O or carries state between calls.
package langstats

// LanguageEdge is one language's byte contribution within a repository.
type LanguageEdge struct {
	Name string
	Size int64
}

// RepoLanguages is a single repository's raw language breakdown as reported
// by the GitHub API.
type RepoLanguages struct {
	Name       string
	IsArchived bool
	Edges      []LanguageEdge
}

// Totals holds cumulative byte counts per language across all included
// repositories. Language names are case-sensitive keys. The order in which
// languages were first seen is preserved so that ranking ties can be broken
// deterministically. A Totals is immutable once returned by [Aggregate].
type Totals struct {
	bytes map[string]int64
	order []string
}

// Aggregate folds repository language breakdowns into per-language byte
// totals. Repositories flagged archived contribute nothing. Duplicate
// language names within a single record are summed. The byte totals are
// invariant under reordering of records or of edges within a record.
func Aggregate(repos []RepoLanguages) Totals {
	t := Totals{bytes: make(map[string]int64)}
	for _, repo := range repos {
		if repo.IsArchived {
			continue
		}
		for _, edge := range repo.Edges {
			if edge.Size == 0 {
				// Zero-byte edges would only create spurious keys.
				continue
			}
			if _, seen := t.bytes[edge.Name]; !seen {
				t.order = append(t.order, edge.Name)
			}
			t.bytes[edge.Name] += edge.Size
		}
	}
	return t
}

// Bytes returns the cumulative byte count for a language, or 0 if the
// language was never seen.
func (t Totals) Bytes(name string) int64 {
	return t.bytes[name]
}

// Languages returns the language names in first-seen order.
func (t Totals) Languages() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Sum returns the total byte count across all languages.
func (t Totals) Sum() int64 {
	var sum int64
	for _, b := range t.bytes {
		sum += b
	}
	return sum
}

// Len returns the number of distinct languages.
func (t Totals) Len() int {
	return len(t.order)
}

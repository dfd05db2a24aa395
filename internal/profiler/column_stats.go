package profiler

import (
	"sort"
	"strings"
)

// ColumnStats accumulates the running profile of a single column: how many
// values were seen, how many were empty, the frequency of each distinct
// non-empty value, and a tally of inferred types.
type ColumnStats struct {
	Name string

	totalCount int
	emptyCount int
	frequency  map[string]int
	firstSeen  map[string]int
	typeTally  map[DataType]int
	seq        int
}

// ValueCount is one entry of a column's frequency ranking.
type ValueCount struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

func NewColumnStats(name string) *ColumnStats {
	return &ColumnStats{
		Name:      name,
		frequency: make(map[string]int),
		firstSeen: make(map[string]int),
		typeTally: make(map[DataType]int),
	}
}

// Observe folds one raw cell value into the column's statistics. The value is
// trimmed once here; everything downstream sees the trimmed form. Empty values
// only bump the empty counter and never reach the frequency table or the type
// tally.
func (s *ColumnStats) Observe(raw string) {
	value := strings.TrimSpace(raw)
	s.totalCount++

	if value == "" {
		s.emptyCount++
		return
	}

	if _, ok := s.frequency[value]; !ok {
		s.firstSeen[value] = s.seq
	}
	s.seq++
	s.frequency[value]++
	s.typeTally[Infer(value)]++
}

func (s *ColumnStats) TotalCount() int { return s.totalCount }

func (s *ColumnStats) EmptyCount() int { return s.emptyCount }

func (s *ColumnStats) NonEmptyCount() int { return s.totalCount - s.emptyCount }

func (s *ColumnStats) DistinctCount() int { return len(s.frequency) }

// PredominantType returns the most frequently inferred type among the
// column's non-empty values. Ties resolve to the first type reaching the
// maximum in the order integer, float, text. The second return is false when
// the column holds no non-empty values.
func (s *ColumnStats) PredominantType() (DataType, bool) {
	if s.NonEmptyCount() == 0 {
		return TypeEmpty, false
	}

	best := TypeText
	bestCount := -1
	for _, t := range inferenceOrder {
		if n := s.typeTally[t]; n > bestCount {
			best = t
			bestCount = n
		}
	}
	return best, true
}

// TopN returns the n most frequent distinct values, ranked by descending
// count and then by ascending first-occurrence order, so the ranking is
// reproducible across runs regardless of map iteration order. Each entry
// carries its share of the column's non-empty values as a percentage.
func (s *ColumnStats) TopN(n int) []ValueCount {
	nonEmpty := s.NonEmptyCount()
	if n <= 0 || nonEmpty == 0 {
		return nil
	}

	ranked := make([]ValueCount, 0, len(s.frequency))
	for value, count := range s.frequency {
		ranked = append(ranked, ValueCount{
			Value:   value,
			Count:   count,
			Percent: float64(count) / float64(nonEmpty) * 100,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return s.firstSeen[ranked[i].Value] < s.firstSeen[ranked[j].Value]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

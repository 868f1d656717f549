package domain

// Record is one parsed dataset row, keyed by column name. Cell values are kept
// as raw strings; a missing cell is either an absent key or one of the missing
// markers recognized by the profiler.
type Record map[string]string

// ColumnProfile holds the per-column statistics consumed by the detectors.
type ColumnProfile struct {
	Name         string
	TotalRows    int
	MissingCount int
	// Values are the non-missing raw cell values, in row order.
	Values []string
	// Numbers is the subset of Values that parses as a finite float.
	// Parse failures are excluded, not counted as missing.
	Numbers []float64
}

// DistinctValues returns the number of distinct non-missing values.
func (p ColumnProfile) DistinctValues() int {
	seen := make(map[string]struct{}, len(p.Values))
	for _, v := range p.Values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

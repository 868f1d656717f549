package profile

import (
	"math"
	"strconv"

	"github.com/de-tools/data-probe/pkg/models/domain"
)

// missingMarkers are cell values treated as missing in addition to absent
// keys and the empty string. Upstream data frequently carries serialized
// null/undefined literals.
var missingMarkers = map[string]struct{}{
	"":          {},
	"null":      {},
	"undefined": {},
}

// Column computes the statistics the detectors need for one column. Rows whose
// key set differs from the dataset's columns are tolerated: an absent key
// simply counts as a missing cell.
func Column(records []domain.Record, name string) domain.ColumnProfile {
	p := domain.ColumnProfile{
		Name:      name,
		TotalRows: len(records),
	}

	for _, rec := range records {
		v, ok := rec[name]
		if !ok || isMissing(v) {
			p.MissingCount++
			continue
		}
		p.Values = append(p.Values, v)
		if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			p.Numbers = append(p.Numbers, f)
		}
	}
	return p
}

func isMissing(v string) bool {
	_, ok := missingMarkers[v]
	return ok
}

package assess

import "sort"

// BreakdownResult partitions the scoring terms into what helped and what
// hurt. Summing every impact plus the 5.0 baseline and clamping reproduces
// the viability score before rounding
type BreakdownResult struct {
	Helping []Factor // impact >= 0, sorted descending
	Hurting []Factor // impact < 0, sorted ascending, worst first
}

// Breakdown re-derives the viability terms as inspectable factors. It runs
// the same factor table as ScoreViability, so the two cannot disagree
func Breakdown(in Input, protectedMode bool) BreakdownResult {
	var out BreakdownResult
	for _, f := range deriveFactors(in, protectedMode) {
		if f.Impact < 0 {
			out.Hurting = append(out.Hurting, f)
		} else {
			// the zero-impact Has DRI row lands at the tail of helping
			out.Helping = append(out.Helping, f)
		}
	}
	sort.SliceStable(out.Helping, func(i, j int) bool {
		return out.Helping[i].Impact > out.Helping[j].Impact
	})
	sort.SliceStable(out.Hurting, func(i, j int) bool {
		return out.Hurting[i].Impact < out.Hurting[j].Impact
	})
	return out
}

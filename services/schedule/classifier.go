package schedule

import "questforge/models"

// Classify categorizes how the candidate interval overlaps an existing one.
// The candidate is always the first argument and is the reference for the
// directional kinds: OverlapOverlapsEnd means the candidate starts first and
// its tail bleeds into the existing item's head, OverlapOverlapsStart the
// reverse. Returns ok=false when the intervals do not overlap at all.
//
// Several conditions can hold at once, so the precedence order below is part
// of the contract: exact match, then shared start, shared end, containment
// either way, then the directional partial overlaps.
func Classify(candidate, existing TimeInterval) (models.OverlapKind, bool) {
	if !candidate.Overlaps(existing) {
		return "", false
	}

	switch {
	case candidate.Start == existing.Start && candidate.End == existing.End:
		return models.OverlapExactMatch, true
	case candidate.Start == existing.Start:
		return models.OverlapSameStart, true
	case candidate.End == existing.End:
		return models.OverlapSameEnd, true
	case candidate.Contains(existing):
		return models.OverlapContains, true
	case existing.Contains(candidate):
		return models.OverlapContained, true
	case candidate.Start < existing.Start && candidate.End > existing.Start:
		return models.OverlapOverlapsEnd, true
	case existing.Start < candidate.Start && existing.End > candidate.Start:
		return models.OverlapOverlapsStart, true
	}
	// Unreachable for any true overlap; defensive default only.
	return models.OverlapPartial, true
}

// OverlapMinutes returns the exact length of the shared window between two
// intervals, 0 when they do not overlap. Symmetric in its arguments.
func OverlapMinutes(a, b TimeInterval) int {
	low := a.Start
	if b.Start > low {
		low = b.Start
	}
	high := a.End
	if b.End < high {
		high = b.End
	}
	if high <= low {
		return 0
	}
	return high - low
}

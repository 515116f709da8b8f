package schedule

import "questforge/models"

// Detect runs the candidate interval against a user-day snapshot of scheduled
// items and produces the conflict portion of a ConflictReport (suggestions are
// filled in by the engine when conflicts exist).
//
// Items whose id equals excludeID are dropped first, so re-checking a quest
// being moved never conflicts with itself. Items with missing or non-positive
// time data are skipped silently: the surrounding system may hold legacy or
// partially filled records, and those must never crash a conflict check.
// Iteration order is preserved from dayItems; no sorting is imposed.
func Detect(candidate TimeInterval, dayItems []models.ScheduledItem, excludeID string) models.ConflictReport {
	report := models.ConflictReport{
		Conflicts:    []models.ConflictEntry{},
		StackedItems: []models.ScheduledItem{},
		Suggestions:  []models.SuggestedSlot{},
	}

	for _, item := range dayItems {
		if excludeID != "" && item.ID == excludeID {
			continue
		}
		itemInterval, err := NewInterval(item.StartMinute, item.DurationMinutes)
		if err != nil {
			// Not yet schedulable; never reported as a conflict.
			continue
		}

		// Stacking is evaluated directly off start-time equality, independent
		// of the overlap classification.
		if item.StartMinute == candidate.Start {
			report.StackedItems = append(report.StackedItems, item)
		}

		kind, ok := Classify(candidate, itemInterval)
		if !ok {
			continue
		}
		report.Conflicts = append(report.Conflicts, models.ConflictEntry{
			Item:           item,
			Kind:           kind,
			OverlapMinutes: OverlapMinutes(candidate, itemInterval),
		})
	}

	report.HasConflicts = len(report.Conflicts) > 0
	report.HasStackedItems = len(report.StackedItems) > 0
	report.TotalConflicts = len(report.Conflicts)
	for _, c := range report.Conflicts {
		if c.OverlapMinutes > report.WorstOverlapMinutes {
			report.WorstOverlapMinutes = c.OverlapMinutes
		}
	}
	return report
}

// ItemsAtSlot returns every item whose start minute exactly equals the given
// one. A pure equality filter used to render and resolve stacking.
func ItemsAtSlot(dayItems []models.ScheduledItem, startMinute int) []models.ScheduledItem {
	matches := []models.ScheduledItem{}
	for _, item := range dayItems {
		if item.DurationMinutes <= 0 {
			continue
		}
		if item.StartMinute == startMinute {
			matches = append(matches, item)
		}
	}
	return matches
}

package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questforge/models"
)

func item(id string, startMinute, duration int) models.ScheduledItem {
	return models.ScheduledItem{
		ID:              id,
		Title:           "quest " + id,
		StartMinute:     startMinute,
		DurationMinutes: duration,
		Difficulty:      "medium",
	}
}

func TestDetectExactMatchIsStacked(t *testing.T) {
	candidate := iv(540, 60) // 09:00+60
	items := []models.ScheduledItem{item("a", 540, 60)}

	report := Detect(candidate, items, "")

	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, models.OverlapExactMatch, report.Conflicts[0].Kind)
	assert.Equal(t, 60, report.Conflicts[0].OverlapMinutes)
	assert.True(t, report.HasConflicts)
	assert.True(t, report.HasStackedItems)
	require.Len(t, report.StackedItems, 1)
	assert.Equal(t, "a", report.StackedItems[0].ID)
	assert.Equal(t, 1, report.TotalConflicts)
	assert.Equal(t, 60, report.WorstOverlapMinutes)
}

func TestDetectPartialOverlap(t *testing.T) {
	// Existing 09:00+60, candidate 09:30+60: the existing item starts first
	// and bleeds into the candidate's head.
	report := Detect(iv(570, 60), []models.ScheduledItem{item("a", 540, 60)}, "")

	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, models.OverlapOverlapsStart, report.Conflicts[0].Kind)
	assert.Equal(t, 30, report.Conflicts[0].OverlapMinutes)
	assert.False(t, report.HasStackedItems)
}

func TestDetectCandidateContainsExisting(t *testing.T) {
	// Existing 09:00+60, candidate 08:30+120.
	report := Detect(iv(510, 120), []models.ScheduledItem{item("a", 540, 60)}, "")

	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, models.OverlapContains, report.Conflicts[0].Kind)
	assert.Equal(t, 60, report.Conflicts[0].OverlapMinutes)
}

func TestDetectMultipleConflicts(t *testing.T) {
	// Existing 12:30+90 and 19:00+120, candidate 12:00+480 swallows both.
	items := []models.ScheduledItem{
		item("a", 750, 90),
		item("b", 1140, 120),
	}
	report := Detect(iv(720, 480), items, "")

	assert.Equal(t, 2, report.TotalConflicts)
	require.Len(t, report.Conflicts, 2)
	// Iteration order is preserved from the input.
	assert.Equal(t, "a", report.Conflicts[0].Item.ID)
	assert.Equal(t, "b", report.Conflicts[1].Item.ID)
	assert.Equal(t, 90, report.WorstOverlapMinutes)
}

func TestDetectExcludeID(t *testing.T) {
	items := []models.ScheduledItem{item("self", 540, 60)}

	report := Detect(iv(540, 60), items, "self")

	assert.False(t, report.HasConflicts)
	assert.False(t, report.HasStackedItems)
	assert.Empty(t, report.Conflicts)
	assert.Empty(t, report.StackedItems)
	assert.Equal(t, 0, report.WorstOverlapMinutes)
}

func TestDetectSkipsMalformedItems(t *testing.T) {
	items := []models.ScheduledItem{
		item("bad-duration", 540, 0),
		item("negative", 540, -15),
		{ID: "bad-start", StartMinute: -5, DurationMinutes: 30},
		item("good", 570, 60),
	}

	report := Detect(iv(540, 60), items, "")

	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, "good", report.Conflicts[0].Item.ID)
	// Malformed items never count as stacked either, even at the same start.
	assert.Empty(t, report.StackedItems)
}

func TestDetectStackingIndependentOfDuration(t *testing.T) {
	// Same start, different duration: stacked and a same_start conflict.
	report := Detect(iv(540, 30), []models.ScheduledItem{item("a", 540, 120)}, "")

	assert.True(t, report.HasStackedItems)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, models.OverlapSameStart, report.Conflicts[0].Kind)
}

func TestDetectEmptyDay(t *testing.T) {
	report := Detect(iv(540, 60), nil, "")

	assert.False(t, report.HasConflicts)
	assert.False(t, report.HasStackedItems)
	assert.Equal(t, 0, report.TotalConflicts)
	assert.Equal(t, 0, report.WorstOverlapMinutes)
	assert.NotNil(t, report.Conflicts)
	assert.NotNil(t, report.StackedItems)
}

func TestDetectTouchingIsNoConflict(t *testing.T) {
	items := []models.ScheduledItem{
		item("before", 480, 60), // ends 09:00
		item("after", 600, 60),  // starts 10:00
	}
	report := Detect(iv(540, 60), items, "")
	assert.False(t, report.HasConflicts)
}

func TestItemsAtSlot(t *testing.T) {
	items := []models.ScheduledItem{
		item("a", 540, 60),
		item("b", 540, 30),
		item("c", 600, 60),
		item("zero-duration", 540, 0),
	}

	got := ItemsAtSlot(items, 540)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	assert.Empty(t, ItemsAtSlot(items, 700))
}

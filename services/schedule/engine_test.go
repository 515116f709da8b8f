package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questforge/models"
)

// fakeSource serves a canned day snapshot and records whether it was read.
type fakeSource struct {
	items  []models.ScheduledItem
	err    error
	called bool
}

func (f *fakeSource) GetDayItems(_ context.Context, _, _ string) ([]models.ScheduledItem, error) {
	f.called = true
	return f.items, f.err
}

func newTestEngine(items ...models.ScheduledItem) (*DefaultEngine, *fakeSource) {
	src := &fakeSource{items: items}
	return NewDefaultEngine(src, DefaultSuggestConfig()), src
}

func TestCheckScheduleNoConflicts(t *testing.T) {
	engine, _ := newTestEngine(item("a", 600, 60))

	report, err := engine.CheckSchedule(context.Background(), models.ScheduleCheckRequest{
		UserID:          "u1",
		Date:            "2026-03-14",
		StartTime:       "09:00",
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.False(t, report.HasConflicts)
	// Suggestions are only filled when conflicts exist.
	assert.Empty(t, report.Suggestions)
}

func TestCheckScheduleWithConflictsFillsSuggestions(t *testing.T) {
	engine, _ := newTestEngine(item("a", 540, 60))

	report, err := engine.CheckSchedule(context.Background(), models.ScheduleCheckRequest{
		UserID:          "u1",
		Date:            "2026-03-14",
		StartTime:       "09:30",
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	require.True(t, report.HasConflicts)
	assert.Equal(t, models.OverlapOverlapsStart, report.Conflicts[0].Kind)
	assert.Equal(t, 30, report.Conflicts[0].OverlapMinutes)
	require.NotEmpty(t, report.Suggestions)
	assert.Equal(t, "06:00", report.Suggestions[0].StartTime)
	// The occupied slot never shows up as a suggestion.
	for _, s := range report.Suggestions {
		assert.NotEqual(t, 540, s.StartMinute)
	}
}

func TestCheckScheduleExcludeSelf(t *testing.T) {
	engine, _ := newTestEngine(item("moving", 540, 60))

	report, err := engine.CheckSchedule(context.Background(), models.ScheduleCheckRequest{
		UserID:          "u1",
		Date:            "2026-03-14",
		StartTime:       "09:00",
		DurationMinutes: 60,
		ExcludeQuestID:  "moving",
	})
	require.NoError(t, err)
	assert.False(t, report.HasConflicts)
}

func TestCheckScheduleAcceptsUnpaddedTime(t *testing.T) {
	engine, _ := newTestEngine(item("a", 545, 30))

	report, err := engine.CheckSchedule(context.Background(), models.ScheduleCheckRequest{
		UserID:          "u1",
		Date:            "2026-03-14",
		StartTime:       "9:5",
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	require.True(t, report.HasConflicts)
	assert.Equal(t, models.OverlapExactMatch, report.Conflicts[0].Kind)
}

func TestCheckScheduleInvalidCandidate(t *testing.T) {
	tests := []struct {
		name string
		req  models.ScheduleCheckRequest
	}{
		{name: "unparsable time", req: models.ScheduleCheckRequest{UserID: "u1", Date: "2026-03-14", StartTime: "noon", DurationMinutes: 60}},
		{name: "non-positive duration", req: models.ScheduleCheckRequest{UserID: "u1", Date: "2026-03-14", StartTime: "09:00", DurationMinutes: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, src := newTestEngine()
			_, err := engine.CheckSchedule(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))
			// Validation happens before any computation proceeds.
			assert.False(t, src.called)
		})
	}
}

func TestCheckScheduleSourceError(t *testing.T) {
	src := &fakeSource{err: errors.New("store unavailable")}
	engine := NewDefaultEngine(src, DefaultSuggestConfig())

	_, err := engine.CheckSchedule(context.Background(), models.ScheduleCheckRequest{
		UserID:          "u1",
		Date:            "2026-03-14",
		StartTime:       "09:00",
		DurationMinutes: 60,
	})
	require.Error(t, err)
	assert.False(t, IsInvalidInput(err))
}

func TestCheckScheduleSuggestionsExcludeMovedQuest(t *testing.T) {
	// The quest being moved frees its current slot; only the other item
	// blocks suggestions.
	engine, _ := newTestEngine(
		item("moving", 360, 600), // 06:00-16:00, the quest being moved
		item("other", 540, 60),   // 09:00-10:00
	)

	report, err := engine.CheckSchedule(context.Background(), models.ScheduleCheckRequest{
		UserID:          "u1",
		Date:            "2026-03-14",
		StartTime:       "09:30",
		DurationMinutes: 60,
		ExcludeQuestID:  "moving",
	})
	require.NoError(t, err)
	require.True(t, report.HasConflicts)
	require.NotEmpty(t, report.Suggestions)
	assert.Equal(t, "06:00", report.Suggestions[0].StartTime)
}

func TestEngineFreeSlots(t *testing.T) {
	engine, _ := newTestEngine(item("a", 360, 120))

	slots, err := engine.FreeSlots(context.Background(), "u1", "2026-03-14", 60)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "08:00", slots[0].StartTime)

	_, err = engine.FreeSlots(context.Background(), "u1", "2026-03-14", 0)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestEngineItemsAtSlot(t *testing.T) {
	engine, _ := newTestEngine(
		item("a", 540, 60),
		item("b", 540, 30),
		item("c", 600, 60),
	)

	items, err := engine.ItemsAtSlot(context.Background(), "u1", "2026-03-14", "09:00")
	require.NoError(t, err)
	require.Len(t, items, 2)

	_, err = engine.ItemsAtSlot(context.Background(), "u1", "2026-03-14", "bogus")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestEmptyDay(t *testing.T) {
	slots := Suggest(nil, 60, DefaultSuggestConfig())

	require.Len(t, slots, 5)
	wantTimes := []string{"06:00", "06:30", "07:00", "07:30", "08:00"}
	wantMinutes := []int{360, 390, 420, 450, 480}
	for i, slot := range slots {
		assert.Equal(t, wantTimes[i], slot.StartTime)
		assert.Equal(t, wantMinutes[i], slot.StartMinute)
		assert.True(t, slot.Available)
		assert.Equal(t, SuggestReason, slot.Reason)
	}
}

func TestSuggestSkipsOccupied(t *testing.T) {
	// 06:00-08:00 busy; the first free grid start is 08:00.
	occupied := []TimeInterval{iv(360, 120)}

	slots := Suggest(occupied, 60, DefaultSuggestConfig())

	require.Len(t, slots, 5)
	assert.Equal(t, "08:00", slots[0].StartTime)
	assert.Equal(t, "08:30", slots[1].StartTime)
}

func TestSuggestEverySlotIsConflictFree(t *testing.T) {
	occupied := []TimeInterval{
		iv(420, 45),  // 07:00-07:45
		iv(600, 90),  // 10:00-11:30
		iv(780, 240), // 13:00-17:00
	}
	cfg := DefaultSuggestConfig()
	cfg.MaxSuggestions = 20

	slots := Suggest(occupied, 60, cfg)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		// Grid alignment.
		assert.Zero(t, (slot.StartMinute-cfg.WindowStart)%cfg.StepMinutes)
		// Re-testing an accepted slot against the occupied set finds nothing.
		proposed := TimeInterval{Start: slot.StartMinute, End: slot.StartMinute + 60}
		for _, busy := range occupied {
			assert.False(t, proposed.Overlaps(busy),
				"slot %s overlaps busy interval [%d,%d)", slot.StartTime, busy.Start, busy.End)
		}
	}
}

func TestSuggestDurationExceedsWindow(t *testing.T) {
	cfg := DefaultSuggestConfig()
	slots := Suggest(nil, cfg.WindowEnd-cfg.WindowStart+1, cfg)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestSuggestDurationExactlyFillsWindow(t *testing.T) {
	cfg := DefaultSuggestConfig()
	slots := Suggest(nil, cfg.WindowEnd-cfg.WindowStart, cfg)
	require.Len(t, slots, 1)
	assert.Equal(t, cfg.WindowStart, slots[0].StartMinute)
}

func TestSuggestFullyBookedDay(t *testing.T) {
	occupied := []TimeInterval{iv(0, MinutesPerDay)}
	slots := Suggest(occupied, 30, DefaultSuggestConfig())
	assert.Empty(t, slots)
}

func TestSuggestRespectsMaxSuggestions(t *testing.T) {
	cfg := DefaultSuggestConfig()
	cfg.MaxSuggestions = 2

	slots := Suggest(nil, 30, cfg)
	assert.Len(t, slots, 2)
}

func TestSuggestCustomWindow(t *testing.T) {
	cfg := SuggestConfig{
		WindowStart:    540, // 09:00
		WindowEnd:      720, // 12:00
		StepMinutes:    60,
		MaxSuggestions: 5,
	}

	slots := Suggest(nil, 60, cfg)
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[1].StartTime)
	assert.Equal(t, "11:00", slots[2].StartTime)
}

func TestSuggestDegenerateConfig(t *testing.T) {
	assert.Empty(t, Suggest(nil, 0, DefaultSuggestConfig()))
	assert.Empty(t, Suggest(nil, 30, SuggestConfig{WindowStart: 360, WindowEnd: 1380, StepMinutes: 0, MaxSuggestions: 5}))
	assert.Empty(t, Suggest(nil, 30, SuggestConfig{WindowStart: 360, WindowEnd: 1380, StepMinutes: 30, MaxSuggestions: 0}))
}

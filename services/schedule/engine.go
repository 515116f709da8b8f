package schedule

import (
	"context"

	"questforge/models"
)

// DayItemSource is the narrow read seam the host must implement: a snapshot of
// one user's scheduled items for one calendar day, already excluding completed
// quests and quests missing time data. The engine treats the returned slice as
// immutable for the duration of one call.
//
// The snapshot is a point-in-time read; two concurrent callers can both see a
// conflict-free day and both write overlapping quests afterwards. Serializing
// read-detect-write per user is the host's job (services/quest holds a
// per-user mutex, and the quest repository does a version check on write).
type DayItemSource interface {
	GetDayItems(ctx context.Context, userID, date string) ([]models.ScheduledItem, error)
}

// Engine defines the scheduling conflict detection and slot suggestion
// operations.
type Engine interface {
	// CheckSchedule runs the full conflict check for a candidate time block
	// and fills in alternative slots when conflicts exist.
	CheckSchedule(ctx context.Context, req models.ScheduleCheckRequest) (*models.ConflictReport, error)
	// FreeSlots proposes open slots for a desired duration without needing a
	// conflicting candidate.
	FreeSlots(ctx context.Context, userID, date string, durationMinutes int) ([]models.SuggestedSlot, error)
	// ItemsAtSlot returns the items stacked at an exact start time.
	ItemsAtSlot(ctx context.Context, userID, date, startTime string) ([]models.ScheduledItem, error)
}

// DefaultEngine is the production implementation. Given the same snapshot and
// candidate it always returns the same report; it performs no I/O beyond the
// DayItemSource read and holds no state between calls.
type DefaultEngine struct {
	Source  DayItemSource
	Suggest SuggestConfig
}

// NewDefaultEngine constructs an engine over the given source with the given
// suggestion window.
func NewDefaultEngine(source DayItemSource, cfg SuggestConfig) *DefaultEngine {
	return &DefaultEngine{Source: source, Suggest: cfg}
}

func (e *DefaultEngine) CheckSchedule(ctx context.Context, req models.ScheduleCheckRequest) (*models.ConflictReport, error) {
	// Candidate validation happens before any computation; a malformed
	// candidate is a caller contract violation, not a data issue.
	candidate, err := NewIntervalFromClock(req.StartTime, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	dayItems, err := e.Source.GetDayItems(ctx, req.UserID, req.Date)
	if err != nil {
		return nil, err
	}

	report := Detect(candidate, dayItems, req.ExcludeQuestID)
	if report.HasConflicts {
		report.Suggestions = Suggest(e.occupied(dayItems, req.ExcludeQuestID), req.DurationMinutes, e.Suggest)
	}
	return &report, nil
}

func (e *DefaultEngine) FreeSlots(ctx context.Context, userID, date string, durationMinutes int) ([]models.SuggestedSlot, error) {
	if durationMinutes <= 0 {
		return nil, NewInvalidInputError("duration must be positive")
	}
	dayItems, err := e.Source.GetDayItems(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return Suggest(e.occupied(dayItems, ""), durationMinutes, e.Suggest), nil
}

func (e *DefaultEngine) ItemsAtSlot(ctx context.Context, userID, date, startTime string) ([]models.ScheduledItem, error) {
	startMinute, err := ParseClock(startTime)
	if err != nil {
		return nil, err
	}
	dayItems, err := e.Source.GetDayItems(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return ItemsAtSlot(dayItems, startMinute), nil
}

// occupied converts the usable day items to intervals, honoring excludeID so a
// quest being moved frees up its current slot for suggestions.
func (e *DefaultEngine) occupied(dayItems []models.ScheduledItem, excludeID string) []TimeInterval {
	var busy []TimeInterval
	for _, item := range dayItems {
		if excludeID != "" && item.ID == excludeID {
			continue
		}
		iv, err := NewInterval(item.StartMinute, item.DurationMinutes)
		if err != nil {
			continue
		}
		busy = append(busy, iv)
	}
	return busy
}

package schedule

import "questforge/models"

// SuggestReason is attached to every accepted slot.
const SuggestReason = "No conflicts detected"

// SuggestConfig holds the scan parameters for slot suggestion. It is passed
// explicitly per call so hosts with different scheduling windows can share the
// engine without interference.
type SuggestConfig struct {
	WindowStart    int // minutes from midnight, inclusive
	WindowEnd      int // minutes from midnight, exclusive
	StepMinutes    int
	MaxSuggestions int
}

// DefaultSuggestConfig returns the stock 06:00-23:00 window with a 30-minute
// grid and at most 5 suggestions.
func DefaultSuggestConfig() SuggestConfig {
	return SuggestConfig{
		WindowStart:    360,
		WindowEnd:      1380,
		StepMinutes:    30,
		MaxSuggestions: 5,
	}
}

// Suggest scans the day window on a fixed grid and returns the earliest free
// slots that fit desiredDuration against the occupied intervals, first-fit,
// capped at cfg.MaxSuggestions. A duration that exceeds the whole window
// yields an empty list, never an error.
//
// The scan is intentionally a linear first-fit over a fixed grid: a personal
// day holds at most a handful of items, and suggestions should align to the
// same granularity users schedule in.
func Suggest(occupied []TimeInterval, desiredDuration int, cfg SuggestConfig) []models.SuggestedSlot {
	suggestions := []models.SuggestedSlot{}
	if desiredDuration <= 0 || cfg.StepMinutes <= 0 || cfg.MaxSuggestions <= 0 {
		return suggestions
	}

	for start := cfg.WindowStart; start+desiredDuration <= cfg.WindowEnd; start += cfg.StepMinutes {
		slot := TimeInterval{Start: start, End: start + desiredDuration}
		free := true
		for _, busy := range occupied {
			if slot.Overlaps(busy) {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		suggestions = append(suggestions, models.SuggestedSlot{
			StartTime:   FormatClock(start),
			StartMinute: start,
			Available:   true,
			Reason:      SuggestReason,
		})
		if len(suggestions) >= cfg.MaxSuggestions {
			break
		}
	}
	return suggestions
}

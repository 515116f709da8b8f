package models

// OverlapKind classifies how a candidate time block overlaps an existing one.
// The candidate is always the reference: "overlaps_end" means the candidate
// starts first and its tail bleeds into the existing item, "overlaps_start"
// means the existing item starts first and bleeds into the candidate's head.
type OverlapKind string

const (
	OverlapExactMatch    OverlapKind = "exact_match"
	OverlapSameStart     OverlapKind = "same_start"
	OverlapSameEnd       OverlapKind = "same_end"
	OverlapContains      OverlapKind = "contains"
	OverlapContained     OverlapKind = "contained"
	OverlapOverlapsEnd   OverlapKind = "overlaps_end"
	OverlapOverlapsStart OverlapKind = "overlaps_start"
	OverlapPartial       OverlapKind = "partial"
)

// ScheduledItem is a read-only projection of a quest's time block, the only
// shape the scheduling engine ever sees.
type ScheduledItem struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	StartMinute     int    `json:"startMinute"`
	DurationMinutes int    `json:"durationMinutes"`
	Difficulty      string `json:"difficulty"`
}

// ConflictEntry pairs a conflicting item with how and how much it overlaps
// the candidate.
type ConflictEntry struct {
	Item           ScheduledItem `json:"item"`
	Kind           OverlapKind   `json:"kind"`
	OverlapMinutes int           `json:"overlapMinutes"`
}

// SuggestedSlot is one free slot proposed as an alternative start time.
type SuggestedSlot struct {
	StartTime   string `json:"startTime"` // "HH:MM"
	StartMinute int    `json:"startMinute"`
	Available   bool   `json:"available"`
	Reason      string `json:"reason"`
}

// ConflictReport is the engine's only outward-facing artifact.
type ConflictReport struct {
	HasConflicts        bool            `json:"hasConflicts"`
	HasStackedItems     bool            `json:"hasStackedItems"`
	Conflicts           []ConflictEntry `json:"conflicts"`
	StackedItems        []ScheduledItem `json:"stackedItems"`
	Suggestions         []SuggestedSlot `json:"suggestions"`
	TotalConflicts      int             `json:"totalConflicts"`
	WorstOverlapMinutes int             `json:"worstOverlapMinutes"`
}

// ScheduleCheckRequest is the host-facing input for a conflict check.
type ScheduleCheckRequest struct {
	UserID          string `json:"userId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"startTime" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	ExcludeQuestID  string `json:"excludeQuestId,omitempty"`
}

// CheckSession is a short-lived cached conflict check, kept so a follow-up
// confirmation can reference the exact report the client saw.
type CheckSession struct {
	Request ScheduleCheckRequest `json:"request"`
	Report  ConflictReport       `json:"report"`
}

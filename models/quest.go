package models

import "time"

// Quest represents a user's scheduled (or unscheduled) quest for a calendar day.
// StartTime and DurationMinutes are optional: a quest without them sits in the
// backlog and never participates in conflict checks.
type Quest struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Date            string    `bson:"date" json:"date"`                                           // e.g., "2026-03-14"
	StartTime       *string   `bson:"startTime,omitempty" json:"startTime,omitempty"`             // "HH:MM", 24-hour
	DurationMinutes *int      `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"` // positive minutes
	Difficulty      string    `bson:"difficulty" json:"difficulty"` // "easy", "medium", "hard", "epic"
	Completed       bool      `bson:"completed" json:"completed"`
	Version         int       `bson:"version" json:"version"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Schedulable reports whether the quest carries complete, usable time data.
func (q Quest) Schedulable() bool {
	return q.StartTime != nil && *q.StartTime != "" && q.DurationMinutes != nil && *q.DurationMinutes > 0
}

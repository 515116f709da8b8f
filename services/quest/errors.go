package quest

import "errors"

// ErrScheduleConflict is returned when a create or reschedule would overlap
// existing quests and the caller did not force the write. The accompanying
// ConflictReport carries the details and suggested alternatives.
var ErrScheduleConflict = errors.New("quest schedule conflicts with existing quests")

// ErrQuestNotSchedulable is returned when a reschedule targets a quest with a
// malformed time payload.
var ErrQuestNotSchedulable = errors.New("quest is missing a valid start time or duration")

package quest

import (
	"context"

	"questforge/models"
)

// QuestService is the quest scheduling workflow: CRUD over quests plus the
// conflict-checked create/reschedule path.
type QuestService interface {
	// CreateQuest persists a new quest. A scheduled quest is conflict-checked
	// first; when conflicts exist and force is false, the quest is not
	// persisted and the report is returned with ErrScheduleConflict.
	CreateQuest(ctx context.Context, q *models.Quest, force bool) (*models.ConflictReport, error)
	// RescheduleQuest moves an existing quest to a new time block under the
	// same conflict policy, excluding the quest itself from the check.
	RescheduleQuest(ctx context.Context, userID, questID, startTime string, durationMinutes int, force bool) (*models.ConflictReport, error)
	GetQuest(ctx context.Context, userID, questID string) (*models.Quest, error)
	ListDayQuests(ctx context.Context, userID, date string) ([]models.Quest, error)
	DeleteQuest(ctx context.Context, userID, questID string) error
	CompleteQuest(ctx context.Context, userID, questID string, completed bool) error
}

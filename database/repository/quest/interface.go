// File: database/repository/quest/interface.go
package questRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"questforge/database"
	"questforge/models"
)

// ErrVersionConflict is returned when a compare-and-swap write loses to a
// concurrent update of the same quest.
var ErrVersionConflict = errors.New("quest was modified concurrently")

type QuestRepository interface {
	EnsureIndexes() error
	Create(ctx context.Context, quest *models.Quest) error
	GetByID(ctx context.Context, userID, questID string) (*models.Quest, error)
	GetByUserAndDate(ctx context.Context, userID, date string) ([]models.Quest, error)
	Update(ctx context.Context, quest *models.Quest) error
	DeleteByID(ctx context.Context, userID, questID string) error
	SetCompleted(ctx context.Context, userID, questID string, completed bool) error

	// GetDayItems returns the conflict-check snapshot: one user's
	// non-completed, time-complete quests for one calendar day, projected to
	// ScheduledItems. Satisfies schedule.DayItemSource.
	GetDayItems(ctx context.Context, userID, date string) ([]models.ScheduledItem, error)

	// UpdateSchedule moves a quest to a new time block iff its version still
	// matches expectedVersion, bumping the version on success. Returns
	// ErrVersionConflict when the swap loses.
	UpdateSchedule(ctx context.Context, userID, questID, startTime string, durationMinutes, expectedVersion int) error
}

type mongoQuestRepo struct {
	coll *mongo.Collection
}

// NewMongoQuestRepo constructs a new MongoDB QuestRepository.
func NewMongoQuestRepo() QuestRepository {
	db := database.MongoClient.Database("questforge")
	return &mongoQuestRepo{
		coll: db.Collection("quests"),
	}
}

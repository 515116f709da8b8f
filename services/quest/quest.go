package quest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	questRepo "questforge/database/repository/quest"
	"questforge/models"
	"questforge/services/schedule"
	"questforge/utils"
)

// DefaultQuestService is the production QuestService.
type DefaultQuestService struct {
	Repo   questRepo.QuestRepository
	Engine schedule.Engine

	locks *userLockStore
}

// NewDefaultQuestService wires the service over a repository and engine.
func NewDefaultQuestService(repo questRepo.QuestRepository, engine schedule.Engine) *DefaultQuestService {
	return &DefaultQuestService{
		Repo:   repo,
		Engine: engine,
		locks:  newUserLockStore(),
	}
}

func (svc *DefaultQuestService) CreateQuest(ctx context.Context, q *models.Quest, force bool) (*models.ConflictReport, error) {
	if q.UserID == "" || q.Title == "" || q.Date == "" {
		return nil, fmt.Errorf("quest requires userId, title and date")
	}

	// Backlog quests (no time data) skip the conflict check entirely.
	if !q.Schedulable() {
		q.StartTime = nil
		q.DurationMinutes = nil
		return nil, svc.Repo.Create(ctx, q)
	}

	normalized, err := schedule.NormalizeClock(*q.StartTime)
	if err != nil {
		return nil, err
	}
	q.StartTime = &normalized

	lock := svc.locks.get(q.UserID)
	lock.Lock()
	defer lock.Unlock()

	report, err := svc.Engine.CheckSchedule(ctx, models.ScheduleCheckRequest{
		UserID:          q.UserID,
		Date:            q.Date,
		StartTime:       normalized,
		DurationMinutes: *q.DurationMinutes,
	})
	if err != nil {
		return nil, err
	}
	if report.HasConflicts && !force {
		return report, ErrScheduleConflict
	}

	if err := svc.Repo.Create(ctx, q); err != nil {
		return report, fmt.Errorf("failed to create quest: %w", err)
	}
	utils.GetLogger().Info("quest created",
		zap.String("questID", q.ID),
		zap.String("userID", q.UserID),
		zap.Bool("forced", force && report.HasConflicts))
	return report, nil
}

func (svc *DefaultQuestService) RescheduleQuest(ctx context.Context, userID, questID, startTime string, durationMinutes int, force bool) (*models.ConflictReport, error) {
	normalized, err := schedule.NormalizeClock(startTime)
	if err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		return nil, schedule.NewInvalidInputError("duration must be positive")
	}

	existing, err := svc.Repo.GetByID(ctx, userID, questID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quest: %w", err)
	}

	lock := svc.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	report, err := svc.Engine.CheckSchedule(ctx, models.ScheduleCheckRequest{
		UserID:          userID,
		Date:            existing.Date,
		StartTime:       normalized,
		DurationMinutes: durationMinutes,
		ExcludeQuestID:  questID,
	})
	if err != nil {
		return nil, err
	}
	if report.HasConflicts && !force {
		return report, ErrScheduleConflict
	}

	// CAS on the version read above; a racing reschedule from another
	// process surfaces as ErrVersionConflict.
	if err := svc.Repo.UpdateSchedule(ctx, userID, questID, normalized, durationMinutes, existing.Version); err != nil {
		return report, err
	}
	utils.GetLogger().Info("quest rescheduled",
		zap.String("questID", questID),
		zap.String("startTime", normalized),
		zap.Int("durationMinutes", durationMinutes))
	return report, nil
}

func (svc *DefaultQuestService) GetQuest(ctx context.Context, userID, questID string) (*models.Quest, error) {
	return svc.Repo.GetByID(ctx, userID, questID)
}

func (svc *DefaultQuestService) ListDayQuests(ctx context.Context, userID, date string) ([]models.Quest, error) {
	return svc.Repo.GetByUserAndDate(ctx, userID, date)
}

func (svc *DefaultQuestService) DeleteQuest(ctx context.Context, userID, questID string) error {
	return svc.Repo.DeleteByID(ctx, userID, questID)
}

func (svc *DefaultQuestService) CompleteQuest(ctx context.Context, userID, questID string, completed bool) error {
	return svc.Repo.SetCompleted(ctx, userID, questID, completed)
}

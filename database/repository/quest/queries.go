// File: database/repository/quest/queries.go
package questRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"questforge/models"
	"questforge/services/schedule"
)

func (r *mongoQuestRepo) GetByUserAndDate(ctx context.Context, userID, date string) ([]models.Quest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "date": date}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quests []models.Quest
	if err := cursor.All(ctx, &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

// GetDayItems loads the conflict-check snapshot for one user-day. Completed
// quests and quests without complete time data are filtered at the query;
// anything whose stored start time still fails to parse is dropped here
// rather than surfaced, matching how the engine treats malformed records.
func (r *mongoQuestRepo) GetDayItems(ctx context.Context, userID, date string) ([]models.ScheduledItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"userId":          userID,
		"date":            date,
		"completed":       bson.M{"$ne": true},
		"startTime":       bson.M{"$exists": true, "$nin": bson.A{nil, ""}},
		"durationMinutes": bson.M{"$gt": 0},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quests []models.Quest
	if err := cursor.All(ctx, &quests); err != nil {
		return nil, err
	}

	items := make([]models.ScheduledItem, 0, len(quests))
	for _, q := range quests {
		if !q.Schedulable() {
			continue
		}
		startMinute, err := schedule.ParseClock(*q.StartTime)
		if err != nil {
			continue
		}
		items = append(items, models.ScheduledItem{
			ID:              q.ID,
			Title:           q.Title,
			StartMinute:     startMinute,
			DurationMinutes: *q.DurationMinutes,
			Difficulty:      q.Difficulty,
		})
	}
	return items, nil
}

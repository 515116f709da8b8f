// File: database/repository/quest/crud.go
package questRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"questforge/models"
)

func (r *mongoQuestRepo) Create(ctx context.Context, quest *models.Quest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if quest.ID == "" {
		quest.ID = uuid.New().String()
	}
	now := time.Now()
	quest.CreatedAt = now
	quest.UpdatedAt = now
	quest.Version = 1

	_, err := r.coll.InsertOne(ctx, quest)
	return err
}

func (r *mongoQuestRepo) GetByID(ctx context.Context, userID, questID string) (*models.Quest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": questID, "userId": userID}
	var quest models.Quest
	if err := r.coll.FindOne(ctx, filter).Decode(&quest); err != nil {
		return nil, err
	}
	return &quest, nil
}

func (r *mongoQuestRepo) Update(ctx context.Context, quest *models.Quest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	quest.UpdatedAt = time.Now()
	filter := bson.M{"id": quest.ID, "userId": quest.UserID}
	update := bson.M{"$set": bson.M{
		"title":           quest.Title,
		"description":     quest.Description,
		"date":            quest.Date,
		"startTime":       quest.StartTime,
		"durationMinutes": quest.DurationMinutes,
		"difficulty":      quest.Difficulty,
		"updatedAt":       quest.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoQuestRepo) DeleteByID(ctx context.Context, userID, questID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": questID, "userId": userID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoQuestRepo) SetCompleted(ctx context.Context, userID, questID string, completed bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": questID, "userId": userID}
	update := bson.M{"$set": bson.M{"completed": completed, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoQuestRepo) UpdateSchedule(ctx context.Context, userID, questID, startTime string, durationMinutes, expectedVersion int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Compare-and-swap on version: a concurrent reschedule between snapshot
	// read and this write makes the filter miss.
	filter := bson.M{
		"id":      questID,
		"userId":  userID,
		"version": expectedVersion,
	}
	update := bson.M{
		"$set": bson.M{
			"startTime":       startTime,
			"durationMinutes": durationMinutes,
			"updatedAt":       time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	questRepo "questforge/database/repository/quest"
	"questforge/models"
	"questforge/services/quest"
	"questforge/services/schedule"
)

// checkSessionTTL bounds how long a cached conflict check stays confirmable.
const checkSessionTTL = 10 * time.Minute

// MinQuestDuration and MaxQuestDuration bound accepted durations at the API.
// The engine itself does not enforce this range.
const (
	MinQuestDuration = 5
	MaxQuestDuration = 480
)

// ScheduleHandler exposes the conflict detection and slot suggestion
// endpoints.
type ScheduleHandler struct {
	Engine       schedule.Engine
	QuestService quest.QuestService
	SessionCache *redis.Client
	Logger       *zap.Logger
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(engine schedule.Engine, questSvc quest.QuestService, sessionCache *redis.Client, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		Engine:       engine,
		QuestService: questSvc,
		SessionCache: sessionCache,
		Logger:       logger,
	}
}

// CheckSchedule runs a full conflict check and caches the result under a
// session id so a follow-up confirm can reference the exact report the
// client saw.
func (h *ScheduleHandler) CheckSchedule(c *gin.Context) {
	var req models.ScheduleCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.DurationMinutes < MinQuestDuration || req.DurationMinutes > MaxQuestDuration {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("durationMinutes must be between %d and %d", MinQuestDuration, MaxQuestDuration)})
		return
	}

	report, err := h.Engine.CheckSchedule(c.Request.Context(), req)
	if err != nil {
		if schedule.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to check schedule: %v", err)})
		return
	}

	session := models.CheckSession{Request: req, Report: *report}
	sessionID := uuid.New().String()
	sessionData, err := json.Marshal(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to marshal check session", "details": err.Error()})
		return
	}

	ctx := context.Background()
	if err := h.SessionCache.Set(ctx, sessionID, sessionData, checkSessionTTL).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cache check session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": sessionID,
		"report":    report,
	})
}

// ConfirmSchedule applies a previously checked reschedule. The session pins
// the candidate the client saw; the service re-checks under the per-user lock
// before committing.
func (h *ScheduleHandler) ConfirmSchedule(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		QuestID string `json:"questId" binding:"required"`
		Force   bool   `json:"force"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := context.Background()
	sessionData, err := h.SessionCache.Get(ctx, sessionID).Result()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "check session not found or expired"})
		return
	}
	var session models.CheckSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse check session", "details": err.Error()})
		return
	}

	report, err := h.QuestService.RescheduleQuest(
		c.Request.Context(),
		session.Request.UserID,
		input.QuestID,
		session.Request.StartTime,
		session.Request.DurationMinutes,
		input.Force,
	)
	if err != nil {
		switch {
		case errors.Is(err, quest.ErrScheduleConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "schedule conflict", "report": report})
		case errors.Is(err, questRepo.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "quest was modified concurrently, re-check and retry"})
		case schedule.IsInvalidInput(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to confirm schedule: %v", err)})
		}
		return
	}

	h.SessionCache.Del(ctx, sessionID)
	h.Logger.Info("schedule confirmed",
		zap.String("sessionID", sessionID),
		zap.String("questID", input.QuestID))
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GetSuggestions proposes free slots for a desired duration.
func (h *ScheduleHandler) GetSuggestions(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	durationStr := c.Query("duration")
	if userID == "" || date == "" || durationStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId, date and duration are required"})
		return
	}
	duration, err := strconv.Atoi(durationStr)
	if err != nil || duration < MinQuestDuration || duration > MaxQuestDuration {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("duration must be an integer between %d and %d", MinQuestDuration, MaxQuestDuration)})
		return
	}

	slots, err := h.Engine.FreeSlots(c.Request.Context(), userID, date, duration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to compute suggestions: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": slots})
}

// GetItemsAtSlot returns the quests stacked at an exact start time.
func (h *ScheduleHandler) GetItemsAtSlot(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	startTime := c.Query("time")
	if userID == "" || date == "" || startTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId, date and time are required"})
		return
	}

	items, err := h.Engine.ItemsAtSlot(c.Request.Context(), userID, date, startTime)
	if err != nil {
		if schedule.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to fetch items: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"questforge/models"
	"questforge/services/quest"
	"questforge/services/schedule"
)

// QuestHandler exposes quest CRUD endpoints.
type QuestHandler struct {
	Service quest.QuestService
	Logger  *zap.Logger
}

// NewQuestHandler constructs a QuestHandler.
func NewQuestHandler(svc quest.QuestService, logger *zap.Logger) *QuestHandler {
	return &QuestHandler{Service: svc, Logger: logger}
}

// CreateQuest persists a new quest, conflict-checking scheduled ones. Pass
// force=true in the body to persist despite conflicts.
func (h *QuestHandler) CreateQuest(c *gin.Context) {
	var input struct {
		Quest models.Quest `json:"quest" binding:"required"`
		Force bool         `json:"force"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Quest.DurationMinutes != nil {
		d := *input.Quest.DurationMinutes
		if d < MinQuestDuration || d > MaxQuestDuration {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("durationMinutes must be between %d and %d", MinQuestDuration, MaxQuestDuration)})
			return
		}
	}

	report, err := h.Service.CreateQuest(c.Request.Context(), &input.Quest, input.Force)
	if err != nil {
		switch {
		case errors.Is(err, quest.ErrScheduleConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "schedule conflict", "report": report})
		case schedule.IsInvalidInput(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to create quest: %v", err)})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"quest": input.Quest, "report": report})
}

// GetQuest fetches one quest by id.
func (h *QuestHandler) GetQuest(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	q, err := h.Service.GetQuest(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to fetch quest: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quest": q})
}

// ListDayQuests returns all quests for one user-day.
func (h *QuestHandler) ListDayQuests(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and date are required"})
		return
	}
	quests, err := h.Service.ListDayQuests(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to list quests: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quests": quests})
}

// DeleteQuest removes a quest.
func (h *QuestHandler) DeleteQuest(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	if err := h.Service.DeleteQuest(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to delete quest: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// CompleteQuest toggles completion. Completed quests drop out of all
// conflict checks.
func (h *QuestHandler) CompleteQuest(c *gin.Context) {
	var input struct {
		UserID    string `json:"userId" binding:"required"`
		Completed *bool  `json:"completed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.CompleteQuest(c.Request.Context(), input.UserID, c.Param("id"), *input.Completed); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to update quest: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": *input.Completed})
}

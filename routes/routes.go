package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"questforge/handlers"
)

// RegisterQuestRoutes registers quest CRUD endpoints.
func RegisterQuestRoutes(r *gin.Engine, qh *handlers.QuestHandler) {
	api := r.Group("/api/quests")
	{
		api.POST("", qh.CreateQuest)
		api.GET("", qh.ListDayQuests)
		api.GET("/:id", qh.GetQuest)
		api.DELETE("/:id", qh.DeleteQuest)
		api.PATCH("/:id/complete", qh.CompleteQuest)
	}
}

// RegisterScheduleRoutes sets up the endpoints for the scheduling engine.
func RegisterScheduleRoutes(r *gin.Engine, sh *handlers.ScheduleHandler) {
	scheduleGroup := r.Group("/api/schedule")
	{
		scheduleGroup.POST("/check", sh.CheckSchedule)
		scheduleGroup.POST("/confirm/:sessionID", sh.ConfirmSchedule)
		scheduleGroup.GET("/suggestions", sh.GetSuggestions)
		scheduleGroup.GET("/at-slot", sh.GetItemsAtSlot)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm QuestForge"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, qh *handlers.QuestHandler, sh *handlers.ScheduleHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterQuestRoutes(r, qh)
	RegisterScheduleRoutes(r, sh)
}

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"
	"github.com/AryanAggarwal62/Spurhacks/internal/service"
	"github.com/AryanAggarwal62/Spurhacks/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type goalRoutes struct {
	gs service.GoalServiceI
}

func NewGoalRoutes(handler *gin.RouterGroup, gs service.GoalServiceI) {
	r := &goalRoutes{gs: gs}
	h := handler.Group("/goals")
	{
		h.POST("", r.CreateGoal)
		h.GET("/user/:user_id", r.GetUserGoals)
		h.PUT("/:goal_id/complete", r.CompleteGoal)
	}
}

type CreateGoalRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type GoalResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func newGoalResponse(goal *model.Goal) GoalResponse {
	return GoalResponse{
		ID:          goal.ID,
		UserID:      goal.UserID,
		Title:       goal.Title,
		Description: goal.Description,
		Status:      string(goal.Status),
		CreatedAt:   goal.CreatedAt,
		CompletedAt: goal.CompletedAt,
	}
}

func (r *goalRoutes) CreateGoal(c *gin.Context) {
	log := logger.Logger()

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, title, and description are required"})
		return
	}

	goal, err := r.gs.Create(c.Request.Context(), req.UserID, req.Title, req.Description)
	if err != nil {
		log.Error("failed to create goal", zap.Error(err))
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create goal"})
		return
	}

	c.JSON(http.StatusCreated, newGoalResponse(goal))
}

func (r *goalRoutes) GetUserGoals(c *gin.Context) {
	log := logger.Logger()

	userID := c.Param("user_id")

	goals, err := r.gs.ListForUser(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to get user goals", zap.Error(err))
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user goals"})
		return
	}

	out := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		out[i] = newGoalResponse(goal)
	}

	c.JSON(http.StatusOK, out)
}

func (r *goalRoutes) CompleteGoal(c *gin.Context) {
	log := logger.Logger()

	goalID := c.Param("goal_id")

	goal, err := r.gs.Complete(c.Request.Context(), goalID)
	if err != nil {
		log.Error("failed to complete goal", zap.Error(err))
		if errors.Is(err, service.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete goal"})
		return
	}

	c.JSON(http.StatusOK, newGoalResponse(goal))
}

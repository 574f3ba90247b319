package model

import "time"

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

type Goal struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      GoalStatus
	CreatedAt   time.Time
	CompletedAt *time.Time
}

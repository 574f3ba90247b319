package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"
	"github.com/AryanAggarwal62/Spurhacks/internal/repository"
	"github.com/AryanAggarwal62/Spurhacks/pkg/logger"
	"go.uber.org/zap"
)

type GoalService struct {
	repo   GoalRepository
	users  UserRepository
	minter RewardMinter
}

func NewGoalService(repo GoalRepository, users UserRepository, minter RewardMinter) *GoalService {
	return &GoalService{
		repo:   repo,
		users:  users,
		minter: minter,
	}
}

func (s *GoalService) Create(ctx context.Context, userID, title, description string) (*model.Goal, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	goal := &model.Goal{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      model.GoalStatusActive,
		CreatedAt:   time.Now().UTC(),
		CompletedAt: nil,
	}
	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ListForUser(ctx context.Context, userID string) ([]*model.Goal, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	goals, err := s.repo.GetGoalsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}

	return goals, nil
}

// Complete transitions a goal from active to completed and mints its
// reward. Completing an already-completed goal returns it unchanged
// with no second mint. The status-conditioned update is what keeps the
// mint at-most-once when completion requests race.
func (s *GoalService) Complete(ctx context.Context, goalID string) (*model.Goal, error) {
	goal, err := s.repo.GetGoalByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	if goal.Status == model.GoalStatusCompleted {
		return goal, nil
	}

	applied, err := s.repo.CompleteGoal(ctx, goalID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to complete goal: %w", err)
	}

	if applied {
		// The goal stays completed even when minting fails; the lost
		// reward is logged rather than surfaced to the caller.
		if _, err := s.minter.Mint(ctx, goal.UserID, goalID); err != nil {
			logger.Logger().Error("failed to mint reward for completed goal",
				zap.String("goal_id", goalID),
				zap.String("user_id", goal.UserID),
				zap.Error(err))
		}
	}

	completed, err := s.repo.GetGoalByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get completed goal: %w", err)
	}

	return completed, nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"
	"github.com/AryanAggarwal62/Spurhacks/internal/repository"
	"github.com/AryanAggarwal62/Spurhacks/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testUserID = "64f000000000000000000001"
	testGoalID = "64f000000000000000000010"
	testNFTID  = "64f000000000000000000020"
)

func TestGoalService_Create(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(goals *mocks.MockGoalRepository, users *mocks.MockUserRepository)
		expectedError error
		checkGoal     func(t *testing.T, goal *model.Goal)
	}{
		{
			name: "User not found",
			mockSetup: func(goals *mocks.MockGoalRepository, users *mocks.MockUserRepository) {
				users.On("GetUserByID", mock.Anything, testUserID).
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "New goal starts active",
			mockSetup: func(goals *mocks.MockGoalRepository, users *mocks.MockUserRepository) {
				users.On("GetUserByID", mock.Anything, testUserID).
					Return(&model.User{ID: testUserID}, nil)
				goals.On("CreateGoal", mock.Anything, mock.MatchedBy(func(g *model.Goal) bool {
					return g.UserID == testUserID &&
						g.Status == model.GoalStatusActive &&
						g.CompletedAt == nil &&
						!g.CreatedAt.IsZero()
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Goal).ID = testGoalID
				}).Return(nil)
			},
			checkGoal: func(t *testing.T, goal *model.Goal) {
				assert.Equal(t, testGoalID, goal.ID)
				assert.Equal(t, model.GoalStatusActive, goal.Status)
				assert.Nil(t, goal.CompletedAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGoals := &mocks.MockGoalRepository{}
			mockUsers := &mocks.MockUserRepository{}
			mockMinter := &mocks.MockRewardMinter{}
			tt.mockSetup(mockGoals, mockUsers)

			service := NewGoalService(mockGoals, mockUsers, mockMinter)
			goal, err := service.Create(context.Background(), testUserID, "Run 5k", "Run five kilometers without stopping")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			assert.NoError(t, err)
			if tt.checkGoal != nil {
				tt.checkGoal(t, goal)
			}

			mockGoals.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestGoalService_Complete(t *testing.T) {
	completedAt := time.Now().UTC().Add(-time.Hour)
	activeGoal := func() *model.Goal {
		return &model.Goal{
			ID:        testGoalID,
			UserID:    testUserID,
			Title:     "Run 5k",
			Status:    model.GoalStatusActive,
			CreatedAt: time.Now().UTC().Add(-24 * time.Hour),
		}
	}
	completedGoal := func() *model.Goal {
		g := activeGoal()
		g.Status = model.GoalStatusCompleted
		g.CompletedAt = &completedAt
		return g
	}

	tests := []struct {
		name          string
		mockSetup     func(goals *mocks.MockGoalRepository, minter *mocks.MockRewardMinter)
		expectedError error
		checkGoal     func(t *testing.T, goal *model.Goal)
		checkMocks    func(t *testing.T, goals *mocks.MockGoalRepository, minter *mocks.MockRewardMinter)
	}{
		{
			name: "Goal not found",
			mockSetup: func(goals *mocks.MockGoalRepository, minter *mocks.MockRewardMinter) {
				goals.On("GetGoalByID", mock.Anything, testGoalID).
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrGoalNotFound,
		},
		{
			name: "Already completed is a no-op",
			mockSetup: func(goals *mocks.MockGoalRepository, minter *mocks.MockRewardMinter) {
				goals.On("GetGoalByID", mock.Anything, testGoalID).
					Return(completedGoal(), nil)
			},
			checkGoal: func(t *testing.T, goal *model.Goal) {
				assert.Equal(t, model.GoalStatusCompleted, goal.Status)
				assert.Equal(t, completedAt, *goal.CompletedAt)
			},
			checkMocks: func(t *testing.T, goals *mocks.MockGoalRepository, minter *mocks.MockRewardMinter) {
				goals.AssertNotCalled(t, "CompleteGoal", mock.Anything, mock.Anything, mock.Anything)
				minter.AssertNotCalled(t, "Mint", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "First completion mints exactly once",
			mockSetup: func(goals *mocks.MockGoalRepository, minter *mocks.MockRewardMinter) {
				goals.On("GetGoalByID", mock.Anything, testGoalID).
					Return(activeGoal(), nil).Once()
				goals.On("CompleteGoal", mock.Anything, testGoalID, mock.AnythingOfType("time.Time")).
					Return(true, nil)
				minter.On("Mint", mock.Anything, testUserID, testGoalID).
					Return(testNFTID, nil).Once()
				goals.On("GetGoalByID", mock.Anything, testGoalID).
					Return(completedGoal(), nil).Once()
			},
			checkGoal: func(t *testing.T, goal *model.Goal) {
				assert.Equal(t, model.GoalStatusCompleted, goal.Status)
				assert.NotNil(t, goal.CompletedAt)
			},
		},
		{
			name: "Lost completion race does not mint",
			mockSetup: func(goals *mocks.MockGoalRepository, minter *mocks.MockRewardMinter) {
				goals.On("GetGoalByID", mock.Anything, testGoalID).
					Return(activeGoal(), nil).Once()
				goals.On("CompleteGoal", mock.Anything, testGoalID, mock.AnythingOfType("time.Time")).
					Return(false, nil)
				goals.On("GetGoalByID", mock.Anything, testGoalID).
					Return(completedGoal(), nil).Once()
			},
			checkGoal: func(t *testing.T, goal *model.Goal) {
				assert.Equal(t, model.GoalStatusCompleted, goal.Status)
			},
			checkMocks: func(t *testing.T, goals *mocks.MockGoalRepository, minter *mocks.MockRewardMinter) {
				minter.AssertNotCalled(t, "Mint", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "Mint failure does not undo completion",
			mockSetup: func(goals *mocks.MockGoalRepository, minter *mocks.MockRewardMinter) {
				goals.On("GetGoalByID", mock.Anything, testGoalID).
					Return(activeGoal(), nil).Once()
				goals.On("CompleteGoal", mock.Anything, testGoalID, mock.AnythingOfType("time.Time")).
					Return(true, nil)
				minter.On("Mint", mock.Anything, testUserID, testGoalID).
					Return("", assert.AnError)
				goals.On("GetGoalByID", mock.Anything, testGoalID).
					Return(completedGoal(), nil).Once()
			},
			checkGoal: func(t *testing.T, goal *model.Goal) {
				assert.Equal(t, model.GoalStatusCompleted, goal.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGoals := &mocks.MockGoalRepository{}
			mockUsers := &mocks.MockUserRepository{}
			mockMinter := &mocks.MockRewardMinter{}
			tt.mockSetup(mockGoals, mockMinter)

			service := NewGoalService(mockGoals, mockUsers, mockMinter)
			goal, err := service.Complete(context.Background(), testGoalID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, goal)
			if tt.checkGoal != nil {
				tt.checkGoal(t, goal)
			}
			if tt.checkMocks != nil {
				tt.checkMocks(t, mockGoals, mockMinter)
			}

			mockGoals.AssertExpectations(t)
			mockMinter.AssertExpectations(t)
		})
	}
}

package mocks

import (
	"context"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByWallet(ctx context.Context, walletAddress string) (*model.User, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) CreateGoal(ctx context.Context, goal *model.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) GetGoalByID(ctx context.Context, id string) (*model.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Goal), args.Error(1)
}

func (m *MockGoalRepository) GetGoalsByUserID(ctx context.Context, userID string) ([]*model.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Goal), args.Error(1)
}

func (m *MockGoalRepository) CompleteGoal(ctx context.Context, goalID string, completedAt time.Time) (bool, error) {
	args := m.Called(ctx, goalID, completedAt)
	return args.Bool(0), args.Error(1)
}

type MockNFTRepository struct {
	mock.Mock
}

func (m *MockNFTRepository) CreateNFT(ctx context.Context, nft *model.NFT) error {
	args := m.Called(ctx, nft)
	return args.Error(0)
}

func (m *MockNFTRepository) GetNFTsByIDs(ctx context.Context, ids []string) ([]*model.NFT, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.NFT), args.Error(1)
}

func (m *MockNFTRepository) GetNFTByIDAndOwner(ctx context.Context, nftID, userID string) (*model.NFT, error) {
	args := m.Called(ctx, nftID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NFT), args.Error(1)
}

func (m *MockNFTRepository) GetListedNFT(ctx context.Context, nftID string) (*model.NFT, error) {
	args := m.Called(ctx, nftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NFT), args.Error(1)
}

func (m *MockNFTRepository) SetNFTListed(ctx context.Context, nftID string, listed bool) error {
	args := m.Called(ctx, nftID, listed)
	return args.Error(0)
}

func (m *MockNFTRepository) GetListedNFTs(ctx context.Context, excludingUserID string) ([]*model.ListedNFT, error) {
	args := m.Called(ctx, excludingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ListedNFT), args.Error(1)
}

func (m *MockNFTRepository) TradeNFTs(ctx context.Context, proposerUserID, proposerNFTID, targetUserID, targetNFTID string) error {
	args := m.Called(ctx, proposerUserID, proposerNFTID, targetUserID, targetNFTID)
	return args.Error(0)
}

type MockRewardMinter struct {
	mock.Mock
}

func (m *MockRewardMinter) Mint(ctx context.Context, userID, goalID string) (string, error) {
	args := m.Called(ctx, userID, goalID)
	return args.String(0), args.Error(1)
}

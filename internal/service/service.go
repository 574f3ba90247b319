package service

import (
	"context"
	"errors"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrNFTNotFound      = errors.New("nft not found or user does not own it")
	ErrTradeNotEligible = errors.New("nft not found or not eligible for trade")
)

type Service struct {
	*UserService
	*GoalService
	*NFTService
	*MarketplaceService
}

func NewService(users *UserService, goals *GoalService, nfts *NFTService, marketplace *MarketplaceService) *Service {
	return &Service{
		UserService:        users,
		GoalService:        goals,
		NFTService:         nfts,
		MarketplaceService: marketplace,
	}
}

type UserServiceI interface {
	Connect(ctx context.Context, walletAddress string) (*model.User, bool, error)
}

type GoalServiceI interface {
	Create(ctx context.Context, userID, title, description string) (*model.Goal, error)
	ListForUser(ctx context.Context, userID string) ([]*model.Goal, error)
	Complete(ctx context.Context, goalID string) (*model.Goal, error)
}

type NFTServiceI interface {
	ListForUser(ctx context.Context, userID string) ([]*model.NFT, error)
	ToggleListing(ctx context.Context, nftID, userID string) (bool, error)
}

type MarketplaceServiceI interface {
	ListTradeable(ctx context.Context, excludingUserID string) ([]*model.ListedNFT, error)
	ExecuteTrade(ctx context.Context, proposerUserID, proposerNFTID, targetNFTID string) error
}

// RewardMinter issues a collectible for a completed goal. Implemented
// by NFTService; the goal service only sees this slice of it.
type RewardMinter interface {
	Mint(ctx context.Context, userID, goalID string) (string, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByWallet(ctx context.Context, walletAddress string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

type GoalRepository interface {
	CreateGoal(ctx context.Context, goal *model.Goal) error
	GetGoalByID(ctx context.Context, id string) (*model.Goal, error)
	GetGoalsByUserID(ctx context.Context, userID string) ([]*model.Goal, error)
	CompleteGoal(ctx context.Context, goalID string, completedAt time.Time) (bool, error)
}

type NFTRepository interface {
	CreateNFT(ctx context.Context, nft *model.NFT) error
	GetNFTsByIDs(ctx context.Context, ids []string) ([]*model.NFT, error)
	GetNFTByIDAndOwner(ctx context.Context, nftID, userID string) (*model.NFT, error)
	GetListedNFT(ctx context.Context, nftID string) (*model.NFT, error)
	SetNFTListed(ctx context.Context, nftID string, listed bool) error
	GetListedNFTs(ctx context.Context, excludingUserID string) ([]*model.ListedNFT, error)
	TradeNFTs(ctx context.Context, proposerUserID, proposerNFTID, targetUserID, targetNFTID string) error
}

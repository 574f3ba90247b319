package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"
	"github.com/AryanAggarwal62/Spurhacks/internal/repository"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// Connect resolves a user by wallet address, creating one on first
// connection. The second return value reports whether a new user was
// created.
func (s *UserService) Connect(ctx context.Context, walletAddress string) (*model.User, bool, error) {
	user, err := s.repo.GetUserByWallet(ctx, walletAddress)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get user by wallet: %w", err)
	}

	user = &model.User{
		WalletAddress: walletAddress,
		Username:      nil,
		CreatedAt:     time.Now().UTC(),
		NFTs:          []string{},
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	return user, true, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"
	"github.com/AryanAggarwal62/Spurhacks/internal/repository"
)

const nftDescription = "A unique reward for completing a goal."

type NFTService struct {
	repo     NFTRepository
	users    UserRepository
	rarities RarityTable
	roll     func(n int) int
}

func NewNFTService(repo NFTRepository, users UserRepository) *NFTService {
	return &NFTService{
		repo:     repo,
		users:    users,
		rarities: DefaultRarityTable,
		roll:     rand.Intn,
	}
}

// Mint creates a collectible of weighted-random rarity for a completed
// goal and appends it to the owner's inventory. Returns the new
// collectible's id.
func (s *NFTService) Mint(ctx context.Context, userID, goalID string) (string, error) {
	rarity := s.rarities.Pick(s.roll(s.rarities.Total()))

	nft := &model.NFT{
		UserID:      userID,
		GoalID:      goalID,
		MintedAt:    time.Now().UTC(),
		Rarity:      rarity,
		Name:        fmt.Sprintf("%s Reward", rarity),
		Description: nftDescription,
		ImageURL:    fmt.Sprintf("https://example.com/images/%s.png", strings.ToLower(string(rarity))),
		Listed:      false,
	}

	if err := s.repo.CreateNFT(ctx, nft); err != nil {
		return "", fmt.Errorf("failed to mint nft: %w", err)
	}

	return nft.ID, nil
}

func (s *NFTService) ListForUser(ctx context.Context, userID string) ([]*model.NFT, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if len(user.NFTs) == 0 {
		return []*model.NFT{}, nil
	}

	nfts, err := s.repo.GetNFTsByIDs(ctx, user.NFTs)
	if err != nil {
		return nil, fmt.Errorf("failed to get nfts: %w", err)
	}

	return nfts, nil
}

// ToggleListing flips the listed flag of a collectible owned by the
// given user and returns the new value. The caller-supplied user id is
// trusted as-is; there is no authentication on this surface.
func (s *NFTService) ToggleListing(ctx context.Context, nftID, userID string) (bool, error) {
	nft, err := s.repo.GetNFTByIDAndOwner(ctx, nftID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrNFTNotFound
		}
		return false, fmt.Errorf("failed to get nft: %w", err)
	}

	listed := !nft.Listed
	if err := s.repo.SetNFTListed(ctx, nftID, listed); err != nil {
		return false, fmt.Errorf("failed to update nft listing: %w", err)
	}

	return listed, nil
}

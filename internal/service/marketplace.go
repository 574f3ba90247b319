package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"
	"github.com/AryanAggarwal62/Spurhacks/internal/repository"
)

type MarketplaceService struct {
	repo NFTRepository
}

func NewMarketplaceService(repo NFTRepository) *MarketplaceService {
	return &MarketplaceService{
		repo: repo,
	}
}

func (s *MarketplaceService) ListTradeable(ctx context.Context, excludingUserID string) ([]*model.ListedNFT, error) {
	listings, err := s.repo.GetListedNFTs(ctx, excludingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get listed nfts: %w", err)
	}

	return listings, nil
}

// ExecuteTrade swaps ownership of two collectibles: the proposer must
// own theirs and the target must currently be listed. Both eligibility
// failures report the same ErrTradeNotEligible, so a caller cannot
// distinguish "missing" from "not listed".
func (s *MarketplaceService) ExecuteTrade(ctx context.Context, proposerUserID, proposerNFTID, targetNFTID string) error {
	if _, err := s.repo.GetNFTByIDAndOwner(ctx, proposerNFTID, proposerUserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTradeNotEligible
		}
		return fmt.Errorf("failed to get proposer nft: %w", err)
	}

	target, err := s.repo.GetListedNFT(ctx, targetNFTID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTradeNotEligible
		}
		return fmt.Errorf("failed to get target nft: %w", err)
	}

	err = s.repo.TradeNFTs(ctx, proposerUserID, proposerNFTID, target.UserID, targetNFTID)
	if err != nil {
		return fmt.Errorf("failed to trade nfts: %w", err)
	}

	return nil
}

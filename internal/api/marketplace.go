package api

import (
	"errors"
	"net/http"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"
	"github.com/AryanAggarwal62/Spurhacks/internal/service"
	"github.com/AryanAggarwal62/Spurhacks/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type marketplaceRoutes struct {
	ms service.MarketplaceServiceI
}

func NewMarketplaceRoutes(handler *gin.RouterGroup, ms service.MarketplaceServiceI) {
	r := &marketplaceRoutes{ms: ms}
	h := handler.Group("/marketplace")
	{
		h.GET("/:user_id", r.GetListedNFTs)
		h.POST("/trade", r.ExecuteTrade)
	}
}

type ListingOwnerResponse struct {
	ID            string `json:"id"`
	WalletAddress string `json:"wallet_address"`
}

type ListedNFTResponse struct {
	NFTResponse
	Owner ListingOwnerResponse `json:"owner"`
}

func newListedNFTResponse(listing *model.ListedNFT) ListedNFTResponse {
	return ListedNFTResponse{
		NFTResponse: newNFTResponse(&listing.NFT),
		Owner: ListingOwnerResponse{
			ID:            listing.Owner.ID,
			WalletAddress: listing.Owner.WalletAddress,
		},
	}
}

func (r *marketplaceRoutes) GetListedNFTs(c *gin.Context) {
	log := logger.Logger()

	userID := c.Param("user_id")

	listings, err := r.ms.ListTradeable(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to get listed nfts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get listed nfts"})
		return
	}

	out := make([]ListedNFTResponse, len(listings))
	for i, listing := range listings {
		out[i] = newListedNFTResponse(listing)
	}

	c.JSON(http.StatusOK, out)
}

type ExecuteTradeRequest struct {
	ProposerUserID string `json:"proposer_user_id" binding:"required"`
	ProposerNFTID  string `json:"proposer_nft_id" binding:"required"`
	TargetNFTID    string `json:"target_nft_id" binding:"required"`
}

func (r *marketplaceRoutes) ExecuteTrade(c *gin.Context) {
	log := logger.Logger()

	var req ExecuteTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "proposer_user_id, proposer_nft_id, and target_nft_id are required"})
		return
	}

	err := r.ms.ExecuteTrade(c.Request.Context(), req.ProposerUserID, req.ProposerNFTID, req.TargetNFTID)
	if err != nil {
		log.Error("failed to execute trade", zap.Error(err))
		if errors.Is(err, service.ErrTradeNotEligible) {
			c.JSON(http.StatusNotFound, gin.H{"error": "one or both nfts not found, or target nft is not listed for trade"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to execute trade"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "trade completed successfully",
	})
}

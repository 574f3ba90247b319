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

type nftRoutes struct {
	ns service.NFTServiceI
}

func NewNFTRoutes(handler *gin.RouterGroup, ns service.NFTServiceI) {
	r := &nftRoutes{ns: ns}
	h := handler.Group("/nfts")
	{
		h.GET("/user/:user_id", r.GetUserNFTs)
		h.PUT("/:nft_id/list", r.ToggleNFTListing)
	}
}

type NFTResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	GoalID      string    `json:"goal_id"`
	MintedAt    time.Time `json:"minted_at"`
	Rarity      string    `json:"rarity"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Listed      bool      `json:"listed"`
}

func newNFTResponse(nft *model.NFT) NFTResponse {
	return NFTResponse{
		ID:          nft.ID,
		UserID:      nft.UserID,
		GoalID:      nft.GoalID,
		MintedAt:    nft.MintedAt,
		Rarity:      string(nft.Rarity),
		Name:        nft.Name,
		Description: nft.Description,
		ImageURL:    nft.ImageURL,
		Listed:      nft.Listed,
	}
}

func (r *nftRoutes) GetUserNFTs(c *gin.Context) {
	log := logger.Logger()

	userID := c.Param("user_id")

	nfts, err := r.ns.ListForUser(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to get user nfts", zap.Error(err))
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user nfts"})
		return
	}

	out := make([]NFTResponse, len(nfts))
	for i, nft := range nfts {
		out[i] = newNFTResponse(nft)
	}

	c.JSON(http.StatusOK, out)
}

type ToggleListingRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (r *nftRoutes) ToggleNFTListing(c *gin.Context) {
	log := logger.Logger()

	nftID := c.Param("nft_id")

	var req ToggleListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	listed, err := r.ns.ToggleListing(c.Request.Context(), nftID, req.UserID)
	if err != nil {
		log.Error("failed to toggle nft listing", zap.Error(err))
		if errors.Is(err, service.ErrNFTNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "nft not found or user does not own it"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle nft listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"listed":  listed,
	})
}

package api

import (
	"net/http"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"
	"github.com/AryanAggarwal62/Spurhacks/internal/service"
	"github.com/AryanAggarwal62/Spurhacks/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type authRoutes struct {
	us service.UserServiceI
}

func NewAuthRoutes(handler *gin.RouterGroup, us service.UserServiceI) {
	r := &authRoutes{us: us}
	h := handler.Group("/auth")
	{
		h.POST("/connect", r.ConnectWallet)
	}
}

type ConnectWalletRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
}

type UserResponse struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Username      *string   `json:"username"`
	CreatedAt     time.Time `json:"created_at"`
	NFTs          []string  `json:"nfts"`
}

func newUserResponse(user *model.User) UserResponse {
	nfts := user.NFTs
	if nfts == nil {
		nfts = []string{}
	}

	return UserResponse{
		ID:            user.ID,
		WalletAddress: user.WalletAddress,
		Username:      user.Username,
		CreatedAt:     user.CreatedAt,
		NFTs:          nfts,
	}
}

func (r *authRoutes) ConnectWallet(c *gin.Context) {
	log := logger.Logger()

	var req ConnectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "wallet_address is required"})
		return
	}

	user, created, err := r.us.Connect(c.Request.Context(), req.WalletAddress)
	if err != nil {
		log.Error("failed to connect wallet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to connect wallet"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, newUserResponse(user))
}

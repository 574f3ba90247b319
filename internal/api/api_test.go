package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"
	"github.com/AryanAggarwal62/Spurhacks/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubUserService struct {
	user    *model.User
	created bool
	err     error
}

func (s *stubUserService) Connect(_ context.Context, _ string) (*model.User, bool, error) {
	return s.user, s.created, s.err
}

type stubMarketplaceService struct {
	listings []*model.ListedNFT
	tradeErr error
}

func (s *stubMarketplaceService) ListTradeable(_ context.Context, _ string) ([]*model.ListedNFT, error) {
	return s.listings, nil
}

func (s *stubMarketplaceService) ExecuteTrade(_ context.Context, _, _, _ string) error {
	return s.tradeErr
}

func newTestRouter(register func(rg *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	register(router.Group("/api"))
	return router
}

func TestConnectWallet(t *testing.T) {
	user := &model.User{
		ID:            "64f000000000000000000001",
		WalletAddress: "0xabc",
		CreatedAt:     time.Now().UTC(),
		NFTs:          []string{},
	}

	tests := []struct {
		name           string
		body           string
		svc            *stubUserService
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:           "Missing wallet_address",
			body:           `{}`,
			svc:            &stubUserService{},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "wallet_address is required")
			},
		},
		{
			name:           "Existing user",
			body:           `{"wallet_address":"0xabc"}`,
			svc:            &stubUserService{user: user, created: false},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"wallet_address":"0xabc"`)
				assert.Contains(t, body, `"nfts":[]`)
			},
		},
		{
			name:           "New user",
			body:           `{"wallet_address":"0xabc"}`,
			svc:            &stubUserService{user: user, created: true},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(func(rg *gin.RouterGroup) {
				NewAuthRoutes(rg, tt.svc)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/connect", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.String())
			}
		})
	}
}

func TestExecuteTrade(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		svc            *stubMarketplaceService
		expectedStatus int
	}{
		{
			name:           "Missing fields",
			body:           `{"proposer_user_id":"64f000000000000000000001"}`,
			svc:            &stubMarketplaceService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Ineligible trade",
			body: `{"proposer_user_id":"64f000000000000000000001","proposer_nft_id":"64f000000000000000000020","target_nft_id":"64f000000000000000000021"}`,
			svc: &stubMarketplaceService{
				tradeErr: service.ErrTradeNotEligible,
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Successful trade",
			body:           `{"proposer_user_id":"64f000000000000000000001","proposer_nft_id":"64f000000000000000000020","target_nft_id":"64f000000000000000000021"}`,
			svc:            &stubMarketplaceService{},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(func(rg *gin.RouterGroup) {
				NewMarketplaceRoutes(rg, tt.svc)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/marketplace/trade", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

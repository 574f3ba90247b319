package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/api"
	"github.com/AryanAggarwal62/Spurhacks/internal/middleware"
	"github.com/AryanAggarwal62/Spurhacks/internal/repository"
	"github.com/AryanAggarwal62/Spurhacks/internal/service"
	"github.com/AryanAggarwal62/Spurhacks/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	userService := service.NewUserService(repo)
	nftService := service.NewNFTService(repo, repo)
	goalService := service.NewGoalService(repo, repo, nftService)
	marketplaceService := service.NewMarketplaceService(repo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running!")
	})

	a := router.Group("/api")
	api.NewAuthRoutes(a, userService)
	api.NewGoalRoutes(a, goalService)
	api.NewNFTRoutes(a, nftService)
	api.NewMarketplaceRoutes(a, marketplaceService)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}

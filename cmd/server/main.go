package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thirstylabs/chugline/internal/common/clock"
	"github.com/thirstylabs/chugline/internal/common/uuid"
	"github.com/thirstylabs/chugline/internal/config"
	"github.com/thirstylabs/chugline/internal/handlers/httpapi"
	"github.com/thirstylabs/chugline/internal/identity"
	"github.com/thirstylabs/chugline/internal/penalty"
	userRepo "github.com/thirstylabs/chugline/internal/repositories/user"
	gameService "github.com/thirstylabs/chugline/internal/services/game"
	"github.com/thirstylabs/chugline/internal/services/leaderboard"
	"github.com/thirstylabs/chugline/internal/services/oracle"
	"github.com/thirstylabs/chugline/internal/services/profile"
	"github.com/thirstylabs/chugline/internal/services/quest"
	"github.com/thirstylabs/chugline/internal/services/score"
)

func main() {
	cfg := config.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize the user repository
	repo, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: redisClient,
		AppID:       cfg.AppID,
	})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	systemClock := &clock.DefaultClock{}

	// Initialize the score ledger
	scoreLedger, err := score.New(&score.Config{
		Clock: systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create score ledger: %v", err)
	}

	// Initialize the ad-penalty registry
	penaltyRegistry, err := penalty.NewRegistry(&penalty.Config{
		Clock: systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create penalty registry: %v", err)
	}

	// Initialize the generative-text oracle
	oracleService, err := oracle.NewGemini(&oracle.Config{
		BaseURL: cfg.GeminiBaseURL,
		APIKey:  cfg.GeminiAPIKey,
		Timeout: cfg.GeminiTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create oracle service: %v", err)
	}

	// Initialize the game service
	gameSvc, err := gameService.New(&gameService.Config{
		UserRepo:      repo,
		QuestEngine:   quest.New(nil),
		ScoreLedger:   scoreLedger,
		Projector:     leaderboard.New(),
		Profiles:      profile.New(),
		Oracle:        oracleService,
		PenaltySignal: penaltyRegistry,
		Clock:         systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize the anonymous identity provider
	provider, err := identity.NewAnonymous(&identity.Config{
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create identity provider: %v", err)
	}

	// Initialize the API server
	server, err := httpapi.New(&httpapi.Config{
		Addr:             cfg.HTTPAddr,
		GameService:      gameSvc,
		IdentityProvider: provider,
		PenaltyRegistry:  penaltyRegistry,
	})
	if err != nil {
		log.Fatalf("Failed to create API server: %v", err)
	}

	// Start serving
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := server.Stop(); err != nil {
		log.Printf("Error stopping API server: %v", err)
	}

	log.Println("Server has been shut down")
}

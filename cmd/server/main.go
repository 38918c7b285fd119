package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/fairdraw/sweepstakes/internal/common/clock"
	"github.com/fairdraw/sweepstakes/internal/common/uuid"
	httpHandler "github.com/fairdraw/sweepstakes/internal/handlers/http"
	"github.com/fairdraw/sweepstakes/internal/repositories/store"
	"github.com/fairdraw/sweepstakes/internal/scheduler"
	"github.com/fairdraw/sweepstakes/internal/services/notifier"
	sweepstakeService "github.com/fairdraw/sweepstakes/internal/services/sweepstake"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	storeRepo, err := store.NewRedis(&store.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create store repository: %v", err)
	}

	clk := clock.New()
	uuider := uuid.New()

	// Initialize websocket hub
	hub, err := notifier.NewHub(&notifier.Config{
		Clock: clk,
	})
	if err != nil {
		log.Fatalf("Failed to create websocket hub: %v", err)
	}

	houseFeeRate, err := decimal.NewFromString(getEnv("HOUSE_FEE_RATE", "0.05"))
	if err != nil {
		log.Fatalf("Invalid HOUSE_FEE_RATE: %v", err)
	}

	// Initialize sweepstake service
	sweepstakeSvc, err := sweepstakeService.New(&sweepstakeService.Config{
		DefaultHouseFeeRate: houseFeeRate,
		Store:               storeRepo,
		Notifier:            hub,
		Clock:               clk,
		UUIDGenerator:       uuider,
	})
	if err != nil {
		log.Fatalf("Failed to create sweepstake service: %v", err)
	}

	sweepInterval, err := time.ParseDuration(getEnv("SWEEP_INTERVAL", "30s"))
	if err != nil {
		log.Fatalf("Invalid SWEEP_INTERVAL: %v", err)
	}

	// Initialize scheduler
	sched, err := scheduler.New(&scheduler.Config{
		SweepInterval:     sweepInterval,
		SweepstakeService: sweepstakeSvc,
		Clock:             clk,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()

	if err := sched.Start(schedulerCtx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Initialize HTTP handler
	handler, err := httpHandler.New(&httpHandler.Config{
		SweepstakeService: sweepstakeSvc,
		Hub:               hub,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}

	router := gin.Default()
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: router,
	}

	go func() {
		log.Printf("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := sched.Stop(); err != nil {
		log.Printf("Error stopping scheduler: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	hub.Shutdown()

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

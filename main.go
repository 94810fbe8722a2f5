package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"testprep-service/internal/cache"
	"testprep-service/internal/config"
	"testprep-service/internal/db"
	"testprep-service/internal/event"
	"testprep-service/internal/handlers"
	"testprep-service/internal/repository"
	"testprep-service/internal/service"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	db.InitMongo(cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	defer db.Disconnect()
	database := db.Client.Database(cfg.MongoDB.Database)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Redis leaderboard cache
	var boards service.BoardCache
	if cfg.Redis.Address != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		boards = cache.NewLeaderboardCache(client, cfg.Redis.LeaderboardTTL)
	} else {
		log.Println("Redis not configured, leaderboards are computed per request")
	}

	// Repositories
	userRepo := repository.NewUserRepository(database)
	testRepo := repository.NewTestRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)
	grantRepo := repository.NewGrantRepository(database)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := attemptRepo.EnsureIndexes(indexCtx); err != nil {
		log.Printf("Warning: could not ensure attempt indexes: %v", err)
	}
	cancel()

	// Services and handlers
	attemptService := service.NewAttemptService(attemptRepo, testRepo, userRepo, boards)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	testService := service.NewTestService(testRepo, userRepo, grantRepo)
	testHandler := handlers.NewTestHandler(testService)

	leaderboardService := service.NewLeaderboardService(attemptRepo, testRepo, userRepo, boards)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	userService := service.NewUserService(userRepo)
	userHandler := handlers.NewUserHandler(userService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "testprep-service"})
	})

	api := r.Group("/api")
	api.Use(requireUser())

	tests := api.Group("/tests")
	{
		tests.GET("/", testHandler.List)
		tests.GET("/:id", testHandler.Get)
		tests.GET("/:id/check-attempt", attemptHandler.CheckAttempt)
		tests.POST("/:id/submit", func(c *gin.Context) {
			attemptHandler.Submit(c)
			if publisher != nil && c.Writer.Status() == http.StatusOK {
				publisher.Publish("test.attempt.submitted", gin.H{
					"test_id":   c.Param("id"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	user := api.Group("/user")
	{
		user.GET("/profile", userHandler.Profile)
		user.GET("/stats", userHandler.Stats)
		user.GET("/attempts", attemptHandler.History)
		user.GET("/attempts/:id", attemptHandler.Review)
	}

	api.GET("/leaderboard/:testId", func(c *gin.Context) {
		leaderboardHandler.Get(c)
		if publisher != nil {
			publisher.Publish("test.leaderboard.viewed", gin.H{
				"test_id":   c.Param("testId"),
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		}
	})

	if err := r.Run(cfg.Server.Host + ":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// requireUser rejects requests missing the gateway-injected user identifier.
// Token verification happens upstream; this service trusts the header.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

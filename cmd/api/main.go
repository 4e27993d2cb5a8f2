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
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"io.myazahq.khalidlifestyle/internal/cache"
	"io.myazahq.khalidlifestyle/internal/config"
	"io.myazahq.khalidlifestyle/internal/db"
	firebaseutil "io.myazahq.khalidlifestyle/internal/firebase"
	"io.myazahq.khalidlifestyle/internal/handlers"
	"io.myazahq.khalidlifestyle/internal/media"
	"io.myazahq.khalidlifestyle/internal/middleware"
	"io.myazahq.khalidlifestyle/internal/store"
)

const cacheLabel = "events"

func main() {
	cfg := config.MustLoad()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Initialize Firebase
	firebaseApp, err := firebaseutil.InitFirebase(cfg.Firebase)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firestoreClient, err := firebaseutil.GetFirestoreClient(firebaseApp)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer firestoreClient.Close()

	// Pick the cache backend: Redis when configured, in-process otherwise
	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	var queryCache cache.Cache
	if cfg.Redis.Host != "" {
		redisClient, err := db.InitRedis(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		defer redisClient.Close()
		queryCache = cache.NewRedis(redisClient, cacheLabel, cacheTTL)
		logger.Infow("using Redis query cache", "ttl", cacheTTL)
	} else {
		queryCache = cache.NewMemory(cacheLabel, cacheTTL)
		logger.Infow("using in-process query cache", "ttl", cacheTTL)
	}

	eventStore := store.NewEventStore(firestoreClient, queryCache, logger)
	inquiryStore := store.NewInquiryStore(firestoreClient, logger)
	uploader := media.NewUploader(cfg.Media, logger)

	// Keep the event list warm so the first public hit after a TTL expiry is
	// not paying the Firestore round trip
	cronManager := cron.New(cron.WithLocation(time.UTC))
	if _, err := cronManager.AddFunc("@every 5m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := eventStore.GetAll(ctx); err != nil {
			logger.Warnw("cache warm failed", "error", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule cache warmer: %v", err)
	}
	cronManager.Start()
	defer cronManager.Stop()

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Add CORS middleware for the site frontend
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventStore, uploader, logger)
	bookingHandler := handlers.NewBookingHandler(inquiryStore, logger)

	// Define routes
	v1 := router.Group("/api/v1")
	{
		events := v1.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/upcoming", eventHandler.ListUpcomingEvents)
			events.GET("/past", eventHandler.ListPastEvents)
			events.GET("/:id", eventHandler.GetEvent)
		}

		v1.GET("/hero-media", eventHandler.HeroMedia)
		v1.POST("/bookings", bookingHandler.CreateInquiry)

		admin := v1.Group("/admin")
		{
			admin.POST("/events", eventHandler.CreateEvent)
			admin.PATCH("/events/:id", eventHandler.UpdateEvent)
			admin.DELETE("/events/:id", eventHandler.DeleteEvent)
			admin.POST("/events/:id/media", eventHandler.UploadMedia)
			admin.POST("/events/:id/media/items", eventHandler.AddMedia)
			admin.DELETE("/events/:id/media/:index", eventHandler.RemoveMedia)
			admin.GET("/inquiries", bookingHandler.ListInquiries)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Infow("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infow("shutting down server")

	// Give a 5 second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Infow("server exited")
}

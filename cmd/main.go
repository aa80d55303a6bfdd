package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "github.com/intervuo/interview-platform/docs"
	"github.com/intervuo/interview-platform/internal/facades"
	"github.com/intervuo/interview-platform/internal/handlers"
	"github.com/intervuo/interview-platform/internal/jwt"
	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/middlewares"
	"github.com/intervuo/interview-platform/internal/repositories"
	"github.com/intervuo/interview-platform/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title interview-platform API
// @version 1.0.0
// @description Backend for a mock-interview platform: cookie sessions, interview history and AI-scored feedback
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		mongoURI, mongoDB,
		redisAddr, redisPassword, redisDB,
		kafkaAddr, kafkaTopic,
		scorerURL, scorerAPIKey, scorerModel,
		jwtSecret, sessionExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		mongoURI, mongoDB,
		redisAddr, redisPassword, redisDB,
		kafkaAddr, kafkaTopic,
		scorerURL, scorerAPIKey, scorerModel,
		jwtSecret, sessionExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, storage, messaging, scoring, and session configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	mongoURI, mongoDB string,
	redisAddr, redisPassword string, redisDB int,
	kafkaAddr, kafkaTopic string,
	scorerURL, scorerAPIKey, scorerModel string,
	jwtSecretKey string, sessionExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// MongoDB config
	mongoURI = getEnv("MONGODB_URI", "mongodb://localhost:27017")
	mongoDB = getEnv("MONGODB_DB", "interview_platform")

	// Redis config; an empty address disables the revocation denylist
	redisAddr = getEnv("REDIS_ADDR", "")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}

	// Kafka config; an empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "feedback_saved")

	// Scoring service config
	scorerURL = getEnv("SCORER_URL", "http://localhost:8090")
	scorerAPIKey = getEnv("SCORER_API_KEY", "")
	scorerModel = getEnv("SCORER_MODEL", "gemini-2.0-flash-001")

	// Session config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if sessionExpSecond, err = strconv.Atoi(getEnv("SESSION_EXP_SECOND", "604800")); err != nil {
		return
	}

	return
}

// run initializes the logger, MongoDB, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	mongoURI, mongoDB string,
	redisAddr, redisPassword string, redisDB int,
	kafkaAddr, kafkaTopic string,
	scorerURL, scorerAPIKey, scorerModel string,
	jwtSecretKey string, sessionExpSecond int,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to MongoDB
	log.Infof("Connecting to MongoDB: %s", mongoURI)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer client.Disconnect(ctx)
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	db := client.Database(mongoDB)

	// Connect to Redis; revocation is optional and disabled when no address
	// is configured
	var revocationRepo *repositories.RevocationCacheRepository
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		revocationRepo = repositories.NewRevocationCacheRepository(rdb)
	} else {
		log.Info("Redis address not configured, token revocation disabled")
	}

	// Kafka writer; optional, feedback events are skipped when no address
	// is configured
	var kafkaWriter *kafka.Writer
	if kafkaAddr != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
	} else {
		log.Info("Kafka address not configured, feedback events disabled")
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(sessionExpSecond)*time.Second)

	// Initialize scoring facade
	scorer := facades.NewScoringHTTPFacade(scorerURL, scorerAPIKey, scorerModel)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	interviewReadRepo := repositories.NewInterviewReadRepository(db)
	feedbackReadRepo := repositories.NewFeedbackReadRepository(db)
	feedbackWriteRepo := repositories.NewFeedbackWriteRepository(db)

	// Initialize services
	var revoker services.TokenRevoker
	if revocationRepo != nil {
		revoker = revocationRepo
	}
	var feedbackKafka services.KafkaWriter
	if kafkaWriter != nil {
		feedbackKafka = kafkaWriter
	}
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, revoker)
	interviewService := services.NewInterviewService(interviewReadRepo)
	feedbackService := services.NewFeedbackService(feedbackReadRepo, feedbackWriteRepo, scorer, feedbackKafka)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, jwtSvc)
	logoutHandler := handlers.NewLogoutHandler(authService, jwtSvc)
	meHandler := handlers.NewMeHandler(authService, jwtSvc)
	getInterviewHandler := handlers.NewGetInterviewHandler(interviewService, authService, jwtSvc)
	latestInterviewsHandler := handlers.NewLatestInterviewsHandler(interviewService, authService, jwtSvc)
	userInterviewsHandler := handlers.NewUserInterviewsHandler(interviewService, authService, jwtSvc)
	getFeedbackHandler := handlers.NewGetFeedbackHandler(feedbackService, authService, jwtSvc)
	createFeedbackHandler := handlers.NewCreateFeedbackHandler(feedbackService, authService, jwtSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware())

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", registerHandler)
		r.Post("/auth/login", loginHandler)
		r.Post("/auth/logout", logoutHandler)
		r.Get("/auth/me", meHandler)

		// Protected routes with session middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc))
			r.Get("/interviews/latest", latestInterviewsHandler)
			r.Get("/interviews/my", userInterviewsHandler)
			r.Get("/interviews/{id}", getInterviewHandler)
			r.Get("/interviews/{id}/feedback", getFeedbackHandler)
			r.Post("/feedback", createFeedbackHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

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
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/imagevault/image-service/internal/facades"
	"github.com/imagevault/image-service/internal/handlers"
	"github.com/imagevault/image-service/internal/jwt"
	"github.com/imagevault/image-service/internal/logger"
	"github.com/imagevault/image-service/internal/middlewares"
	"github.com/imagevault/image-service/internal/repositories"
	"github.com/imagevault/image-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all runtime configuration parsed from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	userCacheExp      time.Duration

	kafkaBroker string
	kafkaTopic  string

	storageEndpoint  string
	storageAccessKey string
	storageSecretKey string
	storageBucket    string
	storagePublicURL string
	storageUseSSL    bool
	storageTimeout   time.Duration

	jwtSecretKey string
	jwtExp       time.Duration
}

// @title image-service API
// @version 1.0.0
// @description Authenticated media-asset service: image upload, listing, rename and delete over an S3-compatible object store
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return
	}
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return
	}
	userCacheExpSecond, err := getEnvInt("USER_CACHE_EXP_SECOND", 300)
	if err != nil {
		return
	}
	cfg.userCacheExp = time.Duration(userCacheExpSecond) * time.Second

	// Kafka config (optional; empty broker disables orphan-event publishing)
	cfg.kafkaBroker = getEnv("KAFKA_BROKER", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "image-orphan-events")

	// Object storage config
	cfg.storageEndpoint = getEnv("STORAGE_ENDPOINT", "localhost:9000")
	cfg.storageAccessKey = getEnv("STORAGE_ACCESS_KEY", "minioadmin")
	cfg.storageSecretKey = getEnv("STORAGE_SECRET_KEY", "minioadmin")
	cfg.storageBucket = getEnv("STORAGE_BUCKET", "images")
	cfg.storagePublicURL = getEnv("STORAGE_PUBLIC_URL", "http://localhost:9000/images")
	cfg.storageUseSSL = getEnv("STORAGE_USE_SSL", "false") == "true"
	storageTimeoutSecond, err := getEnvInt("STORAGE_TIMEOUT_SECOND", 30)
	if err != nil {
		return
	}
	cfg.storageTimeout = time.Duration(storageTimeoutSecond) * time.Second

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExpSecond, err := getEnvInt("JWT_EXP_SECOND", 604800)
	if err != nil {
		return
	}
	cfg.jwtExp = time.Duration(jwtExpSecond) * time.Second

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, object storage, and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for orphan reconciliation events
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka orphan events enabled on %s topic %s", cfg.kafkaBroker, cfg.kafkaTopic)
	} else {
		logger.Log.Warn("Kafka broker not configured, orphan events will only be logged")
	}

	// Remote object store
	cloudStore, err := facades.NewCloudStoreFacade(
		cfg.storageEndpoint, cfg.storageAccessKey, cfg.storageSecretKey,
		cfg.storageBucket, cfg.storagePublicURL, cfg.storageUseSSL, cfg.storageTimeout,
	)
	if err != nil {
		logger.Log.Errorw("object storage initialization error", "error", err)
		return err
	}

	// Initialize JWT service
	tokenSvc := jwt.New(jwt.WithSecretKey(cfg.jwtSecretKey), jwt.WithExpiration(cfg.jwtExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	userCacheRepo := repositories.NewUserCacheRepository(rdb, cfg.userCacheExp)
	imageReadRepo := repositories.NewImageReadRepository(db)
	imageWriteRepo := repositories.NewImageWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenSvc)
	identityService := services.NewIdentityService(tokenSvc, userReadRepo, userCacheRepo)
	imageService := services.NewImageService(imageWriteRepo, imageReadRepo, cloudStore, kafkaWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	uploadHandler := handlers.NewUploadHandler(imageService)
	allImagesHandler := handlers.NewAllImagesHandler(imageService)
	myImagesHandler := handlers.NewMyImagesHandler(imageService)
	renameHandler := handlers.NewRenameHandler(imageService)
	deleteHandler := handlers.NewDeleteHandler(imageService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/auth/register", registerHandler)
	r.Post("/auth/login", loginHandler)

	// Protected routes behind the identity resolver
	authMiddleware := middlewares.AuthMiddleware(identityService)
	txMiddleware := middlewares.TxMiddleware(db)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/allImages", allImagesHandler)
		r.Get("/myImages", myImagesHandler)
		r.With(txMiddleware).Post("/upload", uploadHandler)
		r.With(txMiddleware).Put("/image/{id}", renameHandler)
		r.With(txMiddleware).Delete("/image/{id}", deleteHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cloudinary_client "brickscapital/clients/cloudinary"
	kafka_client "brickscapital/clients/kafka"
	mongo_client "brickscapital/clients/mongo"
	rabbitmq_client "brickscapital/clients/rabbitmq"
	redis_client "brickscapital/clients/redis"
	"brickscapital/config"
	"brickscapital/middleware"
	"brickscapital/routes"
	"brickscapital/services"
	"brickscapital/templates"
	"brickscapital/utils/i18n"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// backends holds everything that must be released on shutdown.
type backends struct {
	publisher services.EventPublisher
	redis     *redis.Client
	mongo     bool
}

// GracefulShutdown stops the server on SIGINT or SIGTERM and then releases
// the backends. The returned channel is closed once cleanup has finished.
func GracefulShutdown(server *http.Server, limiter *middleware.RateLimiter, b *backends) <-chan struct{} {
	stopper := make(chan os.Signal, 1)
	// Listen for interrupt and SIGTERM signals
	signal.Notify(stopper, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-stopper
		zap.L().Info("Shutting down gracefully...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdown(ctx, server, limiter, b)
		sentry.Flush(2 * time.Second)
		zap.L().Info("Server exited gracefully")
	}()
	return done
}

// shutdown drains the server before closing what handlers write to.
func shutdown(ctx context.Context, server *http.Server, limiter *middleware.RateLimiter, b *backends) {
	limiter.Stop()
	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("Server shutdown failed", zap.Error(err))
	}

	b.publisher.Close()
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			zap.L().Error("Error closing Redis", zap.Error(err))
		}
	}
	if b.mongo {
		mongo_client.Disconnect(ctx)
	}
}

func setupLogger(level string) {
	config := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	logger, _ := config.Build()
	zap.ReplaceGlobals(logger)
}

func setupSentry(cfg *config.Config) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		EnableTracing:    true,
		TracesSampleRate: cfg.SentrySampleRate,
	}); err != nil {
		zap.L().Error("Sentry initialization failed: ", zap.Any("error", err.Error()))
	}
}

// setupBackends connects every configured backend. A backend that is not
// configured, or cannot be reached, is replaced by its in-process version.
func setupBackends(ctx context.Context, cfg *config.Config) (*backends, services.CalculatorStore, services.EnquiryStore, services.AssetServiceI) {
	b := &backends{}

	calculatorStore := services.NewMemoryCalculatorStore(cfg.SessionTTL)
	if cfg.RedisAddr != "" {
		client, err := redis_client.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			sentry.CaptureException(err)
			zap.L().Error("Redis unavailable, keeping calculator state in memory", zap.Error(err))
		} else {
			b.redis = client
			calculatorStore = services.NewRedisCalculatorStore(client, cfg.SessionTTL)
		}
	}

	enquiryStore := services.NewMemoryEnquiryStore()
	if cfg.MongoURI != "" {
		client, err := mongo_client.Connect(ctx, cfg.MongoURI)
		if err != nil {
			sentry.CaptureException(err)
			zap.L().Error("MongoDB unavailable, keeping enquiries in memory", zap.Error(err))
		} else {
			b.mongo = true
			enquiryStore = services.NewMongoEnquiryStore(client.Database(cfg.Database).Collection(cfg.EnquiryColl))
		}
	}

	var publishers []services.EventPublisher
	if cfg.KafkaServers != "" {
		producer, err := kafka_client.NewProducer(cfg.KafkaServers, cfg.KafkaTopic)
		if err != nil {
			sentry.CaptureException(err)
			zap.L().Error("Kafka unavailable", zap.Error(err))
		} else {
			publishers = append(publishers, producer)
		}
	}
	if url := cfg.RabbitURL(); url != "" {
		publisher, err := rabbitmq_client.Dial(url, cfg.RabbitQueue)
		if err != nil {
			sentry.CaptureException(err)
			zap.L().Error("RabbitMQ unavailable", zap.Error(err))
		} else {
			publishers = append(publishers, publisher)
		}
	}
	b.publisher = services.NewFanoutPublisher(publishers...)

	assets := services.NewLocalAssetService()
	if cfg.CloudinaryURL != "" {
		cld, err := cloudinary_client.New(cfg.CloudinaryURL)
		if err != nil {
			zap.L().Error("Invalid Cloudinary URL, serving local images", zap.Error(err))
		} else {
			assets = services.NewCloudinaryAssetService(cld)
		}
	}

	return b, calculatorStore, enquiryStore, assets
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	setupLogger(cfg.LogLevel)
	setupSentry(cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.Parse()
	if err != nil {
		zap.L().Fatal("Error parsing templates", zap.Error(err))
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	b, calculatorStore, enquiryStore, assets := setupBackends(connectCtx, cfg)
	cancel()

	defaultLang, _ := i18n.Parse(cfg.DefaultLanguage)
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())

	router.Use(sentrygin.New(sentrygin.Options{}))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LanguageMiddleware(defaultLang))
	router.Use(middleware.VisitorMiddleware())
	router.SetHTMLTemplate(tmpl)

	routes.Routes(router, routes.Dependencies{
		Calculator:  services.NewCalculatorService(calculatorStore, b.publisher),
		Contact:     services.NewContactService(enquiryStore, b.publisher),
		Assets:      assets,
		RateLimiter: limiter,
		AdminToken:  cfg.AdminToken,
	})

	// Create a server instance using gin engine as handler
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	done := GracefulShutdown(server, limiter, b)

	zap.L().Info("Starting server", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Error starting server: %v", err)
	}
	<-done
}

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/bookwise-app/bookwise-server/internal/cache"
	"github.com/bookwise-app/bookwise-server/internal/config"
	dbpkg "github.com/bookwise-app/bookwise-server/internal/db"
	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
	"github.com/bookwise-app/bookwise-server/internal/logging"
	"github.com/bookwise-app/bookwise-server/internal/media"
	"github.com/bookwise-app/bookwise-server/internal/reminder"
	"github.com/bookwise-app/bookwise-server/internal/routes"
	"github.com/bookwise-app/bookwise-server/internal/timezone"
)

func main() {
	cfg := config.Load()

	log := logging.New()
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	// ======================================================
	// SCHEDULER
	// ======================================================
	catalog, err := schedule.BuildCatalog(
		cfg.OpenTime,
		cfg.CloseTime,
		time.Duration(cfg.SlotMinutes)*time.Minute,
	)
	if err != nil {
		log.Fatal("invalid business hours", zap.Error(err))
	}

	sched := schedule.New(
		catalog,
		timezone.Location(cfg.Timezone),
		time.Duration(cfg.MinAdvanceMinutes)*time.Minute,
	)

	// ======================================================
	// OPTIONAL INFRA
	// ======================================================
	var availCache *cache.Availability
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		availCache = cache.NewAvailability(rdb, sched.Location(), 5*time.Minute, log)
		log.Info("availability cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	var drafter reminder.Drafter
	if cfg.GeminiAPIKey != "" {
		g, err := reminder.NewGeminiDrafter(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("reminder drafting disabled", zap.Error(err))
		} else {
			drafter = g
			log.Info("reminder drafting enabled", zap.String("model", cfg.GeminiModel))
		}
	}

	var mediaStore *media.Store
	if cfg.S3Bucket != "" {
		awsCfg := aws.Config{
			Region:      cfg.S3Region,
			Credentials: credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		}
		mediaStore = media.NewStore(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3PublicURL)
		log.Info("media storage enabled", zap.String("bucket", cfg.S3Bucket))
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Scheduler: sched,
		Cache:     availCache,
		Drafter:   drafter,
		Media:     mediaStore,
		Log:       log,
	})

	log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"liquor-bartender/internal/bar"
	"liquor-bartender/internal/catalog"
	"liquor-bartender/internal/config"
	apihttp "liquor-bartender/internal/http"
	"liquor-bartender/internal/llm"
	"liquor-bartender/internal/profile"
	"liquor-bartender/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var catalogSource catalog.Source
	if cfg.DatabaseURL != "" {
		pool, err := catalog.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		catalogSource = catalog.NewPgSource(pool)
	} else {
		catalogSource = catalog.NewCSVSource(cfg.CatalogCSVPath)
	}

	var barFetcher bar.Fetcher = bar.NewClient(cfg.BarAPIBaseURL, cfg.BarFetchTimeout, logger)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, bar cache disabled", zap.Error(err))
		} else {
			barFetcher = bar.NewCachedFetcher(barFetcher, redisClient, cfg.BarCacheTTL, logger)
		}
		cancel()
	}

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)

	defaults := profile.Defaults{
		Spirit: cfg.DefaultSpirit,
		Brand:  cfg.DefaultBrand,
		Proof:  cfg.DefaultProof,
		Price:  cfg.DefaultPrice,
	}
	models := service.ModelSet{
		Analyze:   cfg.LLMModelAnalyze,
		Recommend: cfg.LLMModel,
		Format:    cfg.LLMModelFormat,
	}

	bartender := service.NewBartender(barFetcher, catalogSource, llmClient, defaults, models, cfg.MinCandidates, cfg.MaxCandidates, logger)
	recommendHandler := apihttp.NewRecommendHandler(logger, bartender)
	router := apihttp.NewRouter(logger, recommendHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

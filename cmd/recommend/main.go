package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"liquor-bartender/internal/bar"
	"liquor-bartender/internal/catalog"
	"liquor-bartender/internal/config"
	"liquor-bartender/internal/llm"
	"liquor-bartender/internal/profile"
	"liquor-bartender/internal/service"
)

// Recomendador de un solo disparo: imprime las recomendaciones para un
// username por stdout. El username viene de argv o de BAXUS_USERNAME.
func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	username := os.Getenv("BAXUS_USERNAME")
	if len(os.Args) > 1 {
		username = os.Args[1]
	}
	if username == "" {
		log.Fatal("username not provided: run `recommend <username>` or set BAXUS_USERNAME")
	}

	logger := zap.NewExample()
	defer logger.Sync()

	catalogSource := catalog.NewCSVSource(cfg.CatalogCSVPath)
	barClient := bar.NewClient(cfg.BarAPIBaseURL, cfg.BarFetchTimeout, logger)
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

	bartender := service.NewBartender(barClient, catalogSource, llmClient, defaults, models, cfg.MinCandidates, cfg.MaxCandidates, logger)

	result, err := bartender.RecommendForUser(ctx, username)
	if err != nil {
		log.Fatalf("recommend for %s: %v", username, err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

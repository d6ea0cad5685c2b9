package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8000"`

	// Fuentes de catálogo: Postgres si DATABASE_URL está definida, CSV si no.
	DatabaseURL    string `env:"DATABASE_URL"`
	CatalogCSVPath string `env:"CATALOG_CSV_PATH" envDefault:"liquors.csv"`

	BarAPIBaseURL   string        `env:"BAR_API_BASE_URL" envDefault:"http://services.baxus.co"`
	BarFetchTimeout time.Duration `env:"BAR_FETCH_TIMEOUT" envDefault:"5s"`
	BarCacheTTL     time.Duration `env:"BAR_CACHE_TTL" envDefault:"5m"`

	LLMAPIKey       string `env:"LLM_API_KEY,required"`
	LLMBaseURL      string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel        string `env:"LLM_MODEL" envDefault:"gpt-4o"`
	LLMModelAnalyze string `env:"LLM_MODEL_ANALYZE" envDefault:"gpt-4o-mini"`
	LLMModelFormat  string `env:"LLM_MODEL_FORMAT" envDefault:"gpt-4o-mini"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Política de degradación: estos valores alimentan el perfil por defecto
	// y la barra de respaldo cuando la fuente remota no responde.
	DefaultSpirit string  `env:"DEFAULT_SPIRIT" envDefault:"whiskey"`
	DefaultBrand  string  `env:"DEFAULT_BRAND" envDefault:"Jameson"`
	DefaultProof  float64 `env:"DEFAULT_PROOF" envDefault:"80"`
	DefaultPrice  float64 `env:"DEFAULT_PRICE" envDefault:"30"`

	MaxCandidates int `env:"MAX_CANDIDATES" envDefault:"20"`
	MinCandidates int `env:"MIN_CANDIDATES" envDefault:"5"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

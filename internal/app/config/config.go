package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	LogLevel        string
	DatabaseURL     string
	AuthJWTSecret   string
	CORSAllowOrigin string
	OpenAIBaseURL   string
	OpenAIAPIKey    string
	OpenAIModel     string
	PDFFontDir      string
}

func MustLoad() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		LogLevel:        env("LOG_LEVEL", "info"),
		DatabaseURL:     mustEnv("DATABASE_URL"),
		AuthJWTSecret:   mustEnv("AUTH_JWT_SECRET"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		OpenAIBaseURL:   env("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:    mustEnv("OPENAI_API_KEY"),
		OpenAIModel:     env("OPENAI_MODEL", "gpt-4o-mini"),
		PDFFontDir:      env("PDF_FONT_DIR", "assets/fonts"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

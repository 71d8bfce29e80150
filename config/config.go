package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/5hjiwoo/foodrecommend/logger"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver   string // "postgres" | "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string // sqlite file or DSN

	JWTSecret string
	JWTTTL    time.Duration

	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIChatModel  string
	OpenAIImageModel string

	StorageBackend string // "local" | "s3"
	MediaRoot      string
	MediaURL       string
	S3Bucket       string
	S3Region       string
	CloudFrontURL  string

	RekognitionEnabled bool
	AWSRegion          string

	CORSOrigins []string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "foodrecommend"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "foodrecommend.db"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getDuration("JWT_TTL", 72*time.Hour),

		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		OpenAIChatModel:  getEnv("OPENAI_CHAT_MODEL", "gpt-4o"),
		OpenAIImageModel: getEnv("OPENAI_IMAGE_MODEL", "dall-e-2"),

		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		MediaRoot:      getEnv("MEDIA_ROOT", "./media"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		CloudFrontURL:  os.Getenv("CLOUDFRONT_URL"),

		RekognitionEnabled: getBool("REKOGNITION_ENABLED", false),
		AWSRegion:          os.Getenv("AWS_REGION"),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}
	cfg.MediaURL = getEnv("MEDIA_URL", "http://localhost:"+cfg.Port+"/media")

	cfg.S3Region = os.Getenv("S3_REGION")
	if cfg.S3Region == "" {
		cfg.S3Region = cfg.AWSRegion // fallback
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET not set"))
	}
	if c.OpenAIAPIKey == "" {
		errs = append(errs, errors.New("OPENAI_API_KEY not set"))
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, errors.New("DB_DRIVER must be postgres or sqlite"))
	}
	switch c.StorageBackend {
	case "local":
	case "s3":
		if c.S3Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET not set"))
		}
	default:
		errs = append(errs, errors.New("STORAGE_BACKEND must be local or s3"))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Backend selects which persistence implementation the process runs against.
// It is read once at startup; every store call after that goes through the
// same implementation.
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

type Config struct {
	StoreBackend string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	MongoURL string
	MongoDB  string

	RedisAddr     string
	RedisPort     string
	RedisPassword string

	JWTSecret string

	StripeSecretKey     string
	StripeWebhookSecret string
	StripePricePlus     string
	StripePriceInvestor string
	StripePriceElite    string
	GeminiAPIKey        string
	SendGridAPIKey      string
	EmailFromAddress    string
	AppBaseURL          string

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func (c *Config) RedisFullAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisAddr, c.RedisPort)
}

// Validate fails fast on missing connection settings for the selected backend.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendPostgres:
		if c.DBHost == "" || c.DBName == "" {
			return errors.New("DB_HOST and DB_NAME are required for the postgres backend")
		}
	case BackendMongo:
		if c.MongoURL == "" || c.MongoDB == "" {
			return errors.New("MONGO_URL and MONGO_DB are required for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		StoreBackend: getEnv("STORE_BACKEND", BackendPostgres),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "5432"),

		MongoURL: os.Getenv("MONGO_URL"),
		MongoDB:  os.Getenv("MONGO_DB"),

		RedisAddr:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripePricePlus:     os.Getenv("STRIPE_PRICE_PERSONAL_PLUS"),
		StripePriceInvestor: os.Getenv("STRIPE_PRICE_INVESTOR"),
		StripePriceElite:    os.Getenv("STRIPE_PRICE_BUSINESS_PRO_ELITE"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		SendGridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		EmailFromAddress:    getEnv("EMAIL_FROM", "noreply@budgetwise.app"),
		AppBaseURL:          getEnv("APP_BASE_URL", "http://localhost:8080"),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/app.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

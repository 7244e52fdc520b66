package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	GroupingIndian  = "indian"
	GroupingWestern = "western"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Budget    BudgetConfig
	Currency  CurrencyConfig
	RateLimit RateLimitConfig
	Store     StoreConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
}

// BudgetConfig controls budget evaluation defaults and the calendar used for bucketing
type BudgetConfig struct {
	DefaultCeiling decimal.Decimal
	Location       *time.Location
}

// CurrencyConfig controls how amounts are rendered in budget notifications
type CurrencyConfig struct {
	Symbol   string
	Grouping string
}

type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

// StoreConfig tunes the breaker in front of the record store
type StoreConfig struct {
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "expense_user"),
			Password:        getEnv("DB_PASSWORD", "expense_password"),
			Name:            getEnv("DB_NAME", "expense_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 24*time.Hour),
			Issuer:              getEnv("JWT_ISSUER", "expense-tracker"),
		},
		Budget: BudgetConfig{
			DefaultCeiling: getDecimalEnv("BUDGET_DEFAULT_CEILING", decimal.NewFromInt(2000)),
			Location:       getLocationEnv("APP_TIMEZONE", time.UTC),
		},
		Currency: CurrencyConfig{
			Symbol:   getEnv("CURRENCY_SYMBOL", "₹"),
			Grouping: getGroupingEnv("CURRENCY_GROUPING", GroupingIndian),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Store: StoreConfig{
			BreakerMaxFailures:  getIntEnv("STORE_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("STORE_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var loadJWTKeysErr error
	config.JWT.PrivateKey, config.JWT.PublicKey, loadJWTKeysErr = config.loadJWTKeys()
	if loadJWTKeysErr != nil {
		log.Fatal("Failed to load RSA keys:", loadJWTKeysErr)
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getDecimalEnv parses a non-negative decimal; negative or malformed values fall back to the default
func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(strings.TrimSpace(value)); err == nil && !d.IsNegative() {
			return d
		}
		log.Printf("WARNING: %s=%q is not a non-negative number, using %s", key, value, defaultValue.String())
	}
	return defaultValue
}

func getLocationEnv(key string, defaultValue *time.Location) *time.Location {
	if value := os.Getenv(key); value != "" {
		loc, err := time.LoadLocation(value)
		if err == nil {
			return loc
		}
		log.Printf("WARNING: unknown time zone %s=%q, using %s", key, value, defaultValue.String())
	}
	return defaultValue
}

func getGroupingEnv(key, defaultValue string) string {
	value := strings.ToLower(getEnv(key, defaultValue))
	switch value {
	case GroupingIndian, GroupingWestern:
		return value
	default:
		log.Printf("WARNING: unknown currency grouping %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
}

// loadJWTKeys reads base64 PEM keys from JWT_PRIVATE_KEY and JWT_PUBLIC_KEY.
// Outside production a throwaway pair is generated when either is unset.
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateEnc, publicEnc := os.Getenv("JWT_PRIVATE_KEY"), os.Getenv("JWT_PUBLIC_KEY")
	if privateEnc == "" || publicEnc == "" {
		if c.IsProduction() {
			return nil, nil, errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY are required in production")
		}
		log.Printf("JWT keys not configured for %s, generating an ephemeral keypair", c.Server.Environment)
		return GenerateRSAKeyPair()
	}

	privateBlock, err := decodePEMEnv("JWT_PRIVATE_KEY", privateEnc)
	if err != nil {
		return nil, nil, err
	}
	publicBlock, err := decodePEMEnv("JWT_PUBLIC_KEY", publicEnc)
	if err != nil {
		return nil, nil, err
	}

	privateKey, err := parseRSAPrivateKey(privateBlock)
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_PRIVATE_KEY: %w", err)
	}
	publicKey, err := parseRSAPublicKey(publicBlock)
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_PUBLIC_KEY: %w", err)
	}

	log.Println("Loaded JWT keypair from environment")
	return privateKey, publicKey, nil
}

func decodePEMEnv(name, encoded string) (*pem.Block, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%s is not valid base64: %w", name, err)
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("%s holds no PEM block", name)
	}
	return block, nil
}

func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// parseRSAPrivateKey accepts PKCS#1 and PKCS#8 encodings
func parseRSAPrivateKey(block *pem.Block) (*rsa.PrivateKey, error) {
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not RSA")
	}
	return key, nil
}

func parseRSAPublicKey(block *pem.Block) (*rsa.PublicKey, error) {
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not RSA")
	}
	return key, nil
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EsewaConfig holds the gateway credentials and redirect targets. The secret
// key is server-held and must never reach the client.
type EsewaConfig struct {
	SecretKey   string
	ProductCode string
	SuccessURL  string
	FailureURL  string
}

// PricingConfig drives server-side order pricing. Client-submitted totals are
// never trusted.
type PricingConfig struct {
	TaxRate               float64
	ShippingFlatFee       float64
	FreeShippingThreshold float64
}

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	FrontendURL string
	JWTSecret   string

	Esewa   EsewaConfig
	Pricing PricingConfig
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	frontendURL := getenv("FRONTEND_URL", "http://localhost:5173")

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenv("DB_PORT", "5432"),
		AppPort:    getenv("APP_PORT", "5000"),
		AppEnv:     os.Getenv("APP_ENV"),

		FrontendURL: frontendURL,
		JWTSecret:   os.Getenv("JWT_SECRET"),

		Esewa: EsewaConfig{
			SecretKey:   getenv("ESEWA_SECRET_KEY", "8gBm/:&EnhH.1/q"),
			ProductCode: getenv("ESEWA_PRODUCT_CODE", "EPAYTEST"),
			SuccessURL:  frontendURL + "/payment/esewa/success",
			FailureURL:  frontendURL + "/checkout?payment=failed_esewa",
		},
		Pricing: PricingConfig{
			TaxRate:               getenvFloat("TAX_RATE", 0.13),
			ShippingFlatFee:       getenvFloat("SHIPPING_FLAT_FEE", 150),
			FreeShippingThreshold: getenvFloat("FREE_SHIPPING_THRESHOLD", 1500),
		},
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return f
}

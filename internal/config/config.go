package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string
	LogFile  string

	// Pricing knobs, all in whole COP except the tax rate which is
	// expressed in basis points so rounding stays integer-exact.
	DeliveryFee     int64
	FreeDeliveryMin int64
	TaxRateBp       int64
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	cfg := Config{
		Port:            getenv("PORT", "8080"),
		DBDSN:           getenv("DB_DSN", "calipollo.db"),
		MediaDir:        getenv("MEDIA_DIR", "./web/media"),
		LogFile:         getenv("LOG_FILE", "./calipollo.log"),
		DeliveryFee:     getint("DELIVERY_FEE", 3000),
		FreeDeliveryMin: getint("FREE_DELIVERY_MIN", 50000),
		TaxRateBp:       getint("TAX_RATE_BP", 800),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s fee=%d free_min=%d tax_bp=%d",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.DeliveryFee, cfg.FreeDeliveryMin, cfg.TaxRateBp)
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int64) int64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		log.Printf("[config] ignoring bad %s=%q", k, v)
		return def
	}
	return n
}

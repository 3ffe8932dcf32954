package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort int
	HTTPPort int

	StorageKey   string
	CookieSecure bool

	Locale      string
	Currency    string
	ShopName    string
	CatalogFile string
}

func Load() Config {
	return Config{
		AppEnv:       getEnv("APP_ENV", "dev"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		HTTPPort:     getEnvInt("HTTP_PORT", 8080),
		GRPCPort:     getEnvInt("GRPC_PORT", 8081),
		StorageKey:   getEnv("CART_STORAGE_KEY", "cart"),
		CookieSecure: getEnvBool("CART_COOKIE_SECURE", false),
		Locale:       getEnv("LOCALE", "en-KE"),
		Currency:     getEnv("CURRENCY_LABEL", "Ksh"),
		ShopName:     getEnv("SHOP_NAME", "Habaswein"),
		CatalogFile:  getEnv("CATALOG_FILE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GeoIPHeader string // request header carrying the platform's GeoIP country
	RedisAddr   string // optional; empty keeps the in-process geo cache

	// External service endpoints; empty keeps the library defaults.
	IPAPIURL          string
	ReverseGeocodeURL string

	// Extra hostnames exempt from the canonical-domain redirect.
	DevHosts []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		GeoIPHeader:       getEnv("GEOIP_HEADER", "CF-IPCountry"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		IPAPIURL:          os.Getenv("IP_API_URL"),
		ReverseGeocodeURL: os.Getenv("REVERSE_GEOCODE_URL"),
		DevHosts:          splitList(os.Getenv("DEV_HOSTS")),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

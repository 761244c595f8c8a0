package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	"tender_finder/internal/domain/entities"
	"tender_finder/internal/usecase"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"

	defaultPort = "8080"
)

// ServerConfig is everything Run reads from the environment.
type ServerConfig struct {
	Port             string
	Store            string
	AllowedOrigins   []string
	DefaultReference entities.Coordinate
}

func LoadServerConfig() ServerConfig {
	store := strings.ToLower(getenvDefault("TENDER_STORE", StorePostgres))
	if store != StoreDynamoDB && store != StorePostgres {
		log.Printf("[tender][server] unknown TENDER_STORE=%q, falling back to %s", store, StorePostgres)
		store = StorePostgres
	}

	return ServerConfig{
		Port:           getenvDefault("PORT", defaultPort),
		Store:          store,
		AllowedOrigins: splitOrigins(getenvDefault("APP_ORIGIN", "*")),
		DefaultReference: entities.Coordinate{
			Lat: getenvFloat("DEFAULT_REFERENCE_LAT", usecase.DefaultReferencePoint.Lat),
			Lng: getenvFloat("DEFAULT_REFERENCE_LNG", usecase.DefaultReferencePoint.Lng),
		},
	}
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		log.Printf("[tender][server] invalid %s=%q, using %v", key, v, def)
		return def
	}
	return f
}

// Package config loads server configuration from the environment.
package config

import "os"

// Config holds every externally-configured setting of the server.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string
	// MongoURI is the connection string of the document store.
	MongoURI string
	// MongoDB is the database name inside the document store.
	MongoDB string
	// JWTSecret signs and verifies auth tokens. Must be set in production.
	JWTSecret string
	// CORSOrigin is the single allowed cross-origin origin.
	CORSOrigin string
	// CloudinaryURL configures the object-storage client (cloudinary://... form).
	CloudinaryURL string
	// RedisAddr enables the token-revocation store when non-empty.
	RedisAddr string
}

// LoadConfig reads configuration from environment variables,
// falling back to development defaults where it is safe to do so.
func LoadConfig() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "jobboard"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:5173"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

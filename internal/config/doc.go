// Package config manages application configuration for the SL Youth Jobs API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single source
// of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection and migration settings
//   - JWTConfig: JWT signing and validation settings
//   - SeedConfig: startup data seeding flags
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	DB_HOST, DB_PORT     - SurrealDB address
//	DB_NAMESPACE, DB_DATABASE
//	DB_USER, DB_PASSWORD
//	DB_MIGRATIONS_PATH   - Directory of .surql schema files
//	JWT_PRIVATE_KEY_PATH - RSA private key for token signing
//	JWT_PUBLIC_KEY_PATH  - RSA public key for token validation
//	JWT_EXPIRATION_MINS  - Token lifetime (default: 1440)
//	SEED_DEMO_DATA       - Seed demo accounts and jobs on startup
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config

// Package config provides centralized default values for StoreScope
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Dataset Generation
	DatasetRecordCount int
	DatasetSeed        int64
	DatasetTTL         time.Duration

	// Dataset Persistence
	DatasetPersistence bool
	DatabasePath       string

	// Cache Cleanup
	CacheCleanupInterval time.Duration
	CacheCleanupVerbose  bool

	// Admin Access
	AdminPassword string
	JWTSecret     string
	AdminTokenTTL time.Duration
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Dataset Generation
	DatasetRecordCount = getEnvInt("DATASET_RECORD_COUNT", 30000)
	DatasetSeed = getEnvInt64("DATASET_SEED", 42)
	DatasetTTL = time.Duration(getEnvInt("DATASET_TTL_SECONDS", 3600)) * time.Second

	// Dataset Persistence
	DatasetPersistence = getEnvBool("DATASET_PERSISTENCE", true)
	DatabasePath = getEnvString("DATABASE_PATH", "storescope.db")

	// Cache Cleanup
	CacheCleanupInterval = time.Duration(getEnvInt("CACHE_CLEANUP_INTERVAL_MINUTES", 5)) * time.Minute
	CacheCleanupVerbose = getEnvBool("CACHE_CLEANUP_VERBOSE", false)

	// Admin Access
	AdminPassword = getEnvString("ADMIN_PASSWORD", "")
	JWTSecret = getEnvString("JWT_SECRET", "")
	AdminTokenTTL = getEnvDuration("ADMIN_TOKEN_TTL", 24*time.Hour)
}

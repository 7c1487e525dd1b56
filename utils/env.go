package utils

import "os"

// GetEnv retrieves an environment variable, falling back to def when unset
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

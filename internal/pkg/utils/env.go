package utils

import (
	"os"
	"strings"
)

// GetEnv returns the trimmed value of key, or fallback when it is unset or blank.
func GetEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

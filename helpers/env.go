package helpers

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is prepended to every variable name read by this file
const EnvPrefix = "EZPLOT_"

// Getenv reads EZPLOT_<name>, surrounding spaces removed
func Getenv(name string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + name))
}

func GetenvOr(name, fallback string) string {
	if value := Getenv(name); value != "" {
		return value
	}
	return fallback
}

// GetenvBool is true for "true" or "1", in any case
func GetenvBool(name string) bool {
	switch strings.ToLower(Getenv(name)) {
	case "true", "1":
		return true
	}
	return false
}

func GetenvInt(name string, fallback int) int {
	value, err := strconv.Atoi(Getenv(name))
	if err != nil {
		return fallback
	}
	return value
}

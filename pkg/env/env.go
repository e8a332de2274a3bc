package env

import (
	"os"
	"strconv"
	"strings"
)

// Prefix namespaces the storefront's process environment.
const Prefix = "STOREFRONT_"

// Get returns STOREFRONT_<key> when set, then the bare key, then fallback.
func Get(key, fallback string) string {
	if val := lookup(key); val != "" {
		return val
	}
	return fallback
}

// Bool parses the variable with strconv.ParseBool and returns fallback when the
// value is unset or malformed.
func Bool(key string, fallback bool) bool {
	val := lookup(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func lookup(key string) string {
	key = strings.TrimPrefix(key, Prefix)
	if val := strings.TrimSpace(os.Getenv(Prefix + key)); val != "" {
		return val
	}
	return strings.TrimSpace(os.Getenv(key))
}

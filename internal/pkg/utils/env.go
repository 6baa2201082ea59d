package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// envValue returns the trimmed value of key. A blank value counts as unset so
// an empty line in .env keeps the default.
func envValue(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func parseEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw, ok := envValue(key)
	if !ok {
		return defaultValue
	}
	parsed, err := parse(raw)
	if err != nil {
		log.Printf("env %s=%q is invalid (%v), using %v", key, raw, err, defaultValue)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	if value, ok := envValue(key); ok {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	return parseEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return parseEnv(key, defaultValue, strconv.ParseBool)
}

package util

import (
	"os"
	"strconv"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// GetEnvironmentInt returns fallback when the variable is unset or not an integer
func GetEnvironmentInt(env map[string]string, key string, fallback int) int {
	if env[key] == "" {
		return fallback
	}

	n, err := strconv.Atoi(env[key])
	if err != nil {
		return fallback
	}

	return n
}

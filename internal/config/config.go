package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// SecretEnvVar is the environment variable holding the API key for the
// chat-completion endpoint.
const SecretEnvVar = "CHAT_API_KEY"

// LoadSecret reads the named secret from the process environment,
// consulting an optional .env file first (values already present in the
// environment win, and a missing .env file is not an error). An empty
// result is a fatal startup condition for the caller: no request may
// proceed without the key.
func LoadSecret(name string) (string, error) {
	_ = godotenv.Load()
	key := os.Getenv(name)
	if key == "" {
		return "", fmt.Errorf("required secret %s is not set in the environment or a .env file", name)
	}
	return key, nil
}

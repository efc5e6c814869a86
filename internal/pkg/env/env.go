package env

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var Env map[string]string

func GetEnv(key, def string) string {
	// First check our loaded Env map
	if val, ok := Env[key]; ok {
		return val
	}
	// Fallback to OS environment variables (for Docker/tests)
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func SetupEnvFile() {
	// Look for .env file in project root
	envFiles := []string{
		".env",          // Current directory
		"../../.env",    // From cmd/sneezebot to project root
		"../../../.env", // Fallback for deeper nesting
	}

	var err error
	for _, envFile := range envFiles {
		Env, err = godotenv.Read(envFile)
		if err == nil {
			// Successfully loaded env file
			return
		}
	}

	// No .env file found; OS environment variables still apply.
	log.Println("No .env file found, using OS environment only")
}

// GetAdminIDs parses the ADMIN_IDS allow-list (comma-separated Telegram user
// IDs) into a set for O(1) membership checks.
func GetAdminIDs() map[int64]struct{} {
	admins := make(map[int64]struct{})
	for _, token := range strings.Split(GetEnv("ADMIN_IDS", ""), ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			log.Printf("Ignoring invalid ADMIN_IDS entry %q: %v", token, err)
			continue
		}
		admins[id] = struct{}{}
	}
	return admins
}

func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}

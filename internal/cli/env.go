package cli

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles overloads the process environment from env files in dir.
// Missing or unreadable files are skipped.
func loadEnvFiles(dir string) []string {
	loaded := make([]string, 0, len(envFiles))
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Overload(path); err != nil {
			continue
		}
		loaded = append(loaded, path)
	}
	return loaded
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; variables already present in the environment win.
var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads every existing env file and returns the names that were read.
func loadEnvFiles() []string {
	var loaded []string
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			continue
		}
		loaded = append(loaded, name)
	}
	return loaded
}

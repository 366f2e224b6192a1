package configuration

import (
	"bufio"
	"os"
	"strings"

	"crosscast/infrastructure/logger"
)

// LoadEnvFromFile loads KEY=VALUE pairs from a dotenv-style file into the
// process environment. Existing variables win so real deployment config is
// never clobbered by a checked-in .env.
func LoadEnvFromFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	loaded := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err == nil {
			loaded++
		}
	}

	if loaded > 0 {
		logger.GetLogger().WithField("count", loaded).Info("Loaded environment variables from file")
	}
}

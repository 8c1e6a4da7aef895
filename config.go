package tgdango

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents a configuration object.
type Config struct {
	Token             string   `json:"token" env:"BOT_TOKEN"`                                     // Token is the bot token from @BotFather.
	Prefix            string   `json:"prefix" env:"BOT_PREFIX"`                                   // Prefix for commands, "/" by default.
	AllowedUpdates    []string `json:"allowedupdates" env:"BOT_ALLOWED_UPDATES" envSeparator:","` // AllowedUpdates limits the update kinds polled.
	PollTimeout       int      `json:"polltimeout" env:"BOT_POLL_TIMEOUT"`                        // PollTimeout of long polling, in seconds.
	Workers           int      `json:"workers" env:"BOT_WORKERS"`                                 // Workers handling updates concurrently.
	ProxyURL          string   `json:"proxyurl" env:"BOT_PROXY_URL"`                              // ProxyURL, e.g. "socks5://127.0.0.1:1080".
	APIServer         string   `json:"apiserver" env:"BOT_API_SERVER"`                            // APIServer overrides the Bot API server URL.
	PersistenceFile   string   `json:"persistencefile" env:"BOT_PERSISTENCE_FILE"`                // PersistenceFile stores chat and bot data.
	PersistenceDriver string   `json:"persistencedriver" env:"BOT_PERSISTENCE_DRIVER"`            // PersistenceDriver is "gob" or "sqlite".
	Debug             bool     `json:"debug" env:"BOT_DEBUG"`                                     // Debug enables debug logging.
}

// LoadConfig loads the configuration from the specified JSON file.
//
// Args:
//   - filename: The name of the configuration file.
//
// Returns:
//   - *Config: A pointer to the Config struct.
//   - error: An error if the loading fails.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err = json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified JSON file.
//
// Args:
//   - filename: The name of the configuration file.
//   - config: The Config struct to save.
//
// Returns:
//   - error: An error if the saving fails.
func SaveConfig(filename string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config data: %w", err)
	}

	if err = os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadEnvConfig reads the configuration from the environment.
//
// The given dotenv files (".env" when none is given) are loaded first; missing files are ignored
// and variables already present in the environment are never overridden.
//
// Args:
//   - dotenvFiles: The dotenv files to load.
//
// Returns:
//   - *Config: A pointer to the Config struct.
//   - error: An error if a dotenv file is malformed or a variable cannot be parsed.
func LoadEnvConfig(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return ApplyEnv(&Config{})
}

// ApplyEnv overrides the fields of config whose environment variables are set.
func ApplyEnv(config *Config) (*Config, error) {
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return config, nil
}

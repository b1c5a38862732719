/* config.go
 * Loads the runtime configuration of the bot from the environment. A .env file in the working directory is read
 * first if there is one
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the front-ends need
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`
	HTTPAddr     string `env:"HTTP_ADDR" envDefault:":8080"`

	// RateLimit is the number of bot commands a user may send per second, refilled up to RateBurst
	RateLimit float64 `env:"BOT_RATE_LIMIT" envDefault:"0.5"`
	RateBurst int     `env:"BOT_RATE_BURST" envDefault:"3"`

	Roster        string `env:"ROSTER"`
	Ordering      string `env:"ORDERING" envDefault:"front"`
	SortCriterion string `env:"SORT_CRITERION" envDefault:"level"`
}

// Load reads the .env file at paths (".env" when none are given) into the environment and parses the result.
// Preconditions: None. A missing .env file is not an error
// Postconditions: Returns the parsed config or an error if a file could not be read or a value could not be parsed
func Load(paths ...string) (Config, error) {
	if err := godotenv.Load(paths...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load .env file: %w", err)
		}
		log.Println("no .env file found, using environment only")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse env: %w", err)
	}
	if cfg.RateLimit <= 0 || cfg.RateBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit %v and burst %d must be positive", cfg.RateLimit, cfg.RateBurst)
	}
	return cfg, nil
}

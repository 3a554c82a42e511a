// Package config loads application configuration from environment variables
// into typed structs.
//
// Parsing is delegated to github.com/caarlos0/env/v11 and dotenv files are read
// with github.com/joho/godotenv. Variables already present in the environment
// take precedence over the ones declared in dotenv files.
//
// # Usage
//
//	type Config struct {
//	    Env       string `env:"ENV" envDefault:"development"`
//	    LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	    Workers   int    `env:"WORKERS" envDefault:"1"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("SPECCHECK_"))
//	if err != nil {
//	    // handle error
//	}
//
// Tests can pass a fixed environment instead of mutating the process one:
//
//	cfg, err := config.Load[Config](config.WithEnviron(map[string]string{
//	    "SPECCHECK_WORKERS": "4",
//	}))
//
// # Error Handling
//
// Parsing failures, including missing required variables, wrap ErrParsingConfig.
// An unreadable dotenv file passed to WithDotenv wraps ErrReadingDotenv.
package config

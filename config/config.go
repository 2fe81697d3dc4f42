package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings required to run the server.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // seed default data on startup
	Address               string `env:"ADDRESS" envDefault:":8080"`                // listen address
	JwtSecret             string `env:"JWT_SECRET,required"`                       // JWT signing secret
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // database connection URL
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // database name
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // allowed origins (comma separated, * = all)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // allow credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // max requests per window (0 = disabled)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // window length (seconds)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // toggle rate limiting
	// Frontend URL, used to build the per-employee feedback links encoded into QR codes
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	// SMS gateway (query-string API)
	SMS_GatewayURL string `env:"SMS_GATEWAY_URL"` // base URL of the SMS gateway, empty = SMS disabled
	// SMTP for negative-feedback alert mail (optional)
	SMTP_Host     string `env:"SMTP_HOST"`
	SMTP_Port     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTP_User     string `env:"SMTP_USER"`
	SMTP_Password string `env:"SMTP_PASSWORD"`
	// Default password assigned to employees created through spreadsheet import
	ImportDefaultPassword string `env:"IMPORT_DEFAULT_PASSWORD" envDefault:"123"`
}

// getEnvPath returns the env file path for the current environment.
func getEnvPath() string {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt.Printf because the logger is not initialized yet at this point
		fmt.Printf("could not get working directory: %v\n", err)
		return ""
	}

	// Walk up until a config/env directory is found.
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig reads configuration from the environment-specific env file under
// config/env plus any extra files provided, then parses the process env vars.
func NewConfig(files ...string) *Configuration {
	if envPath := getEnvPath(); envPath != "" {
		files = append(files, envPath)
	}
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("could not parse configuration: %+v\n", err)
		return nil
	}

	return &cfg
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultGatewayURL    = "https://gateway.pinata.cloud"
	defaultPinningAPIURL = "https://api.pinata.cloud"
	defaultLogLevel      = "info"
	defaultEnv           = "local"
	defaultConfigDir     = ".medvault"
	defaultTimeout       = 30
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	LogLevel       string `mapstructure:"log_level"`
	ConfigDir      string `mapstructure:"config_dir"`
	DataPath       string `mapstructure:"data_path"`
	GatewayURL     string `mapstructure:"gateway_url"`
	PinningAPIURL  string `mapstructure:"pinning_api_url"`
	PinningJWT     string `mapstructure:"pinning_jwt"`
	RequestTimeout int    `mapstructure:"request_timeout_seconds"`
}

// MustLoad loads the client configuration from the environment, an optional
// .env file and the credentials file in the config directory.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("GATEWAY_URL", defaultGatewayURL)
	viper.SetDefault("PINNING_API_URL", defaultPinningAPIURL)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultTimeout)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("failed to create config directory: %v\n", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, "medvault.db")
	}

	jwt := viper.GetString("PINATA_JWT")
	if jwt == "" {
		jwt = readCredentials(configDir)
	}

	config := &Config{
		Env:            viper.GetString("APP_ENV"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		DataPath:       dataPath,
		GatewayURL:     strings.TrimRight(viper.GetString("GATEWAY_URL"), "/"),
		PinningAPIURL:  strings.TrimRight(viper.GetString("PINNING_API_URL"), "/"),
		PinningJWT:     jwt,
		RequestTimeout: viper.GetInt("REQUEST_TIMEOUT_SECONDS"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("config error: %v", err))
	}

	return config
}

// CredentialsPath returns the file holding the pinning service token.
func (c *Config) CredentialsPath() string {
	return filepath.Join(c.ConfigDir, "credentials")
}

func readCredentials(configDir string) string {
	data, err := os.ReadFile(filepath.Join(configDir, "credentials"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (c *Config) validate() error {
	if c.GatewayURL == "" {
		return fmt.Errorf("gateway_url must not be empty")
	}
	if c.PinningAPIURL == "" {
		return fmt.Errorf("pinning_api_url must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive")
	}
	return nil
}

// IsProd reports whether the client runs against production settings.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal reports whether the client runs in local development mode.
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}

package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default), TEST, QA, PROD
		Build    string

		AppName         string
		SecretKey       string
		WorkDir         string
		FrontendBaseURL string

		DefaultFromName    string
		DefaultFromAddress string
		StaffEmail         string // pre-registration notifications land here

		SendgridApiKey string
		RollbarToken   string

		Server   ServerConfig
		Database DatabaseConfig
	}

	ServerConfig struct {
		Host                      string
		Port                      string
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
	}

	DatabaseConfig struct {
		// SimulatedLatency is slept once per store operation to mimic a
		// remote API; it stands in until a real database backend exists.
		SimulatedLatency time.Duration
	}
)

func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: c.DefaultFromName, Address: c.DefaultFromAddress}
}

// NewConfig loads the app configuration from the environment; a
// config/.env.<env> file is loaded first if it exists.
func NewConfig(workDir string) *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Malezi")
	conf.SetDefault("secretKey", "8m$z#1lezi-dev-only@k3y&do-not-use-in-prod!")
	conf.SetDefault("frontendBaseURL", "http://localhost:3000")
	conf.SetDefault("defaultFromName", "Malezi")
	conf.SetDefault("defaultFromAddress", "noreply@localhost")
	conf.SetDefault("staffEmail", "staff@localhost")
	conf.SetDefault("serverHost", "")
	conf.SetDefault("serverPort", "8000")
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("jwtRefreshExpirationDelta", 4*time.Hour)
	conf.SetDefault("dbSimulatedLatency", 150*time.Millisecond)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	cfg := &Config{
		Debug:              conf.GetBool("debug"),
		TestMode:           env == "TEST",
		Env:                env,
		Build:              conf.GetString("build"),
		AppName:            conf.GetString("appName"),
		SecretKey:          conf.GetString("secretKey"),
		WorkDir:            workDir,
		FrontendBaseURL:    conf.GetString("frontendBaseURL"),
		DefaultFromName:    conf.GetString("defaultFromName"),
		DefaultFromAddress: conf.GetString("defaultFromAddress"),
		StaffEmail:         conf.GetString("staffEmail"),
		SendgridApiKey:     conf.GetString("sendgridApiKey"),
		RollbarToken:       conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:                      conf.GetString("serverHost"),
			Port:                      conf.GetString("serverPort"),
			JWTExpirationDelta:        conf.GetDuration("jwtExpirationDelta"),
			JWTRefreshExpirationDelta: conf.GetDuration("jwtRefreshExpirationDelta"),
		},
		Database: DatabaseConfig{
			SimulatedLatency: conf.GetDuration("dbSimulatedLatency"),
		},
	}
	if cfg.TestMode {
		cfg.Database.SimulatedLatency = 0
	}
	return cfg
}

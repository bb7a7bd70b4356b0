package config

import (
	"flag"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddress     = ":8080"
	defaultBackendAPIURL     = "http://localhost:5000/api"
	defaultDatabaseDSN       = ""
	defaultLogLevel          = "debug"
	defaultAuthSigningKey    = ""
	defaultAuthScope         = "User.Read"
	defaultAuthAuthority     = "https://login.microsoftonline.com/common"
	defaultAuthRedirectURI   = "http://localhost:8080/dashboard"
	defaultProbeInterval     = 30 * time.Second
	defaultChecklistFallback = true
	defaultS3Region          = "us-east-1"
	defaultEnvFile           = ".env"
)

// S3Config holds the optional object storage used to archive dispatch reports.
type S3Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// Enabled reports whether report archiving is configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// AuthConfig describes the external identity provider.
type AuthConfig struct {
	Authority   string
	ClientID    string
	RedirectURI string
	Scope       string
	SigningKey  string
}

type Config struct {
	ServerAddr        string
	BackendAPIURL     string
	DatabaseDSN       string
	LogLevel          string
	ProbeInterval     time.Duration
	ChecklistFallback bool
	Auth              AuthConfig
	S3                S3Config
}

var (
	once      sync.Once
	singleton *Config
	initErr   error
)

// New returns new Config. It loads .env file if present and parses command line
// and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		// variables from .env never override the real environment
		if _, statErr := os.Stat(defaultEnvFile); statErr == nil {
			if initErr = godotenv.Load(defaultEnvFile); initErr != nil {
				return
			}
		}

		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "bobis server address")
		flag.StringVar(&cfg.BackendAPIURL, "b", defaultBackendAPIURL, "bobis backend api url")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "dispatch journal database DSN")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.Auth.SigningKey, "k", defaultAuthSigningKey, "token signing key (hex)")
		flag.DurationVar(&cfg.ProbeInterval, "p", defaultProbeInterval, "backend probe interval")

		flag.Parse()

		cfg.Auth.Authority = defaultAuthAuthority
		cfg.Auth.RedirectURI = defaultAuthRedirectURI
		cfg.Auth.Scope = defaultAuthScope
		cfg.S3.Region = defaultS3Region
		cfg.ChecklistFallback = defaultChecklistFallback

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if backendEnv := os.Getenv("BACKEND_API_URL"); backendEnv != "" {
			cfg.BackendAPIURL = backendEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if probeEnv := os.Getenv("PROBE_INTERVAL"); probeEnv != "" {
			if d, parseErr := time.ParseDuration(probeEnv); parseErr == nil {
				cfg.ProbeInterval = d
			}
		}
		if fallbackEnv := os.Getenv("CHECKLIST_PLACEHOLDERS"); fallbackEnv != "" {
			if b, parseErr := strconv.ParseBool(fallbackEnv); parseErr == nil {
				cfg.ChecklistFallback = b
			}
		}

		// identity provider
		if v := os.Getenv("AUTH_SIGNING_KEY"); v != "" {
			cfg.Auth.SigningKey = v
		}
		if v := os.Getenv("AUTH_AUTHORITY"); v != "" {
			cfg.Auth.Authority = v
		}
		if v := os.Getenv("AUTH_CLIENT_ID"); v != "" {
			cfg.Auth.ClientID = v
		}
		if v := os.Getenv("AUTH_REDIRECT_URI"); v != "" {
			cfg.Auth.RedirectURI = v
		}
		if v := os.Getenv("AUTH_SCOPE"); v != "" {
			cfg.Auth.Scope = v
		}

		// report archive
		if v := os.Getenv("S3_BUCKET"); v != "" {
			cfg.S3.Bucket = v
		}
		if v := os.Getenv("S3_REGION"); v != "" {
			cfg.S3.Region = v
		}
		if v := os.Getenv("S3_ACCESS_KEY_ID"); v != "" {
			cfg.S3.AccessKeyID = v
		}
		if v := os.Getenv("S3_SECRET_ACCESS_KEY"); v != "" {
			cfg.S3.SecretAccessKey = v
		}

		singleton = &cfg
	})

	if initErr != nil {
		return nil, initErr
	}

	return singleton, nil
}

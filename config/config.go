package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultTokenTTL           = 12 * time.Hour
	defaultPerPage            = 10
	defaultMaxPerPage         = 100
	defaultMaxPhotoDimension  = 1024
	defaultJPEGQuality        = 85
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Storage configures where profile photos live
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Listing *ListingConfig `json:"listing" yaml:"listing"`

	Migrations *MigrationsConfig `json:"migrations" yaml:"migrations"`

	// PubSub configuration for user lifecycle events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for profile cards
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Sentry *SentryConfig `json:"sentry" yaml:"sentry"`
}

// SecretKeyConfig holds the token signing keys.
type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost          int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL            time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	RestrictEditToOwner bool          `json:"restrictEditToOwner" yaml:"restrictEditToOwner"`
}

// RateLimitConfig throttles the unauthenticated credential endpoints per client IP.
type RateLimitConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	Rate      float64       `json:"rate" yaml:"rate"`
	Burst     int           `json:"burst" yaml:"burst"`
	ExpiresIn time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// StorageConfig defines the asset bucket and photo normalisation limits
type StorageConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/lib/userhub/photos or s3://photos?region=us-east-1
	BucketURL         string `json:"bucketUrl" yaml:"bucketUrl"`
	MaxPhotoDimension int    `json:"maxPhotoDimension" yaml:"maxPhotoDimension"`
	JPEGQuality       int    `json:"jpegQuality" yaml:"jpegQuality"`
}

type ListingConfig struct {
	DefaultPerPage int `json:"defaultPerPage" yaml:"defaultPerPage"`
	MaxPerPage     int `json:"maxPerPage" yaml:"maxPerPage"`
}

type MigrationsConfig struct {
	AutoApply bool `json:"autoApply" yaml:"autoApply"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines where user lifecycle events are published
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq"; empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP URL and exchange (for rabbitmq provider)
	RabbitMQURL      string `json:"rabbitmqUrl" yaml:"rabbitmqUrl"`
	RabbitMQExchange string `json:"rabbitmqExchange" yaml:"rabbitmqExchange"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// SentryConfig enables error reporting for 5xx responses when DSN is set.
type SentryConfig struct {
	DSN              string  `json:"dsn" yaml:"dsn"`
	TracesSampleRate float64 `json:"tracesSampleRate" yaml:"tracesSampleRate"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML: SECRETKEY_ACCESS -> secretKey.access
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A local .env is optional and never overrides variables already exported.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, errors.Wrap(err, "load .env failed")
		}
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never nil-check them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.MaxPhotoDimension <= 0 {
		cfg.Storage.MaxPhotoDimension = defaultMaxPhotoDimension
	}
	if cfg.Storage.JPEGQuality <= 0 || cfg.Storage.JPEGQuality > 100 {
		cfg.Storage.JPEGQuality = defaultJPEGQuality
	}

	if cfg.Listing == nil {
		cfg.Listing = &ListingConfig{}
	}
	if cfg.Listing.DefaultPerPage <= 0 {
		cfg.Listing.DefaultPerPage = defaultPerPage
	}
	if cfg.Listing.MaxPerPage <= 0 {
		cfg.Listing.MaxPerPage = defaultMaxPerPage
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds read replicas from POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

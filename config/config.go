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
	defaultMaxRequestBodySize = "100KB"
	defaultTimezone           = "Asia/Kolkata"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
		// Timezone in which calendar days (today, delivery day) are computed.
		Timezone    string `json:"timezone" yaml:"timezone"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the document database backend
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for Firestore, ID token verification and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Redis backs the OTP and token revocation stores when auth.store is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for OTP delivery events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the OTP delivery push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Geocoding configuration for address suggestions
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Export configuration for PDF rendering and storage
	Export *ExportConfig `json:"export" yaml:"export"`

	// QRCode configuration for invoice reference codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Orders *OrdersConfig `json:"orders" yaml:"orders"`

	// Scheduler configuration for the delivery reminder job
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig selects the persistence driver
type StorageConfig struct {
	// Driver is "firestore" or "postgres"
	Driver string `json:"driver" yaml:"driver"`
}

// FirebaseConfig defines the Firebase project the service talks to
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`

	// CountryCode is prefixed to 10-digit phone numbers
	CountryCode string `json:"countryCode" yaml:"countryCode"`

	OTPTTL         time.Duration `json:"otpTTL" yaml:"otpTTL"`
	OTPMaxAttempts int           `json:"otpMaxAttempts" yaml:"otpMaxAttempts"`

	// OTPRatePerMinute and OTPBurst throttle code requests per phone number
	OTPRatePerMinute float64 `json:"otpRatePerMinute" yaml:"otpRatePerMinute"`
	OTPBurst         int     `json:"otpBurst" yaml:"otpBurst"`

	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`

	// Store is "memory" or "redis"
	Store string `json:"store" yaml:"store"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the push endpoint that delivers OTP codes
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// SMSSender is "log" to write codes to the log or "webhook" to post them to an SMS gateway
	SMSSender string `json:"smsSender" yaml:"smsSender"`

	// SMSWebhookURL receives {"to", "body"} JSON posts (for webhook sender)
	SMSWebhookURL string `json:"smsWebhookUrl" yaml:"smsWebhookUrl"`

	// PushAudience is the audience expected in Pub/Sub OIDC tokens. Empty uses the request URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// GeocodingConfig defines the reverse geocoding endpoint
type GeocodingConfig struct {
	// BaseURL of a Nominatim-compatible API
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// ExportConfig defines document rendering and storage
type ExportConfig struct {
	// BucketURL is a gocloud.dev blob URL (file://, mem://, gs://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// ChromeBin points at a Chromium binary; empty lets the launcher download one
	ChromeBin     string        `json:"chromeBin" yaml:"chromeBin"`
	RenderTimeout time.Duration `json:"renderTimeout" yaml:"renderTimeout"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// OrdersConfig defines order-taking rules
type OrdersConfig struct {
	// LegacyCustomerPaymentCasing writes "Unpaid" instead of "unpaid" on customer orders
	LegacyCustomerPaymentCasing bool `json:"legacyCustomerPaymentCasing" yaml:"legacyCustomerPaymentCasing"`
}

// SchedulerConfig defines the background jobs
type SchedulerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// ReminderSpec is a cron expression for the delivery reminder
	ReminderSpec string `json:"reminderSpec" yaml:"reminderSpec"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// Values from a local .env file become regular environment variables,
	// so they go through the same override path as the real environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if _, err := time.LoadLocation(cfg.Env.Timezone); err != nil {
		return nil, errors.Wrapf(err, "invalid timezone %q", cfg.Env.Timezone)
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Env.Timezone == "" {
		cfg.Env.Timezone = defaultTimezone
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{Driver: "firestore"}
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.CountryCode == "" {
		cfg.Auth.CountryCode = "+91"
	}
	if cfg.Auth.OTPTTL <= 0 {
		cfg.Auth.OTPTTL = 5 * time.Minute
	}
	if cfg.Auth.OTPMaxAttempts <= 0 {
		cfg.Auth.OTPMaxAttempts = 5
	}
	if cfg.Auth.OTPRatePerMinute <= 0 {
		cfg.Auth.OTPRatePerMinute = 1
	}
	if cfg.Auth.OTPBurst <= 0 {
		cfg.Auth.OTPBurst = 3
	}
	if cfg.Auth.Store == "" {
		cfg.Auth.Store = "memory"
	}
	if cfg.Orders == nil {
		cfg.Orders = &OrdersConfig{}
	}
	if cfg.Export == nil {
		cfg.Export = &ExportConfig{}
	}
	if cfg.Export.BucketURL == "" {
		cfg.Export.BucketURL = "mem://"
	}
	if cfg.Export.RenderTimeout <= 0 {
		cfg.Export.RenderTimeout = 30 * time.Second
	}
	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = 8081
	}
	if cfg.Worker.SMSSender == "" {
		cfg.Worker.SMSSender = "log"
	}
	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

// Location returns the timezone calendar days are computed in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Env.Timezone)
	if err != nil {
		return time.Local
	}

	return loc
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

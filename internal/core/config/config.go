package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Database holds the database configuration.
	Database DatabaseConfig `mapstructure:",squash"`

	// Redis holds the cache configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Auth holds the token verification settings.
	Auth AuthConfig `mapstructure:",squash"`

	// Kafka holds the status event publisher settings.
	Kafka KafkaConfig `mapstructure:",squash"`

	// SMS holds the customer SMS gateway settings.
	SMS SMSConfig `mapstructure:",squash"`
}

// DatabaseConfig holds database connection details.
type DatabaseConfig struct {
	// Driver selects the gorm dialector: sqlite, postgres or mysql.
	Driver string `mapstructure:"DB_DRIVER" default:"sqlite"`
	// Host is the database server hostname.
	Host string `mapstructure:"DB_HOST" default:"localhost"`
	// Port is the database connection port.
	Port int `mapstructure:"DB_PORT" default:"5432"`
	// User is the database role.
	User string `mapstructure:"DB_USER" default:"cargo"`
	// Password is the database password.
	Password string `mapstructure:"DB_PASSWORD"`
	// Name is the database (schema) name.
	Name string `mapstructure:"DB_NAME" default:"cargo"`
	// SSLMode is passed to postgres as sslmode.
	SSLMode string `mapstructure:"DB_SSLMODE" default:"disable"`
	// Path is the sqlite file, ":memory:" for an ephemeral database.
	Path string `mapstructure:"DB_PATH" default:"cargo.db"`
	// MaxOpenConns caps the connection pool.
	MaxOpenConns int `mapstructure:"DB_MAX_OPEN_CONNS" default:"25"`
	// MaxIdleConns caps idle connections kept in the pool.
	MaxIdleConns int `mapstructure:"DB_MAX_IDLE_CONNS" default:"5"`
	// ConnMaxLifetimeSeconds recycles connections older than this.
	ConnMaxLifetimeSeconds int `mapstructure:"DB_CONN_MAX_LIFETIME_SECONDS" default:"300"`
}

// ConnMaxLifetime returns the connection lifetime as a duration.
func (d DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(d.ConnMaxLifetimeSeconds) * time.Second
}

// RedisConfig holds the Redis cache settings.
type RedisConfig struct {
	// Enabled turns the tracking cache and notice store on.
	Enabled bool `mapstructure:"REDIS_ENABLED" default:"true"`
	// URL is in the form redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// CacheTTLSeconds bounds how long a tracking lookup stays cached.
	CacheTTLSeconds int `mapstructure:"CACHE_TTL_SECONDS" default:"300"`
}

// CacheTTL returns the cache TTL as a duration.
func (r RedisConfig) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLSeconds) * time.Second
}

// AuthConfig holds the settings used to verify caller tokens.
type AuthConfig struct {
	// JWTSecret is the HMAC key shared with the identity provider.
	JWTSecret string `mapstructure:"AUTH_JWT_SECRET" required:"true"`
	// CookieName is the browser session cookie carrying the token.
	CookieName string `mapstructure:"AUTH_COOKIE_NAME" default:"token"`
}

// KafkaConfig holds the status event publisher settings.
type KafkaConfig struct {
	// Enabled turns status event publishing on.
	Enabled bool `mapstructure:"KAFKA_ENABLED" default:"false"`
	// Brokers is a comma separated list of host:port pairs.
	Brokers string `mapstructure:"KAFKA_BROKERS" default:"localhost:9092"`
	// Topic receives one message per confirmed status change.
	Topic string `mapstructure:"KAFKA_STATUS_TOPIC" default:"order-status-changed"`
}

// BrokerList splits Brokers into addresses.
func (k KafkaConfig) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// SMSConfig holds the SMS gateway settings.
type SMSConfig struct {
	// Enabled turns customer SMS notifications on.
	Enabled bool `mapstructure:"SMS_ENABLED" default:"false"`
	// URL is the gateway endpoint accepting JSON messages.
	URL string `mapstructure:"SMS_GATEWAY_URL"`
	// APIKey is sent as a bearer token to the gateway.
	APIKey string `mapstructure:"SMS_API_KEY"`
	// TimeoutSeconds bounds a single gateway call.
	TimeoutSeconds int `mapstructure:"SMS_TIMEOUT_SECONDS" default:"5"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := validateDriver(config.Database.Driver); err != nil {
		return nil, err
	}

	if config.SMS.Enabled && config.SMS.URL == "" {
		return nil, fmt.Errorf("missing required configuration: SMS_GATEWAY_URL")
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("bind env %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

func validateDriver(driver string) error {
	switch driver {
	case "sqlite", "postgres", "mysql":
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite, postgres or mysql)", driver)
	}
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

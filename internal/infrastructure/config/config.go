package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverFirestore = "firestore"
	StoreDriverDynamoDB  = "dynamodb"
	StoreDriverMemory    = "memory"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	App      AppConfig
	Log      LogConfig
	Store    StoreConfig
	Firebase FirebaseConfig
	DynamoDB DynamoDBConfig
	JWT      JWTConfig
	Email    EmailConfig
}

type AppConfig struct {
	Env                string
	Port               int
	BusinessName       string
	AdminWhatsApp      string
	CORSAllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

type StoreConfig struct {
	Driver string
}

// FirebaseConfig carries both credential styles. See database.ResolveFirebaseCredentials.
type FirebaseConfig struct {
	ServiceAccountPath string
	ProjectID          string
	PrivateKey         string
	ClientEmail        string
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	TablePrefix     string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type EmailConfig struct {
	Enabled    bool
	SMTPHost   string
	SMTPPort   int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	AdminEmail string
}

// Load reads configuration from the environment. Keys map to variables by
// upper-casing and replacing dots, e.g. jwt.secret is JWT_SECRET.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:                v.GetString("app.env"),
			Port:               v.GetInt("port"),
			BusinessName:       v.GetString("business.name"),
			AdminWhatsApp:      v.GetString("admin.whatsapp"),
			CORSAllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(v.GetString("store.driver")),
		},
		Firebase: FirebaseConfig{
			ServiceAccountPath: v.GetString("firebase.service_account_path"),
			ProjectID:          v.GetString("firebase.project_id"),
			PrivateKey:         v.GetString("firebase.private_key"),
			ClientEmail:        v.GetString("firebase.client_email"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("aws.region"),
			Endpoint:        v.GetString("dynamodb.endpoint"),
			AccessKeyID:     v.GetString("aws.access_key_id"),
			SecretAccessKey: v.GetString("aws.secret_access_key"),
			TablePrefix:     v.GetString("dynamodb.table_prefix"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Expiration: v.GetDuration("jwt.expiration"),
		},
		Email: EmailConfig{
			Enabled:    v.GetBool("email.enabled"),
			SMTPHost:   v.GetString("smtp.host"),
			SMTPPort:   v.GetInt("smtp.port"),
			Username:   v.GetString("smtp.username"),
			Password:   v.GetString("smtp.password"),
			FromEmail:  v.GetString("email.from"),
			FromName:   v.GetString("email.from_name"),
			AdminEmail: v.GetString("admin.notify_email"),
		},
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("port", 5000)
	v.SetDefault("business.name", "Graphic Designer Portfolio")
	v.SetDefault("admin.whatsapp", "")
	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("store.driver", StoreDriverFirestore)

	v.SetDefault("firebase.service_account_path", "")
	v.SetDefault("firebase.project_id", "")
	v.SetDefault("firebase.private_key", "")
	v.SetDefault("firebase.client_email", "")

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.table_prefix", "portfolio_")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 24*time.Hour)

	v.SetDefault("email.enabled", false)
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("email.from", "")
	v.SetDefault("email.from_name", "")
	v.SetDefault("admin.notify_email", "")
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return ErrMissingJWTSecret
	}
	switch c.Store.Driver {
	case StoreDriverFirestore, StoreDriverDynamoDB, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want firestore, dynamodb or memory)", c.Store.Driver)
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.App.Port)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

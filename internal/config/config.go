package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppCfg struct {
	Env                 string `mapstructure:"env"`
	Port                int    `mapstructure:"port"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type MongoCfg struct {
	URI                    string `mapstructure:"uri"`
	Database               string `mapstructure:"database"`
	ConnectTimeoutSeconds  int    `mapstructure:"connect_timeout_seconds"`
	SocketTimeoutSeconds   int    `mapstructure:"socket_timeout_seconds"`
	UsersCollection        string `mapstructure:"users_collection"`
	ProjectsCollection     string `mapstructure:"projects_collection"`
	ReviewsCollection      string `mapstructure:"reviews_collection"`
	ApplicationsCollection string `mapstructure:"applications_collection"`
	ContactsCollection     string `mapstructure:"contacts_collection"`
}

type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTCfg struct {
	Secret           string `mapstructure:"secret"`
	AccessTTLMinutes int    `mapstructure:"access_ttl_minutes"`
}

// AdminCfg seeds the bootstrap administrator. The password has no yaml key
// on purpose: it must come from the environment (APP_ADMIN_PASSWORD).
type AdminCfg struct {
	Username string `mapstructure:"username"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

type RateLimitCfg struct {
	Limit         int `mapstructure:"limit"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

type Config struct {
	App       AppCfg       `mapstructure:"app"`
	Mongo     MongoCfg     `mapstructure:"mongo"`
	Redis     RedisCfg     `mapstructure:"redis"`
	JWT       JWTCfg       `mapstructure:"jwt"`
	Admin     AdminCfg     `mapstructure:"admin"`
	RateLimit RateLimitCfg `mapstructure:"rate_limit"`
	// Derived
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// env-only secrets
	if s := v.GetString("jwt.secret"); s != "" {
		cfg.JWT.Secret = s
	}
	if s := v.GetString("admin.password"); s != "" {
		cfg.Admin.Password = s
	}
	if s := v.GetString("mongo.uri"); s != "" {
		cfg.Mongo.URI = s
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}
	if cfg.App.ReadTimeoutSeconds == 0 {
		cfg.App.ReadTimeoutSeconds = 15
	}
	if cfg.App.WriteTimeoutSeconds == 0 {
		cfg.App.WriteTimeoutSeconds = 15
	}
	cfg.ReadTimeout = time.Duration(cfg.App.ReadTimeoutSeconds) * time.Second
	cfg.WriteTimeout = time.Duration(cfg.App.WriteTimeoutSeconds) * time.Second

	if cfg.Mongo.ConnectTimeoutSeconds == 0 {
		cfg.Mongo.ConnectTimeoutSeconds = 10
	}
	if cfg.Mongo.SocketTimeoutSeconds == 0 {
		cfg.Mongo.SocketTimeoutSeconds = 30
	}
	if cfg.Mongo.UsersCollection == "" {
		cfg.Mongo.UsersCollection = "users"
	}
	if cfg.Mongo.ProjectsCollection == "" {
		cfg.Mongo.ProjectsCollection = "projects"
	}
	if cfg.Mongo.ReviewsCollection == "" {
		cfg.Mongo.ReviewsCollection = "reviews"
	}
	if cfg.Mongo.ApplicationsCollection == "" {
		cfg.Mongo.ApplicationsCollection = "applications"
	}
	if cfg.Mongo.ContactsCollection == "" {
		cfg.Mongo.ContactsCollection = "contact_messages"
	}

	if cfg.JWT.AccessTTLMinutes == 0 {
		cfg.JWT.AccessTTLMinutes = 60
	}
	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
	}
	if cfg.Admin.Email == "" {
		cfg.Admin.Email = "admin@bytestation.local"
	}
	if cfg.RateLimit.Limit == 0 {
		cfg.RateLimit.Limit = 20
	}
	if cfg.RateLimit.WindowSeconds == 0 {
		cfg.RateLimit.WindowSeconds = 60
	}
}

func validate(cfg *Config) error {
	if cfg.Mongo.URI == "" {
		return errors.New("mongo.uri is empty (set APP_MONGO_URI)")
	}
	if cfg.Mongo.Database == "" {
		return errors.New("mongo.database is missing")
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is empty (set APP_JWT_SECRET)")
	}
	if cfg.Admin.Password == "" {
		return errors.New("admin.password is empty (set APP_ADMIN_PASSWORD)")
	}
	return nil
}

package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host           string `mapstructure:"host"`
		Port           string `mapstructure:"port"`
		User           string `mapstructure:"user"`
		Password       string `mapstructure:"password"`
		Name           string `mapstructure:"name"`
		SSLMode        string `mapstructure:"sslmode"`
		AutoMigrate    bool   `mapstructure:"auto_migrate"`
		MigrationsPath string `mapstructure:"migrations_path"`
	} `mapstructure:"database"`
	Redis struct {
		Host         string        `mapstructure:"host"`
		Port         string        `mapstructure:"port"`
		Password     string        `mapstructure:"password"`
		DB           int           `mapstructure:"db"`
		UserCacheTTL time.Duration `mapstructure:"user_cache_ttl"`
	} `mapstructure:"redis"`
	Server struct {
		Port            string        `mapstructure:"port"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`
	JWT struct {
		SecretKey  string        `mapstructure:"secret_key"`
		Expiration time.Duration `mapstructure:"expiration"`
	} `mapstructure:"jwt"`
	Bcrypt struct {
		Cost int `mapstructure:"cost"`
	} `mapstructure:"bcrypt"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "bank")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.migrations_path", "file://db/migrations")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.user_cache_ttl", 10*time.Minute)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.expiration", 15*time.Minute)

	v.SetDefault("bcrypt.cost", 12)
	v.SetDefault("log.level", "info")
}

// LoadConfig reads config.yml from path, then lets environment variables
// override it (DATABASE_HOST, JWT_SECRET_KEY, ...). A .env file in path is
// loaded into the environment first when present.
func LoadConfig(path string) {
	_ = godotenv.Load(strings.TrimSuffix(path, "/") + "/.env")

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := v.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	if AppConfig.JWT.SecretKey == "" {
		log.Fatal("jwt.secret_key (JWT_SECRET_KEY) must be set")
	}
}

package configs

import (
	"log"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values
type Config struct {
	Port      string
	JWTSecret string
	JWTExpire time.Duration

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDB       string

	RedisURL string

	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string

	LogLevel string
}

var (
	configInstance *Config
	once           sync.Once
)

// Load loads configuration from the .env file and the environment
func Load() *Config {
	once.Do(func() {
		viper.SetConfigName(".env")
		viper.SetConfigType("env")
		viper.AddConfigPath(".")

		// Set defaults
		viper.SetDefault("VOTING_PORT", "8080")
		viper.SetDefault("VOTING_JWT_SECRET", "secret")
		viper.SetDefault("VOTING_JWT_EXPIRE", "24h")
		viper.SetDefault("MYSQL_USER", "root")
		viper.SetDefault("MYSQL_PASSWORD", "password")
		viper.SetDefault("MYSQL_HOST", "localhost")
		viper.SetDefault("MYSQL_PORT", "3306")
		viper.SetDefault("MYSQL_DB", "voting")
		viper.SetDefault("REDIS_URL", "redis://127.0.0.1:6379/0")
		viper.SetDefault("KAFKA_BROKERS", []string{"localhost:9092"})
		viper.SetDefault("KAFKA_TOPIC", "vote.accepted")
		viper.SetDefault("KAFKA_GROUP_ID", "voting-tally-worker")
		viper.SetDefault("MINIO_ENDPOINT", "localhost:9000")
		viper.SetDefault("MINIO_ACCESS_KEY", "minioadmin")
		viper.SetDefault("MINIO_SECRET_KEY", "minioadmin")
		viper.SetDefault("MINIO_BUCKET", "voting-images")
		viper.SetDefault("LOG_LEVEL", "info")
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			log.Printf("Warning: Error reading .env file: %v", err)
			log.Printf("Using environment variables and defaults")
		}

		expire, err := time.ParseDuration(viper.GetString("VOTING_JWT_EXPIRE"))
		if err != nil {
			log.Fatal("Invalid VOTING_JWT_EXPIRE format")
		}

		configInstance = &Config{
			Port:           viper.GetString("VOTING_PORT"),
			JWTSecret:      viper.GetString("VOTING_JWT_SECRET"),
			JWTExpire:      expire,
			MySQLUser:      viper.GetString("MYSQL_USER"),
			MySQLPassword:  viper.GetString("MYSQL_PASSWORD"),
			MySQLHost:      viper.GetString("MYSQL_HOST"),
			MySQLPort:      viper.GetString("MYSQL_PORT"),
			MySQLDB:        viper.GetString("MYSQL_DB"),
			RedisURL:       viper.GetString("REDIS_URL"),
			KafkaBrokers:   viper.GetStringSlice("KAFKA_BROKERS"),
			KafkaTopic:     viper.GetString("KAFKA_TOPIC"),
			KafkaGroupID:   viper.GetString("KAFKA_GROUP_ID"),
			MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
			MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
			MinioBucket:    viper.GetString("MINIO_BUCKET"),
			LogLevel:       viper.GetString("LOG_LEVEL"),
		}
	})
	return configInstance
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config アプリケーション設定
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Telemetry TelemetryConfig
}

// ServerConfig サーバー設定
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig データベース設定
type DatabaseConfig struct {
	Driver      string // mysql / postgres / sqlite
	Host        string
	Port        string
	Username    string
	Password    string
	DBName      string // sqlite の場合はファイルパス（":memory:" も可）
	LogLevel    string // silent / error / warn / info
	AutoMigrate bool
}

// SessionConfig セッション（フラッシュメッセージ用）設定
type SessionConfig struct {
	Secret     string
	CookieName string
	MaxAge     int
	Secure     bool
}

// TelemetryConfig トレース設定
type TelemetryConfig struct {
	Endpoint    string // 空の場合はトレースを送信しない
	ServiceName string
	SampleRatio float64
	Environment string
}

// Load 環境変数から設定をロード
func Load() (*Config, error) {
	// .env ファイルをロード (存在すれば)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     time.Duration(getEnvAsInt("SERVER_READ_TIMEOUT", 10)) * time.Second,
			WriteTimeout:    time.Duration(getEnvAsInt("SERVER_WRITE_TIMEOUT", 10)) * time.Second,
			ShutdownTimeout: time.Duration(getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 5)) * time.Second,
		},
		Database: DatabaseConfig{
			Driver:      getEnv("DB_DRIVER", "mysql"),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "3306"),
			Username:    getEnv("DB_USER", "root"),
			Password:    getEnv("DB_PASSWORD", ""),
			DBName:      getEnv("DB_NAME", "blogly"),
			LogLevel:    getEnv("DB_LOG_LEVEL", "info"),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", ""),
			CookieName: getEnv("SESSION_COOKIE_NAME", "blogly_session"),
			MaxAge:     getEnvAsInt("SESSION_MAX_AGE", 86400*7),
			Secure:     getEnvAsBool("SESSION_SECURE", false),
		},
		Telemetry: TelemetryConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "blogly"),
			SampleRatio: getEnvAsFloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
			Environment: getEnv("ENV", "local"),
		},
	}

	return config, nil
}

// getEnv 環境変数を取得、存在しない場合はデフォルト値を返す
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt 環境変数を整数として取得
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool 環境変数をboolとして取得
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat 環境変数をfloat64として取得
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
